package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"

	"freshcart/internal/domain/model"
	"freshcart/internal/metrics"
	repo "freshcart/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// 「すべて」カテゴリ
const AllCategories = "all"

// CatalogUsecase は商品とカテゴリの最新スナップショットをメモリに持つ。
// 読み取りはキャッシュから、書き込みはDBに投げてから該当テーブルを読み直す。
type CatalogUsecase struct {
	productRepo  repo.ProductRepository
	categoryRepo repo.CategoryRepository
	log          *zap.Logger
	metrics      *metrics.Metrics
	newID        func() string

	mu         sync.RWMutex
	products   []model.Product
	categories []model.Category
}

// DI
func NewCatalogUsecase(
	productRepo repo.ProductRepository,
	categoryRepo repo.CategoryRepository,
	log *zap.Logger,
	m *metrics.Metrics,
) *CatalogUsecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &CatalogUsecase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		log:          log,
		metrics:      m,
		newID:        uuid.NewString,
	}
}

// Refresh は商品とカテゴリを両方読み直す。失敗した方は前のスナップショットのまま
func (u *CatalogUsecase) Refresh(ctx context.Context) error {
	errC := u.refreshCategories(ctx)
	errP := u.refreshProducts(ctx)
	if errC != nil {
		return errC
	}
	return errP
}

func (u *CatalogUsecase) refreshProducts(ctx context.Context) error {
	items, err := u.productRepo.ListAll(ctx)
	if err != nil {
		u.fail("fetch_products", err)
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	u.mu.Lock()
	u.products = items
	u.mu.Unlock()
	return nil
}

func (u *CatalogUsecase) refreshCategories(ctx context.Context) error {
	items, err := u.categoryRepo.ListAll(ctx)
	if err != nil {
		u.fail("fetch_categories", err)
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	u.mu.Lock()
	u.categories = items
	u.mu.Unlock()
	return nil
}

func (u *CatalogUsecase) fail(op string, err error) {
	u.log.Error("catalog operation failed", zap.String("op", op), zap.Error(err))
	if u.metrics != nil {
		u.metrics.CatalogFailures.WithLabelValues(op).Inc()
	}
}

// 全商品（作成順）
func (u *CatalogUsecase) Products() []model.Product {
	return u.filter(func(model.Product) bool { return true })
}

func (u *CatalogUsecase) Categories() []model.Category {
	u.mu.RLock()
	defer u.mu.RUnlock()
	out := make([]model.Category, len(u.categories))
	copy(out, u.categories)
	return out
}

func (u *CatalogUsecase) ProductByID(id string) (model.Product, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	for _, p := range u.products {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return model.Product{}, false
}

// FindProduct はキャッシュに無ければDBを引き直す（他のインスタンスで作られた商品など）
func (u *CatalogUsecase) FindProduct(ctx context.Context, id string) (model.Product, error) {
	if p, ok := u.ProductByID(id); ok {
		return p, nil
	}
	if strings.TrimSpace(id) == "" {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	p, err := u.productRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		u.fail("find_product", err)
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.mu.Lock()
	if !containsProduct(u.products, p.ID) {
		u.products = append(u.products, p.Clone())
	}
	u.mu.Unlock()
	return p, nil
}

func containsProduct(items []model.Product, id string) bool {
	for _, p := range items {
		if p.ID == id {
			return true
		}
	}
	return false
}

// ByCategory は"all"か空なら全件
func (u *CatalogUsecase) ByCategory(categoryID string) []model.Product {
	if categoryID == "" || categoryID == AllCategories {
		return u.Products()
	}
	return u.filter(func(p model.Product) bool { return p.CategoryID == categoryID })
}

func (u *CatalogUsecase) Featured() []model.Product {
	return u.filter(func(p model.Product) bool { return p.IsFeatured })
}

func (u *CatalogUsecase) NewArrivals() []model.Product {
	return u.filter(func(p model.Product) bool { return p.IsNew })
}

// Search: 英語は大文字小文字を無視、タミル語はそのまま部分一致
func (u *CatalogUsecase) Search(query string) []model.Product {
	if strings.TrimSpace(query) == "" {
		return u.Products()
	}
	lower := strings.ToLower(query)
	return u.filter(func(p model.Product) bool {
		return strings.Contains(strings.ToLower(p.NameEn), lower) ||
			strings.Contains(p.NameTa, query) ||
			strings.Contains(strings.ToLower(p.DescriptionEn), lower) ||
			strings.Contains(p.DescriptionTa, query)
	})
}

// Display はトップページの一覧。検索語があれば検索、なければカテゴリ
func (u *CatalogUsecase) Display(query, categoryID string) []model.Product {
	if strings.TrimSpace(query) != "" {
		return u.Search(query)
	}
	return u.ByCategory(categoryID)
}

func (u *CatalogUsecase) filter(keep func(model.Product) bool) []model.Product {
	u.mu.RLock()
	defer u.mu.RUnlock()
	out := make([]model.Product, 0, len(u.products))
	for _, p := range u.products {
		if keep(p) {
			out = append(out, p.Clone())
		}
	}
	return out
}

// 管理画面からの商品作成の入力
type ProductInput struct {
	CategoryID    string
	NameEn        string
	NameTa        string
	DescriptionEn string
	DescriptionTa string
	Price         decimal.Decimal
	Unit          string
	Image         string
	InStock       bool
	IsFeatured    bool
	IsNew         bool
	Variants      []model.Variant
}

// 商品の作成
func (u *CatalogUsecase) CreateProduct(ctx context.Context, in ProductInput) (model.Product, error) {
	if strings.TrimSpace(in.NameEn) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "name.en required")
	}
	if strings.TrimSpace(in.CategoryID) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "category required")
	}
	if !in.Price.IsPositive() {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "price must be > 0")
	}
	if err := validateVariants(in.Variants); err != nil {
		return model.Product{}, err
	}

	variants := in.Variants
	if variants == nil {
		variants = []model.Variant{}
	}

	p, err := u.productRepo.Create(ctx, model.Product{
		ID:            u.newID(),
		CategoryID:    strings.TrimSpace(in.CategoryID),
		NameEn:        strings.TrimSpace(in.NameEn),
		NameTa:        strings.TrimSpace(in.NameTa),
		DescriptionEn: in.DescriptionEn,
		DescriptionTa: in.DescriptionTa,
		Price:         in.Price,
		Unit:          in.Unit,
		Image:         in.Image,
		InStock:       in.InStock,
		IsFeatured:    in.IsFeatured,
		IsNew:         in.IsNew,
		Variants:      variants,
	})
	if err != nil {
		u.fail("create_product", err)
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.log.Info("product created", zap.String("id", p.ID), zap.String("name", p.NameEn))
	_ = u.refreshProducts(ctx)
	return p, nil
}

// 指定されたフィールドだけ更新
func (u *CatalogUsecase) UpdateProduct(ctx context.Context, id string, patch repo.ProductPatch) error {
	if strings.TrimSpace(id) == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if patch.NameEn != nil && strings.TrimSpace(*patch.NameEn) == "" {
		return NewHTTPError(http.StatusBadRequest, "name.en required")
	}
	if patch.CategoryID != nil && strings.TrimSpace(*patch.CategoryID) == "" {
		return NewHTTPError(http.StatusBadRequest, "category required")
	}
	if patch.Price != nil && !patch.Price.IsPositive() {
		return NewHTTPError(http.StatusBadRequest, "price must be > 0")
	}
	if patch.Variants != nil {
		if err := validateVariants(*patch.Variants); err != nil {
			return err
		}
	}
	if patch.IsEmpty() {
		return nil
	}

	err := u.productRepo.Update(ctx, id, patch)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		u.fail("update_product", err)
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.log.Info("product updated", zap.String("id", id))
	_ = u.refreshProducts(ctx)
	return nil
}

func (u *CatalogUsecase) DeleteProduct(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	err := u.productRepo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		u.fail("delete_product", err)
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.log.Info("product deleted", zap.String("id", id))
	_ = u.refreshProducts(ctx)
	return nil
}

type CategoryInput struct {
	NameEn string
	NameTa string
	Icon   string
	Color  string
}

func (u *CatalogUsecase) CreateCategory(ctx context.Context, in CategoryInput) (model.Category, error) {
	if strings.TrimSpace(in.NameEn) == "" {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "name.en required")
	}

	c, err := u.categoryRepo.Create(ctx, model.Category{
		ID:     u.newID(),
		NameEn: strings.TrimSpace(in.NameEn),
		NameTa: strings.TrimSpace(in.NameTa),
		Icon:   in.Icon,
		Color:  in.Color,
	})
	if err != nil {
		u.fail("create_category", err)
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.log.Info("category created", zap.String("id", c.ID), zap.String("name", c.NameEn))
	_ = u.refreshCategories(ctx)
	return c, nil
}

func (u *CatalogUsecase) DeleteCategory(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid category id")
	}
	err := u.categoryRepo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		u.fail("delete_category", err)
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.log.Info("category deleted", zap.String("id", id))
	_ = u.refreshCategories(ctx)
	return nil
}

func validateVariants(vs []model.Variant) error {
	for _, v := range vs {
		if strings.TrimSpace(v.Unit) == "" {
			return NewHTTPError(http.StatusBadRequest, "variant unit required")
		}
		if !v.Price.IsPositive() {
			return NewHTTPError(http.StatusBadRequest, "variant price must be > 0")
		}
	}
	return nil
}
