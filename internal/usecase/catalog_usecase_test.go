package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"freshcart/internal/domain/model"
	"freshcart/internal/metrics"
	repo "freshcart/internal/repository"
	"freshcart/internal/usecase"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleProducts() []model.Product {
	return []model.Product{
		{ID: "p1", CategoryID: "food-groceries", NameEn: "Ponni Rice", NameTa: "பொன்னி அரிசி",
			DescriptionEn: "Premium quality rice", Price: decimal.NewFromInt(40), Unit: "500g", InStock: true, IsFeatured: true},
		{ID: "p2", CategoryID: "households", NameEn: "Coconut Broom", NameTa: "தென்னை துடைப்பம்",
			Price: decimal.NewFromInt(120), Unit: "1pc", InStock: true, IsNew: true},
		{ID: "p3", CategoryID: "food-groceries", NameEn: "Toor Dal", DescriptionTa: "சிறந்த பருப்பு",
			Price: decimal.NewFromInt(90), Unit: "1kg", InStock: false},
	}
}

func newLoadedCatalog(t *testing.T) (*usecase.CatalogUsecase, *ProductRepoMock, *CategoryRepoMock) {
	t.Helper()
	pRepo := new(ProductRepoMock)
	cRepo := new(CategoryRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo, cRepo, nil, nil)

	pRepo.On("ListAll", mock.Anything).Return(sampleProducts(), nil).Once()
	cRepo.On("ListAll", mock.Anything).Return([]model.Category{{ID: "food-groceries", NameEn: "Food & Groceries"}}, nil).Once()
	require.NoError(t, uc.Refresh(context.Background()))
	return uc, pRepo, cRepo
}

func ids(items []model.Product) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID)
	}
	return out
}

// =====================
// Reads
// =====================

func TestCatalogUsecase_Reads(t *testing.T) {
	uc, _, _ := newLoadedCatalog(t)

	assert.Equal(t, []string{"p1", "p2", "p3"}, ids(uc.Products()))
	assert.Len(t, uc.Categories(), 1)
	assert.Equal(t, []string{"p1", "p3"}, ids(uc.ByCategory("food-groceries")))
	assert.Equal(t, []string{"p1", "p2", "p3"}, ids(uc.ByCategory("all")))
	assert.Equal(t, []string{"p1", "p2", "p3"}, ids(uc.ByCategory("")))
	assert.Empty(t, uc.ByCategory("unknown"))
	assert.Equal(t, []string{"p1"}, ids(uc.Featured()))
	assert.Equal(t, []string{"p2"}, ids(uc.NewArrivals()))

	p, ok := uc.ProductByID("p2")
	assert.True(t, ok)
	assert.Equal(t, "Coconut Broom", p.NameEn)
	_, ok = uc.ProductByID("nope")
	assert.False(t, ok)
}

func TestCatalogUsecase_Search(t *testing.T) {
	uc, _, _ := newLoadedCatalog(t)

	assert.Equal(t, []string{"p1"}, ids(uc.Search("RICE")))
	assert.Equal(t, []string{"p1"}, ids(uc.Search("premium")))
	assert.Equal(t, []string{"p2"}, ids(uc.Search("துடைப்பம்")))
	assert.Equal(t, []string{"p3"}, ids(uc.Search("பருப்பு")))
	assert.Equal(t, []string{"p1", "p2", "p3"}, ids(uc.Search("  ")))
	assert.Empty(t, uc.Search("soap"))
}

func TestCatalogUsecase_Display_SearchWinsOverCategory(t *testing.T) {
	uc, _, _ := newLoadedCatalog(t)

	assert.Equal(t, []string{"p2"}, ids(uc.Display("broom", "food-groceries")))
	assert.Equal(t, []string{"p1", "p3"}, ids(uc.Display(" ", "food-groceries")))
}

func TestCatalogUsecase_ReadsReturnCopies(t *testing.T) {
	uc, _, _ := newLoadedCatalog(t)

	items := uc.Products()
	items[0].NameEn = "changed"

	p, _ := uc.ProductByID("p1")
	assert.Equal(t, "Ponni Rice", p.NameEn)
}

func TestCatalogUsecase_FindProduct_CacheHit(t *testing.T) {
	uc, pRepo, _ := newLoadedCatalog(t)

	p, err := uc.FindProduct(context.Background(), "p2")
	require.NoError(t, err)
	assert.Equal(t, "Coconut Broom", p.NameEn)
	pRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestCatalogUsecase_FindProduct_MissReadsThrough(t *testing.T) {
	uc, pRepo, _ := newLoadedCatalog(t)
	fresh := model.Product{ID: "p9", CategoryID: "households", NameEn: "Mop", Price: decimal.NewFromInt(150), Unit: "1pc", InStock: true}
	pRepo.On("FindByID", mock.Anything, "p9").Return(fresh, nil).Once()

	p, err := uc.FindProduct(context.Background(), "p9")
	require.NoError(t, err)
	assert.Equal(t, "Mop", p.NameEn)

	// 2回目はキャッシュから
	_, ok := uc.ProductByID("p9")
	assert.True(t, ok)
	_, err = uc.FindProduct(context.Background(), "p9")
	require.NoError(t, err)
	pRepo.AssertNumberOfCalls(t, "FindByID", 1)
}

func TestCatalogUsecase_FindProduct_NotFound(t *testing.T) {
	uc, pRepo, _ := newLoadedCatalog(t)
	pRepo.On("FindByID", mock.Anything, "nope").Return(model.Product{}, repo.ErrNotFound).Once()

	_, err := uc.FindProduct(context.Background(), "nope")
	assertHTTPError(t, err, http.StatusNotFound, "not found")
}

func TestCatalogUsecase_FindProduct_DBError(t *testing.T) {
	uc, pRepo, _ := newLoadedCatalog(t)
	pRepo.On("FindByID", mock.Anything, "p9").Return(model.Product{}, errors.New("conn reset")).Once()

	_, err := uc.FindProduct(context.Background(), "p9")
	assertHTTPError(t, err, http.StatusInternalServerError, "db error")
	assert.Len(t, uc.Products(), 3)
}

func TestCatalogUsecase_Refresh_FailureKeepsSnapshot(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg, nil)

	pRepo := new(ProductRepoMock)
	cRepo := new(CategoryRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo, cRepo, nil, m)

	pRepo.On("ListAll", mock.Anything).Return(sampleProducts(), nil).Once()
	cRepo.On("ListAll", mock.Anything).Return([]model.Category{}, nil).Once()
	require.NoError(t, uc.Refresh(context.Background()))

	pRepo.On("ListAll", mock.Anything).Return(nil, errors.New("conn refused")).Once()
	cRepo.On("ListAll", mock.Anything).Return([]model.Category{}, nil).Once()

	err := uc.Refresh(context.Background())
	assertHTTPError(t, err, http.StatusInternalServerError, "db error")
	assert.Len(t, uc.Products(), 3)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CatalogFailures.WithLabelValues("fetch_products")))
}

// =====================
// Admin: Product
// =====================

func TestCatalogUsecase_CreateProduct_Validation(t *testing.T) {
	pRepo := new(ProductRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo, new(CategoryRepoMock), nil, nil)
	ctx := context.Background()

	_, err := uc.CreateProduct(ctx, usecase.ProductInput{CategoryID: "c", Price: decimal.NewFromInt(1)})
	assertHTTPError(t, err, http.StatusBadRequest, "name.en required")

	_, err = uc.CreateProduct(ctx, usecase.ProductInput{NameEn: "Rice", Price: decimal.NewFromInt(1)})
	assertHTTPError(t, err, http.StatusBadRequest, "category required")

	_, err = uc.CreateProduct(ctx, usecase.ProductInput{NameEn: "Rice", CategoryID: "c"})
	assertHTTPError(t, err, http.StatusBadRequest, "price must be > 0")

	_, err = uc.CreateProduct(ctx, usecase.ProductInput{NameEn: "Rice", CategoryID: "c", Price: decimal.NewFromInt(1),
		Variants: []model.Variant{{Unit: "", Price: decimal.NewFromInt(5)}}})
	assertHTTPError(t, err, http.StatusBadRequest, "variant unit required")

	_, err = uc.CreateProduct(ctx, usecase.ProductInput{NameEn: "Rice", CategoryID: "c", Price: decimal.NewFromInt(1),
		Variants: []model.Variant{{Unit: "1kg"}}})
	assertHTTPError(t, err, http.StatusBadRequest, "variant price must be > 0")

	// バリデーションで落ちたらDBは触らない
	pRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCatalogUsecase_CreateProduct_Success_RefreshesCache(t *testing.T) {
	pRepo := new(ProductRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo, new(CategoryRepoMock), nil, nil)

	created := model.Product{ID: "new-id", CategoryID: "c", NameEn: "Rice", Price: decimal.NewFromInt(50), InStock: true}
	pRepo.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.ID != "" && p.NameEn == "Rice" && p.CategoryID == "c" && p.Variants != nil && p.InStock
	})).Return(created, nil)
	pRepo.On("ListAll", mock.Anything).Return([]model.Product{created}, nil)

	out, err := uc.CreateProduct(context.Background(), usecase.ProductInput{
		NameEn: "  Rice ", CategoryID: "c", Price: decimal.NewFromInt(50), InStock: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "new-id", out.ID)

	_, ok := uc.ProductByID("new-id")
	assert.True(t, ok)
	pRepo.AssertExpectations(t)
}

func TestCatalogUsecase_CreateProduct_DBError(t *testing.T) {
	pRepo := new(ProductRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo, new(CategoryRepoMock), nil, nil)

	pRepo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	_, err := uc.CreateProduct(context.Background(), usecase.ProductInput{
		NameEn: "Rice", CategoryID: "c", Price: decimal.NewFromInt(50),
	})
	assertHTTPError(t, err, http.StatusInternalServerError, "db error")
	pRepo.AssertNotCalled(t, "ListAll", mock.Anything)
}

func TestCatalogUsecase_UpdateProduct_PassesPatchThrough(t *testing.T) {
	pRepo := new(ProductRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo, new(CategoryRepoMock), nil, nil)

	inStock := false
	patch := repo.ProductPatch{InStock: &inStock}
	pRepo.On("Update", mock.Anything, "p1", patch).Return(nil)
	pRepo.On("ListAll", mock.Anything).Return(sampleProducts(), nil)

	assert.NoError(t, uc.UpdateProduct(context.Background(), "p1", patch))
	pRepo.AssertExpectations(t)
}

func TestCatalogUsecase_UpdateProduct_Validation(t *testing.T) {
	pRepo := new(ProductRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo, new(CategoryRepoMock), nil, nil)
	ctx := context.Background()

	empty := ""
	zero := decimal.Zero
	assertHTTPError(t, uc.UpdateProduct(ctx, "p1", repo.ProductPatch{NameEn: &empty}), http.StatusBadRequest, "name.en required")
	assertHTTPError(t, uc.UpdateProduct(ctx, "p1", repo.ProductPatch{Price: &zero}), http.StatusBadRequest, "price must be > 0")
	assertHTTPError(t, uc.UpdateProduct(ctx, "", repo.ProductPatch{}), http.StatusBadRequest, "invalid product id")

	// 空のpatchは何もしない
	assert.NoError(t, uc.UpdateProduct(ctx, "p1", repo.ProductPatch{}))
	pRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestCatalogUsecase_UpdateProduct_NotFound(t *testing.T) {
	pRepo := new(ProductRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo, new(CategoryRepoMock), nil, nil)

	name := "x"
	pRepo.On("Update", mock.Anything, "missing", mock.Anything).Return(repo.ErrNotFound)

	assertHTTPError(t, uc.UpdateProduct(context.Background(), "missing", repo.ProductPatch{NameEn: &name}),
		http.StatusNotFound, "not found")
}

func TestCatalogUsecase_DeleteProduct(t *testing.T) {
	uc, pRepo, _ := newLoadedCatalog(t)

	pRepo.On("Delete", mock.Anything, "p2").Return(nil)
	remaining := sampleProducts()
	remaining = append(remaining[:1], remaining[2:]...)
	pRepo.On("ListAll", mock.Anything).Return(remaining, nil)

	require.NoError(t, uc.DeleteProduct(context.Background(), "p2"))
	assert.Equal(t, []string{"p1", "p3"}, ids(uc.Products()))
}

func TestCatalogUsecase_DeleteProduct_DBErrorKeepsCache(t *testing.T) {
	uc, pRepo, _ := newLoadedCatalog(t)

	pRepo.On("Delete", mock.Anything, "p2").Return(errors.New("boom"))

	assertHTTPError(t, uc.DeleteProduct(context.Background(), "p2"), http.StatusInternalServerError, "db error")
	assert.Len(t, uc.Products(), 3)
}

// =====================
// Admin: Category
// =====================

func TestCatalogUsecase_CreateCategory(t *testing.T) {
	cRepo := new(CategoryRepoMock)
	uc := usecase.NewCatalogUsecase(new(ProductRepoMock), cRepo, nil, nil)

	_, err := uc.CreateCategory(context.Background(), usecase.CategoryInput{NameTa: "வீட்டு"})
	assertHTTPError(t, err, http.StatusBadRequest, "name.en required")
	cRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	created := model.Category{ID: "c1", NameEn: "Households", Icon: "Home"}
	cRepo.On("Create", mock.Anything, mock.MatchedBy(func(c model.Category) bool {
		return c.ID != "" && c.NameEn == "Households" && c.Icon == "Home"
	})).Return(created, nil)
	cRepo.On("ListAll", mock.Anything).Return([]model.Category{created}, nil)

	out, err := uc.CreateCategory(context.Background(), usecase.CategoryInput{NameEn: "Households", Icon: "Home"})
	require.NoError(t, err)
	assert.Equal(t, "c1", out.ID)
	assert.Len(t, uc.Categories(), 1)
}

func TestCatalogUsecase_DeleteCategory_NotFound(t *testing.T) {
	cRepo := new(CategoryRepoMock)
	uc := usecase.NewCatalogUsecase(new(ProductRepoMock), cRepo, nil, nil)

	cRepo.On("Delete", mock.Anything, "c9").Return(repo.ErrNotFound)
	assertHTTPError(t, uc.DeleteCategory(context.Background(), "c9"), http.StatusNotFound, "not found")
}
