package repository

import (
	"context"
	"errors"
	"time"

	"freshcart/internal/domain/model"
	repo "freshcart/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 全件（作成順）
func (r *ProductGormRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id string) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 商品の作成
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 指定されたカラムだけ更新
func (r *ProductGormRepository) Update(ctx context.Context, id string, patch repo.ProductPatch) error {
	p, cols := applyPatch(patch)
	if len(cols) == 0 {
		return nil
	}
	p.UpdatedAt = time.Now()
	cols = append(cols, "updated_at")

	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Select(cols).Updates(&p)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 商品削除
func (r *ProductGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// patchをProductとカラム名の一覧に変換する
func applyPatch(patch repo.ProductPatch) (model.Product, []string) {
	var p model.Product
	var cols []string

	if patch.CategoryID != nil {
		p.CategoryID = *patch.CategoryID
		cols = append(cols, "category_id")
	}
	if patch.NameEn != nil {
		p.NameEn = *patch.NameEn
		cols = append(cols, "name_en")
	}
	if patch.NameTa != nil {
		p.NameTa = *patch.NameTa
		cols = append(cols, "name_ta")
	}
	if patch.DescriptionEn != nil {
		p.DescriptionEn = *patch.DescriptionEn
		cols = append(cols, "description_en")
	}
	if patch.DescriptionTa != nil {
		p.DescriptionTa = *patch.DescriptionTa
		cols = append(cols, "description_ta")
	}
	if patch.Price != nil {
		p.Price = *patch.Price
		cols = append(cols, "price")
	}
	if patch.Unit != nil {
		p.Unit = *patch.Unit
		cols = append(cols, "unit")
	}
	if patch.Image != nil {
		p.Image = *patch.Image
		cols = append(cols, "image")
	}
	if patch.InStock != nil {
		p.InStock = *patch.InStock
		cols = append(cols, "in_stock")
	}
	if patch.IsFeatured != nil {
		p.IsFeatured = *patch.IsFeatured
		cols = append(cols, "is_featured")
	}
	if patch.IsNew != nil {
		p.IsNew = *patch.IsNew
		cols = append(cols, "is_new")
	}
	if patch.Variants != nil {
		p.Variants = *patch.Variants
		cols = append(cols, "variants")
	}
	return p, cols
}
