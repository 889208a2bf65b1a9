package repository

import (
	"context"
	"errors"

	"freshcart/internal/domain/model"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("not found")

// 部分更新。nilのフィールドは変更しない。
type ProductPatch struct {
	CategoryID    *string
	NameEn        *string
	NameTa        *string
	DescriptionEn *string
	DescriptionTa *string
	Price         *decimal.Decimal
	Unit          *string
	Image         *string
	InStock       *bool
	IsFeatured    *bool
	IsNew         *bool
	Variants      *[]model.Variant
}

func (p ProductPatch) IsEmpty() bool {
	return p.CategoryID == nil && p.NameEn == nil && p.NameTa == nil &&
		p.DescriptionEn == nil && p.DescriptionTa == nil && p.Price == nil &&
		p.Unit == nil && p.Image == nil && p.InStock == nil &&
		p.IsFeatured == nil && p.IsNew == nil && p.Variants == nil
}

// 商品テーブルの読み書きだけを約束。
type ProductRepository interface {
	ListAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, id string, patch ProductPatch) error
	Delete(ctx context.Context, id string) error
}
