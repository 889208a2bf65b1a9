package model

import (
	"time"

	"freshcart/internal/i18n"

	"github.com/shopspring/decimal"
)

// サイズ違い（500g / 1kg など）
type Variant struct {
	Unit  string          `json:"unit"`
	Price decimal.Decimal `json:"price"`
}

type Product struct {
	ID            string          `gorm:"type:varchar(64);primaryKey" json:"id"`
	CategoryID    string          `gorm:"column:category_id;type:varchar(64);not null;index" json:"category"`
	NameEn        string          `gorm:"column:name_en;type:varchar(255);not null" json:"name_en"`
	NameTa        string          `gorm:"column:name_ta;type:varchar(255)" json:"name_ta"`
	DescriptionEn string          `gorm:"column:description_en;type:text" json:"description_en"`
	DescriptionTa string          `gorm:"column:description_ta;type:text" json:"description_ta"`
	Price         decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Unit          string          `gorm:"type:varchar(50)" json:"unit"`
	Image         string          `gorm:"type:text" json:"image"`
	InStock       bool            `gorm:"column:in_stock;not null" json:"in_stock"`
	IsFeatured    bool            `gorm:"column:is_featured;not null;default:false" json:"is_featured"`
	IsNew         bool            `gorm:"column:is_new;not null;default:false" json:"is_new"`
	Variants      []Variant       `gorm:"type:jsonb;serializer:json" json:"variants"`
	CreatedAt     time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (p Product) Name() i18n.Localized {
	return i18n.Localized{En: p.NameEn, Ta: p.NameTa}
}

func (p Product) Description() i18n.Localized {
	return i18n.Localized{En: p.DescriptionEn, Ta: p.DescriptionTa}
}

// サイズ違いがあるか
func (p Product) HasVariants() bool {
	return len(p.Variants) > 0
}

// Clone はVariantsのスライスまで複製する。
func (p Product) Clone() Product {
	c := p
	if p.Variants != nil {
		c.Variants = make([]Variant, len(p.Variants))
		copy(c.Variants, p.Variants)
	}
	return c
}
