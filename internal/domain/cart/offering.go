package cart

import (
	"errors"
	"fmt"

	"freshcart/internal/domain/model"

	"github.com/shopspring/decimal"
)

var ErrVariantNotFound = errors.New("variant not found")

type offeringKind int

const (
	offeringBase offeringKind = iota
	offeringSelected
)

// Offering は「どの価格で買うか」。
// Base() = 商品の基本単位/価格、Selected(i) = i番目のサイズ違い。
type Offering struct {
	kind  offeringKind
	index int
}

func Base() Offering {
	return Offering{kind: offeringBase}
}

func Selected(index int) Offering {
	return Offering{kind: offeringSelected, index: index}
}

// OfferingFor はリクエストの variant_index（nil可）から作る。
func OfferingFor(variantIndex *int) Offering {
	if variantIndex == nil {
		return Base()
	}
	return Selected(*variantIndex)
}

// 解決済みの (キー, 単位, 価格)
type Resolved struct {
	Key   string
	Unit  string
	Price decimal.Decimal
}

// Resolve はカートに入れる前に1つの (キー, 単位, 価格) に確定させる。
// サイズ違いがある商品は必ずどれかのサイズに解決され、Base() は先頭のサイズになる。
func (o Offering) Resolve(p model.Product) (Resolved, error) {
	if !p.HasVariants() {
		if o.kind == offeringSelected && o.index != 0 {
			return Resolved{}, fmt.Errorf("product %s index %d: %w", p.ID, o.index, ErrVariantNotFound)
		}
		return Resolved{Key: p.ID, Unit: p.Unit, Price: p.Price}, nil
	}

	idx := 0
	if o.kind == offeringSelected {
		idx = o.index
	}
	if idx < 0 || idx >= len(p.Variants) {
		return Resolved{}, fmt.Errorf("product %s index %d: %w", p.ID, idx, ErrVariantNotFound)
	}

	v := p.Variants[idx]
	return Resolved{
		Key:   VariantKey(p.ID, v.Unit),
		Unit:  v.Unit,
		Price: v.Price,
	}, nil
}

// "<productId>-<variantUnit>"
func VariantKey(productID, unit string) string {
	return productID + "-" + unit
}

// Snapshot は解決済みの id/unit/price を持つ商品のコピーを作る。
// スナップショットはVariantsを持たない（解決済みの印）。
func Snapshot(p model.Product, o Offering) (model.Product, error) {
	r, err := o.Resolve(p)
	if err != nil {
		return model.Product{}, err
	}

	s := p.Clone()
	s.ID = r.Key
	s.Unit = r.Unit
	s.Price = r.Price
	s.Variants = nil
	return s, nil
}
