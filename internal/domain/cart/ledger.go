package cart

import (
	"freshcart/internal/domain/model"

	"github.com/shopspring/decimal"
)

// カートの明細。Productは追加時点のスナップショット。
type LineItem struct {
	Product  model.Product `json:"product"`
	Quantity int           `json:"quantity"`
}

func (li LineItem) Key() string {
	return li.Product.ID
}

// 単価 × 数量
func (li LineItem) LineTotal() decimal.Decimal {
	return li.Product.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Ledger はセッション内のカート。
// 明細は追加順を保持し、合計は読むたびに明細から計算し直す。
// 並行アクセスの排他は持ち主（session）側で行う。
type Ledger struct {
	items []LineItem
	open  bool
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// AddItem は数量を1以上に丸めて追加する。同じキーがあれば数量を加算する。
// サイズ違いが未解決の商品は先頭のサイズで解決してから入れる。
func (l *Ledger) AddItem(p model.Product, quantity int) LineItem {
	if quantity < 1 {
		quantity = 1
	}
	if p.HasVariants() {
		// 先頭サイズへの解決は失敗しない
		p, _ = Snapshot(p, Base())
	}

	if i := l.indexOf(p.ID); i >= 0 {
		l.items[i].Quantity += quantity
		return l.items[i]
	}

	item := LineItem{Product: p.Clone(), Quantity: quantity}
	l.items = append(l.items, item)
	return item
}

// RemoveItem は無ければ何もしない。
func (l *Ledger) RemoveItem(key string) {
	i := l.indexOf(key)
	if i < 0 {
		return
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
}

// SetQuantity は0以下なら削除、それ以外は数量を置き換える。無ければ何もしない。
func (l *Ledger) SetQuantity(key string, quantity int) {
	if quantity <= 0 {
		l.RemoveItem(key)
		return
	}
	if i := l.indexOf(key); i >= 0 {
		l.items[i].Quantity = quantity
	}
}

// Increment は +1。
func (l *Ledger) Increment(key string) {
	if i := l.indexOf(key); i >= 0 {
		l.items[i].Quantity++
	}
}

// Decrement は -1。ただし1より下げない（削除は RemoveItem / SetQuantity(0)）。
func (l *Ledger) Decrement(key string) {
	if i := l.indexOf(key); i >= 0 && l.items[i].Quantity > 1 {
		l.items[i].Quantity--
	}
}

func (l *Ledger) Clear() {
	l.items = nil
}

// Items は追加順のコピーを返す。
func (l *Ledger) Items() []LineItem {
	out := make([]LineItem, len(l.items))
	for i, it := range l.items {
		out[i] = LineItem{Product: it.Product.Clone(), Quantity: it.Quantity}
	}
	return out
}

// Item はキーで1件引く。
func (l *Ledger) Item(key string) (LineItem, bool) {
	i := l.indexOf(key)
	if i < 0 {
		return LineItem{}, false
	}
	return LineItem{Product: l.items[i].Product.Clone(), Quantity: l.items[i].Quantity}, true
}

func (l *Ledger) Len() int {
	return len(l.items)
}

// Σ(price × quantity)
func (l *Ledger) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range l.items {
		total = total.Add(it.LineTotal())
	}
	return total
}

// Σ(quantity)
func (l *Ledger) TotalItemCount() int {
	n := 0
	for _, it := range l.items {
		n += it.Quantity
	}
	return n
}

// カートパネルの開閉。明細には触らない。
func (l *Ledger) IsOpen() bool {
	return l.open
}

func (l *Ledger) SetOpen(open bool) {
	l.open = open
}

func (l *Ledger) indexOf(key string) int {
	for i, it := range l.items {
		if it.Product.ID == key {
			return i
		}
	}
	return -1
}
