package usecase

import (
	"errors"
	"net/http"
	"strings"

	"freshcart/internal/checkout"
	"freshcart/internal/domain/cart"
	"freshcart/internal/domain/model"
	"freshcart/internal/i18n"
	"freshcart/internal/metrics"
	"freshcart/internal/session"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// カートに入れる商品を引く先（CatalogUsecaseのキャッシュ）
type ProductLookup interface {
	ProductByID(id string) (model.Product, bool)
}

// CartUsecase は /cart の業務ロジック。状態はセッションの中にある
type CartUsecase struct {
	products ProductLookup
	phone    string
	log      *zap.Logger
	metrics  *metrics.Metrics
}

func NewCartUsecase(products ProductLookup, whatsAppNumber string, log *zap.Logger, m *metrics.Metrics) *CartUsecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &CartUsecase{
		products: products,
		phone:    checkout.NormalizePhone(whatsAppNumber),
		log:      log,
		metrics:  m,
	}
}

type CartItemResponse struct {
	Key       string          `json:"key"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	Image     string          `json:"image"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	Subtotal   decimal.Decimal    `json:"subtotal"`
	TotalItems int                `json:"total_items"`
	Open       bool               `json:"open"`
	Language   i18n.Language      `json:"language"`
}

type AddCartInput struct {
	ProductID    string
	VariantIndex *int
	Quantity     int
}

type CheckoutResponse struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

func (u *CartUsecase) GetCart(s *session.Session) CartResponse {
	var res CartResponse
	s.Do(func(c *cart.Ledger, lang *i18n.State) {
		res = buildCartResponse(c, lang.Current())
	})
	return res
}

// AddToCart は同じキーの行があれば数量を足す
func (u *CartUsecase) AddToCart(s *session.Session, in AddCartInput) (CartResponse, error) {
	snap, err := u.resolve(in.ProductID, in.VariantIndex)
	if err != nil {
		return CartResponse{}, err
	}

	var res CartResponse
	s.Do(func(c *cart.Ledger, lang *i18n.State) {
		li := c.AddItem(snap, in.Quantity)
		u.log.Debug("cart item added",
			zap.String("session", s.ID), zap.String("key", li.Key()), zap.Int("quantity", li.Quantity))
		res = buildCartResponse(c, lang.Current())
	})
	u.count("add")
	return res, nil
}

// 数量を指定値にする。0以下なら行を消す
func (u *CartUsecase) UpdateQuantity(s *session.Session, key string, quantity int) CartResponse {
	return u.mutate(s, "set_quantity", func(c *cart.Ledger) { c.SetQuantity(key, quantity) })
}

func (u *CartUsecase) Increment(s *session.Session, key string) CartResponse {
	return u.mutate(s, "increment", func(c *cart.Ledger) { c.Increment(key) })
}

func (u *CartUsecase) Decrement(s *session.Session, key string) CartResponse {
	return u.mutate(s, "decrement", func(c *cart.Ledger) { c.Decrement(key) })
}

// 無いキーを消してもエラーにしない
func (u *CartUsecase) RemoveItem(s *session.Session, key string) CartResponse {
	return u.mutate(s, "remove", func(c *cart.Ledger) { c.RemoveItem(key) })
}

func (u *CartUsecase) Clear(s *session.Session) CartResponse {
	return u.mutate(s, "clear", func(c *cart.Ledger) { c.Clear() })
}

// カートパネルの開閉（金額には影響しない）
func (u *CartUsecase) SetPanel(s *session.Session, open bool) CartResponse {
	var res CartResponse
	s.Do(func(c *cart.Ledger, lang *i18n.State) {
		c.SetOpen(open)
		res = buildCartResponse(c, lang.Current())
	})
	return res
}

// Checkout はカート全体の注文メッセージとwa.meリンクを作る。カートはそのまま
func (u *CartUsecase) Checkout(s *session.Session) (CheckoutResponse, error) {
	var (
		items []cart.LineItem
		lang  i18n.Language
		dict  *i18n.Dictionary
	)
	s.Do(func(c *cart.Ledger, st *i18n.State) {
		items = c.Items()
		lang = st.Current()
		dict = st.Dictionary()
	})
	if len(items) == 0 {
		return CheckoutResponse{}, NewHTTPError(http.StatusBadRequest, "cart is empty")
	}

	link, err := checkout.BuildCheckoutLink(u.phone, checkout.BuildOrderMessage(items, lang, dict))
	if err != nil {
		u.log.Error("checkout link failed", zap.Error(err))
		return CheckoutResponse{}, NewHTTPError(http.StatusInternalServerError, "checkout unavailable")
	}

	u.log.Info("checkout link built",
		zap.String("session", s.ID), zap.Int("lines", len(items)), zap.String("lang", string(lang)))
	if u.metrics != nil {
		u.metrics.CheckoutLinks.WithLabelValues("cart", string(lang)).Inc()
	}
	return CheckoutResponse{URL: link, Message: checkout.OrderText(items, lang, dict)}, nil
}

// BuyNow は1商品だけの注文メッセージを作る。カートには入れない
func (u *CartUsecase) BuyNow(s *session.Session, in AddCartInput) (CheckoutResponse, error) {
	snap, err := u.resolve(in.ProductID, in.VariantIndex)
	if err != nil {
		return CheckoutResponse{}, err
	}
	qty := in.Quantity
	if qty < 1 {
		qty = 1
	}

	var (
		lang i18n.Language
		dict *i18n.Dictionary
	)
	s.Do(func(_ *cart.Ledger, st *i18n.State) {
		lang = st.Current()
		dict = st.Dictionary()
	})

	item := cart.LineItem{Product: snap, Quantity: qty}
	link, err := checkout.BuildCheckoutLink(u.phone, checkout.BuildSingleItemMessage(item, lang, dict))
	if err != nil {
		u.log.Error("buy-now link failed", zap.Error(err))
		return CheckoutResponse{}, NewHTTPError(http.StatusInternalServerError, "checkout unavailable")
	}

	if u.metrics != nil {
		u.metrics.CheckoutLinks.WithLabelValues("buy_now", string(lang)).Inc()
	}
	return CheckoutResponse{URL: link, Message: checkout.SingleItemText(item, lang, dict)}, nil
}

// 商品を引いて、在庫とサイズを確認してスナップショットを作る
func (u *CartUsecase) resolve(productID string, variantIndex *int) (model.Product, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	p, ok := u.products.ProductByID(productID)
	if !ok {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if !p.InStock {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "out of stock")
	}

	snap, err := cart.Snapshot(p, cart.OfferingFor(variantIndex))
	if errors.Is(err, cart.ErrVariantNotFound) {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid variant")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return snap, nil
}

func (u *CartUsecase) mutate(s *session.Session, op string, fn func(c *cart.Ledger)) CartResponse {
	var res CartResponse
	s.Do(func(c *cart.Ledger, lang *i18n.State) {
		fn(c)
		res = buildCartResponse(c, lang.Current())
	})
	u.count(op)
	return res
}

func (u *CartUsecase) count(op string) {
	if u.metrics != nil {
		u.metrics.CartMutations.WithLabelValues(op).Inc()
	}
}

func buildCartResponse(c *cart.Ledger, lang i18n.Language) CartResponse {
	items := c.Items()
	res := CartResponse{
		Items:      make([]CartItemResponse, 0, len(items)),
		Subtotal:   c.Subtotal(),
		TotalItems: c.TotalItemCount(),
		Open:       c.IsOpen(),
		Language:   lang,
	}
	for _, it := range items {
		res.Items = append(res.Items, CartItemResponse{
			Key:       it.Key(),
			Name:      it.Product.Name().In(lang),
			Unit:      it.Product.Unit,
			Image:     it.Product.Image,
			Price:     it.Product.Price,
			Quantity:  it.Quantity,
			LineTotal: it.LineTotal(),
		})
	}
	return res
}
