package handler

import (
	"net/http"
	"net/url"

	"freshcart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cart と「今すぐ購入」。カートはセッションCookieに紐づく
type CartHandler struct {
	uc *usecase.CartUsecase
}

func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type AddCartRequest struct {
	ProductID    string `json:"product_id" validate:"required"`
	VariantIndex *int   `json:"variant_index" validate:"omitempty,gte=0"`
	Quantity     int    `json:"quantity"`
}

type BuyNowRequest struct {
	VariantIndex *int `json:"variant_index" validate:"omitempty,gte=0"`
	Quantity     int  `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

type CartPanelRequest struct {
	Open *bool `json:"open" validate:"required"`
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo, sess echo.MiddlewareFunc) {
	g := e.Group("/cart", sess)
	g.GET("", h.get)
	g.DELETE("", h.clear)
	g.POST("/items", h.add)
	g.PATCH("/items/:key", h.update)
	g.POST("/items/:key/increment", h.increment)
	g.POST("/items/:key/decrement", h.decrement)
	g.DELETE("/items/:key", h.remove)
	g.PUT("/panel", h.panel)
	g.POST("/checkout", h.checkout)

	e.POST("/products/:id/buy-now", h.buyNow, sess)
}

func (h *CartHandler) get(c echo.Context) error {
	s, err := sessionFrom(c)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, h.uc.GetCart(s))
}

func (h *CartHandler) add(c echo.Context) error {
	s, err := sessionFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	var req AddCartRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	out, err := h.uc.AddToCart(s, usecase.AddCartInput{
		ProductID:    req.ProductID,
		VariantIndex: req.VariantIndex,
		Quantity:     req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) update(c echo.Context) error {
	s, err := sessionFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	var req UpdateCartItemRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	return c.JSON(http.StatusOK, h.uc.UpdateQuantity(s, cartKey(c), *req.Quantity))
}

func (h *CartHandler) increment(c echo.Context) error {
	s, err := sessionFrom(c)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, h.uc.Increment(s, cartKey(c)))
}

func (h *CartHandler) decrement(c echo.Context) error {
	s, err := sessionFrom(c)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, h.uc.Decrement(s, cartKey(c)))
}

func (h *CartHandler) remove(c echo.Context) error {
	s, err := sessionFrom(c)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, h.uc.RemoveItem(s, cartKey(c)))
}

func (h *CartHandler) clear(c echo.Context) error {
	s, err := sessionFrom(c)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, h.uc.Clear(s))
}

func (h *CartHandler) panel(c echo.Context) error {
	s, err := sessionFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	var req CartPanelRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	return c.JSON(http.StatusOK, h.uc.SetPanel(s, *req.Open))
}

func (h *CartHandler) checkout(c echo.Context) error {
	s, err := sessionFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.Checkout(s)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) buyNow(c echo.Context) error {
	s, err := sessionFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	var req BuyNowRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	out, err := h.uc.BuyNow(s, usecase.AddCartInput{
		ProductID:    c.Param("id"),
		VariantIndex: req.VariantIndex,
		Quantity:     req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// 行キーはサイズ名を含む（"1/2kg" など）ので、%2F で来たものを戻す
func cartKey(c echo.Context) string {
	raw := c.Param("key")
	if key, err := url.PathUnescape(raw); err == nil {
		return key
	}
	return raw
}
