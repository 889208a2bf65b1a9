package handler

import (
	"net/http"

	"freshcart/internal/domain/model"
	"freshcart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 商品とカテゴリの公開API（キャッシュから返す）
type ProductHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewProductHandler(uc *usecase.CatalogUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

type ProductListResponse struct {
	Items []model.Product `json:"items"`
	Total int             `json:"total"`
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/products", h.list)
	e.GET("/products/featured", h.featured)
	e.GET("/products/new", h.newArrivals)
	e.GET("/products/:id", h.detail)
	e.GET("/categories", h.categories)
}

// ?q= があれば検索、なければ ?category=（"all"か空で全件）
func (h *ProductHandler) list(c echo.Context) error {
	q := c.QueryParam("q")
	if len(q) > 100 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "q too long"})
	}
	return c.JSON(http.StatusOK, listResponse(h.uc.Display(q, c.QueryParam("category"))))
}

func (h *ProductHandler) featured(c echo.Context) error {
	return c.JSON(http.StatusOK, listResponse(h.uc.Featured()))
}

func (h *ProductHandler) newArrivals(c echo.Context) error {
	return c.JSON(http.StatusOK, listResponse(h.uc.NewArrivals()))
}

func (h *ProductHandler) detail(c echo.Context) error {
	p, err := h.uc.FindProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) categories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Categories())
}

func listResponse(items []model.Product) ProductListResponse {
	return ProductListResponse{Items: items, Total: len(items)}
}
