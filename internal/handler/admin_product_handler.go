package handler

import (
	"net/http"

	"freshcart/internal/domain/model"
	"freshcart/internal/repository"
	"freshcart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type LocalizedRequest struct {
	En string `json:"en" validate:"required"`
	Ta string `json:"ta"`
}

type OptionalLocalizedRequest struct {
	En string `json:"en"`
	Ta string `json:"ta"`
}

type VariantRequest struct {
	Unit  string          `json:"unit" validate:"required"`
	Price decimal.Decimal `json:"price"`
}

// 商品作成。name.en / category / price は必須
type ProductCreateRequest struct {
	Category    string                   `json:"category" validate:"required"`
	Name        LocalizedRequest         `json:"name"`
	Description OptionalLocalizedRequest `json:"description"`
	Price       decimal.Decimal          `json:"price"`
	Unit        string                   `json:"unit"`
	Image       string                   `json:"image"`
	InStock     *bool                    `json:"in_stock"`
	Featured    bool                     `json:"featured"`
	IsNew       bool                     `json:"is_new"`
	Variants    []VariantRequest         `json:"variants" validate:"dive"`
}

type LocalizedPatchRequest struct {
	En *string `json:"en"`
	Ta *string `json:"ta"`
}

// 商品の部分更新。送られてきたフィールドだけ変える
type ProductUpdateRequest struct {
	Category    *string                `json:"category"`
	Name        *LocalizedPatchRequest `json:"name"`
	Description *LocalizedPatchRequest `json:"description"`
	Price       *decimal.Decimal       `json:"price"`
	Unit        *string                `json:"unit"`
	Image       *string                `json:"image"`
	InStock     *bool                  `json:"in_stock"`
	Featured    *bool                  `json:"featured"`
	IsNew       *bool                  `json:"is_new"`
	Variants    *[]VariantRequest      `json:"variants" validate:"omitempty,dive"`
}

type ProductCreatedResponse struct {
	Message string        `json:"message"`
	Product model.Product `json:"product"`
}

// /admin/products
type AdminProductHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewAdminProductHandler(uc *usecase.CatalogUsecase) *AdminProductHandler {
	return &AdminProductHandler{uc: uc}
}

func (h *AdminProductHandler) RegisterRoutes(admin *echo.Group) {
	admin.POST("/products", h.createProduct)
	admin.PUT("/products/:id", h.updateProduct)
	admin.DELETE("/products/:id", h.deleteProduct)
}

func (h *AdminProductHandler) createProduct(c echo.Context) error {
	var req ProductCreateRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	// 在庫は省略時あり
	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	p, err := h.uc.CreateProduct(c.Request().Context(), usecase.ProductInput{
		CategoryID:    req.Category,
		NameEn:        req.Name.En,
		NameTa:        req.Name.Ta,
		DescriptionEn: req.Description.En,
		DescriptionTa: req.Description.Ta,
		Price:         req.Price,
		Unit:          req.Unit,
		Image:         req.Image,
		InStock:       inStock,
		IsFeatured:    req.Featured,
		IsNew:         req.IsNew,
		Variants:      toVariants(req.Variants),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, ProductCreatedResponse{Message: "created", Product: p})
}

func (h *AdminProductHandler) updateProduct(c echo.Context) error {
	var req ProductUpdateRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.uc.UpdateProduct(c.Request().Context(), c.Param("id"), req.toPatch()); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "updated"})
}

func (h *AdminProductHandler) deleteProduct(c echo.Context) error {
	if err := h.uc.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}

func (r ProductUpdateRequest) toPatch() repository.ProductPatch {
	patch := repository.ProductPatch{
		CategoryID: r.Category,
		Price:      r.Price,
		Unit:       r.Unit,
		Image:      r.Image,
		InStock:    r.InStock,
		IsFeatured: r.Featured,
		IsNew:      r.IsNew,
	}
	if r.Name != nil {
		patch.NameEn = r.Name.En
		patch.NameTa = r.Name.Ta
	}
	if r.Description != nil {
		patch.DescriptionEn = r.Description.En
		patch.DescriptionTa = r.Description.Ta
	}
	if r.Variants != nil {
		vs := toVariants(*r.Variants)
		patch.Variants = &vs
	}
	return patch
}

func toVariants(in []VariantRequest) []model.Variant {
	if in == nil {
		return nil
	}
	out := make([]model.Variant, 0, len(in))
	for _, v := range in {
		out = append(out, model.Variant{Unit: v.Unit, Price: v.Price})
	}
	return out
}
