package handler

import (
	"net/http"

	"freshcart/internal/domain/model"
	"freshcart/internal/usecase"

	"github.com/labstack/echo/v4"
)

type CategoryCreateRequest struct {
	Name  LocalizedRequest `json:"name"`
	Icon  string           `json:"icon"`
	Color string           `json:"color"`
}

type CategoryCreatedResponse struct {
	Message  string         `json:"message"`
	Category model.Category `json:"category"`
}

// /admin/categories
type AdminCategoryHandler struct {
	uc *usecase.CatalogUsecase
}

func NewAdminCategoryHandler(uc *usecase.CatalogUsecase) *AdminCategoryHandler {
	return &AdminCategoryHandler{uc: uc}
}

func (h *AdminCategoryHandler) RegisterRoutes(admin *echo.Group) {
	admin.POST("/categories", h.create)
	admin.DELETE("/categories/:id", h.delete)
}

func (h *AdminCategoryHandler) create(c echo.Context) error {
	var req CategoryCreateRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	cat, err := h.uc.CreateCategory(c.Request().Context(), usecase.CategoryInput{
		NameEn: req.Name.En,
		NameTa: req.Name.Ta,
		Icon:   req.Icon,
		Color:  req.Color,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, CategoryCreatedResponse{Message: "created", Category: cat})
}

func (h *AdminCategoryHandler) delete(c echo.Context) error {
	if err := h.uc.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}
