package handler

import (
	"net/http"

	"freshcart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /admin/images（multipartのfileフィールド）
type AdminImageHandler struct {
	uc *usecase.ImageUsecase
}

func NewAdminImageHandler(uc *usecase.ImageUsecase) *AdminImageHandler {
	return &AdminImageHandler{uc: uc}
}

func (h *AdminImageHandler) RegisterRoutes(admin *echo.Group) {
	admin.POST("/images", h.upload)
}

func (h *AdminImageHandler) upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file required"})
	}

	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file required"})
	}
	defer f.Close()

	out, err := h.uc.Upload(c.Request().Context(), usecase.UploadImageInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}
