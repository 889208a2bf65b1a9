package handler

import (
	"net/http"

	"freshcart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 表示言語（セッションごと）
type LanguageHandler struct {
	uc *usecase.LanguageUsecase
}

func NewLanguageHandler(uc *usecase.LanguageUsecase) *LanguageHandler {
	return &LanguageHandler{uc: uc}
}

type SetLanguageRequest struct {
	Language string `json:"language" validate:"required"`
}

func (h *LanguageHandler) RegisterRoutes(e *echo.Echo, sess echo.MiddlewareFunc) {
	e.GET("/language", h.get, sess)
	e.PUT("/language", h.set, sess)
	e.POST("/language/toggle", h.toggle, sess)
	e.GET("/translations", h.translations, sess)
}

func (h *LanguageHandler) get(c echo.Context) error {
	s, err := sessionFrom(c)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, h.uc.Get(s))
}

func (h *LanguageHandler) set(c echo.Context) error {
	s, err := sessionFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	var req SetLanguageRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	out, err := h.uc.Set(s, req.Language)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LanguageHandler) toggle(c echo.Context) error {
	s, err := sessionFrom(c)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, h.uc.Toggle(s))
}

// ?key= で1件だけ
func (h *LanguageHandler) translations(c echo.Context) error {
	s, err := sessionFrom(c)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, h.uc.Translations(s, c.QueryParam("key")))
}
