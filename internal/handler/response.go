package handler

import (
	"errors"
	"net/http"

	"freshcart/internal/middleware"
	"freshcart/internal/session"
	"freshcart/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation error", Fields: ve.Errors})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// bindAndValidate はJSONを読んでvalidatorを通す。falseならレスポンスは書き込み済み
func bindAndValidate(c echo.Context, req interface{}) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(req); err != nil {
		return false, writeError(c, err)
	}
	return true, nil
}

// middleware.AuthJWT が c.Set("admin_id", int64) した値を取り出す
func getAdminIDFromContext(c echo.Context) (int64, bool) {
	id, ok := c.Get(middleware.CtxAdminIDKey).(int64)
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}

func sessionFrom(c echo.Context) (*session.Session, error) {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		return nil, usecase.NewHTTPError(http.StatusInternalServerError, "session unavailable")
	}
	return s, nil
}
