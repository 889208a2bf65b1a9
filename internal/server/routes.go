package server

import (
	"net/http"

	"freshcart/internal/handler"
	mw "freshcart/internal/middleware"

	"github.com/labstack/echo/v4"
)

// websocketだけ?token=で認証する
const adminEventsPath = "/admin/events"

func RegisterRoutes(e *echo.Echo, d Deps) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, handler.SuccessResponse{Message: "ok"})
	})
	e.GET("/metrics", metricsHandler(d.Gatherer))

	sess := mw.Session(d.Sessions, d.SessionConfig)

	// ストアフロント
	handler.NewProductHandler(d.Catalog).RegisterRoutes(e)
	handler.NewCartHandler(d.Cart).RegisterRoutes(e, sess)
	handler.NewLanguageHandler(d.Language).RegisterRoutes(e, sess)

	// 管理画面
	admin := e.Group("/admin",
		mw.AuthJWT(d.Auth, adminEventsPath),
		mw.TokenVersionGuard(d.Admins),
		mw.AdminRoleGuard(),
	)
	handler.NewAuthHandler(d.Auth).RegisterRoutes(e, admin)
	handler.NewAdminProductHandler(d.Catalog).RegisterRoutes(admin)
	handler.NewAdminCategoryHandler(d.Catalog).RegisterRoutes(admin)
	handler.NewAdminImageHandler(d.Images).RegisterRoutes(admin)
	handler.NewAdminEventsHandler(d.Auth.Events(), d.FEURL, d.Log).RegisterRoutes(admin)
}
