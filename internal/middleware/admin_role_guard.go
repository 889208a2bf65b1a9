package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// トークンのroleクレーム
const RoleAdmin = "ADMIN"

// AdminRoleGuard は管理画面用。AuthJWTの後ろに置く
func AdminRoleGuard() echo.MiddlewareFunc {
	return RequireRole(RoleAdmin)
}

// RequireRole はトークンのロールが一致しなければ403。ロール無しは401
func RequireRole(want string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			switch role, _ := c.Get(CtxAdminRoleKey).(string); role {
			case want:
				return next(c)
			case "":
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			default:
				return c.JSON(http.StatusForbidden, errorJSON("forbidden role"))
			}
		}
	}
}
