package middleware

import (
	"net/http"
	"strings"

	"freshcart/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	CtxAdminIDKey      = "admin_id"      // int64
	CtxAdminRoleKey    = "admin_role"    // string
	CtxTokenVersionKey = "token_version" // int

	QueryTokenParam = "token"
)

// JWTを検証する約束（AuthUsecase）
type TokenVerifier interface {
	Verify(raw string) (usecase.AdminClaims, error)
}

// bearerAuth用のJWT検証ミドルウェア。
// queryTokenPaths に挙げたルートだけ ?token= を受け付ける（websocketはヘッダを付けられない）
func AuthJWT(verifier TokenVerifier, queryTokenPaths ...string) echo.MiddlewareFunc {
	allowQuery := make(map[string]bool, len(queryTokenPaths))
	for _, p := range queryTokenPaths {
		allowQuery[p] = true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawToken := bearerToken(c.Request(), allowQuery[c.Path()])
			if rawToken == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			claims, err := verifier.Verify(rawToken)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}
			adminID, err := claims.AdminID()
			if err != nil || claims.TokenVersion < 0 {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//contextへ保存
			c.Set(CtxAdminIDKey, adminID)
			c.Set(CtxAdminRoleKey, claims.Role)
			c.Set(CtxTokenVersionKey, claims.TokenVersion)

			return next(c)
		}
	}
}

// Authorization: Bearer <token>。allowQueryなら?token=も見る
func bearerToken(r *http.Request, allowQuery bool) string {
	authz := r.Header.Get("Authorization")
	if authz != "" {
		parts := strings.SplitN(authz, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return ""
		}
		return strings.TrimSpace(parts[1])
	}
	if !allowQuery || r.Method != http.MethodGet {
		return ""
	}
	return strings.TrimSpace(r.URL.Query().Get(QueryTokenParam))
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}
