package middleware

import (
	"net/http"
	"time"

	"freshcart/internal/session"

	"github.com/labstack/echo/v4"
)

const (
	SessionCookieName = "freshcart_sid"
	CtxSessionKey     = "session" // *session.Session
)

type SessionConfig struct {
	Secure bool
	MaxAge time.Duration
}

// Session はCookieのIDでセッションを引き、無ければ作ってCookieを返す
func Session(store *session.Store, cfg SessionConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var id string
			if ck, err := c.Cookie(SessionCookieName); err == nil {
				id = ck.Value
			}

			s, created := store.GetOrCreate(id)
			// MaxAgeがあるときはアクセスのたびに延ばす（サーバー側のidle TTLと揃える）
			if created || cfg.MaxAge > 0 {
				ck := &http.Cookie{
					Name:     SessionCookieName,
					Value:    s.ID,
					Path:     "/",
					HttpOnly: true,
					Secure:   cfg.Secure,
					SameSite: http.SameSiteLaxMode,
				}
				if cfg.MaxAge > 0 {
					ck.MaxAge = int(cfg.MaxAge.Seconds())
				}
				c.SetCookie(ck)
			}

			c.Set(CtxSessionKey, s)
			return next(c)
		}
	}
}

// SessionFrom は Session ミドルウェアが入れたセッション
func SessionFrom(c echo.Context) (*session.Session, bool) {
	s, ok := c.Get(CtxSessionKey).(*session.Session)
	return s, ok && s != nil
}
