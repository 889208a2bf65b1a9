package handler

import (
	"net/http"
	"time"

	"freshcart/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = (wsPongWait * 9) / 10
)

// AdminEventsHandler は管理画面にログアウト通知を流すwebsocket
type AdminEventsHandler struct {
	events   *usecase.SignOutEvents
	upgrader websocket.Upgrader
	log      *zap.Logger
}

func NewAdminEventsHandler(events *usecase.SignOutEvents, allowedOrigin string, log *zap.Logger) *AdminEventsHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &AdminEventsHandler{
		events: events,
		log:    log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:   1024,
			WriteBufferSize:  1024,
			HandshakeTimeout: 10 * time.Second,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowedOrigin == "" || origin == allowedOrigin
			},
		},
	}
}

func (h *AdminEventsHandler) RegisterRoutes(admin *echo.Group) {
	admin.GET("/events", h.stream)
}

func (h *AdminEventsHandler) stream(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgradeがエラーレスポンスを書いている
		return nil
	}
	defer conn.Close()

	events, cancel := h.events.Subscribe()
	defer cancel()

	adminID, _ := getAdminIDFromContext(c)
	h.log.Info("admin events connected", zap.Int64("admin_id", adminID))

	// 読み取りはpong処理と切断検知だけ
	closed := make(chan struct{})
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(ev); err != nil {
				return nil
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return nil
			}
		case <-closed:
			h.log.Info("admin events disconnected", zap.Int64("admin_id", adminID))
			return nil
		case <-c.Request().Context().Done():
			return nil
		}
	}
}
