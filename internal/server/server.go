package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"freshcart/internal/handler"
	"freshcart/internal/metrics"
	mw "freshcart/internal/middleware"
	"freshcart/internal/repository"
	"freshcart/internal/session"
	"freshcart/internal/usecase"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Deps はルーティングに必要な部品
type Deps struct {
	Log      *zap.Logger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer

	Sessions      *session.Store
	SessionConfig mw.SessionConfig
	FEURL         string

	Catalog  *usecase.CatalogUsecase
	Cart     *usecase.CartUsecase
	Language *usecase.LanguageUsecase
	Auth     *usecase.AuthUsecase
	Images   *usecase.ImageUsecase
	Admins   repository.AdminUserRepository
}

// New はechoを組み立てる
func New(d Deps) *echo.Echo {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewRequestValidator()

	e.Use(echomw.Recover())
	if d.Metrics != nil {
		e.Use(mw.Metrics(d.Metrics))
	}
	e.Use(mw.RequestLogger(d.Log))
	if d.FEURL != "" {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:     []string{d.FEURL},
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
			AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
			AllowCredentials: true,
		}))
	}

	RegisterRoutes(e, d)
	return e
}

// Start はctxがキャンセルされるまでサーブし、その後graceful shutdownする
func Start(ctx context.Context, e *echo.Echo, addr string, log *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Info("http server shutting down")
	return e.Shutdown(shutdownCtx)
}

func metricsHandler(g prometheus.Gatherer) echo.HandlerFunc {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	return echo.WrapHandler(promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
}
