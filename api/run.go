package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gomantics/runboard/api/dashboard"
	"github.com/gomantics/runboard/api/health"
	"github.com/gomantics/runboard/api/logs"
	"github.com/gomantics/runboard/api/stats"
	"github.com/gomantics/runboard/config"
	"github.com/gomantics/runboard/domains/logstore"
	"github.com/gomantics/runboard/domains/registry"
	domstats "github.com/gomantics/runboard/domains/stats"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Run(
	lc fx.Lifecycle,
	l *zap.Logger,
	cfg config.Config,
	reg *registry.Service,
	store *logstore.Store,
	statsSvc *domstats.Service,
) error {
	e, err := newEcho(l, cfg, reg, store, statsSvc)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		Handler:           e,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1 MB
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				l.Info("starting dashboard server", zap.String("addr", server.Addr))
				if err := e.StartServer(server); err != nil && !errors.Is(err, http.ErrServerClosed) {
					l.Error("error starting echo server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			l.Info("shutdown signal received")
			return e.Shutdown(ctx)
		},
	})

	return nil
}

// newEcho builds the full handler chain. Template loading happens here
// so that a broken dashboard template aborts startup instead of
// surfacing on the first page view.
func newEcho(
	l *zap.Logger,
	cfg config.Config,
	reg *registry.Service,
	store *logstore.Store,
	statsSvc *domstats.Service,
) (*echo.Echo, error) {
	e := echo.New()

	if !cfg.IsDev() {
		e.HideBanner = true
		e.HidePort = true
	}

	configureMiddleware(e, l, cfg)

	tmpl, err := dashboard.LoadTemplate(cfg.TemplateDir)
	if err != nil {
		return nil, err
	}

	dashboard.Configure(e, l, tmpl, reg)
	logs.Configure(e, l, store)
	stats.Configure(e, l, statsSvc)
	health.Configure(e, l, store)

	return e, nil
}

func configureMiddleware(e *echo.Echo, l *zap.Logger, cfg config.Config) {
	// Request ID must come first
	e.Use(middleware.RequestID())

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 1 << 12, // 4 KB
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			l.Error("recovered from panic",
				zap.Error(err),
				zap.ByteString("stack", stack),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)
			return nil
		},
	}))

	// Request logging
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("remote_ip", v.RemoteIP),
				zap.String("request_id", v.RequestID),
			)
			return nil
		},
		LogLatency:   true,
		LogRemoteIP:  true,
		LogMethod:    true,
		LogURI:       true,
		LogRequestID: true,
		LogStatus:    true,
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CorsOrigins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodOptions,
		},
		AllowHeaders:  []string{"Content-Type", "Origin", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        int((24 * time.Hour).Seconds()),
	}))

	if cfg.IsDev() {
		e.IPExtractor = echo.ExtractIPDirect()
	} else {
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	}
}
