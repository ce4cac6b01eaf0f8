package stats

import (
	"github.com/gomantics/runboard/api/web"
	"github.com/gomantics/runboard/domains/stats"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func Configure(e *echo.Echo, l *zap.Logger, svc *stats.Service) {
	e.GET("/api/stats", web.Wrap(Get(svc), l))
}
