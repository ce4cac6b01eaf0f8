package health

import (
	"github.com/gomantics/runboard/api/web"
	"github.com/gomantics/runboard/domains/logstore"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func Configure(e *echo.Echo, l *zap.Logger, store *logstore.Store) {
	e.GET("/health", web.Wrap(Get(store), l))
}
