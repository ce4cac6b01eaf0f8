package dashboard

import (
	"html/template"

	"github.com/gomantics/runboard/api/web"
	"github.com/gomantics/runboard/domains/registry"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func Configure(e *echo.Echo, l *zap.Logger, tmpl *template.Template, reg *registry.Service) {
	e.GET("/", web.Wrap(Get(tmpl, reg), l))
}
