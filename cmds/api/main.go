package main

import (
	"github.com/gomantics/runboard/api"
	"github.com/gomantics/runboard/config"
	"github.com/gomantics/runboard/domains/logstore"
	"github.com/gomantics/runboard/domains/registry"
	"github.com/gomantics/runboard/domains/stats"
	"github.com/gomantics/runboard/pkg/logger"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			logger.New,
			newRegistry,
			newLogStore,
			stats.New,
		),
		fx.Decorate(func(l *zap.Logger) *zap.Logger {
			return l.With(zap.String("service", "runboard"))
		}),
		fx.Invoke(
			api.Run,
		),
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{
				Logger: l,
			}
		}),
	).Run()
}

// Constructors close over the loaded config so each component gets its
// paths explicitly instead of reading ambient state.

func newRegistry(l *zap.Logger, cfg config.Config) *registry.Service {
	return registry.New(l, cfg.ReposFile)
}

func newLogStore(l *zap.Logger, cfg config.Config) *logstore.Store {
	return logstore.New(l, cfg.LogRoot)
}
