package registry

import (
	"context"
	"encoding/json"
	"os"

	"go.uber.org/zap"
)

// Service resolves the set of known repositories. The descriptor is
// re-read on every call; nothing is cached between requests.
type Service struct {
	l    *zap.Logger
	path string
}

// New creates a registry reading the given descriptor file.
func New(l *zap.Logger, path string) *Service {
	return &Service{l: l, path: path}
}

// List returns the repositories in descriptor order. A missing or
// malformed descriptor yields an empty list: the dashboard degrades to
// "no repositories" instead of failing the request. Names are returned
// verbatim; confinement of names used as path segments is the log
// store's job.
func (s *Service) List(ctx context.Context) []Repository {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.l.Debug("repos descriptor unreadable",
			zap.String("path", s.path),
			zap.Error(err),
		)
		return nil
	}

	var repos []Repository
	if err := json.Unmarshal(data, &repos); err != nil {
		s.l.Warn("repos descriptor malformed",
			zap.String("path", s.path),
			zap.Error(err),
		)
		return nil
	}

	return repos
}
