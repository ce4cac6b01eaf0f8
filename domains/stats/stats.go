package stats

import (
	"context"

	"github.com/gomantics/runboard/domains/logstore"
	"github.com/gomantics/runboard/domains/registry"
)

// Stats is the global rollup across every known repository at one
// point in time. It is recomputed from the filesystem on every call
// and never persisted.
type Stats struct {
	TotalRepos     int
	TotalLogs      int
	SuccessfulRuns int
	FailedRuns     int
}

// Service computes the rollup from the registry and the log store.
type Service struct {
	registry *registry.Service
	store    *logstore.Store
}

// New creates the aggregator.
func New(reg *registry.Service, store *logstore.Store) *Service {
	return &Service{registry: reg, store: store}
}

// Compute walks every repository's logs and tallies outcomes.
// TotalRepos counts every repository in the descriptor, with or
// without logs. A log that cannot be read counts as a failed run
// rather than disappearing from the totals.
func (s *Service) Compute(ctx context.Context) Stats {
	repos := s.registry.List(ctx)

	out := Stats{TotalRepos: len(repos)}
	for _, repo := range repos {
		records := s.store.Records(ctx, repo.Name)
		out.TotalLogs += len(records)
		for _, rec := range records {
			if rec.Status.IsFailure() {
				out.FailedRuns++
			} else {
				out.SuccessfulRuns++
			}
		}
	}

	return out
}
