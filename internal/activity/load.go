package activity

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/abhisek/conceptsort/internal/logging"
)

// SourceError reports which source failed during a load.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %q: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// LoadAll fetches every source concurrently and returns the activities in
// source order. The load is all-or-nothing: the first failure cancels the
// remaining fetches and no partial result is returned.
func LoadAll(ctx context.Context, sources []Source) ([]Activity, error) {
	log := logging.FromContext(ctx)
	out := make([]Activity, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			start := time.Now()
			a, err := src.Fetch(gctx)
			if err != nil {
				log.Warn().Err(err).Str("source", src.Name()).Msg("activity fetch failed")
				return &SourceError{Source: src.Name(), Err: err}
			}
			log.Debug().
				Str("source", src.Name()).
				Int("concepts", a.ConceptCount()).
				Dur("took", time.Since(start)).
				Msg("activity fetched")
			out[i] = a
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
