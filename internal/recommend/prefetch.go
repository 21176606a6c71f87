package recommend

import (
	"context"
	"sync"

	"github.com/Digital-Shane/cinerec/internal/metadata"
	csmap "github.com/mhmtszr/concurrent-swiss-map"
)

// prefetchGenres resolves the genre lists of the eligible similar candidates
// with a bounded worker pool. Failed lookups leave no entry, which the
// caller treats as "skip this candidate". The map is only read after every
// worker has finished, so cascade ordering is unaffected.
func (e *Engine) prefetchGenres(ctx context.Context, candidates []metadata.SimilarCandidate) *csmap.CsMap[int, []string] {
	results := csmap.Create[int, []string]()

	workerCount := min(e.workerCount, len(candidates))
	work := make(chan metadata.SimilarCandidate)
	var wg sync.WaitGroup

	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for cand := range work {
				names, err := e.client.FetchGenres(ctx, cand.ID)
				if err != nil {
					e.log.Debug().Err(err).Int("movie_id", cand.ID).Msg("candidate genre lookup failed")
					continue
				}
				results.Store(cand.ID, names)
			}
		}()
	}

	for _, cand := range candidates {
		if ctx.Err() != nil {
			break
		}
		work <- cand
	}
	close(work)
	wg.Wait()

	return results
}
