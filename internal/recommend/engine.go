// Package recommend implements the three-stage recommendation cascade:
// same-collection sequels, genre/recency-filtered similar titles, and a
// genre popularity fallback, stopping once five recommendations exist.
package recommend

import (
	"context"
	"slices"
	"strings"

	"github.com/Digital-Shane/cinerec/internal/metadata"
	"github.com/Digital-Shane/cinerec/internal/poster"
	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	maxRecommendations = 5

	// defaultOriginalYear anchors the recency window when the resolved
	// movie has no parseable release year.
	defaultOriginalYear = 2000

	defaultWorkerCount = 10
)

// notFoundTitle labels the sentinel entry returned on resolution failure.
const notFoundTitle = "Movie not found"

// PosterResolver maps a title to a poster URL, falling back to placeholder
// URLs instead of failing.
type PosterResolver interface {
	Resolve(ctx context.Context, title string) string
}

// Engine drives the cascade against a metadata client and poster resolver.
type Engine struct {
	client      metadata.Client
	posters     PosterResolver
	log         zerolog.Logger
	workerCount int
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkerCount bounds the worker pool used to prefetch candidate genres
// in the similar-titles stage.
func WithWorkerCount(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workerCount = n
		}
	}
}

// New creates an Engine.
func New(client metadata.Client, posters PosterResolver, log zerolog.Logger, opts ...Option) *Engine {
	e := &Engine{
		client:      client,
		posters:     posters,
		log:         log,
		workerCount: defaultWorkerCount,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Recommend resolves the query and runs the cascade. Lookup failures inside
// the cascade contribute nothing and never abort the request; only a failed
// initial resolution produces a not-found Result.
func (e *Engine) Recommend(ctx context.Context, query string) Result {
	id, err := e.client.SearchByTitle(ctx, query)
	var movie *metadata.MovieInfo
	if err == nil {
		movie, err = e.client.FetchDetails(ctx, id)
	}
	if err != nil {
		e.log.Debug().Err(err).Str("query", query).Msg("title resolution failed")
		return Result{
			Input: cases.Title(language.English).String(query),
			Recommendations: []Recommendation{{
				Title:         notFoundTitle,
				PosterURL:     poster.NotFoundURL,
				Justification: JustificationNone,
			}},
		}
	}

	st := newCascadeState(movie)
	e.collectionStage(ctx, st)
	e.similarStage(ctx, st)
	e.fallbackStage(ctx, st)

	return Result{Found: true, Movie: movie, Recommendations: st.recommendations}
}

// cascadeState is the accumulator threaded through the stages.
type cascadeState struct {
	movie           *metadata.MovieInfo
	recommendations []Recommendation
	used            map[string]struct{}
	genres          map[string]struct{}
	year            int
}

func newCascadeState(movie *metadata.MovieInfo) *cascadeState {
	st := &cascadeState{
		movie:  movie,
		used:   make(map[string]struct{}),
		genres: make(map[string]struct{}, len(movie.Genres)),
		year:   movie.Year,
	}
	for _, g := range movie.Genres {
		st.genres[g] = struct{}{}
	}
	if st.year == 0 {
		st.year = defaultOriginalYear
	}
	return st
}

func (s *cascadeState) full() bool {
	return len(s.recommendations) >= maxRecommendations
}

// admits reports whether a title could still be appended: the cap leaves
// room, the title is new, and it does not name the resolved movie itself.
func (s *cascadeState) admits(title string) bool {
	if s.full() || strings.EqualFold(title, s.movie.Title) {
		return false
	}
	_, seen := s.used[title]
	return !seen
}

func (s *cascadeState) add(title, posterURL string, why Justification) {
	if !s.admits(title) {
		return
	}
	s.recommendations = append(s.recommendations, Recommendation{
		Title:         title,
		PosterURL:     posterURL,
		Justification: why,
	})
	s.used[title] = struct{}{}
}

// collectionStage appends the resolved movie's collection members in
// upstream order, skipping the movie itself.
func (e *Engine) collectionStage(ctx context.Context, st *cascadeState) {
	if st.full() {
		return
	}
	titles, _, err := e.client.FetchCollection(ctx, st.movie.ID)
	if err != nil {
		e.log.Debug().Err(err).Int("movie_id", st.movie.ID).Msg("collection lookup failed")
		return
	}
	for _, title := range titles {
		if st.full() {
			return
		}
		if !st.admits(title) {
			continue
		}
		st.add(title, e.posters.Resolve(ctx, title), JustificationSameCollection)
	}
}

// similarStage walks the similar candidates most-recent first, admitting
// those within the two-year recency window that share a genre with the
// resolved movie. Per-candidate genre lookups are prefetched by a bounded
// worker pool; a failed lookup skips that candidate only.
func (e *Engine) similarStage(ctx context.Context, st *cascadeState) {
	if st.full() {
		return
	}

	candidates := slices.Clone(st.movie.Similar)
	sortByReleaseDateDesc(candidates)

	eligible := make([]metadata.SimilarCandidate, 0, len(candidates))
	for _, cand := range candidates {
		if cand.Title == "" || cand.ReleaseDate == "" || !st.admits(cand.Title) {
			continue
		}
		year, ok := candidateYear(cand.ReleaseDate)
		if !ok || !recentEnough(year, st.year) {
			continue
		}
		eligible = append(eligible, cand)
	}
	if len(eligible) == 0 {
		return
	}

	genres := e.prefetchGenres(ctx, eligible)
	for _, cand := range eligible {
		if st.full() {
			return
		}
		if !st.admits(cand.Title) {
			continue
		}
		names, ok := genres.Load(cand.ID)
		if !ok || !sharesGenre(names, st.genres) {
			continue
		}
		st.add(cand.Title, e.posters.Resolve(ctx, cand.Title), JustificationSimilarGenreRecency)
	}
}

// fallbackStage maps the resolved genres onto the upstream vocabulary and
// fills remaining slots from the popularity-sorted discovery endpoint.
func (e *Engine) fallbackStage(ctx context.Context, st *cascadeState) {
	if st.full() || len(st.movie.Genres) == 0 {
		return
	}
	ids, err := e.client.GenreIDs(ctx, st.movie.Genres)
	if err != nil {
		e.log.Debug().Err(err).Msg("genre vocabulary lookup failed")
		return
	}
	if len(ids) == 0 {
		return
	}
	titles, err := e.client.DiscoverByGenres(ctx, ids, st.year)
	if err != nil {
		e.log.Debug().Err(err).Msg("discover lookup failed")
		return
	}
	for _, title := range titles {
		if st.full() {
			return
		}
		if !st.admits(title) {
			continue
		}
		st.add(title, e.posters.Resolve(ctx, title), JustificationGenreFallback)
	}
}
