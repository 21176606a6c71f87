// Package poster resolves titles to poster image URLs.
package poster

import (
	"context"

	"github.com/ryanbradynd05/go-tmdb"
)

const (
	imageBaseURL = "https://image.tmdb.org/t/p/w500"

	// NoPosterURL is returned when a search succeeds but the top result
	// carries no poster path.
	NoPosterURL = "https://via.placeholder.com/300x450?text=No+Poster"
	// ErrorURL is returned when the search request itself fails.
	ErrorURL = "https://via.placeholder.com/300x450?text=Error"
	// NotFoundURL marks the sentinel recommendation produced when the
	// initial title resolution finds nothing.
	NotFoundURL = "https://via.placeholder.com/300x450?text=Not+Found"
)

// SearchClient is the single TMDB operation the resolver needs.
type SearchClient interface {
	SearchMovie(name string, options map[string]string) (*tmdb.MovieSearchResults, error)
}

// Resolver looks up poster URLs by title. It is idempotent and never
// returns an error; misses and failures map to fixed placeholder URLs.
type Resolver struct {
	api      SearchClient
	language string
}

// New creates a Resolver.
func New(api SearchClient, language string) *Resolver {
	if language == "" {
		language = "en-US"
	}
	return &Resolver{api: api, language: language}
}

// Resolve returns the poster URL of the top search result for title.
func (r *Resolver) Resolve(ctx context.Context, title string) string {
	results, err := r.api.SearchMovie(title, map[string]string{"language": r.language})
	if err != nil {
		return ErrorURL
	}
	if results == nil || len(results.Results) == 0 || results.Results[0].PosterPath == "" {
		return NoPosterURL
	}
	return imageBaseURL + results.Results[0].PosterPath
}
