package poster

import (
	"context"
	"errors"
	"testing"

	"github.com/ryanbradynd05/go-tmdb"
)

type searchFunc func(name string, options map[string]string) (*tmdb.MovieSearchResults, error)

func (f searchFunc) SearchMovie(name string, options map[string]string) (*tmdb.MovieSearchResults, error) {
	return f(name, options)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		results *tmdb.MovieSearchResults
		err     error
		want    string
	}{
		{
			name: "top_result_poster",
			results: &tmdb.MovieSearchResults{
				Results: []tmdb.MovieShort{
					{Title: "Inception", PosterPath: "/inception.jpg"},
					{Title: "Inception Explained", PosterPath: "/other.jpg"},
				},
			},
			want: "https://image.tmdb.org/t/p/w500/inception.jpg",
		},
		{
			name:    "no_results",
			results: &tmdb.MovieSearchResults{},
			want:    NoPosterURL,
		},
		{
			name: "top_result_without_poster",
			results: &tmdb.MovieSearchResults{
				Results: []tmdb.MovieShort{{Title: "Obscure"}},
			},
			want: NoPosterURL,
		},
		{
			name: "request_failure",
			err:  errors.New("timeout"),
			want: ErrorURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(searchFunc(func(name string, options map[string]string) (*tmdb.MovieSearchResults, error) {
				return tt.results, tt.err
			}), "en-US")

			if got := r.Resolve(context.Background(), "whatever"); got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlaceholdersAreDistinct(t *testing.T) {
	if NoPosterURL == ErrorURL || NoPosterURL == NotFoundURL || ErrorURL == NotFoundURL {
		t.Error("placeholder URLs must be pairwise distinct")
	}
}
