// Package tmdb implements the metadata.Client contract against The Movie
// Database using the go-tmdb bindings.
package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Digital-Shane/cinerec/internal/metadata"
	"github.com/ryanbradynd05/go-tmdb"
)

// TMDBClient is the slice of *tmdb.TMDb this package depends on. Tests
// substitute a mock; production code passes the real client from NewAPI.
type TMDBClient interface {
	SearchMovie(name string, options map[string]string) (*tmdb.MovieSearchResults, error)
	GetMovieInfo(id int, options map[string]string) (*tmdb.Movie, error)
	GetMovieCredits(id int, options map[string]string) (*tmdb.MovieCredits, error)
	GetMovieSimilar(id int, options map[string]string) (*tmdb.MoviePagedResults, error)
	GetCollectionInfo(id int, options map[string]string) (*tmdb.Collection, error)
	GetMovieGenres(options map[string]string) (*tmdb.Genre, error)
	DiscoverMovie(options map[string]string) (*tmdb.MoviePagedResults, error)
}

// NewAPI builds the underlying TMDB client and applies the uniform
// per-request timeout. go-tmdb issues its requests through
// http.DefaultClient, so the timeout is installed there once at startup.
func NewAPI(apiKey string, timeout time.Duration) TMDBClient {
	if timeout > 0 {
		http.DefaultClient.Timeout = timeout
	}
	return tmdb.Init(tmdb.Config{APIKey: apiKey})
}

// Client implements metadata.Client.
type Client struct {
	api      TMDBClient
	language string
}

// New wraps an API client with the configured metadata language.
func New(api TMDBClient, language string) (*Client, error) {
	if api == nil {
		return nil, fmt.Errorf("tmdb: api client is required")
	}
	if language == "" {
		language = "en-US"
	}
	return &Client{api: api, language: language}, nil
}

func (c *Client) options() map[string]string {
	return map[string]string{"language": c.language}
}

// SearchByTitle resolves a title to the id of the most popular search
// result. Ties keep the first upstream occurrence.
func (c *Client) SearchByTitle(ctx context.Context, title string) (int, error) {
	results, err := c.api.SearchMovie(title, c.options())
	if err != nil {
		return 0, &metadata.Error{Op: "search", Code: metadata.CodeNetwork, Err: err}
	}
	if results == nil || len(results.Results) == 0 {
		return 0, &metadata.Error{Op: "search", Code: metadata.CodeNotFound, Err: metadata.ErrNotFound}
	}
	return bestMatch(results.Results).ID, nil
}

// FetchDetails assembles a MovieInfo from the details, credits, and
// similar-titles lookups. Credits and similar failures degrade to empty
// lists; only the details lookup itself can fail the call.
func (c *Client) FetchDetails(ctx context.Context, id int) (*metadata.MovieInfo, error) {
	movie, err := c.api.GetMovieInfo(id, c.options())
	if err != nil {
		return nil, &metadata.Error{Op: "details", Code: metadata.CodeNetwork, Err: err}
	}
	if movie == nil {
		return nil, &metadata.Error{Op: "details", Code: metadata.CodeMalformed, Err: fmt.Errorf("empty response for movie %d", id)}
	}

	info := &metadata.MovieInfo{
		ID:       id,
		Title:    movie.Title,
		Year:     releaseYear(movie.ReleaseDate),
		Overview: movie.Overview,
		Rating:   movie.VoteAverage,
	}
	if info.Overview == "" {
		info.Overview = metadata.DefaultOverview
	}
	for _, g := range movie.Genres {
		info.Genres = append(info.Genres, g.Name)
	}

	if credits, err := c.api.GetMovieCredits(id, c.options()); err == nil && credits != nil {
		for i, member := range credits.Cast {
			if i >= metadata.MaxCastMembers {
				break
			}
			info.Cast = append(info.Cast, member.Name)
		}
		crew := make([]crewMember, 0, len(credits.Crew))
		for _, member := range credits.Crew {
			crew = append(crew, crewMember{Name: member.Name, Job: member.Job})
		}
		info.Directors = directors(crew)
	}

	if similar, err := c.api.GetMovieSimilar(id, c.options()); err == nil && similar != nil {
		for _, m := range similar.Results {
			info.Similar = append(info.Similar, metadata.SimilarCandidate{
				ID:          m.ID,
				Title:       m.Title,
				ReleaseDate: m.ReleaseDate,
			})
		}
	}

	return info, nil
}

// FetchCollection returns the member titles of the movie's parent
// collection. Movies outside any collection yield (nil, 0, nil).
func (c *Client) FetchCollection(ctx context.Context, id int) ([]string, int, error) {
	movie, err := c.api.GetMovieInfo(id, c.options())
	if err != nil {
		return nil, 0, &metadata.Error{Op: "collection", Code: metadata.CodeNetwork, Err: err}
	}
	if movie == nil || movie.BelongsToCollection.ID == 0 {
		return nil, 0, nil
	}

	collectionID := movie.BelongsToCollection.ID
	collection, err := c.api.GetCollectionInfo(collectionID, c.options())
	if err != nil {
		return nil, collectionID, &metadata.Error{Op: "collection", Code: metadata.CodeNetwork, Err: err}
	}
	if collection == nil {
		return nil, collectionID, nil
	}

	parts := make([]collectionPart, 0, len(collection.Parts))
	for _, p := range collection.Parts {
		parts = append(parts, collectionPart{Title: p.Title, ReleaseDate: p.ReleaseDate})
	}
	return collectionTitles(parts), collectionID, nil
}

// FetchGenres returns the genre names of a single movie.
func (c *Client) FetchGenres(ctx context.Context, id int) ([]string, error) {
	movie, err := c.api.GetMovieInfo(id, c.options())
	if err != nil {
		return nil, &metadata.Error{Op: "genres", Code: metadata.CodeNetwork, Err: err}
	}
	if movie == nil {
		return nil, &metadata.Error{Op: "genres", Code: metadata.CodeMalformed, Err: fmt.Errorf("empty response for movie %d", id)}
	}
	names := make([]string, 0, len(movie.Genres))
	for _, g := range movie.Genres {
		names = append(names, g.Name)
	}
	return names, nil
}

// GenreIDs maps genre names onto the upstream vocabulary.
func (c *Client) GenreIDs(ctx context.Context, names []string) ([]int, error) {
	vocab, err := c.api.GetMovieGenres(c.options())
	if err != nil {
		return nil, &metadata.Error{Op: "genre_vocabulary", Code: metadata.CodeNetwork, Err: err}
	}
	if vocab == nil {
		return nil, &metadata.Error{Op: "genre_vocabulary", Code: metadata.CodeMalformed, Err: fmt.Errorf("empty genre vocabulary")}
	}
	entries := make([]genreEntry, 0, len(vocab.Genres))
	for _, g := range vocab.Genres {
		entries = append(entries, genreEntry{ID: g.ID, Name: g.Name})
	}
	return matchGenreIDs(entries, names), nil
}

// DiscoverByGenres queries the popularity-sorted discovery endpoint,
// restricted to the given genres and to releases from fromYear on.
func (c *Client) DiscoverByGenres(ctx context.Context, genreIDs []int, fromYear int) ([]string, error) {
	ids := make([]string, 0, len(genreIDs))
	for _, id := range genreIDs {
		ids = append(ids, strconv.Itoa(id))
	}
	options := map[string]string{
		"language":                 c.language,
		"sort_by":                  "popularity.desc",
		"with_genres":              strings.Join(ids, ","),
		"primary_release_date.gte": strconv.Itoa(fromYear),
		"page":                     "1",
	}
	results, err := c.api.DiscoverMovie(options)
	if err != nil {
		return nil, &metadata.Error{Op: "discover", Code: metadata.CodeNetwork, Err: err}
	}
	if results == nil {
		return nil, nil
	}
	titles := make([]string, 0, len(results.Results))
	for _, m := range results.Results {
		titles = append(titles, m.Title)
	}
	return titles, nil
}
