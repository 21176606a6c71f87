package metadata

import (
	"context"
	"strconv"
)

// DefaultOverview is substituted when the upstream record has no overview.
const DefaultOverview = "No description available."

// MaxCastMembers caps how many cast names are kept on a MovieInfo.
const MaxCastMembers = 5

// MovieInfo is the resolved canonical metadata for a single title.
type MovieInfo struct {
	ID        int                `json:"id"`
	Title     string             `json:"title"`
	Genres    []string           `json:"genres"`
	Year      int                `json:"year"` // 0 when the release year is unknown
	Cast      []string           `json:"cast"` // at most MaxCastMembers entries
	Directors []string           `json:"directors"`
	Overview  string             `json:"overview"`
	Rating    float32            `json:"rating"` // 0 when unrated
	Similar   []SimilarCandidate `json:"-"`
}

// RatingString renders the rating for display, with the upstream "not
// available" convention for unrated titles.
func (m *MovieInfo) RatingString() string {
	if m.Rating == 0 {
		return "N/A"
	}
	return trimFloat(m.Rating)
}

func trimFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

// SimilarCandidate is a raw similar-titles record as returned upstream.
// Genres are not resolved here; the recommendation engine looks them up
// per candidate when it needs them.
type SimilarCandidate struct {
	ID          int
	Title       string
	ReleaseDate string // raw date string, possibly empty
}

// Client is the read-only contract against the remote metadata service.
// All methods are pure request/response; implementations hold no state
// beyond the API credential.
type Client interface {
	// SearchByTitle resolves a free-text title to the id of the
	// highest-popularity search result. Ties keep the first upstream
	// occurrence. Returns an error wrapping ErrNotFound when the search
	// yields no results.
	SearchByTitle(ctx context.Context, title string) (int, error)

	// FetchDetails returns the full MovieInfo for an id, including cast,
	// directors, and the raw similar-titles list. Failures of the credits
	// or similar sub-lookups degrade to empty lists rather than errors.
	FetchDetails(ctx context.Context, id int) (*MovieInfo, error)

	// FetchCollection returns the titles of the movie's parent collection
	// members, in upstream order, restricted to members whose release date
	// begins with four digits. The second return is the collection id.
	// A movie without a collection yields (nil, 0, nil).
	FetchCollection(ctx context.Context, id int) ([]string, int, error)

	// FetchGenres returns the genre names of a single movie.
	FetchGenres(ctx context.Context, id int) ([]string, error)

	// GenreIDs maps genre names onto the upstream genre-id vocabulary
	// using case-insensitive exact name matches. Unmatched names are
	// dropped silently.
	GenreIDs(ctx context.Context, names []string) ([]int, error)

	// DiscoverByGenres returns titles from the popularity-sorted discovery
	// endpoint, filtered to the given genre ids and to primary release
	// dates on or after fromYear. First page only.
	DiscoverByGenres(ctx context.Context, genreIDs []int, fromYear int) ([]string, error)
}
