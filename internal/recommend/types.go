package recommend

import (
	"strconv"

	"github.com/Digital-Shane/cinerec/internal/metadata"
)

// Justification tags which cascade stage produced a recommendation.
type Justification int

const (
	// JustificationNone marks the not-found sentinel entry.
	JustificationNone Justification = iota
	// JustificationSameCollection marks a same-series/collection pick.
	JustificationSameCollection
	// JustificationSimilarGenreRecency marks a genre- and recency-filtered
	// similar title.
	JustificationSimilarGenreRecency
	// JustificationGenreFallback marks a genre popularity fallback pick.
	JustificationGenreFallback
)

// String returns the human-readable reason shown under a recommendation.
func (j Justification) String() string {
	switch j {
	case JustificationSameCollection:
		return "From the same series/collection"
	case JustificationSimilarGenreRecency:
		return "Similar movie based on genre and recency"
	case JustificationGenreFallback:
		return "Genre-based fallback recommendation"
	}
	return ""
}

// MarshalJSON encodes the justification as its display text.
func (j Justification) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(j.String())), nil
}

// Recommendation is a single suggested title.
type Recommendation struct {
	Title         string        `json:"title"`
	PosterURL     string        `json:"poster_url"`
	Justification Justification `json:"reason"`
}

// Result is the discriminated outcome of a recommendation request. Found
// results carry the resolved movie; not-found results carry a title-cased
// echo of the raw query and exactly one sentinel recommendation.
type Result struct {
	Found           bool                `json:"found"`
	Movie           *metadata.MovieInfo `json:"movie,omitempty"`
	Input           string              `json:"input,omitempty"`
	Recommendations []Recommendation    `json:"recommendations"`
}

// DisplayTitle is the heading shown above the recommendation cards.
func (r Result) DisplayTitle() string {
	if r.Found {
		return r.Movie.Title
	}
	return r.Input
}
