package recommend

import (
	"slices"
	"strings"

	"github.com/Digital-Shane/cinerec/internal/metadata"
)

// missingReleaseDate stands in for empty date strings so that dateless
// candidates sort last under the descending lexicographic order.
const missingReleaseDate = "1900"

func dateSortKey(date string) string {
	if date == "" {
		return missingReleaseDate
	}
	return date
}

// sortByReleaseDateDesc orders candidates most-recent first by comparing the
// raw date strings lexicographically. The sort is stable, so equal dates
// keep their upstream order.
func sortByReleaseDateDesc(candidates []metadata.SimilarCandidate) {
	slices.SortStableFunc(candidates, func(a, b metadata.SimilarCandidate) int {
		return strings.Compare(dateSortKey(b.ReleaseDate), dateSortKey(a.ReleaseDate))
	})
}

// candidateYear extracts the four-digit year prefix of a raw date string.
func candidateYear(date string) (int, bool) {
	if len(date) < 4 {
		return 0, false
	}
	year := 0
	for _, r := range date[:4] {
		if r < '0' || r > '9' {
			return 0, false
		}
		year = year*10 + int(r-'0')
	}
	return year, true
}

// recentEnough admits candidates released no more than two years before the
// resolved movie.
func recentEnough(year, originalYear int) bool {
	return year >= originalYear-2
}

// sharesGenre reports whether any candidate genre appears in the resolved
// movie's genre set.
func sharesGenre(names []string, original map[string]struct{}) bool {
	for _, name := range names {
		if _, ok := original[name]; ok {
			return true
		}
	}
	return false
}
