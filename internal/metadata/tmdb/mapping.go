package tmdb

import (
	"strings"

	"github.com/ryanbradynd05/go-tmdb"
)

// directorJob is the exact crew job role TMDB uses for directors.
const directorJob = "Director"

// crewMember, collectionPart, and genreEntry are narrow local copies of the
// upstream records so the mapping rules below stay unit-testable.
type crewMember struct {
	Name string
	Job  string
}

type collectionPart struct {
	Title       string
	ReleaseDate string
}

type genreEntry struct {
	ID   int
	Name string
}

// bestMatch picks the search result with the highest popularity score.
// Ties break toward the first upstream occurrence.
func bestMatch(results []tmdb.MovieShort) *tmdb.MovieShort {
	best := 0
	for i := 1; i < len(results); i++ {
		if results[i].Popularity > results[best].Popularity {
			best = i
		}
	}
	return &results[best]
}

// directors filters crew records by the exact, case-sensitive director job
// role, preserving upstream order.
func directors(crew []crewMember) []string {
	var names []string
	for _, member := range crew {
		if member.Job == directorJob {
			names = append(names, member.Name)
		}
	}
	return names
}

// collectionTitles keeps members whose release date starts with a four-digit
// year, in upstream order.
func collectionTitles(parts []collectionPart) []string {
	var titles []string
	for _, part := range parts {
		if hasYearPrefix(part.ReleaseDate) {
			titles = append(titles, part.Title)
		}
	}
	return titles
}

func hasYearPrefix(date string) bool {
	if len(date) < 4 {
		return false
	}
	for _, r := range date[:4] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// releaseYear parses the four-digit year prefix of a raw date string,
// returning 0 when it is absent or not numeric.
func releaseYear(date string) int {
	if !hasYearPrefix(date) {
		return 0
	}
	year := 0
	for _, r := range date[:4] {
		year = year*10 + int(r-'0')
	}
	return year
}

// matchGenreIDs resolves genre names against the vocabulary with
// case-insensitive exact name matches. Unmatched names are dropped. If the
// vocabulary ever carried duplicate names, the first entry would win; the
// upstream service does not document that case.
func matchGenreIDs(vocab []genreEntry, names []string) []int {
	var ids []int
	for _, name := range names {
		for _, entry := range vocab {
			if strings.EqualFold(entry.Name, name) {
				ids = append(ids, entry.ID)
				break
			}
		}
	}
	return ids
}
