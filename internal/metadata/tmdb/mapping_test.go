package tmdb

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ryanbradynd05/go-tmdb"
)

func TestBestMatch(t *testing.T) {
	tests := []struct {
		name    string
		results []tmdb.MovieShort
		want    string
	}{
		{
			name: "highest_popularity_wins",
			results: []tmdb.MovieShort{
				{Title: "Inception Explained", Popularity: 4.2},
				{Title: "Inception", Popularity: 91.5},
				{Title: "Inception: The Cobol Job", Popularity: 10.1},
			},
			want: "Inception",
		},
		{
			name: "tie_keeps_first_occurrence",
			results: []tmdb.MovieShort{
				{Title: "First", Popularity: 7.0},
				{Title: "Second", Popularity: 7.0},
			},
			want: "First",
		},
		{
			name: "single_result",
			results: []tmdb.MovieShort{
				{Title: "Only", Popularity: 0},
			},
			want: "Only",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bestMatch(tt.results)
			if got.Title != tt.want {
				t.Errorf("bestMatch() = %q, want %q", got.Title, tt.want)
			}
		})
	}
}

func TestDirectors(t *testing.T) {
	crew := []crewMember{
		{Name: "Hans Zimmer", Job: "Original Music Composer"},
		{Name: "Christopher Nolan", Job: "Director"},
		{Name: "Emma Thomas", Job: "Producer"},
		{Name: "Jane Doe", Job: "director"}, // job match is case-sensitive
		{Name: "Lana Wachowski", Job: "Director"},
	}

	want := []string{"Christopher Nolan", "Lana Wachowski"}
	if diff := cmp.Diff(want, directors(crew)); diff != "" {
		t.Errorf("directors() mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectionTitles(t *testing.T) {
	parts := []collectionPart{
		{Title: "The Matrix", ReleaseDate: "1999-03-30"},
		{Title: "The Matrix Revisited", ReleaseDate: ""},
		{Title: "The Matrix Reloaded", ReleaseDate: "2003-05-15"},
		{Title: "Unannounced Sequel", ReleaseDate: "TBD"},
		{Title: "The Matrix Resurrections", ReleaseDate: "2021-12-16"},
	}

	want := []string{"The Matrix", "The Matrix Reloaded", "The Matrix Resurrections"}
	if diff := cmp.Diff(want, collectionTitles(parts)); diff != "" {
		t.Errorf("collectionTitles() mismatch (-want +got):\n%s", diff)
	}
}

func TestReleaseYear(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2010-07-16", 2010},
		{"1999", 1999},
		{"", 0},
		{"TBD", 0},
		{"20a1-01-01", 0},
		{"99", 0},
	}

	for _, tt := range tests {
		if got := releaseYear(tt.date); got != tt.want {
			t.Errorf("releaseYear(%q) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestMatchGenreIDs(t *testing.T) {
	vocab := []genreEntry{
		{ID: 28, Name: "Action"},
		{ID: 878, Name: "Science Fiction"},
		{ID: 18, Name: "Drama"},
	}

	tests := []struct {
		name  string
		names []string
		want  []int
	}{
		{
			name:  "case_insensitive_exact_match",
			names: []string{"action", "SCIENCE FICTION"},
			want:  []int{28, 878},
		},
		{
			name:  "unmatched_names_dropped",
			names: []string{"Action", "Film Noir"},
			want:  []int{28},
		},
		{
			name:  "no_partial_matches",
			names: []string{"Science"},
			want:  nil,
		},
		{
			name:  "empty_input",
			names: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, matchGenreIDs(vocab, tt.names)); diff != "" {
				t.Errorf("matchGenreIDs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
