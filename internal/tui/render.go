package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Digital-Shane/cinerec/internal/recommend"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// cardWidth leaves room for the longest justification caption on one line.
const cardWidth = 44

// RenderResult formats a recommendation result for terminal display. It is
// shared by the one-shot recommend command and the interactive UI.
func RenderResult(res recommend.Result, width int) string {
	var b strings.Builder

	if !res.Found {
		b.WriteString(notFoundStyle.Render(fmt.Sprintf("No movie found for %q", res.Input)))
		b.WriteString("\n")
		for _, rec := range res.Recommendations {
			b.WriteString(mutedStyle.Render(rec.PosterURL))
			b.WriteString("\n")
		}
		return b.String()
	}

	b.WriteString(titleStyle.Render("Recommendations for: " + res.Movie.Title))
	b.WriteString("\n")
	b.WriteString(renderInfoPanel(res))
	b.WriteString("\n")
	b.WriteString(renderCards(res.Recommendations, width))
	return b.String()
}

func renderInfoPanel(res recommend.Result) string {
	m := res.Movie
	year := "unknown"
	if m.Year > 0 {
		year = strconv.Itoa(m.Year)
	}
	lines := []string{
		labelStyle.Render("Genres:   ") + strings.Join(m.Genres, ", "),
		labelStyle.Render("Year:     ") + year,
		labelStyle.Render("Cast:     ") + strings.Join(m.Cast, ", "),
		labelStyle.Render("Director: ") + strings.Join(m.Directors, ", "),
		labelStyle.Render("Rating:   ") + m.RatingString(),
		labelStyle.Render("Overview: ") + m.Overview,
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func renderCards(recs []recommend.Recommendation, width int) string {
	if len(recs) == 0 {
		return mutedStyle.Render("No recommendations found.")
	}

	cards := make([]string, 0, len(recs))
	for _, rec := range recs {
		// The caption is never truncated; the card style soft-wraps
		// anything wider than the card.
		content := strings.Join([]string{
			labelStyle.Render(truncate(rec.Title, cardWidth-4)),
			mutedStyle.Render(truncate(rec.PosterURL, cardWidth-4)),
			rec.Justification.String(),
		}, "\n")
		cards = append(cards, cardStyle.Width(cardWidth).Render(content))
	}

	// Lay cards out in rows that fit the terminal width.
	perRow := 1
	if width > 0 {
		if n := width / (cardWidth + 2); n > 1 {
			perRow = n
		}
	} else {
		perRow = len(cards)
	}

	var rows []string
	for len(cards) > 0 {
		n := min(perRow, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[:n]...))
		cards = cards[n:]
	}
	return strings.Join(rows, "\n")
}

func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	return runewidth.Truncate(s, max, "…")
}
