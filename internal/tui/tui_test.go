package tui

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/Digital-Shane/cinerec/internal/recommend"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
)

// recommenderFunc adapts a function to the Recommender interface.
type recommenderFunc func(ctx context.Context, title string) recommend.Result

func (f recommenderFunc) Recommend(ctx context.Context, title string) recommend.Result {
	return f(ctx, title)
}

func sendKey(tm *teatest.TestModel, key tea.KeyType) {
	tm.Send(tea.KeyMsg{Type: key})
}

func typeText(tm *teatest.TestModel, text string) {
	for _, r := range text {
		tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func startTestModel(t *testing.T, r Recommender) *teatest.TestModel {
	t.Helper()
	tm := teatest.NewTestModel(t, NewModel(r), teatest.WithInitialTermSize(120, 40))
	t.Cleanup(func() {
		_ = tm.Quit()
	})
	return tm
}

func waitForOutput(t *testing.T, tm *teatest.TestModel, contains string) {
	t.Helper()
	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte(contains))
	}, teatest.WithDuration(2*time.Second), teatest.WithCheckInterval(25*time.Millisecond))
}

func TestModelShowsInputPrompt(t *testing.T) {
	tm := startTestModel(t, recommenderFunc(func(context.Context, string) recommend.Result {
		return recommend.Result{}
	}))

	waitForOutput(t, tm, "Enter a movie you like")

	sendKey(tm, tea.KeyEsc)
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))
}

func TestModelSearchRendersResults(t *testing.T) {
	var gotQuery string
	r := recommenderFunc(func(_ context.Context, title string) recommend.Result {
		gotQuery = title
		return sampleResult()
	})
	tm := startTestModel(t, r)

	typeText(tm, "inception")
	sendKey(tm, tea.KeyEnter)

	// A single read pass over the output stream: the results frame must
	// carry the heading and the recommended title together.
	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte("Recommendations for: Inception")) &&
			bytes.Contains(b, []byte("Interstellar"))
	}, teatest.WithDuration(2*time.Second), teatest.WithCheckInterval(25*time.Millisecond))

	if gotQuery != "inception" {
		t.Errorf("recommender received %q, want typed query", gotQuery)
	}

	sendKey(tm, tea.KeyEsc)
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))
}

func TestModelNotFound(t *testing.T) {
	r := recommenderFunc(func(context.Context, string) recommend.Result {
		return recommend.Result{
			Input: "Gibberish Query",
			Recommendations: []recommend.Recommendation{
				{Title: "Movie not found", PosterURL: "https://via.placeholder.com/300x450?text=Not+Found"},
			},
		}
	})
	tm := startTestModel(t, r)

	typeText(tm, "gibberish query")
	sendKey(tm, tea.KeyEnter)

	waitForOutput(t, tm, "No movie found for")

	sendKey(tm, tea.KeyEsc)
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))
}

func TestModelEnterOnResultsStartsNewSearch(t *testing.T) {
	r := recommenderFunc(func(context.Context, string) recommend.Result {
		return sampleResult()
	})
	tm := startTestModel(t, r)

	typeText(tm, "inception")
	sendKey(tm, tea.KeyEnter)
	waitForOutput(t, tm, "Recommendations for: Inception")

	sendKey(tm, tea.KeyEnter)
	waitForOutput(t, tm, "Enter a movie you like")

	sendKey(tm, tea.KeyEsc)
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))
}

func TestModelQuitCancelsInflightFetch(t *testing.T) {
	ctxCh := make(chan context.Context, 1)
	r := recommenderFunc(func(ctx context.Context, title string) recommend.Result {
		ctxCh <- ctx
		<-ctx.Done()
		return recommend.Result{}
	})
	m := NewModel(r)

	go m.fetch("inception")()

	ctx := <-ctxCh
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("fetch context still live after quit")
	}
}

func TestModelIgnoresEmptySubmit(t *testing.T) {
	called := false
	r := recommenderFunc(func(context.Context, string) recommend.Result {
		called = true
		return recommend.Result{}
	})
	model := NewModel(r)

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	if m.phase != phaseInput {
		t.Errorf("phase = %v, want phaseInput", m.phase)
	}
	if called {
		t.Error("recommender called on empty submit")
	}
}
