package view

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/brief-go/internal/domain"
	"github.com/doeshing/brief-go/internal/pkg/logger"
)

func TestSubmitHistoryHitSkipsNetwork(t *testing.T) {
	stored := domain.Article{URL: "https://example.com/a", Summary: "cached"}
	summarizer := &stubSummarizer{summary: "fresh"}
	c := newTestController(summarizer, &memoryHistory{articles: []domain.Article{stored}})

	c.SetInput("https://example.com/a")
	if _, needsFetch := c.Submit(); needsFetch {
		t.Fatal("history hit should not need a fetch")
	}
	if summarizer.calls != 0 {
		t.Fatalf("summarizer called %d times", summarizer.calls)
	}
	if got, ok := Displayed(c.State()); !ok || got != stored {
		t.Fatalf("displayed = %+v, want %+v", got, stored)
	}
}

func TestSubmitIgnoresBlankInput(t *testing.T) {
	c := newTestController(&stubSummarizer{}, &memoryHistory{})
	c.SetInput("   ")
	if _, needsFetch := c.Submit(); needsFetch {
		t.Fatal("blank input should not fetch")
	}
	if _, ok := c.State().(Idle); !ok {
		t.Fatalf("state = %T, want Idle", c.State())
	}
}

func TestSuccessfulFetchPrependsAndPersists(t *testing.T) {
	history := &memoryHistory{articles: []domain.Article{{URL: "https://example.com/old", Summary: "O"}}}
	c := newTestController(&stubSummarizer{summary: "S1"}, history)

	runSubmit(t, c, "https://example.com/a")

	want := []domain.Article{
		{URL: "https://example.com/a", Summary: "S1"},
		{URL: "https://example.com/old", Summary: "O"},
	}
	if diff := cmp.Diff(want, c.History()); diff != "" {
		t.Fatalf("history mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, history.articles); diff != "" {
		t.Fatalf("persisted mismatch (-want +got):\n%s", diff)
	}
}

func TestScenarioSuccessOnEmptyHistory(t *testing.T) {
	history := &memoryHistory{}
	c := newTestController(&stubSummarizer{summary: "S1"}, history)

	runSubmit(t, c, "https://example.com/a")

	want := domain.Article{URL: "https://example.com/a", Summary: "S1"}
	if got, ok := Displayed(c.State()); !ok || got != want {
		t.Fatalf("displayed = %+v, want %+v", got, want)
	}
	if diff := cmp.Diff([]domain.Article{want}, history.articles); diff != "" {
		t.Fatalf("persisted mismatch (-want +got):\n%s", diff)
	}
}

func TestScenarioServiceUnavailableThenFallback(t *testing.T) {
	history := &memoryHistory{}
	c := newTestController(&stubSummarizer{err: domain.StatusError(503)}, history)

	runSubmit(t, c, "https://example.com/b")

	failed, ok := c.State().(Failed)
	if !ok {
		t.Fatalf("state = %T, want Failed", c.State())
	}
	if failed.Err.Kind != domain.KindServiceUnavailable {
		t.Fatalf("kind = %s", failed.Err.Kind)
	}
	if failed.URL != "https://example.com/b" {
		t.Fatalf("failed URL = %q", failed.URL)
	}

	if !c.Fallback(context.Background()) {
		t.Fatal("Fallback() returned false")
	}
	article, ok := Displayed(c.State())
	if !ok || article.URL != "https://example.com/b" || !strings.Contains(article.Summary, "https://example.com/b") {
		t.Fatalf("displayed = %+v", article)
	}
	if len(history.articles) != 1 || history.articles[0] != article {
		t.Fatalf("persisted = %+v", history.articles)
	}
}

func TestFallbackOnlyFromFailed(t *testing.T) {
	c := newTestController(&stubSummarizer{summary: "S"}, &memoryHistory{})
	if c.Fallback(context.Background()) {
		t.Fatal("fallback from Idle should be refused")
	}
	runSubmit(t, c, "https://example.com/a")
	if c.Fallback(context.Background()) {
		t.Fatal("fallback from Success should be refused")
	}
	if len(c.History()) != 1 {
		t.Fatalf("history = %+v", c.History())
	}
}

func TestNonSummaryErrorsBecomeTransportFailures(t *testing.T) {
	c := newTestController(&stubSummarizer{err: errors.New("dial tcp: refused")}, &memoryHistory{})
	runSubmit(t, c, "https://example.com/a")

	failed, ok := c.State().(Failed)
	if !ok || failed.Err.Kind != domain.KindTransport {
		t.Fatalf("state = %+v", c.State())
	}
}

func TestStaleResultDoesNotChangeDisplay(t *testing.T) {
	history := &memoryHistory{}
	c := newTestController(&stubSummarizer{summary: "first"}, history)

	c.SetInput("https://example.com/first")
	first, _ := c.Submit()
	c.SetInput("https://example.com/second")
	second, _ := c.Submit()

	c.Resolve(context.Background(), Result{Request: second, Err: domain.StatusError(429)})
	c.Resolve(context.Background(), Result{Request: first, Summary: "first"})

	failed, ok := c.State().(Failed)
	if !ok || failed.URL != "https://example.com/second" {
		t.Fatalf("state = %+v, want Failed for second", c.State())
	}
	if _, found := domain.FindByURL(c.History(), "https://example.com/first"); !found {
		t.Fatal("stale success should still be kept in history")
	}
}

func TestStaleFailureIsDropped(t *testing.T) {
	c := newTestController(&stubSummarizer{}, &memoryHistory{})

	c.SetInput("https://example.com/a")
	first, _ := c.Submit()
	c.SetInput("https://example.com/b")
	second, _ := c.Submit()
	c.Resolve(context.Background(), Result{Request: second, Summary: "B"})
	c.Resolve(context.Background(), Result{Request: first, Err: domain.StatusError(503)})

	if got, ok := Displayed(c.State()); !ok || got.URL != "https://example.com/b" {
		t.Fatalf("displayed = %+v", c.State())
	}
}

func TestSelectDisplaysEntryWithoutFetching(t *testing.T) {
	entries := []domain.Article{{URL: "u1", Summary: "s1"}, {URL: "u2", Summary: "s2"}}
	summarizer := &stubSummarizer{}
	c := newTestController(summarizer, &memoryHistory{articles: entries})

	if !c.Select(1) {
		t.Fatal("Select(1) returned false")
	}
	if got, _ := Displayed(c.State()); got != entries[1] {
		t.Fatalf("displayed = %+v", got)
	}
	if c.Input() != "u2" {
		t.Fatalf("input = %q, want u2", c.Input())
	}
	if c.Select(5) || c.Select(-1) {
		t.Fatal("out of range selection should fail")
	}
	if summarizer.calls != 0 {
		t.Fatal("select must not fetch")
	}
}

func TestCopyMarkerClearsOnlyForLatestToken(t *testing.T) {
	clipboard := &stubClipboard{enabled: true}
	c := NewController(context.Background(), Dependencies{
		Summarizer: &stubSummarizer{},
		History:    &memoryHistory{},
		Clipboard:  clipboard,
		Logger:     logger.NewStd(false),
	})

	first, err := c.Copy("https://example.com/a")
	if err != nil {
		t.Fatalf("Copy() error = %v", err)
	}
	if c.Copied() != "https://example.com/a" || clipboard.text != "https://example.com/a" {
		t.Fatalf("copied = %q clipboard = %q", c.Copied(), clipboard.text)
	}

	second, _ := c.Copy("summary text")
	c.ClearCopied(first)
	if c.Copied() != "summary text" {
		t.Fatalf("superseded reset cleared the newer marker: %q", c.Copied())
	}
	c.ClearCopied(second)
	if c.Copied() != "" {
		t.Fatalf("copied = %q, want empty", c.Copied())
	}
}

func TestCopyFailureLeavesMarkerUnset(t *testing.T) {
	c := NewController(context.Background(), Dependencies{
		Summarizer: &stubSummarizer{},
		History:    &memoryHistory{},
		Clipboard:  &stubClipboard{enabled: true, err: errors.New("xclip missing")},
		Logger:     logger.NewStd(false),
	})

	if _, err := c.Copy("x"); err == nil {
		t.Fatal("expected error")
	}
	if c.Copied() != "" || c.Notice() == "" {
		t.Fatalf("copied = %q notice = %q", c.Copied(), c.Notice())
	}
}

func TestSaveFailureKeepsInMemoryHistory(t *testing.T) {
	history := &memoryHistory{saveErr: errors.New("quota exceeded")}
	c := newTestController(&stubSummarizer{summary: "S"}, history)

	runSubmit(t, c, "https://example.com/a")

	if len(c.History()) != 1 {
		t.Fatalf("in-memory history = %+v", c.History())
	}
	if len(history.articles) != 0 {
		t.Fatal("durable history should be unchanged")
	}
	if c.Notice() == "" {
		t.Fatal("expected a notice about the failed save")
	}
	if _, ok := Displayed(c.State()); !ok {
		t.Fatal("result should still be displayed")
	}
}

func runSubmit(t *testing.T, c *Controller, url string) {
	t.Helper()
	c.SetInput(url)
	req, needsFetch := c.Submit()
	if !needsFetch {
		t.Fatalf("Submit(%q) did not request a fetch", url)
	}
	if _, ok := c.State().(Fetching); !ok {
		t.Fatalf("state = %T, want Fetching", c.State())
	}
	c.Resolve(context.Background(), c.Fetch(context.Background(), req))
}

func newTestController(summarizer *stubSummarizer, history *memoryHistory) *Controller {
	return NewController(context.Background(), Dependencies{
		Summarizer: summarizer,
		History:    history,
		Clipboard:  &stubClipboard{enabled: true},
		Logger:     logger.NewStd(false),
	})
}

type stubSummarizer struct {
	summary string
	err     error
	calls   int
}

func (s *stubSummarizer) Summarize(context.Context, string) (string, error) {
	s.calls++
	return s.summary, s.err
}

type memoryHistory struct {
	articles []domain.Article
	saveErr  error
}

func (m *memoryHistory) Load(context.Context) []domain.Article {
	out := make([]domain.Article, len(m.articles))
	copy(out, m.articles)
	return out
}

func (m *memoryHistory) Save(_ context.Context, history []domain.Article) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.articles = append([]domain.Article(nil), history...)
	return nil
}

func (m *memoryHistory) Clear(context.Context) error {
	m.articles = nil
	return nil
}

type stubClipboard struct {
	enabled bool
	text    string
	err     error
}

func (s *stubClipboard) Copy(text string) error {
	if s.err != nil {
		return s.err
	}
	s.text = text
	return nil
}

func (s *stubClipboard) Enabled() bool { return s.enabled }
