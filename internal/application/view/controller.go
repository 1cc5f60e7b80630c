// Package view holds the summary view's state machine, independent of any
// terminal or CLI rendering.
//
// The controller is not safe for concurrent use. Callers mutate it from a
// single goroutine (the bubbletea Update loop or a CLI command); only Fetch
// may run elsewhere because it touches nothing but the summarizer.
package view

import (
	"context"
	"fmt"
	"strings"

	"github.com/doeshing/brief-go/internal/domain"
	"github.com/doeshing/brief-go/internal/ports"
)

// Request is a fetch the caller must run, tagged with the submission generation.
type Request struct {
	Generation uint64
	URL        string
}

// Result is the outcome of running a Request.
type Result struct {
	Request
	Summary string
	Err     error
}

// Dependencies are the adapters the controller drives.
type Dependencies struct {
	Summarizer ports.Summarizer
	History    ports.HistoryRepository
	Clipboard  ports.Clipboard
	Logger     ports.Logger
}

// Controller orchestrates submit, fetch, fallback, history selection and copy.
type Controller struct {
	summarizer ports.Summarizer
	history    ports.HistoryRepository
	clipboard  ports.Clipboard
	logger     ports.Logger

	input      string
	state      State
	articles   []domain.Article
	generation uint64

	copied    string
	copyToken uint64
	notice    string
}

// NewController loads the history once and starts Idle.
func NewController(ctx context.Context, deps Dependencies) *Controller {
	return &Controller{
		summarizer: deps.Summarizer,
		history:    deps.History,
		clipboard:  deps.Clipboard,
		logger:     deps.Logger,
		state:      Idle{},
		articles:   deps.History.Load(ctx),
	}
}

func (c *Controller) Input() string  { return c.input }
func (c *Controller) State() State   { return c.state }
func (c *Controller) Copied() string { return c.copied }
func (c *Controller) Notice() string { return c.notice }

// SetInput replaces the URL being edited.
func (c *Controller) SetInput(url string) {
	c.input = url
}

// History returns a copy of the articles, newest first.
func (c *Controller) History() []domain.Article {
	out := make([]domain.Article, len(c.articles))
	copy(out, c.articles)
	return out
}

// Submit handles form submission. A history hit is displayed immediately;
// otherwise the controller enters Fetching and returns the request to run.
// Any earlier in-flight request becomes stale.
func (c *Controller) Submit() (Request, bool) {
	url := strings.TrimSpace(c.input)
	if url == "" {
		return Request{}, false
	}
	c.input = url
	c.notice = ""
	c.generation++

	if existing, ok := domain.FindByURL(c.articles, url); ok {
		c.logger.Debug("history hit", map[string]interface{}{"url": url})
		c.state = Success{Article: existing}
		return Request{}, false
	}

	c.state = Fetching{URL: url}
	return Request{Generation: c.generation, URL: url}, true
}

// Fetch runs the request against the summarizer. It does not mutate the
// controller and may be called from another goroutine.
func (c *Controller) Fetch(ctx context.Context, req Request) Result {
	summary, err := c.summarizer.Summarize(ctx, req.URL)
	return Result{Request: req, Summary: summary, Err: err}
}

// Resolve applies a fetch result. Results for superseded submissions never
// change what is displayed, though a stale success is still kept in history.
func (c *Controller) Resolve(ctx context.Context, res Result) {
	if res.Generation != c.generation {
		if res.Err == nil {
			c.record(ctx, domain.Article{URL: res.URL, Summary: res.Summary})
		}
		c.logger.Debug("dropping stale result", map[string]interface{}{"url": res.URL, "generation": res.Generation})
		return
	}

	if res.Err != nil {
		summaryErr := domain.AsSummaryError(res.Err)
		c.logger.Warn("summary failed", map[string]interface{}{"url": res.URL, "kind": summaryErr.Kind})
		c.state = Failed{URL: res.URL, Err: summaryErr}
		return
	}

	article := c.record(ctx, domain.Article{URL: res.URL, Summary: res.Summary})
	c.state = Success{Article: article}
}

// CanFallback reports whether Fallback would do anything.
func (c *Controller) CanFallback() bool {
	failed, ok := c.state.(Failed)
	return ok && failed.URL != ""
}

// Fallback stores a placeholder summary for the failed URL and displays it.
func (c *Controller) Fallback(ctx context.Context) bool {
	if !c.CanFallback() {
		return false
	}
	url := c.state.(Failed).URL
	article := c.record(ctx, domain.Article{URL: url, Summary: domain.FallbackSummary(url)})
	c.state = Success{Article: article}
	c.logger.Info("fallback summary generated", map[string]interface{}{"url": url})
	return true
}

// Select displays the history entry at index i.
func (c *Controller) Select(i int) bool {
	if i < 0 || i >= len(c.articles) {
		return false
	}
	article := c.articles[i]
	c.generation++
	c.input = article.URL
	c.state = Success{Article: article}
	return true
}

// Copy writes text to the clipboard and marks it as copied. The returned
// token must be passed to ClearCopied once the reset delay elapses.
func (c *Controller) Copy(text string) (uint64, error) {
	if text == "" {
		return 0, fmt.Errorf("nothing to copy")
	}
	if c.clipboard == nil || !c.clipboard.Enabled() {
		c.notice = "Clipboard is not available on this system."
		return 0, fmt.Errorf("clipboard unavailable")
	}
	if err := c.clipboard.Copy(text); err != nil {
		c.notice = "Copy failed: " + err.Error()
		return 0, fmt.Errorf("copy to clipboard: %w", err)
	}
	c.copyToken++
	c.copied = text
	return c.copyToken, nil
}

// ClearCopied resets the copied marker if token belongs to the latest copy.
func (c *Controller) ClearCopied(token uint64) {
	if token == c.copyToken {
		c.copied = ""
	}
}

// record prepends article unless its URL is already known, persists, and
// returns the article as stored.
func (c *Controller) record(ctx context.Context, article domain.Article) domain.Article {
	if existing, ok := domain.FindByURL(c.articles, article.URL); ok {
		return existing
	}
	c.articles = domain.Prepend(c.articles, article)
	if err := c.history.Save(ctx, c.articles); err != nil {
		c.logger.Error("history not persisted", err, map[string]interface{}{"url": article.URL})
		c.notice = "History could not be saved; it will be retried on the next change."
	}
	return article
}
