package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/doeshing/brief-go/internal/domain"
)

// RenderArticle prints a summary in a plain, pipe-friendly format.
func RenderArticle(out io.Writer, article domain.Article) {
	fmt.Fprintln(out, article.URL)
	fmt.Fprintln(out)
	fmt.Fprintln(out, article.Summary)
}

// RenderFailure prints the error details, the troubleshooting tips and,
// when the service itself is at fault, the fallback hint.
func RenderFailure(out io.Writer, url string, err *domain.SummaryError) {
	if err.Status > 0 {
		fmt.Fprintf(out, "%s (%d)\n", err.Title, err.Status)
	} else {
		fmt.Fprintln(out, err.Title)
	}
	fmt.Fprintln(out, err.Message)
	if err.Suggestion != "" {
		fmt.Fprintf(out, "Suggestion: %s\n", err.Suggestion)
	}

	fmt.Fprintln(out, "\nTroubleshooting:")
	for _, tip := range domain.TroubleshootingTips {
		fmt.Fprintf(out, " - %s\n", tip)
	}

	if err.OffersFallback() && url != "" {
		fmt.Fprintf(out, "\nRe-run with --fallback for a placeholder summary, or visit %s\n", url)
	}
}

type jsonError struct {
	Kind       domain.ErrorKind `json:"kind"`
	Status     int              `json:"status,omitempty"`
	Title      string           `json:"title"`
	Message    string           `json:"message"`
	Suggestion string           `json:"suggestion,omitempty"`
}

type jsonResult struct {
	URL      string     `json:"url"`
	Summary  string     `json:"summary,omitempty"`
	Fallback bool       `json:"fallback,omitempty"`
	Error    *jsonError `json:"error,omitempty"`
}

// RenderArticleJSON writes the article as a single JSON object.
func RenderArticleJSON(out io.Writer, article domain.Article, fallback bool) error {
	return writeJSON(out, jsonResult{URL: article.URL, Summary: article.Summary, Fallback: fallback})
}

// RenderFailureJSON writes the failure as a single JSON object.
func RenderFailureJSON(out io.Writer, url string, err *domain.SummaryError) error {
	return writeJSON(out, jsonResult{
		URL: url,
		Error: &jsonError{
			Kind:       err.Kind,
			Status:     err.Status,
			Title:      err.Title,
			Message:    err.Message,
			Suggestion: err.Suggestion,
		},
	})
}

func writeJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
