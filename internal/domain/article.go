// Package domain defines the core entities of brief: articles, their history,
// the summary error taxonomy and configuration.
//
// The domain layer has no knowledge of HTTP, storage backends or terminals.
package domain

import "fmt"

// Article pairs an article URL with its summary. The URL is the identity.
type Article struct {
	URL     string `json:"url"`
	Summary string `json:"summary"`
}

// FindByURL returns the first article whose URL matches exactly. No
// normalization is applied: trailing slashes, query order and scheme case
// all produce distinct URLs.
func FindByURL(history []Article, url string) (Article, bool) {
	for _, article := range history {
		if article.URL == url {
			return article, true
		}
	}
	return Article{}, false
}

// Prepend returns a new history with article placed first (newest first).
// The input slice is not modified.
func Prepend(history []Article, article Article) []Article {
	out := make([]Article, 0, len(history)+1)
	out = append(out, article)
	return append(out, history...)
}

// FallbackSummary builds the placeholder text used when the summarization
// service cannot produce a summary for url.
func FallbackSummary(url string) string {
	return fmt.Sprintf("This is a fallback summary for the article at %s. "+
		"The original summarization service is currently unavailable. "+
		"To get the actual content, please visit the link directly. "+
		"This tool normally provides AI-powered summaries of web articles, "+
		"but we're experiencing temporary service issues.", url)
}
