package view

import "github.com/doeshing/brief-go/internal/domain"

// State is one of Idle, Fetching, Success or Failed.
type State interface {
	isState()
}

// Idle is the state before any submission.
type Idle struct{}

// Fetching means a summary request for URL is in flight.
type Fetching struct {
	URL string
}

// Success displays Article.
type Success struct {
	Article domain.Article
}

// Failed keeps the URL so the fallback stays available.
type Failed struct {
	URL string
	Err *domain.SummaryError
}

func (Idle) isState()     {}
func (Fetching) isState() {}
func (Success) isState()  {}
func (Failed) isState()   {}

// Displayed returns the article currently shown, if any.
func Displayed(s State) (domain.Article, bool) {
	if success, ok := s.(Success); ok {
		return success.Article, true
	}
	return domain.Article{}, false
}
