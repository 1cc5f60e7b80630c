package tui

import "github.com/doeshing/brief-go/internal/application/view"

// summaryMsg carries a finished fetch back into the update loop.
type summaryMsg struct {
	result view.Result
}

// clearCopiedMsg fires once the copy marker delay elapses.
type clearCopiedMsg struct {
	token uint64
}

type spinnerTickMsg struct{}

// openedMsg reports the outcome of opening a URL in the browser.
type openedMsg struct {
	url string
	err error
}
