// Package tui is the interactive terminal rendering of the summary view.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/doeshing/brief-go/internal/application/view"
	"github.com/doeshing/brief-go/internal/domain"
	"github.com/doeshing/brief-go/internal/ports"
)

// focus selects which part of the screen receives keys.
type focus int

const (
	focusInput focus = iota
	focusBrowse
)

// Options configure a Model.
type Options struct {
	Opener        ports.BrowserOpener
	Logger        ports.Logger
	HistoryHeight int
}

// Model adapts the view controller to bubbletea. All controller mutation
// happens inside Update.
type Model struct {
	ctx    context.Context
	ctrl   *view.Controller
	opener ports.BrowserOpener
	logger ports.Logger

	focus         focus
	cursor        int
	historyHeight int
	width         int

	spinning     bool
	spinnerFrame int

	// cancelFetch aborts the in-flight request for fetchGen.
	cancelFetch context.CancelFunc
	fetchGen    uint64

	status string
}

// NewModel creates the terminal model. Input starts focused unless a URL
// was preloaded, in which case Init submits it.
func NewModel(ctx context.Context, ctrl *view.Controller, opts Options) Model {
	height := opts.HistoryHeight
	if height <= 0 {
		height = domain.DefaultHistoryHeight
	}
	m := Model{
		ctx:           ctx,
		ctrl:          ctrl,
		opener:        opts.Opener,
		logger:        opts.Logger,
		historyHeight: height,
	}
	if ctrl.Input() != "" {
		m.focus = focusBrowse
	}
	return m
}

// Init implements tea.Model. A URL passed on the command line is submitted
// straight away.
func (m Model) Init() tea.Cmd {
	if m.ctrl.Input() == "" {
		return nil
	}
	return func() tea.Msg { return submitMsg{} }
}

// submitMsg triggers a submission of the current input.
type submitMsg struct{}

// Controller exposes the underlying state machine.
func (m Model) Controller() *view.Controller {
	return m.ctrl
}
