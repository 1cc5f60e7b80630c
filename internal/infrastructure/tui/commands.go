package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/doeshing/brief-go/internal/application/view"
	"github.com/doeshing/brief-go/internal/domain"
	"github.com/doeshing/brief-go/internal/ports"
)

const spinnerInterval = 100 * time.Millisecond

// copyResetDelay is a variable so tests can shorten it.
var copyResetDelay = domain.CopyResetDelay

// fetchCmd runs the summary request off the update loop.
func fetchCmd(ctx context.Context, ctrl *view.Controller, req view.Request) tea.Cmd {
	return func() tea.Msg {
		return summaryMsg{result: ctrl.Fetch(ctx, req)}
	}
}

// clearCopiedCmd resets the copy marker for token after the delay.
func clearCopiedCmd(token uint64, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearCopiedMsg{token: token}
	})
}

func spinnerTickCmd() tea.Cmd {
	return tea.Tick(spinnerInterval, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

func openCmd(opener ports.BrowserOpener, url string) tea.Cmd {
	return func() tea.Msg {
		return openedMsg{url: url, err: opener.Open(url)}
	}
}
