package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/doeshing/brief-go/internal/application/view"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case submitMsg:
		return m.submit()
	case summaryMsg:
		return m.handleSummary(msg)
	case clearCopiedMsg:
		m.ctrl.ClearCopied(msg.token)
		return m, nil
	case spinnerTickMsg:
		return m.handleSpinnerTick()
	case openedMsg:
		if msg.err != nil {
			m.status = "Could not open browser: " + msg.err.Error()
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}
	if m.focus == focusInput {
		return m.handleInputKey(msg)
	}
	return m.handleBrowseKey(msg)
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.submit()
	case tea.KeyTab, tea.KeyEsc:
		m.focus = focusBrowse
	case tea.KeyBackspace:
		input := []rune(m.ctrl.Input())
		if len(input) > 0 {
			m.ctrl.SetInput(string(input[:len(input)-1]))
		}
	case tea.KeyCtrlU:
		m.ctrl.SetInput("")
	case tea.KeySpace:
		m.ctrl.SetInput(m.ctrl.Input() + " ")
	case tea.KeyRunes:
		m.ctrl.SetInput(m.ctrl.Input() + string(msg.Runes))
	}
	return m, nil
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	history := m.ctrl.History()
	switch msg.String() {
	case "q":
		return m.quit()
	case "tab", "esc", "i", "/":
		m.focus = focusInput
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(history)-1 {
			m.cursor++
		}
	case "enter":
		m.ctrl.Select(m.cursor)
	case "c":
		if m.cursor < len(history) {
			return m.copy(history[m.cursor].URL)
		}
	case "s":
		if article, ok := view.Displayed(m.ctrl.State()); ok {
			return m.copy(article.Summary)
		}
	case "f":
		if m.ctrl.Fallback(m.ctx) {
			m.cursor = 0
		}
	case "o":
		return m.openOriginal()
	}
	return m, nil
}

// submit starts a fetch for the current input, cancelling any fetch
// already in flight.
func (m Model) submit() (tea.Model, tea.Cmd) {
	req, needsFetch := m.ctrl.Submit()
	m.status = ""
	if !needsFetch {
		m.syncCursor()
		return m, nil
	}

	if m.cancelFetch != nil {
		m.cancelFetch()
	}
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancelFetch = cancel
	m.fetchGen = req.Generation

	cmds := []tea.Cmd{fetchCmd(ctx, m.ctrl, req)}
	if !m.spinning {
		m.spinning = true
		cmds = append(cmds, spinnerTickCmd())
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleSummary(msg summaryMsg) (tea.Model, tea.Cmd) {
	if msg.result.Generation == m.fetchGen && m.cancelFetch != nil {
		m.cancelFetch()
		m.cancelFetch = nil
	}
	m.ctrl.Resolve(m.ctx, msg.result)
	m.syncCursor()
	return m, nil
}

func (m Model) handleSpinnerTick() (tea.Model, tea.Cmd) {
	if _, fetching := m.ctrl.State().(view.Fetching); !fetching {
		m.spinning = false
		return m, nil
	}
	m.spinnerFrame = (m.spinnerFrame + 1) % len(spinnerFrames)
	return m, spinnerTickCmd()
}

func (m Model) copy(text string) (tea.Model, tea.Cmd) {
	token, err := m.ctrl.Copy(text)
	if err != nil {
		if m.logger != nil {
			m.logger.Debug("copy failed", map[string]interface{}{"error": err})
		}
		return m, nil
	}
	return m, clearCopiedCmd(token, copyResetDelay)
}

// openOriginal opens the displayed or failed article's URL.
func (m Model) openOriginal() (tea.Model, tea.Cmd) {
	if m.opener == nil {
		return m, nil
	}
	var url string
	switch state := m.ctrl.State().(type) {
	case view.Success:
		url = state.Article.URL
	case view.Failed:
		url = state.URL
	}
	if url == "" {
		return m, nil
	}
	return m, openCmd(m.opener, url)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.cancelFetch != nil {
		m.cancelFetch()
		m.cancelFetch = nil
	}
	return m, tea.Quit
}

// syncCursor points the history cursor at the displayed article.
func (m *Model) syncCursor() {
	article, ok := view.Displayed(m.ctrl.State())
	if !ok {
		return
	}
	for i, entry := range m.ctrl.History() {
		if entry.URL == article.URL {
			m.cursor = i
			return
		}
	}
}
