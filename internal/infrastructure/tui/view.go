package tui

import (
	"fmt"
	"strings"

	"github.com/doeshing/brief-go/internal/application/view"
	"github.com/doeshing/brief-go/internal/domain"
)

const defaultWidth = 80

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(TextTitle))
	b.WriteString("\n")
	b.WriteString(m.renderInput())
	b.WriteString("\n\n")

	b.WriteString(m.renderState())
	b.WriteString("\n")

	if notice := m.notice(); notice != "" {
		b.WriteString(NoticeStyle.Render(notice))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.renderHistory())
	b.WriteString("\n")

	if m.focus == focusInput {
		b.WriteString(InfoStyle.Render(TextFooterInput))
	} else {
		b.WriteString(InfoStyle.Render(TextFooterBrowse))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

func (m Model) notice() string {
	if m.status != "" {
		return m.status
	}
	return m.ctrl.Notice()
}

func (m Model) renderInput() string {
	input := m.ctrl.Input()
	if m.focus != focusInput {
		if input == "" {
			return InfoStyle.Render(TextPrompt + TextPlaceholder)
		}
		return InfoStyle.Render(TextPrompt + input)
	}
	if input == "" {
		return TextPrompt + GlyphCursor + InfoStyle.Render(" "+TextPlaceholder)
	}
	return TextPrompt + InputStyle.Render(input) + GlyphCursor
}

func (m Model) renderState() string {
	switch state := m.ctrl.State().(type) {
	case view.Fetching:
		return StatusStyle.Render(fmt.Sprintf("%s %s %s…", spinnerFrames[m.spinnerFrame], TextFetching, state.URL))
	case view.Success:
		return m.renderArticle(state.Article)
	case view.Failed:
		return m.renderFailure(state)
	default:
		return InfoStyle.Render(TextIdle)
	}
}

func (m Model) renderArticle(article domain.Article) string {
	width := m.contentWidth() - 4
	var b strings.Builder
	b.WriteString(StatusStyle.Render(article.URL))
	b.WriteString(" ")
	b.WriteString(m.copyGlyph(article.URL))
	b.WriteString("\n\n")
	b.WriteString(article.Summary)
	b.WriteString(" ")
	b.WriteString(m.copyGlyph(article.Summary))
	return BoxStyle.Width(width).Render(b.String())
}

func (m Model) renderFailure(state view.Failed) string {
	err := state.Err
	var b strings.Builder
	title := err.Title
	if err.Status > 0 {
		title = fmt.Sprintf("%s (%d)", err.Title, err.Status)
	}
	b.WriteString(ErrorStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(err.Message)
	b.WriteString("\n")
	if err.Suggestion != "" {
		b.WriteString(InfoStyle.Render(TextSuggestion + err.Suggestion))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(TextTipsHeader)
	b.WriteString("\n")
	for _, tip := range domain.TroubleshootingTips {
		b.WriteString(InfoStyle.Render("  • " + tip))
		b.WriteString("\n")
	}
	if err.OffersFallback() && state.URL != "" {
		b.WriteString("\n")
		b.WriteString(NoticeStyle.Render(TextFallback))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderHistory() string {
	history := m.ctrl.History()
	var b strings.Builder
	b.WriteString(fmt.Sprintf("History (%d)\n", len(history)))
	if len(history) == 0 {
		b.WriteString(InfoStyle.Render("  " + TextNoHistory))
		b.WriteString("\n")
		return b.String()
	}

	start, end := m.historyWindow(len(history))
	width := m.contentWidth() - 6
	for i := start; i < end; i++ {
		url := truncate(history[i].URL, width)
		row := fmt.Sprintf("%s %s", m.copyGlyph(history[i].URL), url)
		if m.focus == focusBrowse && i == m.cursor {
			b.WriteString("> " + SelectedStyle.Render(row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}
	if end-start < len(history) {
		b.WriteString(InfoStyle.Render(fmt.Sprintf("  %d–%d of %d", start+1, end, len(history))))
		b.WriteString("\n")
	}
	return b.String()
}

// historyWindow keeps the cursor visible within historyHeight rows.
func (m Model) historyWindow(total int) (int, int) {
	height := m.historyHeight
	if total <= height {
		return 0, total
	}
	start := m.cursor - height/2
	if start < 0 {
		start = 0
	}
	if start+height > total {
		start = total - height
	}
	return start, start + height
}

func (m Model) copyGlyph(text string) string {
	if text != "" && m.ctrl.Copied() == text {
		return StatusStyle.Render(GlyphCopied)
	}
	return InfoStyle.Render(GlyphCopy)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if n <= 1 || len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
