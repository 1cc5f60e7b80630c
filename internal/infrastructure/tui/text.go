package tui

// UI text constants
const (
	TextTitle       = "brief · article summarizer"
	TextPrompt      = "URL › "
	TextPlaceholder = "Paste an article URL and press enter"
	TextIdle        = "Summaries of articles you submit appear here."
	TextFetching    = "Summarizing"
	TextNoHistory   = "No articles yet."
	TextSuggestion  = "Suggestion: "
	TextTipsHeader  = "Troubleshooting:"
	TextFallback    = "f  use fallback summary   o  visit original article"

	TextFooterInput  = "enter summarize · tab browse history · ctrl+c quit"
	TextFooterBrowse = "↑/↓ move · enter select · c copy url · s copy summary · f fallback · o open · tab edit · q quit"

	GlyphCopy   = "⧉"
	GlyphCopied = "✓"
	GlyphCursor = "▌"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
