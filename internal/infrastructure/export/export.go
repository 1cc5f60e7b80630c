// Package export renders the article history for sharing outside the app.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/doeshing/brief-go/internal/domain"
)

// Format selects the output encoding.
type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// ParseFormat accepts the format names and their common aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html", "htm":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want json, markdown or html)", name)
	}
}

// FormatForPath guesses the format from a file extension, defaulting to JSON.
func FormatForPath(path string) Format {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".md"), strings.HasSuffix(lower, ".markdown"):
		return FormatMarkdown
	case strings.HasSuffix(lower, ".html"), strings.HasSuffix(lower, ".htm"):
		return FormatHTML
	default:
		return FormatJSON
	}
}

// Write renders articles to w in the requested format.
func Write(w io.Writer, articles []domain.Article, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, articles)
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(articles))
		return err
	case FormatHTML:
		return writeHTML(w, articles)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

func writeJSON(w io.Writer, articles []domain.Article) error {
	if articles == nil {
		articles = []domain.Article{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(articles)
}

// Markdown renders the history as one section per article, newest first.
func Markdown(articles []domain.Article) string {
	var b strings.Builder
	b.WriteString("# Article summaries\n\n")
	if len(articles) == 0 {
		b.WriteString("_No articles yet._\n")
		return b.String()
	}
	for i, article := range articles {
		fmt.Fprintf(&b, "## %d. %s\n\n", i+1, markdownLink(article.URL))
		b.WriteString(strings.TrimSpace(article.Summary))
		b.WriteString("\n\n")
	}
	return b.String()
}

var (
	markdownEscaper    = strings.NewReplacer(`\`, `\\`, "`", "\\`", "*", `\*`, "_", `\_`, "[", `\[`, "]", `\]`, "<", `\<`, ">", `\>`, "(", `\(`, ")", `\)`, "#", `\#`, "!", `\!`, "|", `\|`, "~", `\~`, "&", `\&`)
	destinationEscaper = strings.NewReplacer("<", "%3C", ">", "%3E")
)

// markdownLink links http(s) URLs and writes anything else as plain text.
func markdownLink(raw string) string {
	text := markdownEscaper.Replace(raw)
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return text
	}
	return fmt.Sprintf("[%s](<%s>)", text, destinationEscaper.Replace(parsed.String()))
}

func writeHTML(w io.Writer, articles []domain.Article) error {
	var body bytes.Buffer
	if err := goldmark.Convert([]byte(Markdown(articles)), &body); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	_, err := fmt.Fprintf(w, htmlPage, body.String())
	return err
}

const htmlPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Article summaries</title>
</head>
<body>
%s</body>
</html>
`
