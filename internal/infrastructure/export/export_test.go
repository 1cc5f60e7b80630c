package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/brief-go/internal/domain"
)

var sample = []domain.Article{
	{URL: "https://example.com/b", Summary: "Second summary."},
	{URL: "https://example.com/a", Summary: "First summary."},
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sample, FormatJSON); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	var got []domain.Article
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if diff := cmp.Diff(sample, got); diff != "" {
		t.Fatalf("articles mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteJSONEmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil, FormatJSON); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestWriteMarkdownAndHTMLIncludeEveryArticle(t *testing.T) {
	for _, format := range []Format{FormatMarkdown, FormatHTML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, sample, format); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			out := buf.String()
			for _, article := range sample {
				if !strings.Contains(out, article.URL) || !strings.Contains(out, article.Summary) {
					t.Fatalf("%s output missing %s:\n%s", format, article.URL, out)
				}
			}
		})
	}
}

func TestWriteHTMLRendersMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sample, FormatHTML); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "<h1>Article summaries</h1>") {
		t.Fatalf("heading not rendered:\n%s", out)
	}
	if !strings.Contains(out, `<a href="https://example.com/a">`) {
		t.Fatalf("url not linked:\n%s", out)
	}
}

func TestWriteHTMLKeepsUnlinkableURLsReadable(t *testing.T) {
	articles := []domain.Article{
		{URL: "example.com/a", Summary: "No scheme."},
		{URL: "https://example.com/a_b_c", Summary: "Underscores."},
	}
	var buf bytes.Buffer
	if err := Write(&buf, articles, FormatHTML); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Contains(out, "&lt;example.com/a&gt;") || !strings.Contains(out, "<h2>1. example.com/a</h2>") {
		t.Fatalf("plain url heading:\n%s", out)
	}
	if !strings.Contains(out, `<a href="https://example.com/a_b_c">https://example.com/a_b_c</a>`) {
		t.Fatalf("linked url heading:\n%s", out)
	}
	if strings.Contains(out, "<em>") {
		t.Fatalf("url text parsed as emphasis:\n%s", out)
	}
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{"": FormatJSON, "MD": FormatMarkdown, "html": FormatHTML}
	for in, want := range tests {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("pdf"); err == nil {
		t.Fatal("expected error for pdf")
	}
	if FormatForPath("out.markdown") != FormatMarkdown || FormatForPath("x.htm") != FormatHTML || FormatForPath("x") != FormatJSON {
		t.Fatal("FormatForPath mismatch")
	}
}
