package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestFindByURLExactMatchOnly(t *testing.T) {
	history := []Article{
		{URL: "https://example.com/a", Summary: "A"},
		{URL: "https://example.com/b/", Summary: "B"},
	}

	got, ok := FindByURL(history, "https://example.com/a")
	if !ok || got.Summary != "A" {
		t.Fatalf("FindByURL() = %+v, %v", got, ok)
	}

	for _, url := range []string{"https://example.com/b", "HTTPS://example.com/a", ""} {
		if _, ok := FindByURL(history, url); ok {
			t.Errorf("FindByURL(%q) matched, want no match", url)
		}
	}
}

func TestPrependPlacesNewestFirstWithoutAliasing(t *testing.T) {
	history := []Article{{URL: "old", Summary: "1"}}
	updated := Prepend(history, Article{URL: "new", Summary: "2"})

	want := []Article{{URL: "new", Summary: "2"}, {URL: "old", Summary: "1"}}
	if diff := cmp.Diff(want, updated); diff != "" {
		t.Fatalf("Prepend() mismatch (-want +got):\n%s", diff)
	}
	if len(history) != 1 || history[0].URL != "old" {
		t.Fatalf("input history modified: %+v", history)
	}
}

func TestFallbackSummaryMentionsURL(t *testing.T) {
	url := "https://example.com/b"
	if summary := FallbackSummary(url); !strings.Contains(summary, url) {
		t.Fatalf("fallback summary %q does not mention %s", summary, url)
	}
}

func TestCopyResetDelayIsThreeSeconds(t *testing.T) {
	if CopyResetDelay != 3*time.Second {
		t.Fatalf("CopyResetDelay = %v, want 3s", CopyResetDelay)
	}
}
