package doctor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/doeshing/brief-go/internal/domain"
)

type stubConfig struct {
	cfg domain.Config
	err error
}

func (s stubConfig) Load(context.Context) (domain.Config, error) { return s.cfg, s.err }

type stubHistory struct {
	articles []domain.Article
}

func (s stubHistory) Load(context.Context) []domain.Article        { return s.articles }
func (s stubHistory) Save(context.Context, []domain.Article) error { return nil }
func (s stubHistory) Clear(context.Context) error                  { return nil }
func (s stubHistory) Location() string                             { return "/tmp/storage [articles]" }
func (s stubHistory) Size(context.Context) int                     { return 2048 }

type stubClipboard bool

func (s stubClipboard) Copy(string) error { return nil }
func (s stubClipboard) Enabled() bool     { return bool(s) }

func findCheck(t *testing.T, report domain.HealthReport, name string) domain.HealthCheck {
	t.Helper()
	for _, check := range report.Checks {
		if check.Name == name {
			return check
		}
	}
	t.Fatalf("check %q not found in %+v", name, report.Checks)
	return domain.HealthCheck{}
}

func TestRunReportsAllChecks(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfig{cfg: domain.Config{ConfigFormatVersion: "1", API: domain.APISettings{AuthEnvVar: "KEY", Host: "api.example.com"}}},
		History:        stubHistory{articles: []domain.Article{{URL: "u", Summary: "s"}}},
		Clipboard:      stubClipboard(true),
		Getenv:         func(string) string { return "secret" },
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !report.Healthy() {
		t.Fatalf("expected healthy report: %+v", report)
	}
	history := findCheck(t, report, "History")
	if !strings.Contains(history.Details, "1 articles") || !strings.Contains(history.Details, "2.0 kB") {
		t.Fatalf("history details = %q", history.Details)
	}
	if key := findCheck(t, report, "API key"); strings.Contains(key.Details, "secret") {
		t.Fatalf("api key leaked: %q", key.Details)
	}
}

func TestRunWarnsOnMissingKeyAndClipboard(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfig{cfg: domain.Config{API: domain.APISettings{AuthEnvVar: "KEY"}}},
		History:        stubHistory{},
		Clipboard:      stubClipboard(false),
		Getenv:         func(string) string { return "" },
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got := findCheck(t, report, "API key").Status; got != domain.HealthWarn {
		t.Fatalf("api key status = %s", got)
	}
	if got := findCheck(t, report, "Clipboard").Status; got != domain.HealthWarn {
		t.Fatalf("clipboard status = %s", got)
	}
	if !report.Healthy() {
		t.Fatal("warnings should not make the report unhealthy")
	}
}

func TestRunStopsOnConfigError(t *testing.T) {
	svc := &Service{ConfigProvider: stubConfig{err: errors.New("bad yaml")}}

	report, err := svc.Run(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if report.Healthy() || len(report.Checks) != 1 {
		t.Fatalf("report = %+v", report)
	}
}

type listingClipboard []string

func (l listingClipboard) Copy(string) error { return errors.New("no tool") }
func (l listingClipboard) Enabled() bool     { return false }
func (l listingClipboard) Tools() []string   { return l }

func TestClipboardWarningNamesEveryTool(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfig{cfg: domain.Config{API: domain.APISettings{AuthEnvVar: "KEY"}}},
		History:        stubHistory{},
		Clipboard:      listingClipboard{"wl-copy", "xclip", "xsel"},
		Getenv:         func(string) string { return "secret" },
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	got := findCheck(t, report, "Clipboard").Details
	if got != "no clipboard tool found (wl-copy, xclip, xsel)" {
		t.Fatalf("clipboard details = %q", got)
	}
}
