package doctor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/doeshing/brief-go/internal/domain"
	"github.com/doeshing/brief-go/internal/ports"
)

// HistoryInspector is the subset of the history store doctor reports on.
type HistoryInspector interface {
	ports.HistoryRepository
	Location() string
	Size(ctx context.Context) int
}

// toolLister is implemented by clipboards that can name the programs they try.
type toolLister interface {
	Tools() []string
}

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	History        HistoryInspector
	Clipboard      ports.Clipboard
	// Getenv defaults to os.Getenv.
	Getenv func(string) string
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("loaded format %s", cfg.ConfigFormatVersion)))

	checks = append(checks, s.apiKeyCheck(cfg.API))

	if s.History != nil {
		articles := s.History.Load(ctx)
		size := s.History.Size(ctx)
		checks = append(checks, ok("History", fmt.Sprintf("%s articles, %s at %s",
			humanize.Comma(int64(len(articles))), humanize.Bytes(uint64(size)), s.History.Location())))
	} else {
		checks = append(checks, warn("History", "history store not initialized"))
	}

	if s.Clipboard != nil && s.Clipboard.Enabled() {
		checks = append(checks, ok("Clipboard", "copy tool available"))
	} else {
		checks = append(checks, warn("Clipboard", s.missingClipboardDetails()))
	}

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) apiKeyCheck(api domain.APISettings) domain.HealthCheck {
	getenv := s.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if api.AuthEnvVar == "" {
		return fail("API key", "api.auth_env_var is not set")
	}
	if getenv(api.AuthEnvVar) == "" {
		return warn("API key", fmt.Sprintf("%s missing; only history and fallback summaries will work", api.AuthEnvVar))
	}
	return ok("API key", fmt.Sprintf("%s set for %s", api.AuthEnvVar, api.Host))
}

func (s *Service) missingClipboardDetails() string {
	lister, isLister := s.Clipboard.(toolLister)
	if !isLister || len(lister.Tools()) == 0 {
		return "no clipboard tool found"
	}
	return fmt.Sprintf("no clipboard tool found (%s)", strings.Join(lister.Tools(), ", "))
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
