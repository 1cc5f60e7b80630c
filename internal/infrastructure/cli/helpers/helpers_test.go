package helpers

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/brief-go/internal/domain"
)

func TestNestedMapRoundTrip(t *testing.T) {
	root := map[string]interface{}{"api": map[string]interface{}{"length": 3}}

	if !SetNestedMapValue(root, []string{"api", "length"}, 5) {
		t.Fatal("SetNestedMapValue returned false")
	}
	if !SetNestedMapValue(root, []string{"storage", "redis", "db"}, 2) {
		t.Fatal("SetNestedMapValue returned false for new path")
	}

	got, ok := TraverseNestedMap(root, []string{"api", "length"})
	if !ok || got != 5 {
		t.Fatalf("api.length = %v, %v", got, ok)
	}
	got, ok = TraverseNestedMap(root, []string{"storage", "redis", "db"})
	if !ok || got != 2 {
		t.Fatalf("storage.redis.db = %v, %v", got, ok)
	}
	if _, ok := TraverseNestedMap(root, []string{"api", "length", "deeper"}); ok {
		t.Fatal("traversed through a scalar")
	}
	if SetNestedMapValue(root, nil, 1) {
		t.Fatal("empty key path accepted")
	}
}

func TestParseYAMLValue(t *testing.T) {
	if got := ParseYAMLValue("42"); got != 42 {
		t.Fatalf("got %#v", got)
	}
	if got := ParseYAMLValue("true"); got != true {
		t.Fatalf("got %#v", got)
	}
	if got := ParseYAMLValue("redis"); got != "redis" {
		t.Fatalf("got %#v", got)
	}
}

func TestConfigMapConversion(t *testing.T) {
	cfg := domain.Config{
		ConfigFormatVersion: "1",
		API: domain.APISettings{
			BaseURL:        "https://api.example.com",
			Host:           "api.example.com",
			AuthEnvVar:     "KEY",
			Length:         3,
			TimeoutSeconds: 30,
		},
		Storage: domain.StorageSettings{Backend: "file", Key: "articles"},
		UI:      domain.UISettings{HistoryHeight: 8},
	}

	m, err := ConfigToMap(cfg)
	if err != nil {
		t.Fatal(err)
	}
	SetNestedMapValue(m, []string{"storage", "backend"}, "sqlite")

	updated, err := MapToConfig(m)
	if err != nil {
		t.Fatalf("MapToConfig() error = %v", err)
	}
	cfg.Storage.Backend = "sqlite"
	if diff := cmp.Diff(cfg, updated); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}

	SetNestedMapValue(m, []string{"api", "length"}, 0)
	if _, err := MapToConfig(m); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestPromptForConfirmation(t *testing.T) {
	tests := map[string]bool{"y\n": true, "YES\n": true, "n\n": false, "\n": false, "": false}
	for input, want := range tests {
		var out bytes.Buffer
		got := PromptForConfirmation(&out, bufio.NewReader(strings.NewReader(input)), "Clear?")
		if got != want {
			t.Fatalf("input %q: got %v, want %v", input, got, want)
		}
		if !strings.Contains(out.String(), "[y/N]") {
			t.Fatalf("prompt = %q", out.String())
		}
	}
}
