// Package summarizer is the HTTP adapter for the article summarization API.
package summarizer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/doeshing/brief-go/internal/domain"
	"github.com/doeshing/brief-go/internal/ports"
)

const (
	keyHeader  = "x-rapidapi-key"
	hostHeader = "x-rapidapi-host"

	// maxBodyBytes bounds how much of a response is read.
	maxBodyBytes = 1 << 20
)

// Config is everything the client needs, resolved once at startup.
type Config struct {
	BaseURL string
	Host    string
	APIKey  string
	// KeyEnvVar only names the key's source in error messages.
	KeyEnvVar string
	Length    int
	Timeout   time.Duration
}

// Client calls GET /summarize and maps failures onto domain.SummaryError.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     ports.Logger
}

// New builds a client. A nil httpClient gets one with cfg.Timeout.
func New(cfg Config, httpClient *http.Client, logger ports.Logger) *Client {
	if cfg.Length <= 0 {
		cfg.Length = domain.DefaultSummaryLength
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = time.Duration(domain.DefaultTimeoutSeconds) * time.Second
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{cfg: cfg, httpClient: httpClient, logger: logger}
}

// FromSettings resolves API settings plus the key from the environment.
func FromSettings(settings domain.APISettings, apiKey string) Config {
	return Config{
		BaseURL:   settings.BaseURL,
		Host:      settings.Host,
		APIKey:    apiKey,
		KeyEnvVar: settings.AuthEnvVar,
		Length:    settings.Length,
		Timeout:   settings.Timeout(),
	}
}

// Summarize implements ports.Summarizer.
func (c *Client) Summarize(ctx context.Context, articleURL string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", domain.MissingCredentials(c.cfg.KeyEnvVar)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(articleURL), nil)
	if err != nil {
		return "", domain.TransportError(err)
	}
	c.setHeaders(req)

	c.logger.Debug("requesting summary", map[string]interface{}{"url": articleURL})
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", domain.TransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", domain.TransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		summaryErr := domain.StatusError(resp.StatusCode)
		summaryErr.Err = fmt.Errorf("summarize: %s", resp.Status)
		c.logger.Warn("summary request failed", map[string]interface{}{
			"status": resp.StatusCode,
			"kind":   summaryErr.Kind,
			"body":   truncate(string(body), 200),
		})
		return "", summaryErr
	}

	return parseSummary(resp.StatusCode, body)
}

func (c *Client) endpoint(articleURL string) string {
	base := strings.TrimRight(c.cfg.BaseURL, "/")
	return base + "/summarize?url=" + url.QueryEscape(articleURL) + "&length=" + strconv.Itoa(c.cfg.Length)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set(keyHeader, c.cfg.APIKey)
	if c.cfg.Host != "" {
		req.Header.Set(hostHeader, c.cfg.Host)
	}
	req.Header.Set("accept", "application/json")
}

func parseSummary(status int, body []byte) (string, error) {
	var response struct {
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", domain.ServerError(status, "The service returned an unreadable response.", err)
	}
	summary := strings.TrimSpace(response.Summary)
	if summary == "" {
		return "", domain.ServerError(status, "The service returned no summary.", errors.New("empty summary"))
	}
	return summary, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

var _ ports.Summarizer = (*Client)(nil)
