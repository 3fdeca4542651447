// Package securitytxt retrieves and validates RFC 9116 security.txt files.
//
// Client fetches the file from the well-known location (with the legacy
// root-path fallback) and classifies every deviation from RFC 9116 as an
// error, recommendation, or notification finding. Callers consume the
// resulting Report; only transport-level failures surface as Go errors.
package securitytxt

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"
)

const (
	wellKnownPath = "/.well-known/security.txt"
	legacyPath    = "/security.txt"

	maxBodyBytes = 1 << 20
)

// Client fetches and validates security.txt documents over HTTPS.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string

	// Scheme overrides the https default; tests point it at plain-HTTP servers.
	Scheme string
}

// NewClient returns a Client with the given per-request timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: timeout},
		UserAgent:  "sectxt-cli",
	}
}

// Validate retrieves the domain's security.txt and returns the full set of
// findings. A missing or invalid file is reported through Report findings;
// an error return means the domain could not be reached at all.
func (c *Client) Validate(ctx context.Context, domain string) (*Report, error) {
	report := &Report{}

	res := c.fetch(ctx, domain, wellKnownPath)
	legacy := false
	if res.err != nil || res.status != http.StatusOK {
		fallback := c.fetch(ctx, domain, legacyPath)
		switch {
		case fallback.err == nil && fallback.status == http.StatusOK:
			res = fallback
			legacy = true
		case res.err != nil:
			return nil, res.err
		default:
			report.errorf("no_securitytxt", 0, "security.txt not found at %s (HTTP %d)", wellKnownPath, res.status)
			return report, nil
		}
	}

	if legacy {
		report.recommendf("location", 0, "security.txt served from legacy %s, move it to %s", legacyPath, wellKnownPath)
	}
	if mt, _, err := mime.ParseMediaType(res.contentType); err != nil || mt != "text/plain" {
		report.errorf("invalid_media_type", 0, "Content-Type must be text/plain, got %q", res.contentType)
	}
	validateBody(res.body, report)
	return report, nil
}

type fetchResult struct {
	status      int
	contentType string
	body        string
	err         error
}

func (c *Client) fetch(ctx context.Context, domain, path string) fetchResult {
	u := fmt.Sprintf("%s://%s%s", c.scheme(), normalizeHost(domain), path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fetchResult{err: fmt.Errorf("create request: %w", err)}
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fetchResult{err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fetchResult{err: fmt.Errorf("read response: %w", err)}
	}

	return fetchResult{
		status:      resp.StatusCode,
		contentType: resp.Header.Get("Content-Type"),
		body:        string(body),
	}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) scheme() string {
	if c.Scheme != "" {
		return c.Scheme
	}
	return "https"
}

// normalizeHost strips any scheme, path, or trailing slash from a configured
// domain entry so plain hostnames and URLs are both accepted.
func normalizeHost(domain string) string {
	host := strings.TrimPrefix(domain, "https://")
	host = strings.TrimPrefix(host, "http://")
	host = strings.Split(host, "/")[0]
	return host
}
