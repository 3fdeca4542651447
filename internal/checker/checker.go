// Package checker runs security.txt validation across a list of domains.
//
// Architecture overview:
//
//   - Validator is the RFC 9116 collaborator boundary; securitytxt.Client is
//     the production implementation.
//   - SecurityTXTChecker adapts collaborator output into a fixed-shape
//     DomainResult and applies the minimum-expiry policy.
//   - Runner fans the configured domains out over a bounded worker pool with
//     optional rate limiting; results always come back in configured order.
//   - Summarize folds the results into the Summary consumed by the report
//     and the healthcheck ping.
package checker

import (
	"context"
	"time"

	"github.com/khanhnv2901/sectxt-cli/internal/securitytxt"
)

// DomainResult is the outcome of checking a single domain. It is created by
// the adapter, immutable afterwards, and never aborts the batch.
type DomainResult struct {
	Domain          string     `json:"domain"`
	CheckedAt       time.Time  `json:"checked_at"`
	Errors          []string   `json:"errors,omitempty"`
	Recommendations []string   `json:"recommendations,omitempty"`
	Notifications   []string   `json:"notifications,omitempty"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`

	// ExpiryOK is false only when a parsed Expires field violates the
	// minimum-remaining-validity policy; an unknown expiry is not a
	// violation.
	ExpiryOK bool `json:"expiry_ok"`
	Valid    bool `json:"valid"`
}

// Validator produces RFC 9116 findings for a single domain. An error return
// means the domain could not be checked at all (network failure, bad input);
// everything else is expressed as findings in the Report.
type Validator interface {
	Validate(ctx context.Context, domain string) (*securitytxt.Report, error)
}

// DomainChecker is the interface the Runner drives for each domain.
type DomainChecker interface {
	// Check validates a single domain. It must not panic and must capture
	// per-domain failures inside the returned result.
	Check(ctx context.Context, domain string) DomainResult

	// Name identifies this checker in progress output.
	Name() string
}
