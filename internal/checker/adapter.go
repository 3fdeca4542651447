package checker

import (
	"context"
	"fmt"
	"time"

	"github.com/khanhnv2901/sectxt-cli/internal/securitytxt"
)

// SecurityTXTChecker wraps the securitytxt collaborator for one domain and
// normalizes its findings into a DomainResult.
type SecurityTXTChecker struct {
	Validator     Validator
	MinExpiryDays int
}

// Check validates a single domain's security.txt. Transport failures become
// a synthetic error entry so one unreachable domain never stops the batch.
func (c *SecurityTXTChecker) Check(ctx context.Context, domain string) DomainResult {
	result := DomainResult{
		Domain:    domain,
		CheckedAt: time.Now().UTC(),
		// The expiry constraint starts satisfied; only a parsed Expires
		// closer than the minimum can violate it.
		ExpiryOK: true,
	}

	report, err := c.Validator.Validate(ctx, domain)
	if err != nil {
		result.Errors = []string{fmt.Sprintf("fetch failed: %v", err)}
		return result
	}

	result.Errors = flatten(report.Errors)
	result.Recommendations = flatten(report.Recommendations)
	result.Notifications = flatten(report.Notifications)
	result.ExpiresAt = report.ExpiresAt

	if report.ExpiresAt != nil {
		minRemaining := time.Duration(c.MinExpiryDays) * 24 * time.Hour
		if time.Until(*report.ExpiresAt) < minRemaining {
			result.ExpiryOK = false
			result.Errors = append(result.Errors,
				fmt.Sprintf("Expires field is less than %d days in the future", c.MinExpiryDays))
		}
	}

	result.Valid = len(result.Errors) == 0 && result.ExpiryOK
	return result
}

// Name returns the name of this checker.
func (c *SecurityTXTChecker) Name() string {
	return "security.txt"
}

func flatten(findings []securitytxt.Finding) []string {
	if len(findings) == 0 {
		return nil
	}
	out := make([]string, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.String())
	}
	return out
}
