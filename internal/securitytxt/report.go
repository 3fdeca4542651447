package securitytxt

import (
	"fmt"
	"time"
)

// Finding is a single validation outcome with a stable machine code,
// a human-readable message, and the 1-based source line when known.
type Finding struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
}

func (f Finding) String() string {
	if f.Line > 0 {
		return fmt.Sprintf("[%s] (line %d): %s", f.Code, f.Line, f.Message)
	}
	return fmt.Sprintf("[%s]: %s", f.Code, f.Message)
}

// Report groups all findings for one domain by severity. ExpiresAt is the
// parsed Expires field, nil when absent or unparseable.
type Report struct {
	Errors          []Finding  `json:"errors"`
	Recommendations []Finding  `json:"recommendations"`
	Notifications   []Finding  `json:"notifications"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
}

func (r *Report) errorf(code string, line int, format string, args ...any) {
	r.Errors = append(r.Errors, Finding{Code: code, Message: fmt.Sprintf(format, args...), Line: line})
}

func (r *Report) recommendf(code string, line int, format string, args ...any) {
	r.Recommendations = append(r.Recommendations, Finding{Code: code, Message: fmt.Sprintf(format, args...), Line: line})
}

func (r *Report) notef(code string, line int, format string, args ...any) {
	r.Notifications = append(r.Notifications, Finding{Code: code, Message: fmt.Sprintf(format, args...), Line: line})
}
