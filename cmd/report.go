package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/khanhnv2901/sectxt-cli/internal/checker"
)

const (
	outputText = "text"
	outputJSON = "json"
)

var reportBorder = strings.Repeat("=", 80)

// renderResults prints the per-domain detail blocks. It is purely a function
// of the summary and never re-derives validity.
func renderResults(w io.Writer, summary checker.Summary) {
	fmt.Fprintf(w, "\n%s\nDETAILED RESULTS\n%s\n", reportBorder, reportBorder)

	for _, res := range summary.Results {
		fmt.Fprintf(w, "\n%s\n", reportBorder)
		fmt.Fprintf(w, "Domain: %s\n", res.Domain)
		fmt.Fprintf(w, "Valid: %s\n", formatValidity(res.Valid))
		fmt.Fprintln(w, reportBorder)

		renderFindings(w, labelError, "Errors", res.Errors)
		if len(res.Errors) == 0 {
			fmt.Fprintln(w, "\nNo errors found.")
		}
		renderFindings(w, labelRecommendation, "Recommendations", res.Recommendations)
		renderFindings(w, labelNotification, "Notifications", res.Notifications)
	}
}

func renderFindings(w io.Writer, label func(...interface{}) string, title string, findings []string) {
	if len(findings) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s (%d):\n", label(title), len(findings))
	for _, msg := range findings {
		fmt.Fprintf(w, "  - %s\n", msg)
	}
}

// renderSummary prints the aggregate counters and lists the failing domains.
func renderSummary(w io.Writer, summary checker.Summary) {
	fmt.Fprintf(w, "\n%s\nSUMMARY\n%s\n", reportBorder, reportBorder)
	fmt.Fprintf(w, "\nTotal domains checked: %d\n", summary.Total)
	fmt.Fprintf(w, "Valid: %d\n", summary.Passed)
	fmt.Fprintf(w, "Invalid: %d\n", summary.Failed)

	if summary.Failed > 0 {
		fmt.Fprintln(w, "\nDomains with issues:")
		for _, res := range summary.Results {
			if !res.Valid {
				fmt.Fprintf(w, "  - %s (%d error(s))\n", res.Domain, len(res.Errors))
			}
		}
	}

	fmt.Fprintf(w, "\n%d/%d domains passed\n", summary.Passed, summary.Total)
}
