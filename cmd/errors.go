package cmd

import "fmt"

// ChecksFailedError reports that one or more domains failed validation.
// It drives the non-zero exit code without masking the printed report.
type ChecksFailedError struct {
	Failed int
}

func (e *ChecksFailedError) Error() string {
	return fmt.Sprintf("%d domain(s) failed security.txt validation", e.Failed)
}
