package cmd

import "github.com/fatih/color"

var (
	colorSuccess = color.New(color.FgGreen).SprintFunc()
	colorInfo    = color.New(color.FgCyan).SprintFunc()
	colorError   = color.New(color.FgRed).SprintFunc()

	// Severity labels for the detailed report, one per finding class.
	labelError          = color.New(color.FgRed, color.Bold).SprintFunc()
	labelRecommendation = color.New(color.FgYellow, color.Bold).SprintFunc()
	labelNotification   = color.New(color.FgCyan, color.Bold).SprintFunc()
)

func formatValidity(valid bool) string {
	if valid {
		return colorSuccess("Yes")
	}
	return colorError("No")
}
