package cmd

import (
	"testing"

	"github.com/fatih/color"
)

func TestFormatValidity(t *testing.T) {
	color.NoColor = true

	if got := formatValidity(true); got != "Yes" {
		t.Fatalf("expected Yes, got %q", got)
	}
	if got := formatValidity(false); got != "No" {
		t.Fatalf("expected No, got %q", got)
	}
}
