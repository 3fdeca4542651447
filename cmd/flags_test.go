package cmd

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestApplyIntDefault(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("timeout", 15, "")

	var applied int
	applyIntDefault(flags, "timeout", 30, func(v int) {
		applied = v
	})
	if applied != 30 {
		t.Fatalf("expected setter to receive 30, got %d", applied)
	}

	// When the flag was set explicitly, the config value must not win.
	if err := flags.Set("timeout", "7"); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}
	applied = 0
	applyIntDefault(flags, "timeout", 30, func(v int) {
		applied = v
	})
	if applied != 0 {
		t.Fatalf("setter should not run when flag overridden, got %d", applied)
	}
}

func TestApplyIntDefaultNilSafety(t *testing.T) {
	applyIntDefault(nil, "timeout", 30, func(v int) {
		t.Fatal("setter must not run with nil flag set")
	})

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	applyIntDefault(flags, "timeout", 30, nil)
}
