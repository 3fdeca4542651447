package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/khanhnv2901/sectxt-cli/internal/config"
)

// applyConfigDefaults merges config-file runtime settings into the check
// flags when the user did not explicitly override the corresponding flag.
func applyConfigDefaults(cmd *cobra.Command, cfg *config.Config) {
	applyIntDefault(cmd.Flags(), "concurrency", cfg.Concurrency, func(v int) { checkConcurrency = v })
	applyIntDefault(cmd.Flags(), "rate", cfg.RateLimit, func(v int) { checkRateLimit = v })
	applyIntDefault(cmd.Flags(), "timeout", cfg.TimeoutSecs, func(v int) { checkTimeoutSecs = v })
}

func applyIntDefault(flags *pflag.FlagSet, name string, value int, setter func(int)) {
	if flags == nil || setter == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag != nil && flag.Changed {
		return
	}
	setter(value)
}
