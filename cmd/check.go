package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/khanhnv2901/sectxt-cli/internal/checker"
	"github.com/khanhnv2901/sectxt-cli/internal/config"
	"github.com/khanhnv2901/sectxt-cli/internal/healthcheck"
	"github.com/khanhnv2901/sectxt-cli/internal/securitytxt"
)

var (
	checkConcurrency int
	checkRateLimit   int
	checkTimeoutSecs int
	checkOutput      string
)

// newValidator is indirected so command tests can rewire the collaborator.
var newValidator = func(timeout time.Duration) checker.Validator {
	return securitytxt.NewClient(timeout)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check security.txt files for all configured domains",
	Long: `Fetch and validate each configured domain's security.txt file.

Every domain is always attempted: unreachable hosts and invalid files are
recorded as per-domain findings, never as a batch abort. The command exits
non-zero when at least one domain fails validation.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	applyConfigDefaults(cmd, cfg)

	if checkOutput != outputText && checkOutput != outputJSON {
		return fmt.Errorf("unsupported output format %q (want text or json)", checkOutput)
	}

	// Keep stdout clean for JSON consumers: banner and progress lines are
	// part of the human-readable report only.
	var progress checker.ProgressFunc
	if checkOutput == outputText {
		progress = printProgress
		fmt.Printf("%s %d domain(s) from %s\n", colorInfo("Loaded"), len(cfg.Domains), cfgFile)
		fmt.Printf("Minimum expiry: %d day(s) in the future\n\n", cfg.MinExpiryDays)
	}

	timeout := time.Duration(checkTimeoutSecs) * time.Second
	chk := &checker.SecurityTXTChecker{
		Validator:     newValidator(timeout),
		MinExpiryDays: cfg.MinExpiryDays,
	}
	runner := &checker.Runner{
		Concurrency: checkConcurrency,
		RateLimit:   checkRateLimit,
		Timeout:     timeout,
		Progress:    progress,
	}

	summary := checker.Summarize(runner.Run(cmd.Context(), cfg.Domains, chk))

	if checkOutput == outputJSON {
		if err := writeJSON(os.Stdout, summary); err != nil {
			return err
		}
	} else {
		renderResults(os.Stdout, summary)
		renderSummary(os.Stdout, summary)
	}

	// The ping runs on both the success and failure path and must never
	// change the exit status; the notifier swallows its own failures.
	if cfg.HealthcheckEnabled {
		healthcheck.NewFromEnv(logger).Ping(cmd.Context(), summary.AllValid(), summary.Passed, summary.Total)
	}

	if !summary.AllValid() {
		return &ChecksFailedError{Failed: summary.Failed}
	}
	return nil
}

func printProgress(position, total int, domain string) {
	fmt.Printf("[%d/%d] checking %s\n", position, total, domain)
}

func writeJSON(w io.Writer, summary checker.Summary) error {
	b, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func init() {
	checkCmd.Flags().IntVarP(&checkConcurrency, "concurrency", "c", 1, "max concurrent domain checks")
	checkCmd.Flags().IntVarP(&checkRateLimit, "rate", "r", 0, "requests per second, 0 for unlimited")
	checkCmd.Flags().IntVarP(&checkTimeoutSecs, "timeout", "t", 15, "per-domain timeout in seconds")
	checkCmd.Flags().StringVar(&checkOutput, "output", outputText, "report format (text|json)")
}
