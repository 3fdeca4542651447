package checker

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const defaultTimeout = 15 * time.Second

// ProgressFunc is invoked just before a domain check starts. position is
// 1-based within the configured domain order.
type ProgressFunc func(position, total int, domain string)

// Runner executes checks for every configured domain. Results are indexed by
// the domain's configured position, so report order matches config order no
// matter how the pool schedules the work.
type Runner struct {
	Concurrency int           // Maximum number of concurrent checks (min 1)
	RateLimit   int           // Requests per second, 0 means unlimited
	Timeout     time.Duration // Per-domain timeout
	Progress    ProgressFunc
}

// Run checks every domain and returns one result per domain, in input order.
// A failing domain never prevents the remaining domains from being checked.
func (r *Runner) Run(ctx context.Context, domains []string, chk DomainChecker) []DomainResult {
	concurrency := r.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	limit := rate.Inf
	burst := 1
	if r.RateLimit > 0 {
		limit = rate.Limit(r.RateLimit)
		burst = r.RateLimit
	}
	limiter := rate.NewLimiter(limit, burst)

	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup
	results := make([]DomainResult, len(domains))

	for i, domain := range domains {
		wg.Add(1)
		go func(idx int, d string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			_ = limiter.Wait(ctx)

			if r.Progress != nil {
				r.Progress(idx+1, len(domains), d)
			}

			checkCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			results[idx] = chk.Check(checkCtx, d)
		}(i, domain)
	}

	wg.Wait()
	return results
}
