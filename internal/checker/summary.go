package checker

// Summary aggregates one run's results. It is assembled once by Summarize
// and consumed read-only by the report and the healthcheck notifier.
type Summary struct {
	Total   int            `json:"total"`
	Passed  int            `json:"passed"`
	Failed  int            `json:"failed"`
	Results []DomainResult `json:"results"`
}

// Summarize folds per-domain results into aggregate counters.
func Summarize(results []DomainResult) Summary {
	summary := Summary{
		Total:   len(results),
		Results: results,
	}
	for _, res := range results {
		if res.Valid {
			summary.Passed++
		} else {
			summary.Failed++
		}
	}
	return summary
}

// AllValid reports whether every domain passed.
func (s Summary) AllValid() bool {
	return s.Failed == 0
}
