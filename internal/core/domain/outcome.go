package domain

// LanguageStatus is the lifecycle state of one declared language within a
// build run.
type LanguageStatus string

const (
	// StatusPending indicates the language has not been dispatched yet.
	StatusPending LanguageStatus = "pending"
	// StatusRunning indicates the language's build step is executing.
	StatusRunning LanguageStatus = "running"
	// StatusSucceeded indicates the language's build step finished cleanly.
	StatusSucceeded LanguageStatus = "succeeded"
	// StatusFailed indicates the language's build step failed. A failed
	// language does not abort the remaining languages.
	StatusFailed LanguageStatus = "failed"
	// StatusSkipped indicates the language is not supported by any dispatch.
	StatusSkipped LanguageStatus = "skipped"
)

// Terminal reports whether the status is an end state.
func (s LanguageStatus) Terminal() bool {
	switch s {
	case StatusSucceeded, StatusFailed, StatusSkipped:
		return true
	default:
		return false
	}
}

// LanguageResult is the discriminated outcome of one language's build step.
type LanguageResult struct {
	Language string
	Status   LanguageStatus
	// Err carries the failure reason when Status is StatusFailed.
	Err error
}

// Report aggregates the per-language outcomes of a build run.
type Report struct {
	Results []LanguageResult
}

// Failed returns the results whose status is StatusFailed.
func (r *Report) Failed() []LanguageResult {
	var failed []LanguageResult
	for _, res := range r.Results {
		if res.Status == StatusFailed {
			failed = append(failed, res)
		}
	}
	return failed
}
