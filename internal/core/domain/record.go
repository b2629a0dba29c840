package domain

import "time"

// BuildRecord captures the outcome of one language's build step as written to
// the on-disk state file after the step concludes. Records are informational:
// the staleness engine never consults them, rebuild decisions are made purely
// from filesystem timestamps.
type BuildRecord struct {
	Language  string         `json:"language"`
	Target    string         `json:"target,omitzero"`
	Digest    string         `json:"digest,omitzero"`
	Status    LanguageStatus `json:"status"`
	Duration  time.Duration  `json:"duration"`
	Timestamp time.Time      `json:"timestamp"`
}
