package models

import "time"

// PlatformStatus is the verification outcome of one platform.
type PlatformStatus string

const (
	// PlatformPassed means every fixture matched.
	PlatformPassed PlatformStatus = "PASSED"
	// PlatformFailed means a fixture mismatched or was malformed.
	PlatformFailed PlatformStatus = "FAILED"
	// PlatformError means the classifier or the fixtures could not be loaded,
	// or the classifier panicked.
	PlatformError PlatformStatus = "ERROR"
	// PlatformSkipped means the platform was selected but not verified.
	PlatformSkipped PlatformStatus = "SKIPPED"
)

// IsSuccess reports whether the status does not fail a run.
func (s PlatformStatus) IsSuccess() bool {
	return s == PlatformPassed || s == PlatformSkipped
}

// PlatformReport is the verification result of one platform.
type PlatformReport struct {
	Name     string         `json:"name"`
	Label    string         `json:"label"`
	Status   PlatformStatus `json:"status"`
	Fixtures int            `json:"fixtures"`
	Checked  int            `json:"checked"`
	Err      error          `json:"-"`
	Duration time.Duration  `json:"duration"`
}

// Error returns the failure message, or "" for a passing platform.
func (r PlatformReport) Error() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// RunSummary gathers the reports of one verification run.
type RunSummary struct {
	RunID    string           `json:"run_id"`
	Started  time.Time        `json:"started"`
	Finished time.Time        `json:"finished"`
	Reports  []PlatformReport `json:"reports"`
}

// Passed reports whether every platform succeeded.
func (s *RunSummary) Passed() bool {
	for _, r := range s.Reports {
		if !r.Status.IsSuccess() {
			return false
		}
	}
	return true
}

// Count returns the number of platforms with the given status.
func (s *RunSummary) Count(status PlatformStatus) int {
	n := 0
	for _, r := range s.Reports {
		if r.Status == status {
			n++
		}
	}
	return n
}

// Duration returns the wall time of the run.
func (s *RunSummary) Duration() time.Duration {
	return s.Finished.Sub(s.Started)
}
