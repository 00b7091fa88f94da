// Package domain contains the core domain models for starting a build and waiting on its status.
package domain

// BuildStatus is the status reported by CodeBuild for a single build.
type BuildStatus string

const (
	// StatusInProgress is reported while the build is running.
	StatusInProgress BuildStatus = "IN_PROGRESS"
	// StatusSucceeded is reported when the build completed successfully.
	StatusSucceeded BuildStatus = "SUCCEEDED"
	// StatusFailed is reported when the build failed.
	StatusFailed BuildStatus = "FAILED"
	// StatusStopped is reported when the build was stopped before completion.
	StatusStopped BuildStatus = "STOPPED"
	// StatusFault is reported by CodeBuild on an internal service fault.
	StatusFault BuildStatus = "FAULT"
	// StatusTimedOut is reported by CodeBuild when the build exceeded its timeout.
	StatusTimedOut BuildStatus = "TIMED_OUT"
)

// IsTerminal reports whether polling should stop at this status.
// Only SUCCEEDED, FAILED and STOPPED end the wait; every other value,
// including FAULT and TIMED_OUT, is treated as still running.
func (s BuildStatus) IsTerminal() bool {
	switch s {
	case StatusSucceeded, StatusFailed, StatusStopped:
		return true
	default:
		return false
	}
}

func (s BuildStatus) String() string {
	return string(s)
}

// Outcome is the result of waiting for a build to reach a terminal status.
type Outcome struct {
	BuildID string
	Status  BuildStatus
	// Polls is the number of status queries issued, including the terminal one.
	Polls int
}

// Succeeded reports whether the build finished with SUCCEEDED.
func (o Outcome) Succeeded() bool {
	return o.Status == StatusSucceeded
}

// Err returns a *BuildFailedError when the build ended in a non-success
// terminal status, and nil otherwise.
func (o Outcome) Err() error {
	if o.Succeeded() || !o.Status.IsTerminal() {
		return nil
	}
	return &BuildFailedError{BuildID: o.BuildID, Status: o.Status}
}

// BuildFailedError reports a build that reached FAILED or STOPPED.
type BuildFailedError struct {
	BuildID string
	Status  BuildStatus
}

func (e *BuildFailedError) Error() string {
	return "CodeBuild failed with status: " + string(e.Status)
}
