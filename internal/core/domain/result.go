package domain

import "net/http"

const (
	successPrefix = "CodeBuild completed successfully: "
	failurePrefix = "Error during CodeBuild execution: "
)

// Result is the value returned to the invoker of the function.
type Result struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// SuccessResult builds the 200 result for a completed build.
func SuccessResult(buildID string) Result {
	return Result{
		StatusCode: http.StatusOK,
		Body:       successPrefix + buildID,
	}
}

// FailureResult builds the 500 result carrying the error description.
func FailureResult(err error) Result {
	return Result{
		StatusCode: http.StatusInternalServerError,
		Body:       FailureMessage(err),
	}
}

// FailureMessage renders err the way it is reported in logs and result bodies.
func FailureMessage(err error) string {
	if err == nil {
		return failurePrefix + "unknown error"
	}
	return failurePrefix + err.Error()
}

// OK reports whether the result represents a successful invocation.
func (r Result) OK() bool {
	return r.StatusCode == http.StatusOK
}
