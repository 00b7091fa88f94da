package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingProjectName is returned when no CodeBuild project is configured.
	ErrMissingProjectName = zerr.New("no CodeBuild project configured, set " + EnvProjectName)

	// ErrStartBuildFailed is returned when CodeBuild rejects the start request.
	ErrStartBuildFailed = zerr.New("failed to start build")

	// ErrMissingBuildID is returned when CodeBuild accepts a start request without returning a build id.
	ErrMissingBuildID = zerr.New("start build response carried no build id")

	// ErrBuildStatusFailed is returned when the build status cannot be queried.
	ErrBuildStatusFailed = zerr.New("failed to get build status")

	// ErrBuildNotFound is returned when a status query returns no build.
	ErrBuildNotFound = zerr.New("build not found")

	// ErrPollingInterrupted is returned when the context ends while waiting for a build.
	ErrPollingInterrupted = zerr.New("stopped waiting for build")

	// ErrInvocationFailed is returned by the local invoke command when the result is not a success.
	ErrInvocationFailed = zerr.New("invocation failed")

	// ErrAWSConfigFailed is returned when the AWS SDK configuration cannot be loaded.
	ErrAWSConfigFailed = zerr.New("failed to load AWS configuration")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidPollInterval is returned when the poll interval is not a positive duration.
	ErrInvalidPollInterval = zerr.New("invalid poll interval, expected a positive duration such as 10s")

	// ErrInvalidLogFormat is returned when the log format is unknown.
	ErrInvalidLogFormat = zerr.New("invalid log format, expected 'auto', 'pretty' or 'json'")

	// ErrEventReadFailed is returned when the event file for a local invocation cannot be read.
	ErrEventReadFailed = zerr.New("failed to read event file")

	// ErrInvalidEvent is returned when the event for a local invocation is not valid JSON.
	ErrInvalidEvent = zerr.New("event is not valid JSON")
)
