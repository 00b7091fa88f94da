package domain

import "time"

const (
	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "buildtrigger.yaml"

	// DefaultPollInterval is the pause between two build status queries.
	DefaultPollInterval = 10 * time.Second

	// EnvConfigFile overrides the configuration file location.
	EnvConfigFile = "BUILDTRIGGER_CONFIG"
	// EnvProjectName names the CodeBuild project to start.
	EnvProjectName = "CODEBUILD_PROJECT_NAME"
	// EnvPollInterval overrides the poll interval, as a Go duration string.
	EnvPollInterval = "BUILDTRIGGER_POLL_INTERVAL"
	// EnvRegion overrides the AWS region used by the CodeBuild client.
	EnvRegion = "AWS_REGION"
	// EnvLogFormat selects the log output format.
	EnvLogFormat = "BUILDTRIGGER_LOG_FORMAT"
)

// LogFormat selects how log records are rendered.
type LogFormat string

const (
	// LogFormatAuto picks pretty output on a terminal and JSON elsewhere.
	LogFormatAuto LogFormat = "auto"
	// LogFormatPretty renders colored, human-readable lines.
	LogFormatPretty LogFormat = "pretty"
	// LogFormatJSON renders one JSON object per record.
	LogFormatJSON LogFormat = "json"
)

// Valid reports whether f is one of the known formats.
func (f LogFormat) Valid() bool {
	switch f {
	case LogFormatAuto, LogFormatPretty, LogFormatJSON:
		return true
	default:
		return false
	}
}

// Config holds the resolved settings of the function.
type Config struct {
	// ProjectName is the CodeBuild project started on every invocation.
	ProjectName string
	// PollInterval is the pause between two status queries.
	PollInterval time.Duration
	// Region overrides the region resolved by the AWS SDK when non-empty.
	Region string
	// LogFormat selects the log output format.
	LogFormat LogFormat
}

// DefaultConfig returns a Config populated with default values.
func DefaultConfig() Config {
	return Config{
		PollInterval: DefaultPollInterval,
		LogFormat:    LogFormatAuto,
	}
}
