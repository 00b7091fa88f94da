// Package detector provides environment detection for log format selection.
package detector

import (
	"os"

	"go.trai.ch/buildtrigger/internal/core/domain"
	"golang.org/x/term"
)

// EnvLambdaRuntimeAPI is set by the Lambda execution environment.
const EnvLambdaRuntimeAPI = "AWS_LAMBDA_RUNTIME_API"

// InLambda reports whether the process runs inside the Lambda execution environment.
func InLambda() bool {
	return os.Getenv(EnvLambdaRuntimeAPI) != ""
}

// DetectFormat returns the recommended log format based on the environment.
// Lambda and non-terminal stderr get JSON so CloudWatch can index the records.
func DetectFormat() domain.LogFormat {
	if InLambda() {
		return domain.LogFormatJSON
	}
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return domain.LogFormatJSON
	}
	return domain.LogFormatPretty
}

// ResolveFormat applies a user override to the auto-detected format.
func ResolveFormat(autoDetected, user domain.LogFormat) domain.LogFormat {
	switch user {
	case domain.LogFormatPretty, domain.LogFormatJSON:
		return user
	default:
		return autoDetected
	}
}
