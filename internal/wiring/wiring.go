// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/buildtrigger/internal/adapters/awsconfig"
	_ "go.trai.ch/buildtrigger/internal/adapters/codebuild"
	_ "go.trai.ch/buildtrigger/internal/adapters/config"
	_ "go.trai.ch/buildtrigger/internal/adapters/logger"
	_ "go.trai.ch/buildtrigger/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/buildtrigger/internal/app"
	_ "go.trai.ch/buildtrigger/internal/engine/poller"
)
