// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/buildtrigger/internal/core/domain"
)

// BuildService defines the interface to the managed build service.
//
//go:generate mockgen -source=build_service.go -destination=mocks/mock_build_service.go -package=mocks
type BuildService interface {
	// StartBuild starts a build of the named project and returns its build id.
	StartBuild(ctx context.Context, projectName string) (string, error)

	// BuildStatus returns the current status of the build with the given id.
	BuildStatus(ctx context.Context, buildID string) (domain.BuildStatus, error)
}
