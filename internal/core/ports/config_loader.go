package ports

import "go.trai.ch/buildtrigger/internal/core/domain"

// ConfigLoader defines the interface for loading the function configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves the configuration from the config file in cwd and the environment.
	Load(cwd string) (*domain.Config, error)
}
