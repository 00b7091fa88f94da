package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/buildtrigger/internal/adapters/codebuild" //nolint:depguard // Wired in app layer
	"go.trai.ch/buildtrigger/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/buildtrigger/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/buildtrigger/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/buildtrigger/internal/core/domain"
	"go.trai.ch/buildtrigger/internal/core/ports"
	"go.trai.ch/buildtrigger/internal/engine/poller"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.ConfigNodeID,
			codebuild.NodeID,
			poller.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			service, err := graft.Dep[ports.BuildService](ctx)
			if err != nil {
				return nil, err
			}

			p, err := graft.Dep[*poller.Poller](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return New(cfg, service, p, log, tracer), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.ConfigNodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, cfg), nil
}
