package poller

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/buildtrigger/internal/adapters/codebuild" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/buildtrigger/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/buildtrigger/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/buildtrigger/internal/core/domain"
	"go.trai.ch/buildtrigger/internal/core/ports"
)

// NodeID is the unique identifier for the poller Graft node.
const NodeID graft.ID = "engine.poller"

func init() {
	graft.Register(graft.Node[*Poller]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			codebuild.NodeID,
			telemetry.NodeID,
			config.ConfigNodeID,
		},
		Run: func(ctx context.Context) (*Poller, error) {
			service, err := graft.Dep[ports.BuildService](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			return New(service, tracer, cfg.PollInterval), nil
		},
	})
}
