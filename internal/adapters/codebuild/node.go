package codebuild

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/grindlemire/graft"
	"go.trai.ch/buildtrigger/internal/adapters/awsconfig"
	"go.trai.ch/buildtrigger/internal/core/ports"
)

// NodeID is the unique identifier for the build service Graft node.
const NodeID graft.ID = "adapter.codebuild"

func init() {
	graft.Register(graft.Node[ports.BuildService]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{awsconfig.NodeID},
		Run: func(ctx context.Context) (ports.BuildService, error) {
			cfg, err := graft.Dep[aws.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewFromConfig(cfg), nil
		},
	})
}
