package awsconfig

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/grindlemire/graft"
	"go.trai.ch/buildtrigger/internal/adapters/config"
	"go.trai.ch/buildtrigger/internal/core/domain"
)

// NodeID is the unique identifier for the AWS configuration Graft node.
const NodeID graft.ID = "adapter.aws_config"

func init() {
	graft.Register(graft.Node[aws.Config]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (aws.Config, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return aws.Config{}, err
			}
			return Load(ctx, cfg.Region)
		},
	})
}
