// Package awsconfig loads the AWS SDK configuration shared by the service clients.
package awsconfig

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"go.opentelemetry.io/contrib/instrumentation/github.com/aws/aws-sdk-go-v2/otelaws"
	"go.trai.ch/buildtrigger/internal/core/domain"
	"go.trai.ch/zerr"
)

// Load resolves credentials and region through the SDK default chain.
// A non-empty region overrides the one found in the environment.
// SDK calls are instrumented with OpenTelemetry.
func Load(ctx context.Context, region string) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, zerr.Wrap(err, domain.ErrAWSConfigFailed.Error())
	}

	otelaws.AppendMiddlewares(&cfg.APIOptions)

	return cfg, nil
}
