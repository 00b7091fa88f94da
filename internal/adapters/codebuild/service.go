// Package codebuild implements ports.BuildService on top of AWS CodeBuild.
package codebuild

import (
	"context"
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscodebuild "github.com/aws/aws-sdk-go-v2/service/codebuild"
	"github.com/aws/smithy-go"
	"go.trai.ch/buildtrigger/internal/core/domain"
	"go.trai.ch/zerr"
)

// API is the subset of the CodeBuild client used by Service.
type API interface {
	StartBuild(
		ctx context.Context, params *awscodebuild.StartBuildInput, optFns ...func(*awscodebuild.Options),
	) (*awscodebuild.StartBuildOutput, error)
	BatchGetBuilds(
		ctx context.Context, params *awscodebuild.BatchGetBuildsInput, optFns ...func(*awscodebuild.Options),
	) (*awscodebuild.BatchGetBuildsOutput, error)
}

// Service implements ports.BuildService using the CodeBuild API.
type Service struct {
	api API
}

// NewService creates a Service backed by the given API.
func NewService(api API) *Service {
	return &Service{api: api}
}

// NewFromConfig creates a Service backed by a CodeBuild client built from cfg.
func NewFromConfig(cfg aws.Config) *Service {
	return NewService(awscodebuild.NewFromConfig(cfg))
}

// StartBuild starts a build of the named project and returns its build id.
func (s *Service) StartBuild(ctx context.Context, projectName string) (string, error) {
	out, err := s.api.StartBuild(ctx, &awscodebuild.StartBuildInput{
		ProjectName: aws.String(projectName),
	})
	if err != nil {
		return "", zerr.With(wrapAPIError(err, domain.ErrStartBuildFailed.Error()), "project", projectName)
	}

	if out == nil || out.Build == nil || aws.ToString(out.Build.Id) == "" {
		return "", zerr.With(zerr.Wrap(domain.ErrMissingBuildID, ""), "project", projectName)
	}

	return aws.ToString(out.Build.Id), nil
}

// BuildStatus returns the status of the first build CodeBuild reports for buildID.
func (s *Service) BuildStatus(ctx context.Context, buildID string) (domain.BuildStatus, error) {
	out, err := s.api.BatchGetBuilds(ctx, &awscodebuild.BatchGetBuildsInput{
		Ids: []string{buildID},
	})
	if err != nil {
		return "", zerr.With(wrapAPIError(err, domain.ErrBuildStatusFailed.Error()), "build_id", buildID)
	}

	if out == nil || len(out.Builds) == 0 {
		notFound := buildID
		if out != nil && len(out.BuildsNotFound) > 0 {
			notFound = strings.Join(out.BuildsNotFound, ", ")
		}
		return "", zerr.With(zerr.Wrap(domain.ErrBuildNotFound, "no build returned for "+notFound), "build_id", buildID)
	}

	return domain.BuildStatus(out.Builds[0].BuildStatus), nil
}

// wrapAPIError wraps err with msg and, for AWS API errors, attaches the error code.
func wrapAPIError(err error, msg string) error {
	wrapped := zerr.Wrap(err, msg)

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		wrapped = zerr.With(wrapped, "aws_error_code", apiErr.ErrorCode())
	}

	return wrapped
}
