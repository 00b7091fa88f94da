// Package app implements the application layer for buildtrigger.
package app

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.trai.ch/buildtrigger/internal/core/domain"
	"go.trai.ch/buildtrigger/internal/core/ports"
	"go.trai.ch/buildtrigger/internal/engine/poller"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	config  *domain.Config
	service ports.BuildService
	poller  *poller.Poller
	logger  ports.Logger
	tracer  ports.Tracer
}

// New creates a new App instance.
func New(
	cfg *domain.Config,
	service ports.BuildService,
	p *poller.Poller,
	logger ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		config:  cfg,
		service: service,
		poller:  p,
		logger:  logger,
		tracer:  tracer,
	}
}

// Handle starts one build of the configured project and waits for it to finish.
//
// The returned error is always nil. Every failure, whether starting the build,
// querying its status or the build itself ending in FAILED or STOPPED, is
// logged and reported as a 500 Result so the invoker always receives a body.
// The event is accepted for compatibility with the Lambda runtime and ignored.
func (a *App) Handle(ctx context.Context, _ json.RawMessage) (domain.Result, error) {
	ctx, span := a.tracer.Start(ctx, "buildtrigger.invoke")
	defer span.End()

	var requestID string
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		requestID = lc.AwsRequestID
		span.SetAttribute("request_id", requestID)
	}

	buildID, err := a.run(ctx)
	if err != nil {
		if requestID != "" {
			err = zerr.With(zerr.Wrap(err, ""), "request_id", requestID)
		}
		span.RecordError(err)
		a.logger.Error(zerr.Wrap(err, "Error during CodeBuild execution"))

		result := domain.FailureResult(err)
		span.SetAttribute("status_code", result.StatusCode)
		return result, nil
	}

	result := domain.SuccessResult(buildID)
	span.SetAttribute("status_code", result.StatusCode)
	return result, nil
}

// run drives one invocation from start to terminal status and returns the id
// of a build that succeeded.
func (a *App) run(ctx context.Context) (string, error) {
	buildID, err := a.start(ctx)
	if err != nil {
		return "", err
	}
	a.logger.Info("CodeBuild started with build ID: " + buildID)

	outcome, err := a.poller.Wait(ctx, buildID)
	if err != nil {
		return "", err
	}
	a.logger.Info("CodeBuild finished with status: " + outcome.Status.String())

	if err := outcome.Err(); err != nil {
		return "", zerr.With(zerr.With(err, "build_id", buildID), "status", outcome.Status.String())
	}

	return buildID, nil
}

func (a *App) start(ctx context.Context) (string, error) {
	ctx, span := a.tracer.Start(ctx, "codebuild.start")
	defer span.End()

	project := a.config.ProjectName
	if project == "" {
		span.RecordError(domain.ErrMissingProjectName)
		return "", domain.ErrMissingProjectName
	}
	span.SetAttribute("project", project)

	buildID, err := a.service.StartBuild(ctx, project)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	span.SetAttribute("build_id", buildID)
	return buildID, nil
}
