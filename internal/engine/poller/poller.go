// Package poller waits for a build to reach a terminal status.
package poller

import (
	"context"
	"time"

	"go.trai.ch/buildtrigger/internal/core/domain"
	"go.trai.ch/buildtrigger/internal/core/ports"
	"go.trai.ch/zerr"
)

// Poller queries the build service until a build reaches a terminal status.
type Poller struct {
	service  ports.BuildService
	tracer   ports.Tracer
	interval time.Duration
}

// New creates a Poller that pauses interval between two status queries.
// A non-positive interval falls back to domain.DefaultPollInterval.
func New(service ports.BuildService, tracer ports.Tracer, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = domain.DefaultPollInterval
	}
	return &Poller{
		service:  service,
		tracer:   tracer,
		interval: interval,
	}
}

// Interval returns the pause between two status queries.
func (p *Poller) Interval() time.Duration {
	return p.interval
}

// Wait polls the status of buildID until it is terminal.
//
// The pause starts once a query has returned, so the time spent in Wait is
// (polls - 1) * interval plus the query latency. There is no attempt limit:
// Wait only stops early when ctx is done or a query fails. Query errors are
// returned unchanged and are never retried.
func (p *Poller) Wait(ctx context.Context, buildID string) (domain.Outcome, error) {
	outcome := domain.Outcome{BuildID: buildID}

	for {
		outcome.Polls++

		status, err := p.query(ctx, buildID, outcome.Polls)
		if err != nil {
			return outcome, err
		}
		outcome.Status = status

		if status.IsTerminal() {
			return outcome, nil
		}

		if err := p.pause(ctx); err != nil {
			return outcome, zerr.With(
				zerr.With(zerr.Wrap(err, domain.ErrPollingInterrupted.Error()), "build_id", buildID),
				"polls", outcome.Polls,
			)
		}
	}
}

func (p *Poller) query(ctx context.Context, buildID string, poll int) (domain.BuildStatus, error) {
	ctx, span := p.tracer.Start(ctx, "codebuild.poll")
	defer span.End()
	span.SetAttribute("poll", poll)

	status, err := p.service.BuildStatus(ctx, buildID)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	span.SetAttribute("status", status)
	return status, nil
}

func (p *Poller) pause(ctx context.Context) error {
	ctx, span := p.tracer.Start(ctx, "codebuild.wait")
	defer span.End()

	timer := time.NewTimer(p.interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		span.RecordError(ctx.Err())
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
