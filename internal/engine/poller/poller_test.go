package poller_test

import (
	"context"
	"errors"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/buildtrigger/internal/adapters/telemetry"
	"go.trai.ch/buildtrigger/internal/core/domain"
	"go.trai.ch/buildtrigger/internal/core/ports"
	"go.trai.ch/buildtrigger/internal/core/ports/mocks"
	"go.trai.ch/buildtrigger/internal/engine/poller"
	"go.uber.org/mock/gomock"
)

const buildID = "mirror:1234"

// expectStatuses programs the service to report statuses in order, one per query.
func expectStatuses(service *mocks.MockBuildService, statuses ...domain.BuildStatus) {
	calls := make([]any, 0, len(statuses))
	for _, status := range statuses {
		calls = append(calls, service.EXPECT().
			BuildStatus(gomock.Any(), buildID).
			Return(status, nil))
	}
	gomock.InOrder(calls...)
}

func TestPoller_Wait(t *testing.T) {
	tests := []struct {
		name      string
		statuses  []domain.BuildStatus
		wantPolls int
		wantErr   string
	}{
		{
			name:      "immediate success",
			statuses:  []domain.BuildStatus{domain.StatusSucceeded},
			wantPolls: 1,
		},
		{
			name: "success after two in progress",
			statuses: []domain.BuildStatus{
				domain.StatusInProgress,
				domain.StatusInProgress,
				domain.StatusSucceeded,
			},
			wantPolls: 3,
		},
		{
			name:      "failed",
			statuses:  []domain.BuildStatus{domain.StatusInProgress, domain.StatusFailed},
			wantPolls: 2,
			wantErr:   "CodeBuild failed with status: FAILED",
		},
		{
			name:      "stopped",
			statuses:  []domain.BuildStatus{domain.StatusStopped},
			wantPolls: 1,
			wantErr:   "CodeBuild failed with status: STOPPED",
		},
		{
			name: "fault and timed out keep polling",
			statuses: []domain.BuildStatus{
				domain.StatusFault,
				domain.StatusTimedOut,
				domain.BuildStatus("QUEUED"),
				domain.StatusSucceeded,
			},
			wantPolls: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			synctest.Test(t, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				service := mocks.NewMockBuildService(ctrl)
				expectStatuses(service, tt.statuses...)

				p := poller.New(service, telemetry.NewNoOpTracer(), 10*time.Second)

				start := time.Now()
				outcome, err := p.Wait(t.Context(), buildID)
				elapsed := time.Since(start)

				require.NoError(t, err)
				assert.Equal(t, buildID, outcome.BuildID)
				assert.Equal(t, tt.wantPolls, outcome.Polls)
				assert.Equal(t, tt.statuses[len(tt.statuses)-1], outcome.Status)
				assert.Equal(t, time.Duration(tt.wantPolls-1)*10*time.Second, elapsed)

				if tt.wantErr == "" {
					assert.NoError(t, outcome.Err())
					return
				}
				var failed *domain.BuildFailedError
				require.ErrorAs(t, outcome.Err(), &failed)
				assert.Equal(t, buildID, failed.BuildID)
				assert.EqualError(t, outcome.Err(), tt.wantErr)
			})
		})
	}
}

func TestPoller_Wait_QueryError(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockBuildService(ctrl)

		queryErr := errors.New("throttled")
		gomock.InOrder(
			service.EXPECT().BuildStatus(gomock.Any(), buildID).Return(domain.StatusInProgress, nil),
			service.EXPECT().BuildStatus(gomock.Any(), buildID).Return(domain.BuildStatus(""), queryErr),
		)

		p := poller.New(service, telemetry.NewNoOpTracer(), 10*time.Second)

		start := time.Now()
		outcome, err := p.Wait(t.Context(), buildID)

		require.ErrorIs(t, err, queryErr)
		assert.Equal(t, 2, outcome.Polls)
		assert.Equal(t, domain.StatusInProgress, outcome.Status)
		assert.Equal(t, 10*time.Second, time.Since(start))
	})
}

func TestPoller_Wait_ContextDeadline(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockBuildService(ctrl)
		service.EXPECT().
			BuildStatus(gomock.Any(), buildID).
			Return(domain.StatusInProgress, nil).
			Times(3)

		p := poller.New(service, telemetry.NewNoOpTracer(), 10*time.Second)

		ctx, cancel := context.WithTimeout(t.Context(), 25*time.Second)
		defer cancel()

		start := time.Now()
		outcome, err := p.Wait(ctx, buildID)

		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.ErrorContains(t, err, "stopped waiting for build")
		assert.Equal(t, 3, outcome.Polls)
		assert.Equal(t, 25*time.Second, time.Since(start))
	})
}

func TestPoller_Wait_Cancelled(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockBuildService(ctrl)
		service.EXPECT().
			BuildStatus(gomock.Any(), buildID).
			Return(domain.StatusInProgress, nil)

		p := poller.New(service, telemetry.NewNoOpTracer(), 10*time.Second)

		ctx, cancel := context.WithCancel(t.Context())
		errCh := make(chan error, 1)
		go func() {
			_, err := p.Wait(ctx, buildID)
			errCh <- err
		}()

		// Wait until the poller is parked on its timer.
		synctest.Wait()
		cancel()

		require.ErrorIs(t, <-errCh, context.Canceled)
	})
}

func TestPoller_Wait_Spans(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockBuildService(ctrl)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)

	passthrough := func(ctx context.Context, _ string) (context.Context, ports.Span) {
		return ctx, span
	}

	tracer.EXPECT().Start(gomock.Any(), "codebuild.poll").DoAndReturn(passthrough)
	service.EXPECT().BuildStatus(gomock.Any(), buildID).Return(domain.StatusSucceeded, nil)
	span.EXPECT().SetAttribute("poll", 1)
	span.EXPECT().SetAttribute("status", domain.StatusSucceeded)
	span.EXPECT().End()

	p := poller.New(service, tracer, time.Second)
	_, err := p.Wait(t.Context(), buildID)
	require.NoError(t, err)
}

func TestPoller_Wait_SpanRecordsQueryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockBuildService(ctrl)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)

	queryErr := errors.New("denied")

	tracer.EXPECT().Start(gomock.Any(), "codebuild.poll").Return(t.Context(), span)
	service.EXPECT().BuildStatus(gomock.Any(), buildID).Return(domain.BuildStatus(""), queryErr)
	span.EXPECT().SetAttribute("poll", 1)
	span.EXPECT().RecordError(queryErr)
	span.EXPECT().End()

	p := poller.New(service, tracer, time.Second)
	_, err := p.Wait(t.Context(), buildID)
	require.ErrorIs(t, err, queryErr)
}

func TestNew_DefaultInterval(t *testing.T) {
	p := poller.New(nil, telemetry.NewNoOpTracer(), 0)
	assert.Equal(t, domain.DefaultPollInterval, p.Interval())
}
