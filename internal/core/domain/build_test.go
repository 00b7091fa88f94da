package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/buildtrigger/internal/core/domain"
)

func TestBuildStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		status   domain.BuildStatus
		terminal bool
	}{
		{domain.StatusSucceeded, true},
		{domain.StatusFailed, true},
		{domain.StatusStopped, true},
		{domain.StatusInProgress, false},
		{domain.StatusFault, false},
		{domain.StatusTimedOut, false},
		{domain.BuildStatus(""), false},
		{domain.BuildStatus("SOMETHING_NEW"), false},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.terminal, tt.status.IsTerminal())
		})
	}
}

func TestOutcome_Err(t *testing.T) {
	t.Run("succeeded", func(t *testing.T) {
		o := domain.Outcome{BuildID: "proj:1", Status: domain.StatusSucceeded, Polls: 3}
		assert.True(t, o.Succeeded())
		assert.NoError(t, o.Err())
	})

	for _, status := range []domain.BuildStatus{domain.StatusFailed, domain.StatusStopped} {
		t.Run(status.String(), func(t *testing.T) {
			o := domain.Outcome{BuildID: "proj:1", Status: status, Polls: 2}
			assert.False(t, o.Succeeded())

			err := o.Err()
			require.Error(t, err)

			var failed *domain.BuildFailedError
			require.True(t, errors.As(err, &failed))
			assert.Equal(t, "proj:1", failed.BuildID)
			assert.Equal(t, status, failed.Status)
			assert.Equal(t, "CodeBuild failed with status: "+status.String(), err.Error())
		})
	}

	t.Run("not terminal", func(t *testing.T) {
		o := domain.Outcome{BuildID: "proj:1", Status: domain.StatusInProgress}
		assert.NoError(t, o.Err())
	})
}
