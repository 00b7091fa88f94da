package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/buildtrigger/internal/core/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()

	assert.Empty(t, cfg.ProjectName)
	assert.Equal(t, 10*time.Second, cfg.PollInterval)
	assert.Equal(t, domain.LogFormatAuto, cfg.LogFormat)
}

func TestLogFormat_Valid(t *testing.T) {
	assert.True(t, domain.LogFormatAuto.Valid())
	assert.True(t, domain.LogFormatPretty.Valid())
	assert.True(t, domain.LogFormatJSON.Valid())
	assert.False(t, domain.LogFormat("xml").Valid())
	assert.False(t, domain.LogFormat("").Valid())
}
