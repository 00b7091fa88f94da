package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/buildtrigger/internal/ui/style"
)

func TestOutcome(t *testing.T) {
	icon, color := style.Outcome(true)
	assert.Equal(t, style.Check, icon)
	assert.Equal(t, style.Green, color)

	icon, color = style.Outcome(false)
	assert.Equal(t, style.Cross, icon)
	assert.Equal(t, style.Red, color)
}
