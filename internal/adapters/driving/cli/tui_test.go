package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTUICmd_Use(t *testing.T) {
	assert.Equal(t, "tui", tuiCmd.Use)
}

func TestTUICmd_Short(t *testing.T) {
	assert.Equal(t, "Launch the interactive component browser", tuiCmd.Short)
}
