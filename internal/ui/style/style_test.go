package style_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/xcscheme/internal/ui/style"
)

func TestSuccessAndChanged(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	assert.Equal(t, "✓ saved App", style.Success("saved App"))
	assert.Equal(t, "~ reformatted App", style.Changed("reformatted App"))
}
