package monitoring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) *[]string {
	t.Helper()
	original := Logf
	t.Cleanup(func() { Logf = original })
	var lines []string
	SetLogger(func(format string, v ...any) {
		lines = append(lines, fmt.Sprintf(format, v...))
	})
	return &lines
}

func TestSetLogger(t *testing.T) {
	lines := capture(t)
	Logf("steps=%d", 3)
	require.Equal(t, []string{"steps=3"}, *lines)

	SetLogger(nil)
	assert.NotPanics(t, func() { Logf("muted %s", "line") })
	assert.Len(t, *lines, 1)
}

func TestScoped(t *testing.T) {
	lines := capture(t)
	log := Scoped(" erosion ")
	log("drip %.1f", 1.5)
	assert.Equal(t, []string{"[erosion] drip 1.5"}, *lines)
}

func TestScopedFollowsSetLogger(t *testing.T) {
	log := Scoped("ca")
	lines := capture(t)
	log("late")
	assert.Equal(t, []string{"[ca] late"}, *lines)
}
