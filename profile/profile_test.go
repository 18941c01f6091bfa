package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfiler_Start_EmptyMode(t *testing.T) {
	s := Profiler{}.Start()

	assert.IsType(t, ignore{}, s)
	assert.NotPanics(t, s.Stop)
}

func TestProfiler_Start_UnknownMode(t *testing.T) {
	s := Profiler{Mode: "nonsense", Quiet: true}.Start()

	assert.IsType(t, ignore{}, s)
	assert.NotPanics(t, s.Stop)
}

func TestModes(t *testing.T) {
	if !Enabled {
		assert.Empty(t, Modes())

		return
	}

	assert.Contains(t, Modes(), "cpu")
	assert.IsIncreasing(t, Modes())
}
