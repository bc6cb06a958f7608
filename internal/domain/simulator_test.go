package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Version
		expected int
	}{
		{"equal", Version{17, 2, 0}, Version{17, 2, 0}, 0},
		{"major wins", Version{16, 9, 9}, Version{17, 0, 0}, -1},
		{"minor wins", Version{17, 0, 9}, Version{17, 2, 0}, -1},
		{"patch wins", Version{17, 2, 0}, Version{17, 2, 1}, -1},
		{"greater", Version{18, 0, 0}, Version{17, 4, 1}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.expected, tt.b.Compare(tt.a))
		})
	}
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "17.2", Version{17, 2, 0}.String())
	assert.Equal(t, "17.0.1", Version{17, 0, 1}.String())
	assert.Equal(t, "18.0", Version{18, 0, 0}.String())
}

func TestSimulatorIsBooted(t *testing.T) {
	s := Simulator{State: DeviceStateBooted}
	assert.True(t, s.IsBooted())

	s.State = DeviceStateShutdown
	assert.False(t, s.IsBooted())
}
