package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jaredbothwell/isim/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatorTableRender(t *testing.T) {
	sims := []domain.Simulator{
		{UDID: "AAAA-1111", Name: "iPhone SE", OS: "iOS 16.4", State: domain.DeviceStateShutdown},
		{UDID: "BBBB-2222", Name: "iPhone 15", OS: "iOS 17.2", State: domain.DeviceStateBooted},
	}

	var buf bytes.Buffer
	table := NewSimulatorTable(&buf, Colorizer{}, "AAAA-1111")
	require.NoError(t, table.Render(sims))

	out := buf.String()
	assert.Contains(t, out, "UDID")
	assert.Contains(t, out, "DEVICE")
	assert.Contains(t, out, "AAAA-1111")
	assert.Contains(t, out, "iPhone 15")
	assert.Contains(t, out, "iOS 17.2")
	assert.Contains(t, out, "Booted")
	assert.Contains(t, out, "★ = default")

	// Only the default row carries the marker.
	assert.Equal(t, 2, strings.Count(out, "★"))
}

func TestColorizer(t *testing.T) {
	s := Styles.Bold

	t.Run("disabled passes text through", func(t *testing.T) {
		c := Colorizer{}
		assert.Equal(t, "plain", c.Render(s, "plain"))
	})
}
