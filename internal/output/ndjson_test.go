package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNDJSONWriter_WriteError(t *testing.T) {
	var buf bytes.Buffer
	w := NewNDJSONWriter(&buf)

	require.NoError(t, w.WriteErrorHint("NOT_FOUND", "no simulator found", "run isim list"))

	var out ErrorOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "error", out.Type)
	assert.Equal(t, SchemaVersion, out.SchemaVersion)
	assert.Equal(t, "NOT_FOUND", out.Code)
	assert.Equal(t, "no simulator found", out.Message)
	assert.Equal(t, "run isim list", out.Hint)
}

func TestNDJSONWriter_NoHTMLEscaping(t *testing.T) {
	var buf bytes.Buffer
	w := NewNDJSONWriter(&buf)

	require.NoError(t, w.WriteWarning("a<b>&c"))
	assert.Contains(t, buf.String(), "a<b>&c")
}

func TestNDJSONWriter_WriteInfo(t *testing.T) {
	var buf bytes.Buffer
	w := NewNDJSONWriter(&buf)

	require.NoError(t, w.WriteInfo("Launching", "iPhone 15", "AAAA-1111"))

	var out InfoOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "info", out.Type)
	assert.Equal(t, "iPhone 15", out.Simulator)
	assert.Equal(t, "AAAA-1111", out.UDID)
}
