package output

import (
	"encoding/json"
	"io"
)

// SchemaVersion is the current version of the NDJSON output schema.
// Increment this when making breaking changes to the output format.
const SchemaVersion = 1

// NDJSONWriter writes command output as NDJSON for machine consumers
type NDJSONWriter struct {
	w       io.Writer
	encoder *json.Encoder
}

// NewNDJSONWriter creates a new NDJSON writer
func NewNDJSONWriter(w io.Writer) *NDJSONWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &NDJSONWriter{
		w:       w,
		encoder: enc,
	}
}

// ErrorOutput represents a failure message
type ErrorOutput struct {
	Type          string `json:"type"` // Always "error"
	SchemaVersion int    `json:"schemaVersion"`
	Code          string `json:"code"`
	Message       string `json:"message"`
	Hint          string `json:"hint,omitempty"`
}

// WarningOutput represents a warning message
type WarningOutput struct {
	Type          string `json:"type"` // Always "warning"
	SchemaVersion int    `json:"schemaVersion"`
	Message       string `json:"message"`
}

// InfoOutput represents an informational message
type InfoOutput struct {
	Type          string `json:"type"` // Always "info"
	SchemaVersion int    `json:"schemaVersion"`
	Message       string `json:"message"`
	Simulator     string `json:"simulator,omitempty"`
	UDID          string `json:"udid,omitempty"`
}

// Encode writes an arbitrary value as one NDJSON line.
func (w *NDJSONWriter) Encode(v any) error {
	return w.encoder.Encode(v)
}

// WriteError writes an error object
func (w *NDJSONWriter) WriteError(code, message string) error {
	return w.WriteErrorHint(code, message, "")
}

// WriteErrorHint writes an error object carrying a remediation hint
func (w *NDJSONWriter) WriteErrorHint(code, message, hint string) error {
	return w.encoder.Encode(ErrorOutput{
		Type:          "error",
		SchemaVersion: SchemaVersion,
		Code:          code,
		Message:       message,
		Hint:          hint,
	})
}

// WriteWarning writes a warning object
func (w *NDJSONWriter) WriteWarning(message string) error {
	return w.encoder.Encode(WarningOutput{
		Type:          "warning",
		SchemaVersion: SchemaVersion,
		Message:       message,
	})
}

// WriteInfo writes an informational object
func (w *NDJSONWriter) WriteInfo(message, simulator, udid string) error {
	return w.encoder.Encode(InfoOutput{
		Type:          "info",
		SchemaVersion: SchemaVersion,
		Message:       message,
		Simulator:     simulator,
		UDID:          udid,
	})
}
