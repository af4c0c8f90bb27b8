package styled

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/rs/zerolog"
)

// Tracer receives one record per resolution stage when Config.Debug is
// enabled. Implementations are injected through Config.Tracer so tests can
// substitute doubles; there is no package-level tracer.
//
// Tracing is strictly diagnostic: a Tracer must never influence resolution,
// and resolution never fails because a Tracer did.
type Tracer interface {
	Trace(label, description string, payload any)
}

// NopTracer discards every record. It is the default when Config.Tracer is
// nil.
type NopTracer struct{}

// Trace does nothing.
func (NopTracer) Trace(string, string, any) {}

// TracerOptions configures the zerolog-backed tracer.
type TracerOptions struct {
	// Writer receives the records. Defaults to os.Stderr.
	Writer io.Writer
	// HumanReadable switches from JSON lines to zerolog's console format.
	HumanReadable bool
}

// NewTracer builds a structured Tracer on zerolog. Records carry the
// component label, the stage description, and the payload. A payload that
// cannot be serialized degrades to a best-effort record describing the
// payload's shape; the failure is never propagated.
func NewTracer(opts TracerOptions) Tracer {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	logger := zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	return &zerologTracer{base: logger}
}

type zerologTracer struct {
	base zerolog.Logger
}

func (t *zerologTracer) Trace(label, description string, payload any) {
	event := t.base.Debug().Str("component", label)

	raw, err := json.Marshal(payload)
	if err != nil {
		// Fall back to describing the payload instead of dropping the record.
		event.Str("payload_type", fmt.Sprintf("%T", payload)).
			Strs("payload_keys", payloadKeys(payload)).
			Str("trace_error", err.Error()).
			Msg(description)
		return
	}

	event.RawJSON("payload", raw).Msg(description)
}

// payloadKeys extracts what key information it can from an unserializable
// payload.
func payloadKeys(payload any) []string {
	var keys []string
	switch p := payload.(type) {
	case Props:
		for k := range p {
			keys = append(keys, k)
		}
	case Selection:
		for k := range p {
			keys = append(keys, k)
		}
	case map[string]any:
		for k := range p {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
