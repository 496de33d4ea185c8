// Package observe carries the diagnostic side channel: a bolt logger for
// debug output and OpenTelemetry spans around each command. User-facing
// status lines never go through here.
package observe

import (
	"context"
	"io"
	"time"

	"github.com/felixgeelhaar/bolt/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("elite-memory")

// Observer handles logging and tracing
type Observer struct {
	log *bolt.Logger
}

// New creates a new Observer with console output.
// If verbose is false, only warnings and errors are shown.
func New(out io.Writer, verbose bool) *Observer {
	l := bolt.New(bolt.NewConsoleHandler(out))
	if !verbose {
		l.SetLevel(bolt.WARN)
	}
	return &Observer{log: l}
}

// NewJSON creates a new Observer with JSON output.
// If verbose is false, only warnings and errors are shown.
func NewJSON(out io.Writer, verbose bool) *Observer {
	l := bolt.New(bolt.NewJSONHandler(out))
	if !verbose {
		l.SetLevel(bolt.WARN)
	}
	return &Observer{log: l}
}

// Log returns the underlying logger
func (o *Observer) Log() *bolt.Logger {
	return o.log
}

// StartSpan starts a new OTel span
func (o *Observer) StartSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return tracer.Start(ctx, name)
}

// Trace runs fn inside a span named after the command and logs its outcome.
func (o *Observer) Trace(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, span := o.StartSpan(ctx, name)
	defer span.End()

	start := time.Now()
	o.log.Debug().Str("command", name).Msg("command started")

	err := fn(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		o.log.Error().Str("command", name).Err(err).Msg("command failed")
		return err
	}

	o.log.Debug().
		Str("command", name).
		Int("elapsed_ms", int(time.Since(start).Milliseconds())).
		Msg("command finished")
	return nil
}

// Close ensures any buffered logs or traces are flushed (placeholder)
func (o *Observer) Close() error {
	return nil
}
