package telemetry

import (
	"context"
	"slices"
	"strings"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/buildtrigger/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor and reports finished spans through a Logger.
//
// Root spans, one per invocation, are logged as a summary line. Child spans are
// only reported when they ended with an error, so a long wait does not write a
// line per poll.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{
		logger: logger,
	}
}

// OnStart does nothing.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil {
		return
	}

	if !s.SpanContext().IsValid() {
		return
	}

	failed := s.Status().Code == codes.Error
	root := !s.Parent().IsValid()

	switch {
	case failed:
		desc := s.Status().Description
		if desc == "" {
			desc = "span failed"
		}
		b.logger.Warn(summary(s) + ": " + desc)
	case root:
		b.logger.Info(summary(s))
	}
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

// summary renders a span as "span <name> took <duration> key=value ...".
func summary(s sdktrace.ReadOnlySpan) string {
	var sb strings.Builder
	sb.WriteString("span ")
	sb.WriteString(s.Name())
	sb.WriteString(" took ")
	sb.WriteString(s.EndTime().Sub(s.StartTime()).String())

	attrs := make([]string, 0, len(s.Attributes()))
	for _, kv := range s.Attributes() {
		attrs = append(attrs, string(kv.Key)+"="+kv.Value.Emit())
	}
	slices.Sort(attrs)
	for _, attr := range attrs {
		sb.WriteString(" ")
		sb.WriteString(attr)
	}

	return sb.String()
}
