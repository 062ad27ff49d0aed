package ports

import "context"

// SpanConfig carries optional span configuration.
type SpanConfig struct{}

// SpanOption configures a span at start time.
type SpanOption func(*SpanConfig)

// Span is one traced unit of work.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Span interface {
	// End finishes the span.
	End()
	// RecordError attaches an error to the span.
	RecordError(err error)
	// SetAttribute attaches a key/value attribute to the span.
	SetAttribute(key string, value any)
}

// Tracer creates spans. The zero-cost implementation is telemetry.Noop.
type Tracer interface {
	// Start begins a span and returns the derived context.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
}
