package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var viewTracer = otel.Tracer("league-views/internal/usecase")
var viewNoopSpan = trace.SpanFromContext(context.Background())

// startViewSpan only opens a child span when the request is already traced.
func startViewSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if strings.TrimSpace(name) == "" {
		return ctx, viewNoopSpan
	}
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, viewNoopSpan
	}
	return viewTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func recordSpanError(span trace.Span, err error) {
	if err == nil || !span.IsRecording() {
		return
	}
	span.RecordError(err)
}

func rangeAttr(r string) attribute.KeyValue {
	return attribute.String("feed.range", r)
}
