package trace

import (
	"context"
	"errors"

	"calcui/internal/calc"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// TracerName identifies spans created by this package.
const TracerName = "calcui/calc"

// SpanEvaluate is the name of the span wrapping one "=" press.
const SpanEvaluate = "calc.evaluate"

// StartEvaluation opens a span for evaluating s, tagged with its operands
// and operator. The tracer is looked up on each call so a provider installed
// after start-up is honored.
func StartEvaluation(ctx context.Context, s calc.State) (context.Context, oteltrace.Span) {
	return otel.Tracer(TracerName).Start(ctx, SpanEvaluate,
		oteltrace.WithAttributes(
			attribute.String("calc.operand.left", s.Pending),
			attribute.String("calc.operand.right", s.Display),
			attribute.String("calc.operator", s.Operator.String()),
		),
	)
}

// EndEvaluation records the outcome and ends span. A missing pending
// operation is not an error condition; the span is marked skipped instead.
func EndEvaluation(span oteltrace.Span, result calc.State, err error) {
	defer span.End()
	switch {
	case errors.Is(err, calc.ErrNothingPending):
		span.SetAttributes(attribute.Bool("calc.skipped", true))
		span.SetStatus(codes.Unset, "")
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	default:
		span.SetAttributes(attribute.String("calc.result", result.Display))
		span.SetStatus(codes.Ok, "")
	}
}
