package postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
	"github.com/jsamuelsen11/todo-service/internal/platform/telemetry"
)

const (
	dbSystem    = "postgresql"
	tracerScope = "github.com/jsamuelsen11/todo-service/internal/adapters/postgres"
)

var _ pgx.QueryTracer = (*QueryTracer)(nil)

type queryStateKey struct{}

type queryState struct {
	span      trace.Span
	operation string
	start     time.Time
}

// QueryTracer opens a client span per query, records query metrics, and
// writes a debug log line once the query finishes. Arguments are never
// recorded.
type QueryTracer struct {
	tracer  trace.Tracer
	metrics *telemetry.Metrics
}

// TracerOption configures a QueryTracer.
type TracerOption func(*QueryTracer)

// WithTracerProvider uses tp instead of the global TracerProvider.
func WithTracerProvider(tp trace.TracerProvider) TracerOption {
	return func(q *QueryTracer) {
		q.tracer = tp.Tracer(tracerScope)
	}
}

// NewQueryTracer creates a QueryTracer. metrics may be nil.
func NewQueryTracer(metrics *telemetry.Metrics, opts ...TracerOption) *QueryTracer {
	q := &QueryTracer{
		tracer:  otel.GetTracerProvider().Tracer(tracerScope),
		metrics: metrics,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// TraceQueryStart implements pgx.QueryTracer.
func (q *QueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	op := operationName(data.SQL)

	ctx, span := q.tracer.Start(ctx, "db "+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			telemetry.AttrDBSystem.String(dbSystem),
			telemetry.AttrDBOperation.String(op),
			attribute.String("db.statement", data.SQL),
		),
	)

	return context.WithValue(ctx, queryStateKey{}, &queryState{
		span:      span,
		operation: op,
		start:     time.Now(),
	})
}

// TraceQueryEnd implements pgx.QueryTracer.
func (q *QueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	state, ok := ctx.Value(queryStateKey{}).(*queryState)
	if !ok {
		return
	}
	defer state.span.End()

	elapsed := time.Since(state.start)
	result := "success"

	// A missing row is an expected outcome, not a failed query.
	if data.Err != nil && !errors.Is(data.Err, pgx.ErrNoRows) {
		result = "error"
		state.span.RecordError(data.Err)
		state.span.SetStatus(codes.Error, data.Err.Error())
	} else {
		state.span.SetAttributes(attribute.Int64("db.rows_affected", data.CommandTag.RowsAffected()))
	}

	if q.metrics != nil {
		attrs := metric.WithAttributes(
			telemetry.AttrDBSystem.String(dbSystem),
			telemetry.AttrDBOperation.String(state.operation),
			telemetry.AttrResult.String(result),
		)
		q.metrics.DBOperationDuration.Record(ctx, elapsed.Seconds(), attrs)
		q.metrics.DBOperationTotal.Add(ctx, 1, attrs)
	}

	logging.FromContext(ctx).DebugContext(ctx, "query finished",
		slog.String("db.operation", state.operation),
		slog.String("result", result),
		slog.Duration("duration", elapsed),
	)
}

// operationName returns the leading SQL keyword in upper case.
func operationName(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "UNKNOWN"
	}
	return strings.ToUpper(fields[0])
}
