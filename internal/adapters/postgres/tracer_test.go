package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/todo-service/internal/adapters/postgres"
	"github.com/jsamuelsen11/todo-service/internal/platform/telemetry"
)

type tracerFixture struct {
	tracer *postgres.QueryTracer
	spans  *tracetest.SpanRecorder
	reader *sdkmetric.ManualReader
}

func newTracerFixture(t *testing.T) *tracerFixture {
	t.Helper()

	spans := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	metrics, err := telemetry.NewMetrics(mp, "test")
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}

	return &tracerFixture{
		tracer: postgres.NewQueryTracer(metrics, postgres.WithTracerProvider(tp)),
		spans:  spans,
		reader: reader,
	}
}

func (f *tracerFixture) counterValue(t *testing.T, result string) int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	if err := f.reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect: %v", err)
	}

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "db.client.operation.total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("db.client.operation.total data = %T, want Sum[int64]", m.Data)
			}
			for _, dp := range sum.DataPoints {
				if v, ok := dp.Attributes.Value(attribute.Key("result")); ok && v.AsString() == result {
					total += dp.Value
				}
			}
		}
	}
	return total
}

func TestQueryTracer_SuccessfulQuery(t *testing.T) {
	t.Parallel()

	f := newTracerFixture(t)
	ctx := f.tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{
		SQL:  `SELECT id, name, completed FROM todo_app WHERE id = $1`,
		Args: []any{int64(1)},
	})
	f.tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{
		CommandTag: pgconn.NewCommandTag("SELECT 1"),
	})

	ended := f.spans.Ended()
	if len(ended) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(ended))
	}
	span := ended[0]
	if span.Name() != "db SELECT" {
		t.Errorf("span name = %q, want \"db SELECT\"", span.Name())
	}
	if span.SpanKind() != trace.SpanKindClient {
		t.Errorf("span kind = %v, want client", span.SpanKind())
	}
	if span.Status().Code == codes.Error {
		t.Error("span status = error, want unset")
	}
	for _, kv := range span.Attributes() {
		if kv.Key == "db.statement" && kv.Value.AsString() == "" {
			t.Error("db.statement attribute is empty")
		}
	}

	if got := f.counterValue(t, "success"); got != 1 {
		t.Errorf("success count = %d, want 1", got)
	}
}

func TestQueryTracer_FailedQuery(t *testing.T) {
	t.Parallel()

	f := newTracerFixture(t)
	ctx := f.tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{
		SQL: `INSERT INTO todo_app (name, completed) VALUES ($1, $2) RETURNING id, name, completed`,
	})
	f.tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{
		Err: errors.New("null value in column \"name\""),
	})

	ended := f.spans.Ended()
	if len(ended) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(ended))
	}
	if ended[0].Status().Code != codes.Error {
		t.Errorf("span status = %v, want error", ended[0].Status().Code)
	}
	if got := f.counterValue(t, "error"); got != 1 {
		t.Errorf("error count = %d, want 1", got)
	}
}

func TestQueryTracer_EndWithoutStartIsIgnored(t *testing.T) {
	t.Parallel()

	f := newTracerFixture(t)
	f.tracer.TraceQueryEnd(context.Background(), nil, pgx.TraceQueryEndData{})

	if n := len(f.spans.Ended()); n != 0 {
		t.Errorf("ended spans = %d, want 0", n)
	}
}

func TestQueryTracer_NilMetrics(t *testing.T) {
	t.Parallel()

	tp := sdktrace.NewTracerProvider()
	q := postgres.NewQueryTracer(nil, postgres.WithTracerProvider(tp))

	ctx := q.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 1"})
	q.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})
}
