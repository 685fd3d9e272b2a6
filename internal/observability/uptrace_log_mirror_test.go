package observability

import (
	"errors"
	"testing"

	otellog "go.opentelemetry.io/otel/log"
)

func TestShouldSkipUptraceLog(t *testing.T) {
	if !shouldSkipUptraceLog("http request", []any{"method", "GET", "path", "/healthz"}) {
		t.Fatalf("expected health check log to be skipped")
	}
	if shouldSkipUptraceLog("http request", []any{"path", "/v1/standings"}) {
		t.Fatalf("did not expect standings request log to be skipped")
	}
	if shouldSkipUptraceLog("snapshot loaded", []any{"path", "/healthz"}) {
		t.Fatalf("did not expect non-request log to be skipped")
	}
}

func TestBuildOTelLogAttributes(t *testing.T) {
	attrs := buildOTelLogAttributes([]any{"match_id", int64(3825848), "source", "memory", 7, 1.5, "skipped"})
	if len(attrs) != 4 {
		t.Fatalf("expected 4 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "match_id" || attrs[0].Value.AsInt64() != 3825848 {
		t.Fatalf("unexpected match_id attribute")
	}
	if attrs[1].Key != "source" || attrs[1].Value.AsString() != "memory" {
		t.Fatalf("unexpected source attribute")
	}
	if attrs[2].Key != "arg_2" || attrs[2].Value.AsFloat64() != 1.5 {
		t.Fatalf("unexpected positional attribute: %s", attrs[2].Key)
	}
	if attrs[3].Key != "skipped" || attrs[3].Value.Kind() != otellog.KindEmpty {
		t.Fatalf("unexpected trailing attribute")
	}
}

func TestToOTelLogValue(t *testing.T) {
	v := toOTelLogValue(map[string]any{"shots": 11, "won": true}, 0)
	if v.Kind() != otellog.KindMap || len(v.AsMap()) != 2 {
		t.Fatalf("expected 2-item map value, got %s", v.Kind())
	}

	if got := toOTelLogValue([]int64{1, 2, 3}, 0); got.Kind() != otellog.KindSlice || len(got.AsSlice()) != 3 {
		t.Fatalf("expected 3-item slice value")
	}
	if got := toOTelLogValue(uint8(9), 0); got.AsInt64() != 9 {
		t.Fatalf("unexpected uint value: %d", got.AsInt64())
	}
	if got := toOTelLogValue(errors.New("decode failed"), 0); got.AsString() != "decode failed" {
		t.Fatalf("unexpected error value: %s", got.AsString())
	}
}
