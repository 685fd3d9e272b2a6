package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/laliga-insights/internal/platform/logging"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORS(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		allowed    []string
		method     string
		origin     string
		wantCode   int
		wantOrigin string
	}{
		{name: "configured origin", allowed: []string{"https://insights.example.com"}, method: http.MethodGet, origin: "https://insights.example.com", wantCode: http.StatusOK, wantOrigin: "https://insights.example.com"},
		{name: "wildcard preflight", allowed: []string{"*"}, method: http.MethodOptions, origin: "https://insights.example.com", wantCode: http.StatusNoContent, wantOrigin: "*"},
		{name: "unconfigured origin", allowed: []string{"https://insights.example.com"}, method: http.MethodGet, origin: "https://elsewhere.example.com", wantCode: http.StatusOK},
		{name: "no origin header", allowed: []string{"*"}, method: http.MethodGet, wantCode: http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tc.method, "/v1/standings", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			rec := httptest.NewRecorder()
			CORS(tc.allowed, okHandler()).ServeHTTP(rec, req)

			if rec.Code != tc.wantCode {
				t.Fatalf("expected status %d, got %d", tc.wantCode, rec.Code)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tc.wantOrigin {
				t.Fatalf("unexpected Access-Control-Allow-Origin %q", got)
			}
		})
	}
}

func TestShouldTraceRequest(t *testing.T) {
	t.Parallel()

	for path, want := range map[string]bool{
		"/healthz":            false,
		" /readyz ":           false,
		"/livez":              false,
		"/v1/standings":       true,
		"/v1/matches/3825848": true,
		"/docs":               true,
	} {
		if got := shouldTraceRequest(path); got != want {
			t.Fatalf("shouldTraceRequest(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestIsHandlerSpan(t *testing.T) {
	t.Parallel()

	if !isHandlerSpan("httpapi.Handler.GetMatchTimeline") {
		t.Fatalf("expected handler methods to be traced")
	}
	if isHandlerSpan("httpapi.RequestLogging") {
		t.Fatalf("expected middleware spans to be skipped")
	}
}

func TestRecoverPanic(t *testing.T) {
	t.Parallel()

	boom := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("nil tactics") })
	rec := httptest.NewRecorder()
	recoverPanic(logging.NewNop(), boom).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/matches/1/lineups", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	body := decode(t, rec)
	if body.Error == nil || body.Error.Message != internalMessage {
		t.Fatalf("unexpected body %+v", body)
	}
}
