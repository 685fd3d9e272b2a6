package httpapi

import (
	"net/http/httptest"
	"testing"
)

func TestClientIP(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "forwarded chain", headers: map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, remote: "10.0.0.1:5000", want: "203.0.113.7"},
		{name: "fly header wins", headers: map[string]string{"Fly-Client-IP": "198.51.100.2", "X-Real-IP": "192.0.2.1"}, want: "198.51.100.2"},
		{name: "garbage header falls through", headers: map[string]string{"X-Real-IP": "not-an-ip"}, remote: "192.0.2.9:443", want: "192.0.2.9"},
		{name: "nothing usable", remote: "pipe", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest("GET", "/v1/standings", nil)
			r.RemoteAddr = tc.remote
			for k, v := range tc.headers {
				r.Header.Set(k, v)
			}
			if got := clientIP(r); got != tc.want {
				t.Fatalf("clientIP() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestClientCountry(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/v1/standings", nil)
	if got := clientCountry(r); got != unknownCountry {
		t.Fatalf("expected %s without headers, got %q", unknownCountry, got)
	}

	r.Header.Set("Fly-Client-Country", "spain")
	r.Header.Set("CF-IPCountry", " es ")
	if got := clientCountry(r); got != "ES" {
		t.Fatalf("expected ES, got %q", got)
	}
}
