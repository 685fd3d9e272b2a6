package httpapi

import (
	"net"
	"net/http"
	"strings"
)

var (
	clientIPHeaders      = []string{"Fly-Client-IP", "X-Forwarded-For", "X-Real-IP"}
	clientCountryHeaders = []string{"Fly-Client-Country", "CF-IPCountry", "CloudFront-Viewer-Country"}
)

// unknownCountry is the ISO 3166 user-assigned code for an unresolved origin.
const unknownCountry = "ZZ"

// clientIP returns the first parseable address from the proxy headers, then RemoteAddr.
func clientIP(r *http.Request) string {
	for _, name := range clientIPHeaders {
		if ip := parseIP(r.Header.Get(name)); ip != "" {
			return ip
		}
	}
	return parseIP(r.RemoteAddr)
}

func clientCountry(r *http.Request) string {
	for _, name := range clientCountryHeaders {
		if code := strings.ToUpper(strings.TrimSpace(r.Header.Get(name))); isCountryCode(code) {
			return code
		}
	}
	return unknownCountry
}

func parseIP(raw string) string {
	value, _, _ := strings.Cut(raw, ",")
	value = strings.TrimSpace(value)
	if host, _, err := net.SplitHostPort(value); err == nil {
		value = host
	}
	if ip := net.ParseIP(value); ip != nil {
		return ip.String()
	}
	return ""
}

func isCountryCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
