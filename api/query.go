package api

import (
	"net"
	"net/http"
	"strconv"
	"strings"
)

// queryFlag reports whether the named parameter is the literal "true".
func queryFlag(r *http.Request, name string) bool {
	return r.URL.Query().Get(name) == "true"
}

// queryDefaultTrue reports true unless the named parameter is the literal
// "false".
func queryDefaultTrue(r *http.Request, name string) bool {
	return r.URL.Query().Get(name) != "false"
}

// queryInt parses a non-negative integer parameter, falling back to def on
// absence, garbage, or negative input.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}

// clientIP resolves the submitter address: the first hop of X-Forwarded-For
// when present (the server runs behind a proxy in production), otherwise the
// connection's remote address.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
