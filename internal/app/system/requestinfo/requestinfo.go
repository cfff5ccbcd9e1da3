// Package requestinfo extracts client metadata from HTTP requests.
package requestinfo

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP returns the originating client address, preferring the
// X-Forwarded-For header set by the reverse proxy.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		// first hop is the client
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// UserAgent returns the request's User-Agent header.
func UserAgent(r *http.Request) string {
	return r.Header.Get("User-Agent")
}
