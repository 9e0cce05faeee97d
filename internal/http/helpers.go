package http

import (
	"net/http"
	"strings"
	"time"

	"wallet/internal/core"
)

// clientIP resolves the originating address, honoring proxy headers.
func clientIP(r *http.Request) string {
	if v := r.Header.Get("X-Forwarded-For"); v != "" {
		if i := strings.Index(v, ","); i >= 0 {
			return strings.TrimSpace(v[:i])
		}
		return strings.TrimSpace(v)
	}
	if v := r.Header.Get("X-Real-IP"); v != "" {
		return v
	}
	return r.RemoteAddr
}

// monthParam reads the month query parameter (YYYY-MM), defaulting to the
// current month when absent.
func monthParam(r *http.Request) (core.MonthBucket, error) {
	v := strings.TrimSpace(r.URL.Query().Get("month"))
	if v == "" {
		now := time.Now()
		return core.MonthBucket{Year: now.Year(), Month: int(now.Month())}, nil
	}
	return core.ParseMonthBucket(v)
}
