package middleware

import (
	"net/http"
	"time"

	"voicejournal/internal/platform/logger"
)

// AccessLogOptions tunes the request access log
type AccessLogOptions struct {
	// Requests at or above Slow log at warn instead of info. Zero disables
	// the slow threshold
	Slow time.Duration
}

// statusWriter records the status code and byte count the handler produced
type statusWriter struct {
	http.ResponseWriter
	status  int
	written int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	n, err := sw.ResponseWriter.Write(b)
	sw.written += n
	return n, err
}

// AccessLogZerolog emits one structured line per request with method, path,
// status, elapsed time and bytes written, using the request scoped logger
func AccessLogZerolog(opt AccessLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(sw, r)
			elapsed := time.Since(start)

			log := logger.C(r.Context())
			evt := log.Info()
			if opt.Slow > 0 && elapsed >= opt.Slow {
				evt = log.Warn()
			}
			evt.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", sw.status).
				Int("bytes", sw.written).
				Dur("elapsed", elapsed).
				Msg("request done")
		})
	}
}
