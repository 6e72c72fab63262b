package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	phttp "voicejournal/internal/platform/net/http"
	"voicejournal/internal/platform/net/middleware"
)

// CommonStack is the baseline middleware every mounted API scope gets.
// Auth is composed on top per module in the composition root
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RecoverJSON,
		middleware.NoCache(),
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: 2 * time.Second}),
		middleware.CORS(middleware.CORSOptions{}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.StripSlashes(),
		middleware.Timeout(30 * time.Second),
	}
}

// Auth adapts the auth middleware to the platform JSON writer, whose
// signature matches the writer the middleware expects
func Auth(p middleware.AuthPort) func(http.Handler) http.Handler {
	return middleware.Auth(p, phttp.JSON)
}
