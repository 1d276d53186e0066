package middleware

import (
	"net/http"
	"time"

	"github.com/mssola/user_agent"
	"github.com/pocketledger/pocketledger/internal/logger"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestLogger logs one line per request with the client browser and OS
// parsed from the User-Agent header.
func RequestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r)

			ua := user_agent.New(r.UserAgent())
			browser, version := ua.Browser()

			log.Info("%s %s %d %s ip=%s browser=%s/%s os=%s",
				r.Method,
				r.URL.Path,
				recorder.status,
				time.Since(start).Round(time.Microsecond),
				ClientIP(r),
				browser,
				version,
				ua.OS(),
			)
		})
	}
}
