package restapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"stopmap.transitlab.org/internal/logging"
)

// statusRecorder captures the status code written by the next handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// RequestLogging logs one line per request with a generated request id,
// the response status and the handling duration.
func (api *RestAPI) RequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		logging.LogHTTPRequest(api.App.Logger, r.Method, r.URL.Path, rec.status,
			float64(time.Since(start).Microseconds())/1000.0,
			slog.String("request_id", requestID))
	})
}
