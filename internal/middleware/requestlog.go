package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"
)

// RequestLogger tags every request with a generated id and logs one line
// per completed request. The id is echoed in the X-Request-ID response
// header so dashboard failures can be matched to server logs.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var requestID string
		if id, err := uuid.NewV4(); err == nil {
			requestID = id.String()
		}

		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		if requestID != "" {
			ww.Header().Set("X-Request-ID", requestID)
		}

		start := time.Now()
		next.ServeHTTP(ww, r)

		log.Info().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}
