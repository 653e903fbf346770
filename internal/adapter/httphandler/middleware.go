package httphandler

import (
	"log/slog"
	"mime"
	"net/http"
	"time"
)

func AllowJSON(next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength == 0 {
			next.ServeHTTP(w, r)
			return
		}

		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "application/json" {
			http.Error(w, "invalid media type", http.StatusUnsupportedMediaType)
			return
		}

		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hf)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// RequestObserver is notified about every served request.
type RequestObserver interface {
	ObserveRequest(method, pattern string, status int, elapsed time.Duration)
}

// LogRequests logs each request and reports it to o when o is not nil.
func LogRequests(next http.Handler, o RequestObserver) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)
		slog.Debug("request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"elapsed", elapsed,
		)
		if o != nil {
			o.ObserveRequest(r.Method, r.Pattern, rec.status, elapsed)
		}
	}
	return http.HandlerFunc(hf)
}
