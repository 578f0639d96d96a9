package middleware

import "net/http"

// responseWriter records the outcome of a request as it is sent: the status,
// whether the response is committed, and the body size.
type responseWriter struct {
	http.ResponseWriter
	status    int
	committed bool
	bytes     int64
}

// newResponseWriter wraps w. When an outer middleware already wrapped it,
// that writer is returned as-is so one request has one record.
func newResponseWriter(w http.ResponseWriter) *responseWriter {
	if rw, ok := w.(*responseWriter); ok {
		return rw
	}
	return &responseWriter{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader commits the status. Later calls are dropped, as net/http does.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.committed {
		return
	}
	rw.status = code
	rw.committed = true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.committed = true
	n, err := rw.ResponseWriter.Write(b)
	rw.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the connection's writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
