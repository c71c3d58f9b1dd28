// Package responsewriter records the status and size of a response for the
// logging and metrics middleware.
package responsewriter

import "net/http"

// ResponseWriter wraps an http.ResponseWriter. The zero status is reported as
// 200, matching net/http's implicit WriteHeader.
type ResponseWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

// Wrap returns w wrapped for recording.
func Wrap(w http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{ResponseWriter: w}
}

// WriteHeader forwards only the first call.
func (w *ResponseWriter) WriteHeader(code int) {
	if w.status != 0 {
		return
	}
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// Flush forwards to the underlying writer when it supports flushing.
func (w *ResponseWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		if w.status == 0 {
			w.WriteHeader(http.StatusOK)
		}
		f.Flush()
	}
}

// StatusCode returns the status sent, or 200 when nothing was sent yet.
func (w *ResponseWriter) StatusCode() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// HeaderWritten reports whether a status line has been sent.
func (w *ResponseWriter) HeaderWritten() bool { return w.status != 0 }

// BytesWritten returns the body bytes written so far.
func (w *ResponseWriter) BytesWritten() int { return w.bytes }

// Unwrap supports http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
