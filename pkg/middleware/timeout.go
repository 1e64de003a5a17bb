package middleware

import (
	"bytes"
	"context"
	"net/http"
	"sync"
	"time"
)

// timeoutWriter buffers the handler's response. The handler goroutine only
// ever touches h and buf; the real ResponseWriter is written from the serving
// goroutine once the outcome is known.
type timeoutWriter struct {
	h    http.Header
	buf  bytes.Buffer
	code int

	mu          sync.Mutex
	timedOut    bool
	wroteHeader bool
}

func newTimeoutWriter() *timeoutWriter {
	return &timeoutWriter{h: make(http.Header)}
}

func (tw *timeoutWriter) Header() http.Header {
	return tw.h
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut || tw.wroteHeader {
		return
	}
	tw.wroteHeader = true
	tw.code = code
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if !tw.wroteHeader {
		tw.wroteHeader = true
		tw.code = http.StatusOK
	}
	return tw.buf.Write(b)
}

// flushTo copies the buffered response into w. It must only be called after
// the handler has returned.
func (tw *timeoutWriter) flushTo(w http.ResponseWriter) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	dst := w.Header()
	for k, vv := range tw.h {
		dst[k] = vv
	}
	if !tw.wroteHeader {
		tw.code = http.StatusOK
	}
	w.WriteHeader(tw.code)
	_, _ = w.Write(tw.buf.Bytes())
}

// RequestTimeout bounds handler execution. A handler that has not returned
// when the deadline passes is answered with 503 and anything it writes later
// is discarded. Panics raised in the handler are re-raised on the serving
// goroutine so Recovery still sees them.
func RequestTimeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			r = r.WithContext(ctx)
			tw := newTimeoutWriter()

			done := make(chan struct{})
			panicCh := make(chan any, 1)
			go func() {
				defer func() {
					if p := recover(); p != nil {
						panicCh <- p
					}
				}()
				next.ServeHTTP(tw, r)
				close(done)
			}()

			select {
			case <-done:
				tw.flushTo(w)
			case p := <-panicCh:
				panic(p)
			case <-ctx.Done():
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.timedOut = true
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"error":"Request timeout"}`))
			}
		})
	}
}
