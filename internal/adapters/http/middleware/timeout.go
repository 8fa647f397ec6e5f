package middleware

import (
	"context"
	"errors"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-packaging-service/internal/adapters/http/dto"
)

// errDeadlineExceeded is reported in the problem details of a request that
// outlived its deadline.
var errDeadlineExceeded = errors.New("request deadline exceeded")

// Timeout returns middleware that bounds each request by d. The handler runs
// on its own goroutine against a buffered writer and sees the deadline on its
// request context. When the deadline passes first the client receives an
// RFC 9457 504 response and later handler writes fail with
// http.ErrHandlerTimeout.
//
// A panic in the handler is re-raised on the serving goroutine so that
// Recovery, installed further out, can turn it into a 500.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			r = r.WithContext(ctx)

			dw := &deadlineWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
						return
					}
					close(done)
				}()
				next.ServeHTTP(dw, r)
			}()

			select {
			case v := <-panicked:
				panic(v)
			case <-done:
				dw.copyTo(w)
			case <-ctx.Done():
				select {
				case <-done:
					// The handler finished on the same tick; its response wins.
					dw.copyTo(w)
					return
				default:
				}
				dw.expire()
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					writeGatewayTimeout(w, r)
				}
			}
		})
	}
}

func writeGatewayTimeout(w http.ResponseWriter, r *http.Request) {
	resp := dto.NewErrorResponse(r, errDeadlineExceeded)
	resp.Status = http.StatusGatewayTimeout
	resp.Title = http.StatusText(http.StatusGatewayTimeout)
	dto.WriteProblem(w, r, resp)
}

// deadlineWriter holds the handler's response until Timeout decides whether
// it reaches the client.
type deadlineWriter struct {
	mu      sync.Mutex
	header  http.Header
	body    []byte
	status  int
	expired bool
}

func (dw *deadlineWriter) Header() http.Header {
	return dw.header
}

func (dw *deadlineWriter) WriteHeader(code int) {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	if dw.status == 0 {
		dw.status = code
	}
}

func (dw *deadlineWriter) Write(b []byte) (int, error) {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	if dw.expired {
		return 0, http.ErrHandlerTimeout
	}
	if dw.status == 0 {
		dw.status = http.StatusOK
	}
	dw.body = append(dw.body, b...)
	return len(b), nil
}

// expire marks the response as abandoned.
func (dw *deadlineWriter) expire() {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	dw.expired = true
}

func (dw *deadlineWriter) copyTo(w http.ResponseWriter) {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	maps.Copy(w.Header(), dw.header)
	if dw.status != 0 {
		w.WriteHeader(dw.status)
	}
	if len(dw.body) > 0 {
		_, _ = w.Write(dw.body)
	}
}
