package middleware

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/go-packaging-service/internal/adapters/http/dto"
)

// errRateLimited is reported in the problem details of a throttled request.
var errRateLimited = errors.New("too many requests")

// RateLimit returns middleware that admits requests through a shared token
// bucket refilled at rps tokens per second with the given burst. Throttled
// requests receive an RFC 9457 429 response with a Retry-After header.
// A non-positive rps disables limiting.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	retryAfter := strconv.Itoa(int(math.Ceil(1 / rps)))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", retryAfter)
				writeTooManyRequests(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeTooManyRequests(w http.ResponseWriter, r *http.Request) {
	resp := dto.NewErrorResponse(r, errRateLimited)
	resp.Status = http.StatusTooManyRequests
	resp.Title = http.StatusText(http.StatusTooManyRequests)
	dto.WriteProblem(w, r, resp)
}
