package middleware_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"

	"github.com/jsamuelsen11/go-packaging-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-packaging-service/internal/adapters/http/middleware"
)

func serveTimeout(d time.Duration, h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	middleware.Timeout(d)(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, http.NoBody))
	return rec
}

func TestTimeout_DeliversHandlerResponse(t *testing.T) {
	t.Parallel()

	rec := serveTimeout(time.Second, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"packages":2}`))
	}, "/api/v1/packaging/debug")

	if rec.Code != http.StatusAccepted {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusAccepted)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", got)
	}
	if got := rec.Body.String(); got != `{"packages":2}` {
		t.Errorf("body = %q, want %q", got, `{"packages":2}`)
	}
}

func TestTimeout_ImplicitOK(t *testing.T) {
	t.Parallel()

	rec := serveTimeout(time.Second, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("packed"))
	}, "/")

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "packed" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "packed")
	}
}

func TestTimeout_HandlerSeesDeadline(t *testing.T) {
	t.Parallel()

	var deadline bool
	serveTimeout(time.Second, func(_ http.ResponseWriter, r *http.Request) {
		_, deadline = r.Context().Deadline()
	}, "/")

	if !deadline {
		t.Error("request context has no deadline")
	}
}

func TestTimeout_SlowHandlerGetsProblemResponse(t *testing.T) {
	t.Parallel()

	rec := serveTimeout(20*time.Millisecond, func(_ http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}, "/api/v1/packaging/debug")

	if rec.Code != http.StatusGatewayTimeout {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusGatewayTimeout)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}

	var problem dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&problem); err != nil {
		t.Fatalf("decode problem: %v", err)
	}
	if problem.Status != http.StatusGatewayTimeout {
		t.Errorf("problem Status = %d, want %d", problem.Status, http.StatusGatewayTimeout)
	}
	if problem.Instance != "/api/v1/packaging/debug" {
		t.Errorf("problem Instance = %q, want %q", problem.Instance, "/api/v1/packaging/debug")
	}
}

func TestTimeout_LateWritesAreRejected(t *testing.T) {
	t.Parallel()

	lateErr := make(chan error, 1)
	rec := serveTimeout(20*time.Millisecond, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		time.Sleep(50 * time.Millisecond)
		_, err := w.Write([]byte("too late"))
		lateErr <- err
	}, "/")

	if rec.Code != http.StatusGatewayTimeout {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusGatewayTimeout)
	}

	select {
	case err := <-lateErr:
		if !errors.Is(err, http.ErrHandlerTimeout) {
			t.Errorf("late Write() error = %v, want %v", err, http.ErrHandlerTimeout)
		}
	case <-time.After(time.Second):
		t.Fatal("handler never attempted its late write")
	}
	if strings.Contains(rec.Body.String(), "too late") {
		t.Errorf("body = %q, late write leaked into the response", rec.Body.String())
	}
}

func TestTimeout_ClientCancellationWritesNothing(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	handler := middleware.Timeout(time.Second)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		cancel()
		<-r.Context().Done()
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody).WithContext(ctx))

	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty after client cancellation", rec.Body.String())
	}
}

func TestTimeout_PanicReachesRecovery(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	handler := middleware.Recovery(testLogger(&logs))(
		middleware.Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("X-Partial", "yes")
			panic("strategy exploded")
		})),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/packaging/debug", http.NoBody))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
	if rec.Header().Get("X-Partial") != "" {
		t.Error("headers from the panicking handler leaked into the response")
	}
	if !strings.Contains(logs.String(), "strategy exploded") {
		t.Errorf("logs = %q, want the panic value", logs.String())
	}
}
