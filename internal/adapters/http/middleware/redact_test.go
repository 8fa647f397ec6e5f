package middleware_test

import (
	"log/slog"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/go-packaging-service/internal/adapters/http/middleware"
)

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers http.Header
		want    map[string]string
	}{
		{
			name:    "redacts authorization",
			headers: http.Header{"Authorization": {"Bearer secret-token"}},
			want:    map[string]string{"Authorization": "[REDACTED]"},
		},
		{
			name:    "redacts api key",
			headers: http.Header{"X-Api-Key": {"key-123"}},
			want:    map[string]string{"X-Api-Key": "[REDACTED]"},
		},
		{
			name:    "redacts cookie",
			headers: http.Header{"Cookie": {"session=abc"}},
			want:    map[string]string{"Cookie": "[REDACTED]"},
		},
		{
			name: "passes through non-sensitive headers",
			headers: http.Header{
				"Content-Type": {"application/json"},
				"Accept":       {"application/json"},
			},
			want: map[string]string{
				"Content-Type": "application/json",
				"Accept":       "application/json",
			},
		},
		{
			name:    "joins multi-value headers",
			headers: http.Header{"Accept": {"text/html", "application/json"}},
			want:    map[string]string{"Accept": "text/html,application/json"},
		},
		{
			name: "mixed sensitive and non-sensitive",
			headers: http.Header{
				"Authorization": {"Bearer secret"},
				"Content-Type":  {"application/json"},
			},
			want: map[string]string{
				"Authorization": "[REDACTED]",
				"Content-Type":  "application/json",
			},
		},
		{
			name:    "empty headers",
			headers: http.Header{},
			want:    map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			attrs := middleware.RedactHeaders(tt.headers)
			got := make(map[string]string, len(attrs))
			for _, a := range attrs {
				got[a.Key] = a.Value.String()
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("RedactHeaders() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRedactHeaders_SortedByName(t *testing.T) {
	t.Parallel()

	attrs := middleware.RedactHeaders(http.Header{
		"X-Request-Id": {"r"},
		"Accept":       {"a"},
		"Cookie":       {"c"},
	})

	keys := make([]string, len(attrs))
	for i, a := range attrs {
		keys[i] = a.Key
	}
	want := []string{"Accept", "Cookie", "X-Request-Id"}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Errorf("attr order mismatch (-want +got):\n%s", diff)
	}
	if attrs[1].Value.Kind() != slog.KindString {
		t.Errorf("Cookie kind = %v, want string", attrs[1].Value.Kind())
	}
}
