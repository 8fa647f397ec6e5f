package handlers_test

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"

	"github.com/jsamuelsen11/go-packaging-service/internal/domain/packaging"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func testDescriptors() []packaging.Descriptor {
	return []packaging.Descriptor{
		{ID: "fast", AdminLabel: "Fast Shipping"},
		{ID: "cheap", AdminLabel: "Cheapest"},
	}
}

func testReport(id, label string) *packaging.InvocationReport {
	products := packaging.SampleProducts()
	return &packaging.InvocationReport{
		StrategyID: id,
		AdminLabel: label,
		Products:   products,
		Packages:   []packaging.Package{packaging.NewPackage(products...)},
		Dump:       packaging.ReportHeader + "\n- products: []\n",
		InvokedAt:  testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func rawBody(s string) *strings.Reader {
	return strings.NewReader(s)
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
