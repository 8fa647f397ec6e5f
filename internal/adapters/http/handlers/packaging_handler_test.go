package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-packaging-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-packaging-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-packaging-service/internal/domain"
	"github.com/jsamuelsen11/go-packaging-service/internal/domain/packaging"
	"github.com/jsamuelsen11/go-packaging-service/internal/ports"
	"github.com/jsamuelsen11/go-packaging-service/mocks"
)

// --- Strategies ---

func TestStrategies_Success(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockPackagingDebugService(t)
	svc.EXPECT().ListStrategies(mock.Anything).Return(testDescriptors(), nil)

	h := handlers.NewPackagingHandler(svc)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/packaging/strategies", nil)
	h.Strategies(rec, req)

	requireStatus(t, rec, http.StatusOK)

	got := decodeJSON[dto.DescriptorListResponse](t, rec)
	want := dto.DescriptorListResponse{
		Strategies: []dto.DescriptorResponse{
			{ID: "fast", AdminLabel: "Fast Shipping"},
			{ID: "cheap", AdminLabel: "Cheapest"},
		},
		Count: 2,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func TestStrategies_ServiceError(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockPackagingDebugService(t)
	svc.EXPECT().ListStrategies(mock.Anything).Return(nil, errors.New("boom"))

	h := handlers.NewPackagingHandler(svc)
	rec := httptest.NewRecorder()
	h.Strategies(rec, httptest.NewRequest(http.MethodGet, "/api/v1/packaging/strategies", nil))

	requireStatus(t, rec, http.StatusInternalServerError)
}

// --- Form ---

func TestForm_Success(t *testing.T) {
	t.Parallel()

	form := packaging.BuildSelectionForm(testDescriptors(), "", false)
	svc := mocks.NewMockPackagingDebugService(t)
	svc.EXPECT().RenderSelectionForm(mock.Anything).Return(&form, nil)

	h := handlers.NewPackagingHandler(svc)
	rec := httptest.NewRecorder()
	h.Form(rec, httptest.NewRequest(http.MethodGet, "/api/v1/packaging/debug", nil))

	requireStatus(t, rec, http.StatusOK)

	got := decodeJSON[dto.FormResponse](t, rec)
	if got.FormID != "packaging_debug" {
		t.Errorf("FormID = %q, want %q", got.FormID, "packaging_debug")
	}
	if got.Field.Default != "fast" {
		t.Errorf("Default = %q, want %q", got.Field.Default, "fast")
	}
	if len(got.Field.Options) != 2 {
		t.Errorf("len(Options) = %d, want 2", len(got.Field.Options))
	}
}

func TestForm_PersistenceError(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockPackagingDebugService(t)
	svc.EXPECT().RenderSelectionForm(mock.Anything).Return(nil, &domain.PersistenceError{
		Op: "get", Key: packaging.SettingsKeyStrategy, Err: errors.New("database is locked"),
	})

	h := handlers.NewPackagingHandler(svc)
	rec := httptest.NewRecorder()
	h.Form(rec, httptest.NewRequest(http.MethodGet, "/api/v1/packaging/debug", nil))

	requireStatus(t, rec, http.StatusBadGateway)
}

// --- Submit ---

func TestSubmit_Success(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockPackagingDebugService(t)
	svc.EXPECT().
		SubmitSelection(mock.Anything, ports.SelectionInput{StrategyID: "cheap"}).
		Return(testReport("cheap", "Cheapest"), nil)

	h := handlers.NewPackagingHandler(svc)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/packaging/debug",
		jsonBody(t, map[string]string{"packaging_strategy": "cheap"}))
	h.Submit(rec, req)

	requireStatus(t, rec, http.StatusOK)

	got := decodeJSON[dto.ReportResponse](t, rec)
	if got.Strategy != "cheap" || got.AdminLabel != "Cheapest" {
		t.Errorf("report = %q/%q, want cheap/Cheapest", got.Strategy, got.AdminLabel)
	}
	if len(got.Products) != 2 {
		t.Errorf("len(Products) = %d, want 2", len(got.Products))
	}
	if got.InvokedAt != "2026-02-12T15:04:05Z" {
		t.Errorf("InvokedAt = %q, want %q", got.InvokedAt, "2026-02-12T15:04:05Z")
	}
}

func TestSubmit_RequestErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"malformed JSON", `{"packaging_strategy":`, "body.body"},
		{"unknown field", `{"strategy":"cheap"}`, "body.body"},
		{"missing strategy", `{}`, "body.packaging_strategy"},
		{"blank strategy", `{"packaging_strategy":"  "}`, "body.packaging_strategy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockPackagingDebugService(t)
			h := handlers.NewPackagingHandler(svc)

			rec := httptest.NewRecorder()
			h.Submit(rec, httptest.NewRequest(http.MethodPost, "/api/v1/packaging/debug", rawBody(tt.body)))

			requireStatus(t, rec, http.StatusBadRequest)
			got := decodeJSON[dto.ErrorResponse](t, rec)
			if len(got.Errors) != 1 || got.Errors[0].Location != tt.wantField {
				t.Errorf("Errors = %+v, want one at %q", got.Errors, tt.wantField)
			}
		})
	}
}

func TestSubmit_ServiceErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "not in registry",
			err:        &domain.ValidationError{Fields: map[string]string{"packaging_strategy": "unknown strategy"}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown strategy",
			err:        &domain.UnknownStrategyError{ID: "cheap"},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "strategy failure",
			err:        &domain.StrategyExecutionError{ID: "cheap", Err: errors.New("boom")},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "persistence failure",
			err:        &domain.PersistenceError{Op: "set", Key: packaging.SettingsKeyStrategy, Err: errors.New("read-only")},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockPackagingDebugService(t)
			svc.EXPECT().SubmitSelection(mock.Anything, mock.Anything).Return(nil, tt.err)

			h := handlers.NewPackagingHandler(svc)
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/packaging/debug",
				jsonBody(t, map[string]string{"packaging_strategy": "cheap"}))
			h.Submit(rec, req)

			requireStatus(t, rec, tt.wantStatus)
			if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("Content-Type = %q, want application/problem+json", ct)
			}
		})
	}
}
