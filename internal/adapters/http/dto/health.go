package dto

import (
	"cmp"
	"slices"
)

// Health status values reported by the liveness and readiness endpoints.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
	HealthFailing  = "failing"
)

// CheckResponse is the outcome of one dependency check.
type CheckResponse struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthResponse is the body of the liveness and readiness endpoints.
type HealthResponse struct {
	Status string          `json:"status"`
	Checks []CheckResponse `json:"checks,omitempty"`
}

// ToReadinessResponse folds check results into a readiness body ordered by
// check name. Ready reports whether every check passed.
func ToReadinessResponse(results map[string]error) (resp HealthResponse, ready bool) {
	checks := make([]CheckResponse, 0, len(results))
	ready = true
	for name, err := range results {
		c := CheckResponse{Name: name, Status: HealthOK}
		if err != nil {
			c.Status = HealthFailing
			c.Error = err.Error()
			ready = false
		}
		checks = append(checks, c)
	}
	slices.SortFunc(checks, func(a, b CheckResponse) int { return cmp.Compare(a.Name, b.Name) })

	resp = HealthResponse{Status: HealthReady, Checks: checks}
	if !ready {
		resp.Status = HealthNotReady
	}
	return resp, ready
}
