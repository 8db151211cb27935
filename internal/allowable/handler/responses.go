package handler

import (
	"time"

	"filings-gateway/internal/allowable"
)

// ResolveResponse is the HTTP response for GET .../allowable-actions.
type ResolveResponse struct {
	BusinessID  string            `json:"business_id"`
	Actions     map[string]string `json:"actions"`
	Allowed     []string          `json:"allowed"`
	DraftCodes  []string          `json:"draft_codes,omitempty"`
	EvaluatedAt time.Time         `json:"evaluated_at"`
}

// CheckResponse is the HTTP response for POST .../allowable-actions/check.
type CheckResponse struct {
	Action  string `json:"action"`
	Outcome string `json:"outcome"`
	Allowed bool   `json:"allowed"`
}

// FromReport converts a resolver report to an HTTP response. The allowed list
// follows the canonical action order so responses are stable.
func FromReport(report *allowable.Report) *ResolveResponse {
	actions := make(map[string]string, len(report.Outcomes))
	var allowed []string
	for _, a := range allowable.All {
		out := report.Outcomes[a]
		actions[string(a)] = string(out)
		if out.Allowed() {
			allowed = append(allowed, string(a))
		}
	}
	return &ResolveResponse{
		BusinessID:  report.BusinessID,
		Actions:     actions,
		Allowed:     allowed,
		DraftCodes:  report.DraftCodes,
		EvaluatedAt: report.EvaluatedAt,
	}
}
