package handler

import (
	"filings-gateway/internal/allowable"
)

// CheckRequest is the HTTP request for POST .../allowable-actions/check.
type CheckRequest struct {
	Action string `json:"action"`

	parsed allowable.Action
}

// Validate checks the requested action and caches the parsed value.
func (r *CheckRequest) Validate() error {
	action, err := allowable.ParseAction(r.Action)
	if err != nil {
		return err
	}
	r.parsed = action
	return nil
}

// ParsedAction returns the validated action. Only valid after Validate.
func (r *CheckRequest) ParsedAction() allowable.Action {
	return r.parsed
}
