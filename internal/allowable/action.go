// Package allowable decides which registry actions a caller may take against
// a business. The decision table is pure: it reads the business snapshot,
// the caller's roles, the frozen flag set, and nothing else.
package allowable

import (
	dErrors "filings-gateway/pkg/domain-errors"
)

// Action is a discrete UI-gated operation.
type Action string

const (
	ActionAddDetailComment          Action = "ADD_DETAIL_COMMENT"
	ActionAddStaffComment           Action = "ADD_STAFF_COMMENT"
	ActionDissolveCompany           Action = "DISSOLVE_COMPANY"
	ActionDownloadBusinessSummary   Action = "DOWNLOAD_BUSINESS_SUMMARY"
	ActionEditBusinessProfile       Action = "EDIT_BUSINESS_PROFILE"
	ActionFileAddressChange         Action = "FILE_ADDRESS_CHANGE"
	ActionFileAnnualReport          Action = "FILE_ANNUAL_REPORT"
	ActionFileCorrection            Action = "FILE_CORRECTION"
	ActionFileDirectorChange        Action = "FILE_DIRECTOR_CHANGE"
	ActionFileStaffNotation         Action = "FILE_STAFF_NOTATION"
	ActionViewChangeCompanyInfo     Action = "VIEW_CHANGE_COMPANY_INFO"
	ActionViewAddDigitalCredentials Action = "VIEW_ADD_DIGITAL_CREDENTIALS"
)

// All lists every known action, in evaluation-report order.
var All = []Action{
	ActionAddDetailComment,
	ActionAddStaffComment,
	ActionDissolveCompany,
	ActionDownloadBusinessSummary,
	ActionEditBusinessProfile,
	ActionFileAddressChange,
	ActionFileAnnualReport,
	ActionFileCorrection,
	ActionFileDirectorChange,
	ActionFileStaffNotation,
	ActionViewChangeCompanyInfo,
	ActionViewAddDigitalCredentials,
}

var knownActions = func() map[Action]struct{} {
	m := make(map[Action]struct{}, len(All))
	for _, a := range All {
		m[a] = struct{}{}
	}
	return m
}()

// ParseAction validates a raw action name.
func ParseAction(raw string) (Action, error) {
	a := Action(raw)
	if _, ok := knownActions[a]; !ok {
		return "", dErrors.New(dErrors.CodeValidation, "unknown action "+raw)
	}
	return a, nil
}

// Outcome is the tri-state result of a decision.
//
// The table answers Unknown (not Deny) for an unrecognized action so callers
// can distinguish "the rules said no" from "the rules have no entry". Gating
// code collapses both to not-allowed via Allowed().
type Outcome string

const (
	OutcomeAllow   Outcome = "ALLOW"
	OutcomeDeny    Outcome = "DENY"
	OutcomeUnknown Outcome = "UNKNOWN"
)

// Allowed reports whether the outcome permits the action.
func (o Outcome) Allowed() bool {
	return o == OutcomeAllow
}

func outcome(allowed bool) Outcome {
	if allowed {
		return OutcomeAllow
	}
	return OutcomeDeny
}
