package allowable

import (
	"filings-gateway/internal/entity"
	"filings-gateway/internal/filing"
	"filings-gateway/internal/flags"
	"filings-gateway/pkg/platform/middleware/auth"
)

// RouteDigitalCredentials is the route name of the digital-credentials page.
// The page itself must not offer a link to itself.
const RouteDigitalCredentials = "digital-credentials"

// Input carries everything a decision reads. Business is nil when no business
// is loaded in the session; every predicate on a nil Business is false.
type Input struct {
	// BusinessID is the session's loaded-business marker. Empty means no
	// business context.
	BusinessID string

	// Business is the snapshot for BusinessID, nil when not loaded.
	Business *entity.Business

	// Roles are the caller's authorization roles.
	Roles []string

	// Flags is the session's frozen flag set. A nil gate answers every
	// query as unknown, so flag-gated actions deny.
	Flags *flags.Gate

	// RouteName is the currently matched route, if the caller supplied one.
	RouteName string
}

func (in Input) hasBusiness() bool {
	return in.BusinessID != "" && in.Business != nil
}

func (in Input) isStaff() bool {
	return auth.HasRole(in.Roles, auth.RoleStaff)
}

// Decide evaluates a single action against the input. It is a pure function:
// no I/O, no clock, no mutation of in.
func Decide(action Action, in Input) Outcome {
	b := in.Business

	switch action {
	case ActionAddDetailComment:
		return outcome(in.isStaff() && in.hasBusiness())

	case ActionAddStaffComment:
		return outcome(in.isStaff())

	case ActionDissolveCompany:
		if !in.hasBusiness() || b.IsHistorical() {
			return OutcomeDeny
		}
		if !in.Flags.ListContains(flags.FlagSupportedDissolutionEntities, string(b.LegalType)) {
			return OutcomeDeny
		}
		// Firms may dissolve with open blockers; companies may not.
		return outcome(b.IsFirm() || !b.HasBlocker())

	case ActionDownloadBusinessSummary:
		return outcome(in.hasBusiness() &&
			in.Flags.ListContains(flags.FlagSupportedBusinessSummaryEntities, string(b.LegalType)))

	case ActionEditBusinessProfile:
		return outcome(in.hasBusiness())

	case ActionFileAddressChange, ActionFileAnnualReport, ActionFileDirectorChange:
		return outcome(in.hasBusiness() && !b.IsHistorical() && !b.HasBlocker())

	case ActionFileCorrection:
		return outcome(in.hasBusiness() && !b.IsHistorical() && !b.HasBlocker() && in.isStaff())

	case ActionFileStaffNotation:
		return outcome(in.hasBusiness() && !b.IsHistorical() &&
			!b.HasBlockerExceptStaffApproval(filing.StaffApprovalTypes) && in.isStaff())

	case ActionViewChangeCompanyInfo:
		if !in.hasBusiness() || b.IsHistorical() {
			return OutcomeDeny
		}
		eligible := b.IsBComp() || b.IsBcCompany() || b.IsUlc() ||
			b.IsSoleProp() || b.IsPartnership() ||
			(b.IsCoop() && in.Flags.Bool(flags.FlagSpecialResolutionUIEnabled))
		return outcome(eligible)

	case ActionViewAddDigitalCredentials:
		if !in.Flags.Bool(flags.FlagEnableDigitalCredentials) {
			return OutcomeDeny
		}
		if in.RouteName == RouteDigitalCredentials {
			return OutcomeDeny
		}
		return outcome(in.hasBusiness() && b.IsInGoodStanding() && b.IsBComp() && !in.isStaff())
	}

	return OutcomeUnknown
}

// DecideAll evaluates every known action and returns the per-action outcomes.
func DecideAll(in Input) map[Action]Outcome {
	out := make(map[Action]Outcome, len(All))
	for _, a := range All {
		out[a] = Decide(a, in)
	}
	return out
}
