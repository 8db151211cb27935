package entity

import "time"

// PendingFiling is a filing already underway against a business. Its presence
// blocks most new filings until it completes or is deleted.
type PendingFiling struct {
	FilingType string `json:"filingType"`
	Status     string `json:"status"`
}

// Pending filing statuses that count as blocking.
const (
	FilingStatusDraft   = "DRAFT"
	FilingStatusPending = "PENDING"
	FilingStatusError   = "ERROR"
	FilingStatusPaid    = "PAID"
)

// Business is the snapshot of a registered business the eligibility rules
// evaluate against. It is loaded whole and replaced whole; predicates derive
// everything else from it.
type Business struct {
	Identifier     string
	LegalType      Type
	State          State
	GoodStanding   bool
	AdminFreeze    bool
	PendingTasks   int
	PendingFilings []PendingFiling
	UpdatedAt      time.Time
}

// IsBComp reports whether the business is a Benefit Company.
func (b *Business) IsBComp() bool {
	return b.LegalType == TypeBenefitCompany || b.LegalType == TypeContinuedBen
}

// IsBcCompany reports whether the business is a BC Limited Company.
func (b *Business) IsBcCompany() bool {
	return b.LegalType == TypeBcCompany || b.LegalType == TypeContinuedBc
}

// IsUlc reports whether the business is an Unlimited Liability Company.
func (b *Business) IsUlc() bool {
	return b.LegalType == TypeBcUlcCompany || b.LegalType == TypeContinuedUlc
}

// IsCcc reports whether the business is a Community Contribution Company.
func (b *Business) IsCcc() bool {
	return b.LegalType == TypeBcCcc || b.LegalType == TypeContinuedCcc
}

// IsCoop reports whether the business is a Cooperative Association.
func (b *Business) IsCoop() bool {
	return b.LegalType == TypeCoop
}

// IsSoleProp reports whether the business is a Sole Proprietorship.
func (b *Business) IsSoleProp() bool {
	return b.LegalType == TypeSoleProp
}

// IsPartnership reports whether the business is a General Partnership.
func (b *Business) IsPartnership() bool {
	return b.LegalType == TypePartnership
}

// IsFirm reports whether the business is a firm (sole prop or partnership).
// Firms bypass the blocker check for dissolution.
func (b *Business) IsFirm() bool {
	return b.IsSoleProp() || b.IsPartnership()
}

// IsHistorical reports whether the business has been dissolved or otherwise
// removed from the active register.
func (b *Business) IsHistorical() bool {
	return b.State == StateHistorical
}

// IsInGoodStanding reflects the good-standing flag on the business record.
// It is not derived from the lifecycle state.
func (b *Business) IsInGoodStanding() bool {
	return b.GoodStanding
}

// HasBlocker reports whether anything prevents starting a new filing:
// an admin freeze, an incomplete task, or a filing already underway.
func (b *Business) HasBlocker() bool {
	if b.AdminFreeze || b.PendingTasks > 0 {
		return true
	}
	for _, f := range b.PendingFilings {
		if isBlockingStatus(f.Status) {
			return true
		}
	}
	return false
}

// HasBlockerExceptStaffApproval is HasBlocker with staff-approval filings
// ignored. Staff notations may be filed over a pending court order or
// registrar notation; anything else still blocks.
func (b *Business) HasBlockerExceptStaffApproval(staffApprovalTypes map[string]struct{}) bool {
	if b.AdminFreeze || b.PendingTasks > 0 {
		return true
	}
	for _, f := range b.PendingFilings {
		if !isBlockingStatus(f.Status) {
			continue
		}
		if _, ok := staffApprovalTypes[f.FilingType]; ok {
			continue
		}
		return true
	}
	return false
}

func isBlockingStatus(status string) bool {
	switch status {
	case FilingStatusDraft, FilingStatusPending, FilingStatusError, FilingStatusPaid:
		return true
	default:
		return false
	}
}
