package entity

import (
	dErrors "filings-gateway/pkg/domain-errors"
)

// Type is the corporate-form code a business is registered under.
type Type string

const (
	TypeBenefitCompany Type = "BEN"
	TypeBcCompany      Type = "BC"
	TypeBcUlcCompany   Type = "ULC"
	TypeBcCcc          Type = "CC"
	TypeCoop           Type = "CP"
	TypeSoleProp       Type = "SP"
	TypePartnership    Type = "GP"
	TypeContinuedBen   Type = "CBEN"
	TypeContinuedBc    Type = "C"
	TypeContinuedUlc   Type = "CUL"
	TypeContinuedCcc   Type = "CCC"
)

var knownTypes = map[Type]struct{}{
	TypeBenefitCompany: {},
	TypeBcCompany:      {},
	TypeBcUlcCompany:   {},
	TypeBcCcc:          {},
	TypeCoop:           {},
	TypeSoleProp:       {},
	TypePartnership:    {},
	TypeContinuedBen:   {},
	TypeContinuedBc:    {},
	TypeContinuedUlc:   {},
	TypeContinuedCcc:   {},
}

// ParseType validates a raw legal-type code.
func ParseType(raw string) (Type, error) {
	t := Type(raw)
	if _, ok := knownTypes[t]; !ok {
		return "", dErrors.New(dErrors.CodeValidation, "unknown legal type "+raw)
	}
	return t, nil
}

// State is the lifecycle state of a business.
type State string

const (
	StateActive      State = "ACTIVE"
	StateHistorical  State = "HISTORICAL"
	StateLiquidation State = "LIQUIDATION"
)

// ParseState validates a raw lifecycle state.
func ParseState(raw string) (State, error) {
	switch State(raw) {
	case StateActive, StateHistorical, StateLiquidation:
		return State(raw), nil
	default:
		return "", dErrors.New(dErrors.CodeValidation, "unknown entity state "+raw)
	}
}
