// Package filing holds the filing-data accumulator and the filing type
// vocabulary shared by the eligibility rules and the fee configuration.
package filing

// Fee codes for the filing flows a transaction can be composed from.
const (
	CodeAnnualReport      = "OTANN"
	CodeAddressChange     = "OTADD"
	CodeDirectorChange    = "OTCDR"
	CodeCorrection        = "CRCTN"
	CodeSpecialResolution = "OTSPE"
	CodeDissolutionVol    = "DIS_VOL"
	CodeFreeDirector      = "OTFDR"
)

// Filing names as they appear on pending filings from the legal API.
const (
	NameAnnualReport       = "annualReport"
	NameChangeOfAddress    = "changeOfAddress"
	NameChangeOfDirectors  = "changeOfDirectors"
	NameCorrection         = "correction"
	NameCourtOrder         = "courtOrder"
	NameRegistrarsNotation = "registrarsNotation"
	NameRegistrarsOrder    = "registrarsOrder"
	NameConversion         = "conversion"
	NameDissolution        = "dissolution"
)

// StaffApprovalTypes are the filing names staff notations may be filed over
// even while such a filing is pending. Everything else blocks.
var StaffApprovalTypes = map[string]struct{}{
	NameCourtOrder:         {},
	NameRegistrarsNotation: {},
	NameRegistrarsOrder:    {},
	NameConversion:         {},
}
