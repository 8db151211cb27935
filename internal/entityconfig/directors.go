package entityconfig

import (
	"strconv"

	"filings-gateway/internal/entity"
)

// Address is the subset of a civic address the residency checks read.
type Address struct {
	AddressRegion  string `json:"addressRegion"`
	AddressCountry string `json:"addressCountry"`
}

// Director is one director row as submitted in a director-change flow.
// A director with a "ceased" action is being removed and does not count
// toward the minimum.
type Director struct {
	Actions         []string `json:"actions,omitempty"`
	DeliveryAddress Address  `json:"deliveryAddress"`
	MailingAddress  Address  `json:"mailingAddress"`
}

const actionCeased = "ceased"

func (d Director) ceased() bool {
	for _, a := range d.Actions {
		if a == actionCeased {
			return true
		}
	}
	return false
}

func (d Director) residentOfBC() bool {
	return d.DeliveryAddress.AddressRegion == "BC" && d.MailingAddress.AddressRegion == "BC"
}

func (d Director) residentOfCanada() bool {
	return d.DeliveryAddress.AddressCountry == "CA" && d.MailingAddress.AddressCountry == "CA"
}

// Warning is one director-requirement failure, ready to display.
type Warning struct {
	Title   string `json:"title"`
	Message string `json:"msg"`
}

// DirectorWarning evaluates the director requirements for an entity type, in
// order: BC residency, Canadian residency, minimum count. Only the first
// triggered warning is returned; nil means all requirements pass.
//
// The residency checks apply only when at least one active director is
// supplied; with none, the minimum-count check is the meaningful failure.
// Firms carry no director requirements at all: proprietors and partners
// have no residency rule and no minimum.
func DirectorWarning(entityType entity.Type, directors []Director) *Warning {
	legalType := canonical(entityType)
	cfg, ok := registry[legalType]
	if !ok {
		return nil
	}
	if legalType == entity.TypeSoleProp || legalType == entity.TypePartnership {
		return nil
	}

	active := make([]Director, 0, len(directors))
	for _, d := range directors {
		if !d.ceased() {
			active = append(active, d)
		}
	}

	if len(active) > 0 {
		bcResidents := 0
		nonCanadian := 0
		for _, d := range active {
			if d.residentOfBC() {
				bcResidents++
			}
			if !d.residentOfCanada() {
				nonCanadian++
			}
		}

		if bcResidents == 0 {
			return &Warning{
				Title:   "BC Resident Director Required",
				Message: "At least one director must have a delivery and mailing address in British Columbia.",
			}
		}
		if nonCanadian*2 > len(active) {
			return &Warning{
				Title:   "Canadian Resident Directors Required",
				Message: "More than half of the directors must have delivery and mailing addresses in Canada.",
			}
		}
	}

	if cfg.MinDirectors > 0 && len(active) < cfg.MinDirectors {
		return minDirectorsWarning(cfg.MinDirectors)
	}
	return nil
}

func minDirectorsWarning(min int) *Warning {
	switch min {
	case 1:
		return &Warning{
			Title:   "One Director Required",
			Message: "This business must have at least one director.",
		}
	case 3:
		return &Warning{
			Title:   "Minimum Three Directors Required",
			Message: "This business must have at least three directors.",
		}
	default:
		return &Warning{
			Title:   "Minimum " + strconv.Itoa(min) + " Directors Required",
			Message: "This business must have at least " + strconv.Itoa(min) + " directors.",
		}
	}
}
