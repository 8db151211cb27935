// Package entityconfig is the static per-entity-type configuration resource:
// filing flows with fee codes and certify text, obligation copy, dissolution
// confirmation copy, and director requirements. Pure lookups, no runtime
// mutation.
package entityconfig

import (
	"filings-gateway/internal/entity"
	dErrors "filings-gateway/pkg/domain-errors"
)

// Flow is one filing flow available to an entity type.
type Flow struct {
	FeeCode     string   `json:"feeCode"`
	DisplayName string   `json:"displayName"`
	CertifyText string   `json:"certifyText"`
	Warnings    []string `json:"warnings,omitempty"`
}

// Config is the full configuration record for one entity type.
type Config struct {
	EntityType              entity.Type `json:"entityType"`
	DisplayName             string      `json:"displayName"`
	Flows                   []Flow      `json:"flows"`
	Obligations             string      `json:"obligations"`
	DissolutionConfirmation string      `json:"dissolutionConfirmation"`
	MinDirectors            int         `json:"minDirectors"`
}

// canonical folds continued-in types onto their base form; the configuration
// is identical either way.
func canonical(t entity.Type) entity.Type {
	switch t {
	case entity.TypeContinuedBen:
		return entity.TypeBenefitCompany
	case entity.TypeContinuedBc:
		return entity.TypeBcCompany
	case entity.TypeContinuedUlc:
		return entity.TypeBcUlcCompany
	case entity.TypeContinuedCcc:
		return entity.TypeBcCcc
	default:
		return t
	}
}

// For returns the configuration for an entity type. The result is a defensive
// copy: callers may mutate it without affecting later lookups.
func For(entityType entity.Type) (*Config, error) {
	cfg, ok := registry[canonical(entityType)]
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "no configuration for entity type "+string(entityType))
	}

	out := cfg
	out.EntityType = entityType
	out.Flows = make([]Flow, len(cfg.Flows))
	copy(out.Flows, cfg.Flows)
	for i := range out.Flows {
		if len(cfg.Flows[i].Warnings) > 0 {
			out.Flows[i].Warnings = make([]string, len(cfg.Flows[i].Warnings))
			copy(out.Flows[i].Warnings, cfg.Flows[i].Warnings)
		}
	}
	return &out, nil
}

// CertifyText returns the certify text of the flow with the given fee code,
// or "" when the type or flow is unknown.
func CertifyText(entityType entity.Type, feeCode string) string {
	cfg, ok := registry[canonical(entityType)]
	if !ok {
		return ""
	}
	for _, f := range cfg.Flows {
		if f.FeeCode == feeCode {
			return f.CertifyText
		}
	}
	return ""
}
