package entityconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filings-gateway/internal/entity"
	"filings-gateway/internal/filing"
	dErrors "filings-gateway/pkg/domain-errors"
)

func TestFor(t *testing.T) {
	cfg, err := For(entity.TypeBenefitCompany)
	require.NoError(t, err)

	assert.Equal(t, entity.TypeBenefitCompany, cfg.EntityType)
	assert.Equal(t, "BC Benefit Company", cfg.DisplayName)
	assert.Equal(t, 1, cfg.MinDirectors)
	assert.NotEmpty(t, cfg.Obligations)
	assert.NotEmpty(t, cfg.DissolutionConfirmation)

	codes := make([]string, 0, len(cfg.Flows))
	for _, f := range cfg.Flows {
		codes = append(codes, f.FeeCode)
	}
	assert.Contains(t, codes, filing.CodeAnnualReport)
	assert.Contains(t, codes, filing.CodeDissolutionVol)
}

func TestFor_ContinuedTypesShareBaseConfig(t *testing.T) {
	base, err := For(entity.TypeBenefitCompany)
	require.NoError(t, err)
	continued, err := For(entity.TypeContinuedBen)
	require.NoError(t, err)

	assert.Equal(t, entity.TypeContinuedBen, continued.EntityType)
	assert.Equal(t, base.DisplayName, continued.DisplayName)
	assert.Equal(t, base.Flows, continued.Flows)
}

func TestFor_UnknownType(t *testing.T) {
	_, err := For(entity.Type("XX"))
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestFor_ReturnsDefensiveCopies(t *testing.T) {
	first, err := For(entity.TypeCoop)
	require.NoError(t, err)

	first.DisplayName = "mutated"
	first.Flows[0].CertifyText = "mutated"
	first.Flows = first.Flows[:1]

	second, err := For(entity.TypeCoop)
	require.NoError(t, err)
	assert.Equal(t, "BC Cooperative Association", second.DisplayName)
	assert.NotEqual(t, "mutated", second.Flows[0].CertifyText)
	assert.Len(t, second.Flows, 5)
}

func TestCertifyText(t *testing.T) {
	text := CertifyText(entity.TypeCoop, filing.CodeSpecialResolution)
	assert.Contains(t, text, "Cooperative Association Act")

	assert.Empty(t, CertifyText(entity.TypeCoop, "NOPE"))
	assert.Empty(t, CertifyText(entity.Type("XX"), filing.CodeAnnualReport))
	// Special resolution is a coop-only flow.
	assert.Empty(t, CertifyText(entity.TypeBcCompany, filing.CodeSpecialResolution))
}
