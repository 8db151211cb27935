package filing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filings-gateway/internal/entity"
)

func boolPtr(b bool) *bool { return &b }

func TestAccumulatorAddRemove(t *testing.T) {
	a := NewAccumulator(entity.TypeBenefitCompany)

	t.Run("add then remove leaves no entry", func(t *testing.T) {
		a.Update(ActionAdd, CodeCorrection, boolPtr(true), boolPtr(true))
		require.True(t, a.Has(CodeCorrection))

		a.Update(ActionRemove, CodeCorrection, nil, nil)
		assert.False(t, a.Has(CodeCorrection))
		assert.Zero(t, a.Len())
	})

	t.Run("removing an absent code is a no-op", func(t *testing.T) {
		a.Update(ActionRemove, CodeAnnualReport, nil, nil)
		assert.Zero(t, a.Len())
	})

	t.Run("re-adding replaces the existing entry", func(t *testing.T) {
		a.Update(ActionAdd, CodeAnnualReport, boolPtr(true), nil)
		a.Update(ActionAdd, CodeAnnualReport, nil, boolPtr(true))

		entries := a.Entries()
		require.Len(t, entries, 1)
		assert.False(t, entries[0].Priority, "fresh entry, not merged")
		assert.True(t, entries[0].WaiveFees)
	})

	t.Run("new entries carry the accumulator's entity type", func(t *testing.T) {
		entries := a.Entries()
		require.NotEmpty(t, entries)
		assert.Equal(t, entity.TypeBenefitCompany, entries[0].EntityType)
	})
}

func TestAccumulatorBulkFlagUpdate(t *testing.T) {
	a := NewAccumulator(entity.TypeCoop)
	a.Update(ActionAdd, CodeAnnualReport, boolPtr(true), nil)
	a.Update(ActionAdd, CodeAddressChange, nil, nil)

	t.Run("add with no code sets waiveFees everywhere, priority untouched", func(t *testing.T) {
		a.Update(ActionAdd, "", nil, boolPtr(true))

		for _, e := range a.Entries() {
			assert.True(t, e.WaiveFees, e.FilingTypeCode)
		}
		entries := a.Entries()
		// Sorted by code: OTADD before OTANN.
		assert.False(t, entries[0].Priority)
		assert.True(t, entries[1].Priority)
	})

	t.Run("remove with no code clears priority everywhere, waiveFees untouched", func(t *testing.T) {
		a.Update(ActionRemove, "", boolPtr(true), nil)

		for _, e := range a.Entries() {
			assert.False(t, e.Priority, e.FilingTypeCode)
			assert.True(t, e.WaiveFees, e.FilingTypeCode)
		}
	})

	t.Run("nil flags leave everything untouched", func(t *testing.T) {
		before := a.Entries()
		a.Update(ActionAdd, "", nil, nil)
		assert.Equal(t, before, a.Entries())
	})
}

func TestAccumulatorUniqueness(t *testing.T) {
	a := NewAccumulator(entity.TypeBcCompany)
	a.Update(ActionAdd, CodeCorrection, nil, nil)
	a.Update(ActionAdd, CodeCorrection, boolPtr(true), nil)
	a.Update(ActionAdd, CodeCorrection, nil, boolPtr(true))

	assert.Equal(t, 1, a.Len())
}

func TestAccumulatorResetAndRestore(t *testing.T) {
	a := NewAccumulator(entity.TypeBcCompany)
	a.Update(ActionAdd, CodeAnnualReport, nil, nil)
	a.Reset()
	assert.Zero(t, a.Len())

	a.Restore([]Entry{
		{FilingTypeCode: CodeAnnualReport, EntityType: entity.TypeBcCompany},
		{FilingTypeCode: CodeCorrection, EntityType: entity.TypeBcCompany, Priority: true},
		{FilingTypeCode: CodeAnnualReport, EntityType: entity.TypeBcCompany, WaiveFees: true},
	})

	assert.Equal(t, 2, a.Len())
	entries := a.Entries()
	// Duplicate codes collapse, last one wins.
	require.Equal(t, CodeCorrection, entries[0].FilingTypeCode)
	require.Equal(t, CodeAnnualReport, entries[1].FilingTypeCode)
	assert.True(t, entries[1].WaiveFees)
}
