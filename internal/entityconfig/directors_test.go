package entityconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filings-gateway/internal/entity"
)

func bcDirector() Director {
	return Director{
		DeliveryAddress: Address{AddressRegion: "BC", AddressCountry: "CA"},
		MailingAddress:  Address{AddressRegion: "BC", AddressCountry: "CA"},
	}
}

func directorIn(region, country string) Director {
	return Director{
		DeliveryAddress: Address{AddressRegion: region, AddressCountry: country},
		MailingAddress:  Address{AddressRegion: region, AddressCountry: country},
	}
}

func TestDirectorWarning_BCResidency(t *testing.T) {
	// Single non-BC director on a coop: the BC check fires before the
	// minimum-count check.
	w := DirectorWarning(entity.TypeCoop, []Director{directorIn("ON", "CA")})
	require.NotNil(t, w)
	assert.Equal(t, "BC Resident Director Required", w.Title)
	assert.NotEmpty(t, w.Message)

	// One BC resident is enough to satisfy the check.
	w = DirectorWarning(entity.TypeBenefitCompany, []Director{bcDirector(), directorIn("ON", "CA")})
	assert.Nil(t, w)
}

func TestDirectorWarning_CanadianResidency(t *testing.T) {
	// Two of three directors outside Canada: more than half fail.
	directors := []Director{
		bcDirector(),
		directorIn("WA", "US"),
		directorIn("NY", "US"),
	}
	w := DirectorWarning(entity.TypeBenefitCompany, directors)
	require.NotNil(t, w)
	assert.Equal(t, "Canadian Resident Directors Required", w.Title)

	// Exactly half is still acceptable.
	directors = []Director{
		bcDirector(),
		directorIn("ON", "CA"),
		directorIn("WA", "US"),
		directorIn("NY", "US"),
	}
	assert.Nil(t, DirectorWarning(entity.TypeBenefitCompany, directors))
}

func TestDirectorWarning_MinimumCount(t *testing.T) {
	t.Run("empty list triggers one-director warning for companies", func(t *testing.T) {
		w := DirectorWarning(entity.TypeBenefitCompany, nil)
		require.NotNil(t, w)
		assert.Equal(t, "One Director Required", w.Title)
	})

	t.Run("fully ceased list counts as empty", func(t *testing.T) {
		ceased := bcDirector()
		ceased.Actions = []string{"ceased"}
		w := DirectorWarning(entity.TypeBenefitCompany, []Director{ceased})
		require.NotNil(t, w)
		assert.Equal(t, "One Director Required", w.Title)
	})

	t.Run("coop needs three active directors", func(t *testing.T) {
		w := DirectorWarning(entity.TypeCoop, []Director{bcDirector(), bcDirector()})
		require.NotNil(t, w)
		assert.Equal(t, "Minimum Three Directors Required", w.Title)

		assert.Nil(t, DirectorWarning(entity.TypeCoop, []Director{bcDirector(), bcDirector(), bcDirector()}))
	})

	t.Run("ceased directors do not count", func(t *testing.T) {
		ceased := bcDirector()
		ceased.Actions = []string{"nameChanged", "ceased"}
		w := DirectorWarning(entity.TypeCoop, []Director{bcDirector(), bcDirector(), ceased})
		require.NotNil(t, w)
		assert.Equal(t, "Minimum Three Directors Required", w.Title)
	})
}

func TestDirectorWarning_FirstTriggeredOnly(t *testing.T) {
	// A single non-BC director on a coop fails BC residency, Canadian
	// residency, and minimum count; only the first is reported.
	w := DirectorWarning(entity.TypeCoop, []Director{directorIn("WA", "US")})
	require.NotNil(t, w)
	assert.Equal(t, "BC Resident Director Required", w.Title)
}

func TestDirectorWarning_FirmsHaveNoDirectorRequirements(t *testing.T) {
	assert.Nil(t, DirectorWarning(entity.TypeSoleProp, nil))
	assert.Nil(t, DirectorWarning(entity.TypePartnership, nil))

	// Proprietors and partners carry no residency rule either.
	assert.Nil(t, DirectorWarning(entity.TypeSoleProp, []Director{directorIn("WA", "US")}))
	assert.Nil(t, DirectorWarning(entity.TypePartnership, []Director{
		directorIn("ON", "CA"),
		directorIn("NY", "US"),
	}))
}
