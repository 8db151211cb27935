//go:build integration

package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"filings-gateway/internal/entity"
	"filings-gateway/internal/filing"
	"filings-gateway/internal/filing/store"
	"filings-gateway/pkg/testutil/containers"
)

type PostgresDraftSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
}

func TestPostgresDraftSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresDraftSuite))
}

func (s *PostgresDraftSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = store.NewPostgres(s.postgres.DB)
}

func (s *PostgresDraftSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "filing_data"))
}

func (s *PostgresDraftSuite) TestReplaceLoadClear() {
	ctx := context.Background()
	entries := []filing.Entry{
		{FilingTypeCode: filing.CodeAddressChange, EntityType: entity.TypeBenefitCompany},
		{FilingTypeCode: filing.CodeAnnualReport, EntityType: entity.TypeBenefitCompany, Priority: true, WaiveFees: true},
	}

	s.Require().NoError(s.store.Replace(ctx, "BC1234567", entries))

	loaded, err := s.store.Load(ctx, "BC1234567")
	s.Require().NoError(err)
	s.Equal(entries, loaded)

	s.Require().NoError(s.store.Clear(ctx, "BC1234567"))
	loaded, err = s.store.Load(ctx, "BC1234567")
	s.Require().NoError(err)
	s.Empty(loaded)
}

func (s *PostgresDraftSuite) TestReplaceIsAtomic() {
	ctx := context.Background()
	s.Require().NoError(s.store.Replace(ctx, "BC1234567", []filing.Entry{
		{FilingTypeCode: filing.CodeAnnualReport, EntityType: entity.TypeBenefitCompany},
	}))

	// A replace containing a duplicate code violates the PK and must leave
	// the previous draft intact.
	err := s.store.Replace(ctx, "BC1234567", []filing.Entry{
		{FilingTypeCode: filing.CodeCorrection, EntityType: entity.TypeBenefitCompany},
		{FilingTypeCode: filing.CodeCorrection, EntityType: entity.TypeBenefitCompany},
	})
	s.Require().Error(err)

	loaded, err := s.store.Load(ctx, "BC1234567")
	s.Require().NoError(err)
	s.Len(loaded, 1)
	s.Equal(filing.CodeAnnualReport, loaded[0].FilingTypeCode)
}

func (s *PostgresDraftSuite) TestDraftsAreScopedByBusiness() {
	ctx := context.Background()
	s.Require().NoError(s.store.Replace(ctx, "BC1111111", []filing.Entry{
		{FilingTypeCode: filing.CodeAnnualReport, EntityType: entity.TypeBcCompany},
	}))
	s.Require().NoError(s.store.Replace(ctx, "BC2222222", []filing.Entry{
		{FilingTypeCode: filing.CodeCorrection, EntityType: entity.TypeBcCompany},
	}))

	s.Require().NoError(s.store.Clear(ctx, "BC1111111"))

	loaded, err := s.store.Load(ctx, "BC2222222")
	s.Require().NoError(err)
	s.Len(loaded, 1)
}
