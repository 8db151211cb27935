package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"filings-gateway/internal/entity"
	entitystore "filings-gateway/internal/entity/store"
	"filings-gateway/internal/filing"
	filingstore "filings-gateway/internal/filing/store"
	dErrors "filings-gateway/pkg/domain-errors"
	"filings-gateway/pkg/platform/audit"
)

type ServiceSuite struct {
	suite.Suite
	ctx  context.Context
	svc  *Service
	sink *audit.MemoryPublisher
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.sink = audit.NewMemoryPublisher()

	businesses := entitystore.NewMemory()
	s.Require().NoError(businesses.Save(s.ctx, &entity.Business{
		Identifier: "BC1234567",
		LegalType:  entity.TypeBenefitCompany,
		State:      entity.StateActive,
	}))

	svc, err := NewService(businesses, filingstore.NewMemory(), WithAudit(s.sink))
	s.Require().NoError(err)
	s.svc = svc
}

func boolPtr(b bool) *bool { return &b }

func (s *ServiceSuite) TestUpdateAddAndRemove() {
	entries, err := s.svc.Update(s.ctx, "BC1234567", UpdateOp{
		Action:     filing.ActionAdd,
		FilingCode: filing.CodeCorrection,
		Priority:   boolPtr(true),
		WaiveFees:  boolPtr(true),
	})
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal(filing.CodeCorrection, entries[0].FilingTypeCode)
	s.Equal(entity.TypeBenefitCompany, entries[0].EntityType)
	s.True(entries[0].Priority)
	s.True(entries[0].WaiveFees)

	entries, err = s.svc.Update(s.ctx, "BC1234567", UpdateOp{
		Action:     filing.ActionRemove,
		FilingCode: filing.CodeCorrection,
	})
	s.Require().NoError(err)
	s.Empty(entries)

	events := s.sink.Events()
	s.Require().Len(events, 2)
	s.Equal(string(audit.EventFilingDataUpdated), events[0].Action)
	s.Equal("BC1234567", events[0].BusinessID)
}

func (s *ServiceSuite) TestUpdateSurvivesReload() {
	_, err := s.svc.Update(s.ctx, "BC1234567", UpdateOp{
		Action:     filing.ActionAdd,
		FilingCode: filing.CodeAnnualReport,
	})
	s.Require().NoError(err)

	// A later bulk update replays the persisted entries.
	entries, err := s.svc.Update(s.ctx, "BC1234567", UpdateOp{
		Action:    filing.ActionAdd,
		WaiveFees: boolPtr(true),
	})
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal(filing.CodeAnnualReport, entries[0].FilingTypeCode)
	s.True(entries[0].WaiveFees)
	s.False(entries[0].Priority)
}

func (s *ServiceSuite) TestUpdateUnknownBusiness() {
	_, err := s.svc.Update(s.ctx, "BC9999999", UpdateOp{
		Action:     filing.ActionAdd,
		FilingCode: filing.CodeAnnualReport,
	})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestGetEmptyDraft() {
	entries, err := s.svc.Get(s.ctx, "BC1234567")
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *ServiceSuite) TestClear() {
	_, err := s.svc.Update(s.ctx, "BC1234567", UpdateOp{
		Action:     filing.ActionAdd,
		FilingCode: filing.CodeAnnualReport,
	})
	s.Require().NoError(err)

	s.Require().NoError(s.svc.Clear(s.ctx, "BC1234567"))

	entries, err := s.svc.Get(s.ctx, "BC1234567")
	s.Require().NoError(err)
	s.Empty(entries)

	events := s.sink.Events()
	s.Require().Len(events, 2)
	s.Equal(string(audit.EventFilingDataCleared), events[1].Action)
}

func TestClearUnknownBusinessIsNoOp(t *testing.T) {
	businesses := entitystore.NewMemory()
	svc, err := NewService(businesses, filingstore.NewMemory())
	require.NoError(t, err)

	assert.NoError(t, svc.Clear(context.Background(), "BC9999999"))
}

func TestGetUnknownBusinessIsEmpty(t *testing.T) {
	svc, err := NewService(entitystore.NewMemory(), filingstore.NewMemory())
	require.NoError(t, err)

	entries, err := svc.Get(context.Background(), "BC9999999")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
