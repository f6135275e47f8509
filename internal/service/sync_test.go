package service

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	cacheMocks "github.com/adroitdesign/studio-api/internal/cache/mocks"
	"github.com/adroitdesign/studio-api/internal/crm"
	crmMocks "github.com/adroitdesign/studio-api/internal/crm/mocks"
	"github.com/adroitdesign/studio-api/internal/errors"
	"github.com/adroitdesign/studio-api/internal/model"
	rpsMocks "github.com/adroitdesign/studio-api/internal/repository/mocks"
)

type syncServiceTestSuite struct {
	suite.Suite
	syncSvc          SyncService
	crmMock          *crmMocks.API
	inquiryRpsMock   *rpsMocks.InquiryRepository
	inquiryCacheMock *cacheMocks.InquiryCache
}

func (s *syncServiceTestSuite) SetupTest() {
	t := s.T()
	s.crmMock = crmMocks.NewAPI(t)
	s.inquiryRpsMock = rpsMocks.NewInquiryRepository(t)
	s.inquiryCacheMock = cacheMocks.NewInquiryCache(t)
	s.syncSvc = NewSyncService(s.crmMock, s.inquiryRpsMock, s.inquiryCacheMock)
}

func pendingInquiry(id int) model.Inquiry {
	return model.Inquiry{
		ID:      id,
		Name:    "Rahul Mehta",
		Email:   "rahul.mehta@somemail.com",
		Message: "Looking for a residential design consultation.",
		Type:    "general",
		Status:  model.InquiryStatusNew,
	}
}

func (s *syncServiceTestSuite) TestSyncPendingPartialFailure() {
	ctx := context.Background()
	first := pendingInquiry(1)
	second := pendingInquiry(2)
	window := time.Duration(defaultSyncWindowDays) * 24 * time.Hour

	s.inquiryRpsMock.On("FindUnsynced", ctx, window).Return([]model.Inquiry{first, second}, nil).Once()
	s.crmMock.On("Create", ctx, crm.ModelLead, mock.MatchedBy(func(values map[string]any) bool {
		return values["email_from"] == first.Email
	})).Return(201, nil).Once()
	s.crmMock.On("Create", ctx, crm.ModelLead, mock.AnythingOfType("map[string]interface {}")).
		Return(0, stderrors.New("connection refused")).Once()
	s.inquiryRpsMock.On("SetLeadID", ctx, first.ID, 201).Return(nil).Once()

	s.T().Log("one inquiry syncs and one fails, the batch itself must still succeed")
	{
		report, err := s.syncSvc.SyncPending(ctx, 0)
		s.Assert().NoError(err, "partial failure is a normal batch outcome")
		s.Assert().Equal(1, report.Synced)
		s.Assert().Equal(1, report.Failed)
		s.Require().Len(report.Results, 1)
		s.Assert().Equal(201, report.Results[0].OdooLeadID)
		s.Require().Len(report.Errors, 1)
		s.Assert().Equal(second.ID, report.Errors[0].InquiryID)
	}
}

func (s *syncServiceTestSuite) TestSyncPendingLinkFailureStillCounts() {
	ctx := context.Background()
	inquiry := pendingInquiry(5)

	s.inquiryRpsMock.On("FindUnsynced", ctx, 3*24*time.Hour).Return([]model.Inquiry{inquiry}, nil).Once()
	s.crmMock.On("Create", ctx, crm.ModelLead, mock.AnythingOfType("map[string]interface {}")).Return(301, nil).Once()
	s.inquiryRpsMock.On("SetLeadID", ctx, inquiry.ID, 301).Return(stderrors.New("connection reset")).Once()

	s.T().Log("lead created but link write failed, item must still count as synced")
	{
		report, err := s.syncSvc.SyncPending(ctx, 3)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(1, report.Synced)
		s.Assert().Equal(0, report.Failed)
	}
}

func (s *syncServiceTestSuite) TestSyncOneNotFound() {
	ctx := context.Background()

	s.inquiryRpsMock.On("FindByID", ctx, 9).Return(nil, nil).Once()

	s.T().Log("inquiry to sync does not exist locally")
	{
		_, err := s.syncSvc.SyncOne(ctx, 9)
		s.Assert().Error(err, "error must be raised")
		s.Assert().IsType(&errors.EntryNotFoundErr{}, err, "it must be not found error")
		s.crmMock.AssertNotCalled(s.T(), "Create", ctx, crm.ModelLead, mock.AnythingOfType("map[string]interface {}"))
	}
}

func (s *syncServiceTestSuite) TestSyncOneSuccessful() {
	ctx := context.Background()
	inquiry := pendingInquiry(9)

	s.inquiryRpsMock.On("FindByID", ctx, inquiry.ID).Return(&inquiry, nil).Once()
	s.crmMock.On("Create", ctx, crm.ModelLead, mock.AnythingOfType("map[string]interface {}")).Return(77, nil).Once()
	s.inquiryRpsMock.On("SetLeadID", ctx, inquiry.ID, 77).Return(nil).Once()

	s.T().Log("single inquiry must be pushed and linked")
	{
		leadID, err := s.syncSvc.SyncOne(ctx, inquiry.ID)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(77, leadID)
	}
}

func (s *syncServiceTestSuite) TestUpdateStatusInvalid() {
	ctx := context.Background()

	s.T().Log("status outside the pipeline vocabulary must be rejected before any write")
	{
		_, err := s.syncSvc.UpdateStatus(ctx, 1, model.LeadStatus("Garbage"))
		s.Assert().Error(err, "error must be raised")
		s.Assert().IsType(&errors.BusinessErr{}, err, "it must be business error")
		s.crmMock.AssertNotCalled(s.T(), "Write", ctx, crm.ModelLead, []int{1}, mock.AnythingOfType("map[string]interface {}"))
		s.inquiryRpsMock.AssertNotCalled(s.T(), "UpdateStatus", ctx, 1, "Garbage")
	}
}

func (s *syncServiceTestSuite) TestUpdateStatusInCrm() {
	ctx := context.Background()

	s.crmMock.On("Write", ctx, crm.ModelLead, []int{4}, map[string]any{"stage_id": model.LeadStages[model.LeadStatusWon]}).
		Return(true, nil).Once()
	s.inquiryCacheMock.On("EvictByID", ctx, 4).Return(nil).Once()

	s.T().Log("crm is reachable, stage must be written there and the local store untouched")
	{
		updatedIn, err := s.syncSvc.UpdateStatus(ctx, 4, model.LeadStatusWon)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(StoredInCRM, updatedIn)
		s.inquiryRpsMock.AssertNotCalled(s.T(), "UpdateStatus", ctx, 4, string(model.LeadStatusWon))
	}
}

func (s *syncServiceTestSuite) TestUpdateStatusLocalFallback() {
	ctx := context.Background()

	s.crmMock.On("Write", ctx, crm.ModelLead, []int{4}, mock.AnythingOfType("map[string]interface {}")).
		Return(false, stderrors.New("connection refused")).Once()
	s.inquiryRpsMock.On("UpdateStatus", ctx, 4, string(model.LeadStatusQualified)).Return(true, nil).Once()
	s.inquiryCacheMock.On("EvictByID", ctx, 4).Return(nil).Once()

	s.T().Log("crm is down, status must land on the local row")
	{
		updatedIn, err := s.syncSvc.UpdateStatus(ctx, 4, model.LeadStatusQualified)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(StoredInLocal, updatedIn)
	}
}

func (s *syncServiceTestSuite) TestUpdateStatusNowhereFound() {
	ctx := context.Background()

	s.crmMock.On("Write", ctx, crm.ModelLead, []int{8}, mock.AnythingOfType("map[string]interface {}")).
		Return(false, stderrors.New("connection refused")).Once()
	s.inquiryRpsMock.On("UpdateStatus", ctx, 8, string(model.LeadStatusLost)).Return(false, nil).Once()

	s.T().Log("crm is down and no local row matched")
	{
		_, err := s.syncSvc.UpdateStatus(ctx, 8, model.LeadStatusLost)
		s.Assert().Error(err, "error must be raised")
		s.Assert().IsType(&errors.EntryNotFoundErr{}, err, "it must be not found error")
	}
}

func (s *syncServiceTestSuite) TestDeleteInCrm() {
	ctx := context.Background()

	s.crmMock.On("Unlink", ctx, crm.ModelLead, []int{6}).Return(true, nil).Once()
	s.inquiryCacheMock.On("EvictByID", ctx, 6).Return(nil).Once()

	s.T().Log("crm is reachable, lead must be unlinked there")
	{
		deletedFrom, err := s.syncSvc.Delete(ctx, 6)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(StoredInCRM, deletedFrom)
		s.inquiryRpsMock.AssertNotCalled(s.T(), "Delete", ctx, 6)
	}
}

func (s *syncServiceTestSuite) TestDeleteLocalFallback() {
	ctx := context.Background()

	s.crmMock.On("Unlink", ctx, crm.ModelLead, []int{6}).Return(false, stderrors.New("connection refused")).Once()
	s.inquiryRpsMock.On("Delete", ctx, 6).Return(true, nil).Once()
	s.inquiryCacheMock.On("EvictByID", ctx, 6).Return(nil).Once()

	s.T().Log("crm is down, the local row must be removed instead")
	{
		deletedFrom, err := s.syncSvc.Delete(ctx, 6)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(StoredInLocal, deletedFrom)
	}
}

func (s *syncServiceTestSuite) TestDeleteNowhereFound() {
	ctx := context.Background()

	s.crmMock.On("Unlink", ctx, crm.ModelLead, []int{6}).Return(false, stderrors.New("connection refused")).Once()
	s.inquiryRpsMock.On("Delete", ctx, 6).Return(false, nil).Once()

	s.T().Log("crm is down and no local row matched")
	{
		_, err := s.syncSvc.Delete(ctx, 6)
		s.Assert().Error(err, "error must be raised")
		s.Assert().IsType(&errors.EntryNotFoundErr{}, err, "it must be not found error")
	}
}

func (s *syncServiceTestSuite) TestTestConnectionFailed() {
	ctx := context.Background()

	s.crmMock.On("Authenticate", ctx).Return(0, stderrors.New("invalid credentials")).Once()

	s.T().Log("connection test must propagate the auth failure")
	{
		err := s.syncSvc.TestConnection(ctx)
		s.Assert().Error(err, "error must be raised")
	}
}

func (s *syncServiceTestSuite) TestLeadsEmptyResult() {
	ctx := context.Background()

	s.crmMock.On("Search", ctx, crm.ModelLead, []any{}, crm.SearchOptions{Order: "id desc", Limit: defaultLeadsLimit}).
		Return([]int{}, nil).Once()

	s.T().Log("no leads matched, read must be skipped")
	{
		leads, err := s.syncSvc.Leads(ctx, LeadFilter{})
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Empty(leads, "no leads must be returned")
		s.crmMock.AssertNotCalled(s.T(), "Read", ctx, crm.ModelLead, mock.AnythingOfType("[]int"), crm.LeadFields)
	}
}

func (s *syncServiceTestSuite) TestLeadsFiltered() {
	ctx := context.Background()
	domain := []any{
		[]any{"name", "ilike", "office"},
		[]any{"stage_id", "=", 2},
	}

	s.crmMock.On("Search", ctx, crm.ModelLead, domain, crm.SearchOptions{Order: "id desc", Limit: 10}).
		Return([]int{12, 11}, nil).Once()
	s.crmMock.On("Read", ctx, crm.ModelLead, []int{12, 11}, crm.LeadFields).
		Return([]map[string]any{{"name": "office"}, {"name": "office annex"}}, nil).Once()

	s.T().Log("filters must translate to crm domain clauses")
	{
		leads, err := s.syncSvc.Leads(ctx, LeadFilter{Name: "office", Stage: 2, Limit: 10})
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Len(leads, 2, "both leads must be returned")
	}
}

func TestSyncServiceTestSuite(t *testing.T) {
	suite.Run(t, new(syncServiceTestSuite))
}
