package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/adroitdesign/studio-api/internal/model"
	"github.com/adroitdesign/studio-api/internal/service"
	svcMocks "github.com/adroitdesign/studio-api/internal/service/mocks"
	"github.com/adroitdesign/studio-api/internal/validation"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	enLocale := en.New()
	unvTranslator := ut.New(enLocale, enLocale)
	trans, ok := unvTranslator.GetTranslator("en")
	if !ok {
		t.Fatal("missing en translations for validator")
	}

	e := echo.New()
	e.Validator = validation.Echo(validator.New(), trans)
	return e
}

type inquiryHandlerTestSuite struct {
	suite.Suite
	e              *echo.Echo
	handler        *InquiryHTTPHandler
	inquirySvcMock *svcMocks.InquiryService
	syncSvcMock    *svcMocks.SyncService
}

func (s *inquiryHandlerTestSuite) SetupTest() {
	t := s.T()
	s.e = newTestEcho(t)
	s.inquirySvcMock = svcMocks.NewInquiryService(t)
	s.syncSvcMock = svcMocks.NewSyncService(t)
	s.handler = NewInquiryHTTPHandler(s.inquirySvcMock, s.syncSvcMock)
}

func (s *inquiryHandlerTestSuite) request(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.e.NewContext(req, rec), rec
}

func (s *inquiryHandlerTestSuite) TestPostSuccessful() {
	body := `{"name":"Priya Sharma","email":"priya.sharma@somemail.com","message":"New office interior","type":"project"}`
	c, rec := s.request(http.MethodPost, "/api/inquiries", body)

	s.inquirySvcMock.On("Submit", mock.Anything, mock.MatchedBy(func(i model.Inquiry) bool {
		return i.Name == "Priya Sharma" && i.Type == "project"
	})).Return(service.SubmitResult{ID: 11, Name: "Priya Sharma", Email: "priya.sharma@somemail.com", StoredIn: service.StoredInCRM}, nil).Once()

	s.T().Log("valid submission must be accepted")
	{
		err := s.handler.Post(c)
		s.Require().NoError(err, "no error must be raised")
		s.Assert().Equal(http.StatusCreated, rec.Code)

		var result service.SubmitResult
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &result))
		s.Assert().Equal(11, result.ID)
		s.Assert().Equal(service.StoredInCRM, result.StoredIn)
	}
}

func (s *inquiryHandlerTestSuite) TestPostMissingRequiredFields() {
	body := `{"name":"Priya Sharma","email":"not-an-email"}`
	c, _ := s.request(http.MethodPost, "/api/inquiries", body)

	s.T().Log("payload without message and with malformed email must be rejected")
	{
		err := s.handler.Post(c)
		s.Require().Error(err, "error must be raised")
		s.Assert().IsType(&validation.PayloadError{}, err, "it must be payload error")
		s.inquirySvcMock.AssertNotCalled(s.T(), "Submit", mock.Anything, mock.AnythingOfType("model.Inquiry"))
	}
}

func (s *inquiryHandlerTestSuite) TestGetAllPassesFilter() {
	c, rec := s.request(http.MethodGet, "/api/inquiries?type=career&status=new&page=2&limit=10", "")

	s.inquirySvcMock.On("FindAll", mock.Anything, model.InquiryFilter{Type: "career", Status: "new", Page: 2, Limit: 10}).
		Return([]model.Inquiry{}, nil).Once()

	s.T().Log("query params must map onto the listing filter")
	{
		err := s.handler.GetAll(c)
		s.Require().NoError(err, "no error must be raised")
		s.Assert().Equal(http.StatusOK, rec.Code)
	}
}

func (s *inquiryHandlerTestSuite) TestGetNotFound() {
	c, _ := s.request(http.MethodGet, "/api/inquiries/15", "")
	c.SetParamNames("id")
	c.SetParamValues("15")

	s.inquirySvcMock.On("FindByID", mock.Anything, 15).Return(nil, nil).Once()

	s.T().Log("missing inquiry must yield 404")
	{
		err := s.handler.Get(c)
		s.Require().Error(err, "error must be raised")

		var httpErr *echo.HTTPError
		s.Require().ErrorAs(err, &httpErr, "it must be echo error")
		s.Assert().Equal(http.StatusNotFound, httpErr.Code)
	}
}

func (s *inquiryHandlerTestSuite) TestGetBadID() {
	c, _ := s.request(http.MethodGet, "/api/inquiries/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	s.T().Log("non-numeric id must be rejected before the service is touched")
	{
		err := s.handler.Get(c)
		s.Require().Error(err, "error must be raised")
		s.inquirySvcMock.AssertNotCalled(s.T(), "FindByID", mock.Anything, mock.AnythingOfType("int"))
	}
}

func (s *inquiryHandlerTestSuite) TestPatchStatus() {
	c, rec := s.request(http.MethodPatch, "/api/inquiries/4/status", `{"status":"Qualified"}`)
	c.SetParamNames("id")
	c.SetParamValues("4")

	s.syncSvcMock.On("UpdateStatus", mock.Anything, 4, model.LeadStatusQualified).
		Return(service.StoredInCRM, nil).Once()

	s.T().Log("status update must report where it landed")
	{
		err := s.handler.PatchStatus(c)
		s.Require().NoError(err, "no error must be raised")
		s.Assert().Equal(http.StatusOK, rec.Code)

		var resp map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Assert().Equal(service.StoredInCRM, resp["updatedIn"])
	}
}

func (s *inquiryHandlerTestSuite) TestDelete() {
	c, rec := s.request(http.MethodDelete, "/api/inquiries/4", "")
	c.SetParamNames("id")
	c.SetParamValues("4")

	s.syncSvcMock.On("Delete", mock.Anything, 4).Return(service.StoredInLocal, nil).Once()

	s.T().Log("delete must report where the record was removed from")
	{
		err := s.handler.Delete(c)
		s.Require().NoError(err, "no error must be raised")
		s.Assert().Equal(http.StatusOK, rec.Code)

		var resp map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Assert().Equal(service.StoredInLocal, resp["deletedFrom"])
	}
}

func (s *inquiryHandlerTestSuite) TestDeletePropagatesServiceError() {
	c, _ := s.request(http.MethodDelete, "/api/inquiries/4", "")
	c.SetParamNames("id")
	c.SetParamValues("4")

	s.syncSvcMock.On("Delete", mock.Anything, 4).Return("", errors.New("database gone")).Once()

	s.T().Log("service failure must propagate to the error handler")
	{
		err := s.handler.Delete(c)
		s.Assert().Error(err, "error must be raised")
	}
}

func TestInquiryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(inquiryHandlerTestSuite))
}
