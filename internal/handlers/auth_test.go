package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/adroitdesign/studio-api/internal/model/auth"
	svcMocks "github.com/adroitdesign/studio-api/internal/service/mocks"
	"github.com/adroitdesign/studio-api/internal/validation"
)

type authHandlerTestSuite struct {
	suite.Suite
	e           *echo.Echo
	handler     *AuthHTTPHandler
	authSvcMock *svcMocks.AuthService
}

func (s *authHandlerTestSuite) SetupTest() {
	t := s.T()
	s.e = newTestEcho(t)
	s.authSvcMock = svcMocks.NewAuthService(t)
	s.handler = NewAuthHTTPHandler(s.authSvcMock)
}

func (s *authHandlerTestSuite) request(target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.e.NewContext(req, rec), rec
}

func (s *authHandlerTestSuite) TestLoginRejectedMapsToUnauthorized() {
	body := `{"email":"admin@adroitdesign.in","password":"wrong","fingerprint":"some-device"}`
	c, _ := s.request("/api/auth/login", body)

	s.authSvcMock.On("Login", mock.Anything, mock.AnythingOfType("auth.Login")).
		Return(auth.Jwt{}, auth.RefreshToken{}, errors.New("password is incorrect")).Once()

	s.T().Log("rejected login must map to 401")
	{
		err := s.handler.Login(c)
		s.Require().Error(err, "error must be raised")

		var httpErr *echo.HTTPError
		s.Require().ErrorAs(err, &httpErr, "it must be echo error")
		s.Assert().Equal(http.StatusUnauthorized, httpErr.Code)
	}
}

func (s *authHandlerTestSuite) TestSignupWeakPassword() {
	body := `{"email":"admin@adroitdesign.in","password":"abc"}`
	c, _ := s.request("/api/auth/signup", body)

	s.T().Log("too short password must be rejected by validation")
	{
		err := s.handler.Signup(c)
		s.Require().Error(err, "error must be raised")
		s.Assert().IsType(&validation.PayloadError{}, err, "it must be payload error")
		s.authSvcMock.AssertNotCalled(s.T(), "Signup", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("string"))
	}
}

func (s *authHandlerTestSuite) TestLogout() {
	body := `{"refreshToken":"1165dfc0-2dd0-4bea-ac69-4462f1cacacf"}`
	c, rec := s.request("/api/auth/logout", body)

	s.authSvcMock.On("Logout", mock.Anything, "1165dfc0-2dd0-4bea-ac69-4462f1cacacf").Return(nil).Once()

	s.T().Log("logout must succeed with empty body")
	{
		err := s.handler.Logout(c)
		s.Require().NoError(err, "no error must be raised")
		s.Assert().Equal(http.StatusOK, rec.Code)
	}
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(authHandlerTestSuite))
}
