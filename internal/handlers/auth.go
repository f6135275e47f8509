package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/adroitdesign/studio-api/internal/model/auth"
	"github.com/adroitdesign/studio-api/internal/service"
)

type session struct {
	Token        string `json:"accessToken"`
	ExpiresAt    int64  `json:"expiresAt"`
	RefreshToken string `json:"refreshToken"`
}

type signup struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4,max=24"`
}

type login struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	Fingerprint string `json:"fingerprint" validate:"required"`
}

type refresh struct {
	Fingerprint  string `json:"fingerprint" validate:"required"`
	RefreshToken string `json:"refreshToken" validate:"required,uuid"`
}

type logout struct {
	RefreshToken string `json:"refreshToken" validate:"required,uuid"`
}

type newUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AuthHTTPHandler is the http handler for the admin auth endpoint.
type AuthHTTPHandler struct {
	authSvc service.AuthService
}

func NewAuthHTTPHandler(authSvc service.AuthService) *AuthHTTPHandler {
	return &AuthHTTPHandler{authSvc: authSvc}
}

func (h *AuthHTTPHandler) Signup(c echo.Context) error {
	var su signup
	if err := c.Bind(&su); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&su); err != nil {
		return err
	}

	nu, err := h.authSvc.Signup(c.Request().Context(), su.Email, su.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &newUser{
		ID:    nu.ID,
		Email: nu.Email,
	})
}

func (h *AuthHTTPHandler) Login(c echo.Context) error {
	var lgn login
	if err := c.Bind(&lgn); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&lgn); err != nil {
		return err
	}

	jwtToken, rfrToken, err := h.authSvc.Login(c.Request().Context(), auth.Login{
		Email:       lgn.Email,
		Password:    lgn.Password,
		Fingerprint: lgn.Fingerprint,
		At:          time.Now().UTC(),
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	return c.JSON(http.StatusOK, &session{
		Token:        jwtToken.Signed,
		ExpiresAt:    jwtToken.ExpiresAt,
		RefreshToken: rfrToken.ID,
	})
}

func (h *AuthHTTPHandler) Refresh(c echo.Context) error {
	var r refresh
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&r); err != nil {
		return err
	}

	jwtToken, rfrToken, err := h.authSvc.Refresh(c.Request().Context(), auth.Refresh{
		Token:       r.RefreshToken,
		Fingerprint: r.Fingerprint,
		At:          time.Now().UTC(),
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	return c.JSON(http.StatusOK, &session{
		Token:        jwtToken.Signed,
		ExpiresAt:    jwtToken.ExpiresAt,
		RefreshToken: rfrToken.ID,
	})
}

func (h *AuthHTTPHandler) Logout(c echo.Context) error {
	var lgt logout
	if err := c.Bind(&lgt); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&lgt); err != nil {
		return err
	}

	if err := h.authSvc.Logout(c.Request().Context(), lgt.RefreshToken); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}
