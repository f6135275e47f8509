package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/adroitdesign/studio-api/internal/model/auth"
	"github.com/adroitdesign/studio-api/internal/repository"
	"github.com/adroitdesign/studio-api/pkg/db/transactor"
)

// AuthService manages back-office sessions: short-lived JWTs plus rotating
// refresh tokens persisted per user.
type AuthService interface {
	Signup(ctx context.Context, email, password string) (auth.User, error)
	Login(ctx context.Context, login auth.Login) (auth.Jwt, auth.RefreshToken, error)
	Logout(ctx context.Context, tokenID string) error
	Refresh(ctx context.Context, refresh auth.Refresh) (auth.Jwt, auth.RefreshToken, error)
}

type authService struct {
	transactor     transactor.Transactor
	userRepo       repository.UserRepository
	rfrTknRepo     repository.RefreshTokenRepository
	jwtIssuer      *auth.JwtIssuer
	rfrTokenIssuer *auth.RefreshTokenIssuer
}

func NewAuthService(
	jwtIssuer *auth.JwtIssuer,
	rfrTokenIssuer *auth.RefreshTokenIssuer,
	trx transactor.Transactor,
	userRepo repository.UserRepository,
	rfrTknRepo repository.RefreshTokenRepository,
) AuthService {
	return &authService{
		jwtIssuer:      jwtIssuer,
		rfrTokenIssuer: rfrTokenIssuer,
		transactor:     trx,
		userRepo:       userRepo,
		rfrTknRepo:     rfrTknRepo,
	}
}

func (s *authService) Signup(ctx context.Context, email, password string) (auth.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return auth.User{}, err
	}
	if existing.ID != "" {
		return auth.User{}, fmt.Errorf("user with email %s already exists", email)
	}

	hash, err := auth.GeneratePasswordHash(password)
	if err != nil {
		return auth.User{}, err
	}

	u := auth.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		return auth.User{}, err
	}
	return u, nil
}

func (s *authService) Login(ctx context.Context, login auth.Login) (auth.Jwt, auth.RefreshToken, error) {
	user, err := s.userRepo.FindByEmail(ctx, login.Email)
	if err != nil {
		return auth.Jwt{}, auth.RefreshToken{}, err
	}

	if user.ID == "" {
		return auth.Jwt{}, auth.RefreshToken{}, fmt.Errorf("unknown user with email %s", login.Email)
	}

	if err := user.VerifyPassword(login.Password); err != nil {
		return auth.Jwt{}, auth.RefreshToken{}, errors.New("password is incorrect")
	}

	jwtToken, err := s.jwtIssuer.Sign(user.Email, login.At)
	if err != nil {
		return auth.Jwt{}, auth.RefreshToken{}, err
	}

	rfrToken := s.rfrTokenIssuer.Sign(user.ID, login.Fingerprint, login.At)

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		userTkns, err := s.rfrTknRepo.FindTokensByUserID(ctx, user.ID)
		if err != nil {
			return err
		}
		if len(userTkns) >= s.rfrTokenIssuer.TokensMaxCount() {
			if err := s.rfrTknRepo.DeleteByUserID(ctx, user.ID); err != nil {
				return err
			}
		}
		return s.rfrTknRepo.Create(ctx, rfrToken)
	})
	if err != nil {
		return auth.Jwt{}, auth.RefreshToken{}, err
	}
	return jwtToken, rfrToken, nil
}

// Refresh rotates the refresh token. The burn of the presented token and the
// persist of its replacement happen in one transaction so a crash between
// them cannot leave the user without a session for no reason.
func (s *authService) Refresh(ctx context.Context, refresh auth.Refresh) (auth.Jwt, auth.RefreshToken, error) {
	var jwtToken auth.Jwt
	var newRfrToken auth.RefreshToken

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		rfrToken, err := s.rfrTknRepo.FindByID(ctx, refresh.Token)
		if err != nil {
			return err
		}

		if rfrToken.ID == "" {
			return errors.New("non-existent refresh token provided")
		}

		if err := s.rfrTknRepo.DeleteByID(ctx, rfrToken.ID); err != nil {
			return err
		}

		if err := rfrToken.Verify(refresh.Fingerprint, refresh.At); err != nil {
			return err
		}

		user, err := s.userRepo.FindByID(ctx, rfrToken.UserID)
		if err != nil {
			return err
		}

		if jwtToken, err = s.jwtIssuer.Sign(user.Email, refresh.At); err != nil {
			return err
		}

		newRfrToken = s.rfrTokenIssuer.Sign(user.ID, refresh.Fingerprint, refresh.At)
		return s.rfrTknRepo.Create(ctx, newRfrToken)
	})
	if err != nil {
		return auth.Jwt{}, auth.RefreshToken{}, err
	}

	return jwtToken, newRfrToken, nil
}

func (s *authService) Logout(ctx context.Context, tokenID string) error {
	return s.rfrTknRepo.DeleteByID(ctx, tokenID)
}
