package auth

import (
	"context"
	"errors"

	"github.com/hr-staff/hr-staff-backend-go/internal/domain/auth"
	"github.com/hr-staff/hr-staff-backend-go/internal/domain/user"
	"github.com/hr-staff/hr-staff-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		jwtService:     jwtService,
	}
}

// Login implements auth.AuthService. An unknown username and a wrong password
// come back as the same error so the response does not leak which one failed.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	userData, err := a.UserRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, _, err := a.jwtService.GenerateAccessToken(userData.ID, userData.Username)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		User: auth.UserInfo{
			ID:       userData.ID,
			Username: userData.Username,
		},
		Token: token,
	}, nil
}
