package service

import (
	"context"
	"errors"

	"github.com/DhairyaS450/personal-website-sub000/internal/dto"
	"github.com/DhairyaS450/personal-website-sub000/internal/pkg/apperror"
	"github.com/DhairyaS450/personal-website-sub000/internal/pkg/logger"
	"github.com/DhairyaS450/personal-website-sub000/pkg/credential"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Validate(token string) bool
}

type authService struct {
	issuer credential.Issuer
	log    logger.ILogger
}

func NewAuthService(issuer credential.Issuer, log logger.ILogger) IAuthService {
	return &authService{
		issuer: issuer,
		log:    log,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	token, err := s.issuer.Issue(req.Password)
	if err != nil {
		if errors.Is(err, credential.ErrInvalidCredentials) {
			// Never log the presented password.
			s.log.Warn("AuthService", "Failed admin login attempt", nil)
			return nil, apperror.ErrUnauthorized
		}
		return nil, err
	}

	s.log.Info("AuthService", "Admin login", nil)
	return &dto.LoginResponse{Success: true, Token: token}, nil
}

func (s *authService) Validate(token string) bool {
	return s.issuer.Verify(token)
}
