package auth

import (
	"log/slog"

	errors "github.com/frahmantamala/dorm-management/internal"
	"github.com/frahmantamala/dorm-management/internal/user"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	users  user.ServiceAPI
	tokens *TokenManager
	logger *slog.Logger
}

func NewService(users user.ServiceAPI, tokens *TokenManager, logger *slog.Logger) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

func (s *Service) Login(email, password string) (string, error) {
	u, err := s.users.GetByEmail(email)
	if err != nil {
		s.logger.Warn("login failed: user not found", "email", email)
		return "", errors.ErrInvalidCredentials
	}

	if !u.IsActive {
		s.logger.Warn("login failed: user inactive", "user_id", u.ID)
		return "", errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("login failed: wrong password", "user_id", u.ID)
		return "", errors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID, u.Role)
	if err != nil {
		s.logger.Error("failed to issue token", "error", err, "user_id", u.ID)
		return "", errors.NewInternalError("failed to issue token", err)
	}

	s.logger.Info("user logged in", "user_id", u.ID, "role", u.Role)
	return token, nil
}

func (s *Service) VerifyToken(tokenString string) (*Claims, error) {
	claims, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, errors.ErrInvalidToken
	}
	return claims, nil
}
