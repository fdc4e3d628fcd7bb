package user

import (
	"log/slog"
	"time"

	errors "github.com/frahmantamala/dorm-management/internal"
	"github.com/frahmantamala/dorm-management/internal/core/datamodel/user"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo       RepositoryAPI
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo RepositoryAPI, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func (s *Service) GetByID(id int64) (*user.User, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get user", "error", err, "user_id", id)
		return nil, errors.ErrUserNotFound
	}
	return u, nil
}

func (s *Service) GetByEmail(email string) (*user.User, error) {
	u, err := s.repo.GetByEmail(email)
	if err != nil {
		return nil, errors.ErrUserNotFound
	}
	return u, nil
}

func (s *Service) ListPayers() ([]*user.User, error) {
	return s.repo.ListPayers()
}

func (s *Service) Register(dto RegisterDTO) (*user.User, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("user registration validation failed", "error", err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		return nil, errors.NewInternalError("failed to hash password", err)
	}

	role := dto.Role
	if role == "" {
		role = user.RoleStudent
	}
	residency := dto.ResidencyType
	if residency == "" {
		residency = user.ResidencyResident
	}

	u := &user.User{
		Name:          dto.Name,
		Email:         dto.Email,
		PasswordHash:  string(hash),
		Role:          role,
		ResidencyType: residency,
		SessionYear:   dto.SessionYear,
		IsActive:      true,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := s.repo.Create(u); err != nil {
		s.logger.Error("failed to create user", "error", err, "email", dto.Email)
		return nil, err
	}

	s.logger.Info("user registered", "user_id", u.ID, "email", u.Email, "role", u.Role)
	return u, nil
}
