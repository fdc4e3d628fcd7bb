package complaint

import (
	"log/slog"
	"time"

	errors "github.com/frahmantamala/dorm-management/internal"
	"github.com/frahmantamala/dorm-management/internal/core/datamodel/complaint"
)

// transitions encodes the one-way lifecycle OPEN → IN_PROGRESS → RESOLVED.
var transitions = map[string][]string{
	complaint.StatusOpen:       {complaint.StatusInProgress, complaint.StatusResolved},
	complaint.StatusInProgress: {complaint.StatusResolved},
	complaint.StatusResolved:   {},
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) Create(userID int64, dto CreateComplaintDTO) (*complaint.Complaint, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("complaint validation failed", "error", err)
		return nil, err
	}

	c := &complaint.Complaint{
		UserID:      userID,
		Subject:     dto.Subject,
		Description: dto.Description,
		Status:      complaint.StatusOpen,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.repo.Create(c); err != nil {
		s.logger.Error("failed to create complaint", "error", err, "user_id", userID)
		return nil, err
	}

	s.logger.Info("complaint created", "complaint_id", c.ID, "user_id", userID)
	return c, nil
}

func (s *Service) MyComplaints(userID int64) ([]*complaint.Complaint, error) {
	return s.repo.ListByUser(userID)
}

func (s *Service) List(status string) ([]*complaint.Complaint, error) {
	return s.repo.List(status)
}

func (s *Service) UpdateStatus(id int64, dto UpdateStatusDTO) (*complaint.Complaint, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	c, err := s.repo.GetByID(id)
	if err != nil {
		return nil, errors.ErrComplaintNotFound
	}

	if !transitionAllowed(c.Status, dto.Status) {
		return nil, errors.NewValidationError("invalid status transition", errors.ErrCodeInvalidStatus)
	}

	if err := s.repo.UpdateStatus(id, dto.Status); err != nil {
		s.logger.Error("failed to update complaint status", "error", err, "complaint_id", id)
		return nil, err
	}

	c.Status = dto.Status
	s.logger.Info("complaint status updated", "complaint_id", id, "status", dto.Status)
	return c, nil
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
