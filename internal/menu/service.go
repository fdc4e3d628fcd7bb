package menu

import (
	"log/slog"
	"strings"
	"time"

	errors "github.com/frahmantamala/dorm-management/internal"
	"github.com/frahmantamala/dorm-management/internal/core/datamodel/menu"
)

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

// SetSlot creates or replaces the entry for one (day, meal) slot.
func (s *Service) SetSlot(dto SetSlotDTO) (*menu.Entry, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("menu slot validation failed", "error", err)
		return nil, err
	}

	entry := &menu.Entry{
		Day:       normalizeDay(dto.Day),
		Meal:      strings.ToUpper(dto.Meal),
		Items:     dto.Items,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if existing, err := s.repo.GetSlot(entry.Day, entry.Meal); err == nil {
		entry.ID = existing.ID
		entry.CreatedAt = existing.CreatedAt
	}

	if err := s.repo.Upsert(entry); err != nil {
		s.logger.Error("failed to save menu slot", "error", err, "day", entry.Day, "meal", entry.Meal)
		return nil, err
	}

	s.logger.Info("menu slot saved", "day", entry.Day, "meal", entry.Meal)
	return entry, nil
}

func (s *Service) WeeklyMenu() ([]*menu.Entry, error) {
	return s.repo.List()
}

func (s *Service) DeleteSlot(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		return errors.ErrMenuNotFound
	}
	return nil
}

func normalizeDay(day string) string {
	lower := strings.ToLower(day)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
