package fee

import (
	"log/slog"
	"time"

	errors "github.com/frahmantamala/dorm-management/internal"
	"github.com/frahmantamala/dorm-management/internal/core/datamodel/fee"
	"github.com/frahmantamala/dorm-management/internal/core/datamodel/user"
	"github.com/shopspring/decimal"
)

// UserDirectory is the slice of the user service the fee ledger needs.
type UserDirectory interface {
	GetByID(id int64) (*user.User, error)
	ListPayers() ([]*user.User, error)
}

// Service is the fee ledger: schedules, fee assignment and outstanding totals.
type Service struct {
	repo   RepositoryAPI
	users  UserDirectory
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, users UserDirectory, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		users:  users,
		logger: logger,
	}
}

func (s *Service) CreateSchedule(dto CreateScheduleDTO) (*fee.Schedule, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("fee schedule validation failed", "error", err)
		return nil, err
	}

	if dto.Category != string(fee.CategoryHall) && dto.Category != string(fee.CategoryDining) {
		return nil, errors.NewValidationError("category must be hall or dining", errors.ErrCodeValidationFailed)
	}

	if _, err := s.repo.GetSchedule(fee.Category(dto.Category), dto.Year, dto.ResidencyType); err == nil {
		return nil, errors.ErrScheduleExists
	}

	schedule := &fee.Schedule{
		Category:      dto.Category,
		Year:          dto.Year,
		ResidencyType: dto.ResidencyType,
		Amount:        dto.Amount,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.CreateSchedule(schedule); err != nil {
		s.logger.Error("failed to create fee schedule", "error", err, "category", dto.Category, "year", dto.Year)
		return nil, err
	}

	s.logger.Info("fee schedule created",
		"schedule_id", schedule.ID,
		"category", schedule.Category,
		"year", schedule.Year,
		"residency_type", schedule.ResidencyType,
		"amount", schedule.Amount.String())

	return schedule, nil
}

func (s *Service) ListSchedules() ([]*fee.Schedule, error) {
	return s.repo.ListSchedules()
}

// AssignFees creates an UNPAID hall and dining fee for every student that does
// not yet have one for the given year. Returns the number of fees created.
func (s *Service) AssignFees(year int) (int, error) {
	payers, err := s.users.ListPayers()
	if err != nil {
		s.logger.Error("failed to list students for fee assignment", "error", err)
		return 0, err
	}

	periodStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	created := 0
	for _, payer := range payers {
		hasHall, err := s.repo.HallFeeExists(payer.ID, year)
		if err != nil {
			return created, err
		}
		if !hasHall {
			hallFee := &fee.HallFee{
				UserID:      payer.ID,
				Year:        year,
				PeriodStart: periodStart,
				PeriodEnd:   periodEnd,
				Status:      fee.StatusUnpaid,
				CreatedAt:   time.Now(),
				UpdatedAt:   time.Now(),
			}
			if err := s.repo.CreateHallFee(hallFee); err != nil {
				s.logger.Error("failed to create hall fee", "error", err, "user_id", payer.ID, "year", year)
				return created, err
			}
			created++
		}

		hasDining, err := s.repo.DiningFeeExists(payer.ID, year)
		if err != nil {
			return created, err
		}
		if !hasDining {
			diningFee := &fee.DiningFee{
				UserID:      payer.ID,
				Year:        year,
				PeriodStart: periodStart,
				PeriodEnd:   periodEnd,
				Status:      fee.StatusUnpaid,
				CreatedAt:   time.Now(),
				UpdatedAt:   time.Now(),
			}
			if err := s.repo.CreateDiningFee(diningFee); err != nil {
				s.logger.Error("failed to create dining fee", "error", err, "user_id", payer.ID, "year", year)
				return created, err
			}
			created++
		}
	}

	s.logger.Info("fees assigned", "year", year, "created", created, "students", len(payers))
	return created, nil
}

// OutstandingTotal sums the schedule amounts of every unpaid hall and dining
// fee the user currently owes. The result is exact decimal arithmetic; it
// feeds the amount-matching fallback in payer resolution.
func (s *Service) OutstandingTotal(userID int64) (decimal.Decimal, error) {
	u, err := s.users.GetByID(userID)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero

	hallFees, err := s.repo.FindUnpaidHallFees(userID)
	if err != nil {
		return decimal.Zero, err
	}
	for _, f := range hallFees {
		schedule, err := s.repo.GetSchedule(fee.CategoryHall, f.Year, u.ResidencyType)
		if err != nil {
			s.logger.Error("missing hall fee schedule",
				"user_id", userID, "year", f.Year, "residency_type", u.ResidencyType)
			return decimal.Zero, errors.ErrScheduleNotFound
		}
		total = total.Add(schedule.Amount)
	}

	diningFees, err := s.repo.FindUnpaidDiningFees(userID)
	if err != nil {
		return decimal.Zero, err
	}
	for _, f := range diningFees {
		schedule, err := s.repo.GetSchedule(fee.CategoryDining, f.Year, u.ResidencyType)
		if err != nil {
			s.logger.Error("missing dining fee schedule",
				"user_id", userID, "year", f.Year, "residency_type", u.ResidencyType)
			return decimal.Zero, errors.ErrScheduleNotFound
		}
		total = total.Add(schedule.Amount)
	}

	return total, nil
}

func (s *Service) UserFees(userID int64) (*UserFeesResponse, error) {
	u, err := s.users.GetByID(userID)
	if err != nil {
		return nil, errors.ErrUserNotFound
	}

	resp := &UserFeesResponse{UserID: userID, Fees: []FeeView{}}

	hallFees, err := s.repo.ListHallFees(userID)
	if err != nil {
		return nil, err
	}
	for _, f := range hallFees {
		view := FeeView{
			ID:          f.ID,
			Category:    string(fee.CategoryHall),
			Year:        f.Year,
			PeriodStart: f.PeriodStart,
			PeriodEnd:   f.PeriodEnd,
			Status:      f.Status,
		}
		if schedule, err := s.repo.GetSchedule(fee.CategoryHall, f.Year, u.ResidencyType); err == nil {
			view.Amount = schedule.Amount.String()
		}
		resp.Fees = append(resp.Fees, view)
	}

	diningFees, err := s.repo.ListDiningFees(userID)
	if err != nil {
		return nil, err
	}
	for _, f := range diningFees {
		view := FeeView{
			ID:          f.ID,
			Category:    string(fee.CategoryDining),
			Year:        f.Year,
			PeriodStart: f.PeriodStart,
			PeriodEnd:   f.PeriodEnd,
			Status:      f.Status,
		}
		if schedule, err := s.repo.GetSchedule(fee.CategoryDining, f.Year, u.ResidencyType); err == nil {
			view.Amount = schedule.Amount.String()
		}
		resp.Fees = append(resp.Fees, view)
	}

	outstanding, err := s.OutstandingTotal(userID)
	if err != nil {
		// listing still works when a schedule row is missing
		outstanding = decimal.Zero
	}
	resp.Outstanding = outstanding.String()

	return resp, nil
}
