package fee

import (
	"github.com/frahmantamala/dorm-management/internal/core/datamodel/fee"
	"github.com/shopspring/decimal"
)

// RepositoryAPI defines the data access methods for fee records and schedules.
// Fee status transitions happen only through MarkHallFeePaid/MarkDiningFeePaid,
// and only the reconciliation engine calls them.
type RepositoryAPI interface {
	CreateSchedule(s *fee.Schedule) error
	GetSchedule(category fee.Category, year int, residencyType string) (*fee.Schedule, error)
	ListSchedules() ([]*fee.Schedule, error)

	CreateHallFee(f *fee.HallFee) error
	CreateDiningFee(f *fee.DiningFee) error
	FindUnpaidHallFees(userID int64) ([]*fee.HallFee, error)
	FindUnpaidDiningFees(userID int64) ([]*fee.DiningFee, error)
	HallFeeExists(userID int64, year int) (bool, error)
	DiningFeeExists(userID int64, year int) (bool, error)
	ListHallFees(userID int64) ([]*fee.HallFee, error)
	ListDiningFees(userID int64) ([]*fee.DiningFee, error)

	MarkHallFeePaid(feeID int64) error
	MarkDiningFeePaid(feeID int64) error
}

// ServiceAPI is the surface consumed by handlers and the payment subsystem.
type ServiceAPI interface {
	CreateSchedule(dto CreateScheduleDTO) (*fee.Schedule, error)
	ListSchedules() ([]*fee.Schedule, error)
	AssignFees(year int) (int, error)
	OutstandingTotal(userID int64) (decimal.Decimal, error)
	UserFees(userID int64) (*UserFeesResponse, error)
}
