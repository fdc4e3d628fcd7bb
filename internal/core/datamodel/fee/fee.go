package fee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryHall   Category = "hall"
	CategoryDining Category = "dining"
)

const (
	StatusUnpaid = "UNPAID"
	StatusPaid   = "PAID"
)

// HallFee and DiningFee are kept as independent tables. Fee ids are
// per-category and never shared across the two.

type HallFee struct {
	ID          int64     `gorm:"primaryKey"`
	UserID      int64     `gorm:"column:user_id;not null;index"`
	Year        int       `gorm:"column:year;not null"`
	PeriodStart time.Time `gorm:"column:period_start"`
	PeriodEnd   time.Time `gorm:"column:period_end"`
	Status      string    `gorm:"column:status;default:UNPAID"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (HallFee) TableName() string {
	return "hall_fees"
}

type DiningFee struct {
	ID          int64     `gorm:"primaryKey"`
	UserID      int64     `gorm:"column:user_id;not null;index"`
	Year        int       `gorm:"column:year;not null"`
	PeriodStart time.Time `gorm:"column:period_start"`
	PeriodEnd   time.Time `gorm:"column:period_end"`
	Status      string    `gorm:"column:status;default:UNPAID"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (DiningFee) TableName() string {
	return "dining_fees"
}

// Schedule is the fee-schedule lookup: the due amount of a fee record is
// resolved by (category, year, residency type), not stored on the record.
type Schedule struct {
	ID            int64           `gorm:"primaryKey"`
	Category      string          `gorm:"column:category;not null;uniqueIndex:idx_fee_schedule_key"`
	Year          int             `gorm:"column:year;not null;uniqueIndex:idx_fee_schedule_key"`
	ResidencyType string          `gorm:"column:residency_type;not null;uniqueIndex:idx_fee_schedule_key"`
	Amount        decimal.Decimal `gorm:"column:amount;type:numeric(12,2);not null"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
}

func (Schedule) TableName() string {
	return "fee_schedules"
}
