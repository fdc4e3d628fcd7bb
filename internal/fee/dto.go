package fee

import (
	"time"

	"github.com/frahmantamala/dorm-management/internal/core/common/validation"
	"github.com/shopspring/decimal"
)

type CreateScheduleDTO struct {
	Category      string          `json:"category"`
	Year          int             `json:"year"`
	ResidencyType string          `json:"residency_type"`
	Amount        decimal.Decimal `json:"amount"`
}

func (d *CreateScheduleDTO) Validate() error {
	validator := validation.NewValidator()

	validator.Field("category", d.Category).Required()
	validator.Field("year", d.Year).Required().YearRange(2000, 2100)
	validator.Field("residency_type", d.ResidencyType).Required()
	validator.Field("amount", d.Amount).PositiveAmount()

	if appErr := validator.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

type AssignFeesDTO struct {
	Year int `json:"year"`
}

func (d *AssignFeesDTO) Validate() error {
	validator := validation.NewValidator()
	validator.Field("year", d.Year).Required().YearRange(2000, 2100)

	if appErr := validator.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

type FeeView struct {
	ID          int64     `json:"id"`
	Category    string    `json:"category"`
	Year        int       `json:"year"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
	Status      string    `json:"status"`
	Amount      string    `json:"amount"`
}

type UserFeesResponse struct {
	UserID      int64     `json:"user_id"`
	Fees        []FeeView `json:"fees"`
	Outstanding string    `json:"outstanding"`
}
