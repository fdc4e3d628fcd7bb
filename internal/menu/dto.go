package menu

import (
	"fmt"
	"strings"
	"time"

	errors "github.com/frahmantamala/dorm-management/internal"
	"github.com/frahmantamala/dorm-management/internal/core/common/validation"
	"github.com/frahmantamala/dorm-management/internal/core/datamodel/menu"
)

type SetSlotDTO struct {
	Day   string `json:"day"`
	Meal  string `json:"meal"`
	Items string `json:"items"`
}

func (d *SetSlotDTO) Validate() error {
	validator := validation.NewValidator()

	validator.Field("day", d.Day).Required().Custom(func(value interface{}) *errors.AppError {
		if v, ok := value.(string); ok && v != "" && !validDay(v) {
			return errors.NewValidationFieldError("day", fmt.Sprintf("%q is not a weekday name", v), errors.ErrCodeValidationFailed)
		}
		return nil
	})
	validator.Field("meal", d.Meal).Required().Custom(func(value interface{}) *errors.AppError {
		switch value {
		case menu.MealBreakfast, menu.MealLunch, menu.MealDinner, "":
			return nil
		}
		return errors.NewValidationFieldError("meal", "meal must be BREAKFAST, LUNCH or DINNER", errors.ErrCodeValidationFailed)
	})
	validator.Field("items", d.Items).Required().MaxLength(500)

	if appErr := validator.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

func validDay(day string) bool {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(day, d.String()) {
			return true
		}
	}
	return false
}
