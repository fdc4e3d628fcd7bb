package room

import (
	"fmt"

	errors "github.com/frahmantamala/dorm-management/internal"
	"github.com/frahmantamala/dorm-management/internal/core/common/validation"
)

type CreateRoomDTO struct {
	Number      string `json:"number"`
	Floor       int    `json:"floor"`
	Capacity    int    `json:"capacity"`
	Description string `json:"description"`
}

func (d *CreateRoomDTO) Validate() error {
	validator := validation.NewValidator()

	validator.Field("number", d.Number).Required().MaxLength(20)
	validator.Field("capacity", d.Capacity).Required().Custom(func(value interface{}) *errors.AppError {
		if v, ok := value.(int); ok && v < 1 {
			return errors.NewValidationFieldError("capacity", fmt.Sprintf("capacity must be at least 1, got %d", v), errors.ErrCodeValidationFailed)
		}
		return nil
	})

	if appErr := validator.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

type AddSeatDTO struct {
	RoomID int64  `json:"room_id"`
	Label  string `json:"label"`
}

func (d *AddSeatDTO) Validate() error {
	validator := validation.NewValidator()

	validator.Field("room_id", d.RoomID).Required()
	validator.Field("label", d.Label).Required().MaxLength(20)

	if appErr := validator.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

type ApplyDTO struct {
	SeatID int64  `json:"seat_id"`
	Note   string `json:"note"`
}

func (d *ApplyDTO) Validate() error {
	validator := validation.NewValidator()

	validator.Field("seat_id", d.SeatID).Required()
	validator.Field("note", d.Note).MaxLength(500)

	if appErr := validator.Validate(); appErr != nil {
		return appErr
	}
	return nil
}
