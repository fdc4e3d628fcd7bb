package complaint

import (
	"github.com/frahmantamala/dorm-management/internal/core/common/validation"
)

type CreateComplaintDTO struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
}

func (d *CreateComplaintDTO) Validate() error {
	validator := validation.NewValidator()

	validator.Field("subject", d.Subject).Required().MaxLength(200)
	validator.Field("description", d.Description).MaxLength(2000)

	if appErr := validator.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

type UpdateStatusDTO struct {
	Status string `json:"status"`
}

func (d *UpdateStatusDTO) Validate() error {
	validator := validation.NewValidator()
	validator.Field("status", d.Status).Required()

	if appErr := validator.Validate(); appErr != nil {
		return appErr
	}
	return nil
}
