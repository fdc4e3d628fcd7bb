package user

import (
	"github.com/frahmantamala/dorm-management/internal/core/common/validation"
)

type RegisterDTO struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Role          string `json:"role"`
	ResidencyType string `json:"residency_type"`
	SessionYear   int    `json:"session_year"`
}

func (d *RegisterDTO) Validate() error {
	validator := validation.NewValidator()

	validator.Field("name", d.Name).Required().MaxLength(120)
	validator.Field("email", d.Email).Required().MaxLength(254)
	validator.Field("password", d.Password).Required().MinLength(8)

	if appErr := validator.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

type UserResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	ResidencyType string `json:"residency_type"`
	SessionYear   int    `json:"session_year"`
}
