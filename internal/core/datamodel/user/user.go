package user

import "time"

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

const (
	ResidencyResident = "resident"
	ResidencyAttached = "attached"
)

type User struct {
	ID            int64     `gorm:"primaryKey"`
	Name          string    `gorm:"column:name;not null"`
	Email         string    `gorm:"column:email;not null;uniqueIndex"`
	PasswordHash  string    `gorm:"column:password_hash;not null"`
	Role          string    `gorm:"column:role;default:student"`
	ResidencyType string    `gorm:"column:residency_type;default:resident"`
	SessionYear   int       `gorm:"column:session_year"`
	IsActive      bool      `gorm:"column:is_active;default:true"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}
