package complaint

import "time"

const (
	StatusOpen       = "OPEN"
	StatusInProgress = "IN_PROGRESS"
	StatusResolved   = "RESOLVED"
)

type Complaint struct {
	ID          int64     `gorm:"primaryKey"`
	UserID      int64     `gorm:"column:user_id;not null;index"`
	Subject     string    `gorm:"column:subject;not null"`
	Description string    `gorm:"column:description"`
	Status      string    `gorm:"column:status;default:OPEN"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (Complaint) TableName() string {
	return "complaints"
}
