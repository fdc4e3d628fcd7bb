package room

import "time"

const (
	ApplicationPending  = "PENDING"
	ApplicationApproved = "APPROVED"
	ApplicationRejected = "REJECTED"
)

type Room struct {
	ID          int64     `gorm:"primaryKey"`
	Number      string    `gorm:"column:number;not null;uniqueIndex"`
	Floor       int       `gorm:"column:floor"`
	Capacity    int       `gorm:"column:capacity;not null"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (Room) TableName() string {
	return "rooms"
}

// Seat belongs to a room; UserID is nil while the seat is vacant.
type Seat struct {
	ID        int64     `gorm:"primaryKey"`
	RoomID    int64     `gorm:"column:room_id;not null;index"`
	Label     string    `gorm:"column:label;not null"`
	UserID    *int64    `gorm:"column:user_id;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Seat) TableName() string {
	return "seats"
}

type Application struct {
	ID        int64     `gorm:"primaryKey"`
	UserID    int64     `gorm:"column:user_id;not null;index"`
	SeatID    int64     `gorm:"column:seat_id;not null;index"`
	Status    string    `gorm:"column:status;default:PENDING"`
	Note      string    `gorm:"column:note"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Application) TableName() string {
	return "seat_applications"
}
