package menu

import "time"

const (
	MealBreakfast = "BREAKFAST"
	MealLunch     = "LUNCH"
	MealDinner    = "DINNER"
)

// Entry is one meal slot of the weekly dining menu. Day follows
// time.Weekday's String values.
type Entry struct {
	ID        int64     `gorm:"primaryKey"`
	Day       string    `gorm:"column:day;not null;uniqueIndex:idx_menu_slot"`
	Meal      string    `gorm:"column:meal;not null;uniqueIndex:idx_menu_slot"`
	Items     string    `gorm:"column:items;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Entry) TableName() string {
	return "menu_entries"
}
