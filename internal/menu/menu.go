package menu

import (
	"github.com/frahmantamala/dorm-management/internal/core/datamodel/menu"
)

// RepositoryAPI defines the data access methods for menu entries.
type RepositoryAPI interface {
	Upsert(e *menu.Entry) error
	GetSlot(day, meal string) (*menu.Entry, error)
	List() ([]*menu.Entry, error)
	Delete(id int64) error
}

// ServiceAPI is the surface consumed by handlers.
type ServiceAPI interface {
	SetSlot(dto SetSlotDTO) (*menu.Entry, error)
	WeeklyMenu() ([]*menu.Entry, error)
	DeleteSlot(id int64) error
}
