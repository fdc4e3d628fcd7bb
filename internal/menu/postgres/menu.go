package postgres

import (
	"github.com/frahmantamala/dorm-management/internal/core/datamodel/menu"
	menupkg "github.com/frahmantamala/dorm-management/internal/menu"
	"gorm.io/gorm"
)

type MenuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{
		db: db,
	}
}

var _ menupkg.RepositoryAPI = (*MenuRepository)(nil)

func (r *MenuRepository) Upsert(e *menu.Entry) error {
	return r.db.Save(e).Error
}

func (r *MenuRepository) GetSlot(day, meal string) (*menu.Entry, error) {
	var e menu.Entry
	if err := r.db.Where("day = ? AND meal = ?", day, meal).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *MenuRepository) List() ([]*menu.Entry, error) {
	var entries []*menu.Entry
	err := r.db.Order("day, meal").Find(&entries).Error
	return entries, err
}

func (r *MenuRepository) Delete(id int64) error {
	result := r.db.Delete(&menu.Entry{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
