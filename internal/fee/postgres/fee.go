package postgres

import (
	"time"

	"github.com/frahmantamala/dorm-management/internal/core/datamodel/fee"
	feepkg "github.com/frahmantamala/dorm-management/internal/fee"
	"gorm.io/gorm"
)

type FeeRepository struct {
	db *gorm.DB
}

func NewFeeRepository(db *gorm.DB) *FeeRepository {
	return &FeeRepository{
		db: db,
	}
}

var _ feepkg.RepositoryAPI = (*FeeRepository)(nil)

func (r *FeeRepository) CreateSchedule(s *fee.Schedule) error {
	return r.db.Create(s).Error
}

func (r *FeeRepository) GetSchedule(category fee.Category, year int, residencyType string) (*fee.Schedule, error) {
	var s fee.Schedule
	err := r.db.Where("category = ? AND year = ? AND residency_type = ?", string(category), year, residencyType).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *FeeRepository) ListSchedules() ([]*fee.Schedule, error) {
	var schedules []*fee.Schedule
	err := r.db.Order("year DESC, category").Find(&schedules).Error
	return schedules, err
}

func (r *FeeRepository) CreateHallFee(f *fee.HallFee) error {
	return r.db.Create(f).Error
}

func (r *FeeRepository) CreateDiningFee(f *fee.DiningFee) error {
	return r.db.Create(f).Error
}

func (r *FeeRepository) FindUnpaidHallFees(userID int64) ([]*fee.HallFee, error) {
	var fees []*fee.HallFee
	err := r.db.Where("user_id = ? AND status = ?", userID, fee.StatusUnpaid).
		Order("year").Find(&fees).Error
	return fees, err
}

func (r *FeeRepository) FindUnpaidDiningFees(userID int64) ([]*fee.DiningFee, error) {
	var fees []*fee.DiningFee
	err := r.db.Where("user_id = ? AND status = ?", userID, fee.StatusUnpaid).
		Order("year").Find(&fees).Error
	return fees, err
}

func (r *FeeRepository) HallFeeExists(userID int64, year int) (bool, error) {
	var count int64
	err := r.db.Model(&fee.HallFee{}).Where("user_id = ? AND year = ?", userID, year).Count(&count).Error
	return count > 0, err
}

func (r *FeeRepository) DiningFeeExists(userID int64, year int) (bool, error) {
	var count int64
	err := r.db.Model(&fee.DiningFee{}).Where("user_id = ? AND year = ?", userID, year).Count(&count).Error
	return count > 0, err
}

func (r *FeeRepository) ListHallFees(userID int64) ([]*fee.HallFee, error) {
	var fees []*fee.HallFee
	err := r.db.Where("user_id = ?", userID).Order("year DESC").Find(&fees).Error
	return fees, err
}

func (r *FeeRepository) ListDiningFees(userID int64) ([]*fee.DiningFee, error) {
	var fees []*fee.DiningFee
	err := r.db.Where("user_id = ?", userID).Order("year DESC").Find(&fees).Error
	return fees, err
}

func (r *FeeRepository) MarkHallFeePaid(feeID int64) error {
	return r.db.Model(&fee.HallFee{}).Where("id = ?", feeID).
		Updates(map[string]interface{}{"status": fee.StatusPaid, "updated_at": time.Now()}).Error
}

func (r *FeeRepository) MarkDiningFeePaid(feeID int64) error {
	return r.db.Model(&fee.DiningFee{}).Where("id = ?", feeID).
		Updates(map[string]interface{}{"status": fee.StatusPaid, "updated_at": time.Now()}).Error
}
