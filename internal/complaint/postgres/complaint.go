package postgres

import (
	"time"

	complaintpkg "github.com/frahmantamala/dorm-management/internal/complaint"
	"github.com/frahmantamala/dorm-management/internal/core/datamodel/complaint"
	"gorm.io/gorm"
)

type ComplaintRepository struct {
	db *gorm.DB
}

func NewComplaintRepository(db *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{
		db: db,
	}
}

var _ complaintpkg.RepositoryAPI = (*ComplaintRepository)(nil)

func (r *ComplaintRepository) Create(c *complaint.Complaint) error {
	return r.db.Create(c).Error
}

func (r *ComplaintRepository) GetByID(id int64) (*complaint.Complaint, error) {
	var c complaint.Complaint
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ComplaintRepository) ListByUser(userID int64) ([]*complaint.Complaint, error) {
	var complaints []*complaint.Complaint
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&complaints).Error
	return complaints, err
}

func (r *ComplaintRepository) List(status string) ([]*complaint.Complaint, error) {
	var complaints []*complaint.Complaint
	query := r.db.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&complaints).Error
	return complaints, err
}

func (r *ComplaintRepository) UpdateStatus(id int64, status string) error {
	return r.db.Model(&complaint.Complaint{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()}).Error
}
