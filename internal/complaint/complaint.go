package complaint

import (
	"github.com/frahmantamala/dorm-management/internal/core/datamodel/complaint"
)

// RepositoryAPI defines the data access methods for complaints.
type RepositoryAPI interface {
	Create(c *complaint.Complaint) error
	GetByID(id int64) (*complaint.Complaint, error)
	ListByUser(userID int64) ([]*complaint.Complaint, error)
	List(status string) ([]*complaint.Complaint, error)
	UpdateStatus(id int64, status string) error
}

// ServiceAPI is the surface consumed by handlers.
type ServiceAPI interface {
	Create(userID int64, dto CreateComplaintDTO) (*complaint.Complaint, error)
	MyComplaints(userID int64) ([]*complaint.Complaint, error)
	List(status string) ([]*complaint.Complaint, error)
	UpdateStatus(id int64, dto UpdateStatusDTO) (*complaint.Complaint, error)
}
