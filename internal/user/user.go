package user

import (
	"github.com/frahmantamala/dorm-management/internal/core/datamodel/user"
)

// RepositoryAPI defines the data access methods for users.
type RepositoryAPI interface {
	Create(u *user.User) error
	GetByID(id int64) (*user.User, error)
	GetByEmail(email string) (*user.User, error)
	// ListPayers returns every active student-role user, the candidate set
	// for amount-based payer matching.
	ListPayers() ([]*user.User, error)
	List(limit, offset int) ([]*user.User, error)
}

// ServiceAPI is the surface other packages consume.
type ServiceAPI interface {
	GetByID(id int64) (*user.User, error)
	GetByEmail(email string) (*user.User, error)
	ListPayers() ([]*user.User, error)
	Register(dto RegisterDTO) (*user.User, error)
}
