package room

import (
	"github.com/frahmantamala/dorm-management/internal/core/datamodel/room"
)

// RepositoryAPI defines the data access methods for rooms, seats and seat
// applications.
type RepositoryAPI interface {
	CreateRoom(r *room.Room) error
	GetRoom(id int64) (*room.Room, error)
	ListRooms() ([]*room.Room, error)

	CreateSeat(s *room.Seat) error
	GetSeat(id int64) (*room.Seat, error)
	ListSeats(roomID int64) ([]*room.Seat, error)
	CountSeats(roomID int64) (int64, error)
	AssignSeat(seatID, userID int64) error

	CreateApplication(a *room.Application) error
	GetApplication(id int64) (*room.Application, error)
	ListApplications(status string) ([]*room.Application, error)
	UpdateApplicationStatus(id int64, status string) error
	RejectPendingForSeat(seatID int64, exceptID int64) error
}

// ServiceAPI is the surface consumed by handlers.
type ServiceAPI interface {
	CreateRoom(dto CreateRoomDTO) (*room.Room, error)
	ListRooms() ([]*room.Room, error)
	RoomSeats(roomID int64) ([]*room.Seat, error)
	AddSeat(dto AddSeatDTO) (*room.Seat, error)

	Apply(userID int64, dto ApplyDTO) (*room.Application, error)
	ListApplications(status string) ([]*room.Application, error)
	Approve(applicationID int64) (*room.Application, error)
	Reject(applicationID int64) (*room.Application, error)
}
