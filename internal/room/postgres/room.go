package postgres

import (
	"time"

	"github.com/frahmantamala/dorm-management/internal/core/datamodel/room"
	roompkg "github.com/frahmantamala/dorm-management/internal/room"
	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{
		db: db,
	}
}

var _ roompkg.RepositoryAPI = (*RoomRepository)(nil)

func (r *RoomRepository) CreateRoom(rm *room.Room) error {
	return r.db.Create(rm).Error
}

func (r *RoomRepository) GetRoom(id int64) (*room.Room, error) {
	var rm room.Room
	if err := r.db.First(&rm, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rm, nil
}

func (r *RoomRepository) ListRooms() ([]*room.Room, error) {
	var rooms []*room.Room
	err := r.db.Order("number").Find(&rooms).Error
	return rooms, err
}

func (r *RoomRepository) CreateSeat(s *room.Seat) error {
	return r.db.Create(s).Error
}

func (r *RoomRepository) GetSeat(id int64) (*room.Seat, error) {
	var s room.Seat
	if err := r.db.First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *RoomRepository) ListSeats(roomID int64) ([]*room.Seat, error) {
	var seats []*room.Seat
	err := r.db.Where("room_id = ?", roomID).Order("label").Find(&seats).Error
	return seats, err
}

func (r *RoomRepository) CountSeats(roomID int64) (int64, error) {
	var count int64
	err := r.db.Model(&room.Seat{}).Where("room_id = ?", roomID).Count(&count).Error
	return count, err
}

func (r *RoomRepository) AssignSeat(seatID, userID int64) error {
	return r.db.Model(&room.Seat{}).Where("id = ?", seatID).
		Updates(map[string]interface{}{"user_id": userID, "updated_at": time.Now()}).Error
}

func (r *RoomRepository) CreateApplication(a *room.Application) error {
	return r.db.Create(a).Error
}

func (r *RoomRepository) GetApplication(id int64) (*room.Application, error) {
	var a room.Application
	if err := r.db.First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *RoomRepository) ListApplications(status string) ([]*room.Application, error) {
	var applications []*room.Application
	query := r.db.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&applications).Error
	return applications, err
}

func (r *RoomRepository) UpdateApplicationStatus(id int64, status string) error {
	return r.db.Model(&room.Application{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()}).Error
}

func (r *RoomRepository) RejectPendingForSeat(seatID int64, exceptID int64) error {
	return r.db.Model(&room.Application{}).
		Where("seat_id = ? AND id <> ? AND status = ?", seatID, exceptID, room.ApplicationPending).
		Updates(map[string]interface{}{"status": room.ApplicationRejected, "updated_at": time.Now()}).Error
}
