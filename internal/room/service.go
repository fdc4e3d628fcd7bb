package room

import (
	"log/slog"
	"time"

	errors "github.com/frahmantamala/dorm-management/internal"
	"github.com/frahmantamala/dorm-management/internal/core/datamodel/room"
)

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) CreateRoom(dto CreateRoomDTO) (*room.Room, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("room validation failed", "error", err)
		return nil, err
	}

	r := &room.Room{
		Number:      dto.Number,
		Floor:       dto.Floor,
		Capacity:    dto.Capacity,
		Description: dto.Description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.repo.CreateRoom(r); err != nil {
		s.logger.Error("failed to create room", "error", err, "number", dto.Number)
		return nil, err
	}

	s.logger.Info("room created", "room_id", r.ID, "number", r.Number, "capacity", r.Capacity)
	return r, nil
}

func (s *Service) ListRooms() ([]*room.Room, error) {
	return s.repo.ListRooms()
}

func (s *Service) RoomSeats(roomID int64) ([]*room.Seat, error) {
	if _, err := s.repo.GetRoom(roomID); err != nil {
		return nil, errors.ErrRoomNotFound
	}
	return s.repo.ListSeats(roomID)
}

// AddSeat creates a seat in a room, refusing once the room's capacity is
// reached.
func (s *Service) AddSeat(dto AddSeatDTO) (*room.Seat, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	r, err := s.repo.GetRoom(dto.RoomID)
	if err != nil {
		return nil, errors.ErrRoomNotFound
	}

	count, err := s.repo.CountSeats(r.ID)
	if err != nil {
		return nil, err
	}
	if count >= int64(r.Capacity) {
		return nil, errors.ErrRoomFull
	}

	seat := &room.Seat{
		RoomID:    r.ID,
		Label:     dto.Label,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.repo.CreateSeat(seat); err != nil {
		s.logger.Error("failed to create seat", "error", err, "room_id", r.ID)
		return nil, err
	}

	s.logger.Info("seat added", "seat_id", seat.ID, "room_id", r.ID, "label", seat.Label)
	return seat, nil
}

func (s *Service) Apply(userID int64, dto ApplyDTO) (*room.Application, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	seat, err := s.repo.GetSeat(dto.SeatID)
	if err != nil {
		return nil, errors.ErrRoomNotFound
	}
	if seat.UserID != nil {
		return nil, errors.ErrSeatTaken
	}

	application := &room.Application{
		UserID:    userID,
		SeatID:    seat.ID,
		Status:    room.ApplicationPending,
		Note:      dto.Note,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.repo.CreateApplication(application); err != nil {
		s.logger.Error("failed to create seat application", "error", err, "user_id", userID, "seat_id", seat.ID)
		return nil, err
	}

	s.logger.Info("seat application submitted", "application_id", application.ID, "user_id", userID, "seat_id", seat.ID)
	return application, nil
}

func (s *Service) ListApplications(status string) ([]*room.Application, error) {
	return s.repo.ListApplications(status)
}

// Approve assigns the applicant to the seat and rejects every other pending
// application for it. An already occupied seat fails with ErrSeatTaken.
func (s *Service) Approve(applicationID int64) (*room.Application, error) {
	application, err := s.repo.GetApplication(applicationID)
	if err != nil {
		return nil, errors.ErrApplicationNotFound
	}
	if application.Status != room.ApplicationPending {
		return nil, errors.NewConflictError("application is no longer pending", errors.ErrCodeInvalidStatus)
	}

	seat, err := s.repo.GetSeat(application.SeatID)
	if err != nil {
		return nil, errors.ErrRoomNotFound
	}
	if seat.UserID != nil {
		return nil, errors.ErrSeatTaken
	}

	if err := s.repo.AssignSeat(seat.ID, application.UserID); err != nil {
		s.logger.Error("failed to assign seat", "error", err, "seat_id", seat.ID, "user_id", application.UserID)
		return nil, err
	}
	if err := s.repo.UpdateApplicationStatus(application.ID, room.ApplicationApproved); err != nil {
		return nil, err
	}
	if err := s.repo.RejectPendingForSeat(seat.ID, application.ID); err != nil {
		s.logger.Error("failed to reject competing applications", "error", err, "seat_id", seat.ID)
		return nil, err
	}

	application.Status = room.ApplicationApproved
	s.logger.Info("seat application approved",
		"application_id", application.ID,
		"seat_id", seat.ID,
		"user_id", application.UserID)
	return application, nil
}

func (s *Service) Reject(applicationID int64) (*room.Application, error) {
	application, err := s.repo.GetApplication(applicationID)
	if err != nil {
		return nil, errors.ErrApplicationNotFound
	}
	if application.Status != room.ApplicationPending {
		return nil, errors.NewConflictError("application is no longer pending", errors.ErrCodeInvalidStatus)
	}

	if err := s.repo.UpdateApplicationStatus(application.ID, room.ApplicationRejected); err != nil {
		return nil, err
	}

	application.Status = room.ApplicationRejected
	s.logger.Info("seat application rejected", "application_id", application.ID)
	return application, nil
}
