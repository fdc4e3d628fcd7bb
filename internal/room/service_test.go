package room_test

import (
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	apperrors "github.com/frahmantamala/dorm-management/internal"
	roommodel "github.com/frahmantamala/dorm-management/internal/core/datamodel/room"
	"github.com/frahmantamala/dorm-management/internal/room"
)

func TestRoom(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Room Module Suite")
}

// Mock repository for testing
type mockRoomRepository struct {
	rooms        map[int64]*roommodel.Room
	seats        map[int64]*roommodel.Seat
	applications map[int64]*roommodel.Application
	nextID       int64
}

func newMockRoomRepository() *mockRoomRepository {
	return &mockRoomRepository{
		rooms:        make(map[int64]*roommodel.Room),
		seats:        make(map[int64]*roommodel.Seat),
		applications: make(map[int64]*roommodel.Application),
		nextID:       1,
	}
}

func (m *mockRoomRepository) CreateRoom(r *roommodel.Room) error {
	r.ID = m.nextID
	m.nextID++
	m.rooms[r.ID] = r
	return nil
}

func (m *mockRoomRepository) GetRoom(id int64) (*roommodel.Room, error) {
	r, ok := m.rooms[id]
	if !ok {
		return nil, apperrors.ErrRoomNotFound
	}
	return r, nil
}

func (m *mockRoomRepository) ListRooms() ([]*roommodel.Room, error) {
	var out []*roommodel.Room
	for _, r := range m.rooms {
		out = append(out, r)
	}
	return out, nil
}

func (m *mockRoomRepository) CreateSeat(s *roommodel.Seat) error {
	s.ID = m.nextID
	m.nextID++
	m.seats[s.ID] = s
	return nil
}

func (m *mockRoomRepository) GetSeat(id int64) (*roommodel.Seat, error) {
	s, ok := m.seats[id]
	if !ok {
		return nil, apperrors.ErrRoomNotFound
	}
	return s, nil
}

func (m *mockRoomRepository) ListSeats(roomID int64) ([]*roommodel.Seat, error) {
	var out []*roommodel.Seat
	for _, s := range m.seats {
		if s.RoomID == roomID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockRoomRepository) CountSeats(roomID int64) (int64, error) {
	var count int64
	for _, s := range m.seats {
		if s.RoomID == roomID {
			count++
		}
	}
	return count, nil
}

func (m *mockRoomRepository) AssignSeat(seatID, userID int64) error {
	s, ok := m.seats[seatID]
	if !ok {
		return apperrors.ErrRoomNotFound
	}
	s.UserID = &userID
	return nil
}

func (m *mockRoomRepository) CreateApplication(a *roommodel.Application) error {
	a.ID = m.nextID
	m.nextID++
	m.applications[a.ID] = a
	return nil
}

func (m *mockRoomRepository) GetApplication(id int64) (*roommodel.Application, error) {
	a, ok := m.applications[id]
	if !ok {
		return nil, apperrors.ErrApplicationNotFound
	}
	return a, nil
}

func (m *mockRoomRepository) ListApplications(status string) ([]*roommodel.Application, error) {
	var out []*roommodel.Application
	for _, a := range m.applications {
		if status == "" || a.Status == status {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockRoomRepository) UpdateApplicationStatus(id int64, status string) error {
	a, ok := m.applications[id]
	if !ok {
		return apperrors.ErrApplicationNotFound
	}
	a.Status = status
	return nil
}

func (m *mockRoomRepository) RejectPendingForSeat(seatID int64, exceptID int64) error {
	for _, a := range m.applications {
		if a.SeatID == seatID && a.ID != exceptID && a.Status == roommodel.ApplicationPending {
			a.Status = roommodel.ApplicationRejected
		}
	}
	return nil
}

var _ = Describe("RoomService", func() {
	var (
		repo    *mockRoomRepository
		service *room.Service
	)

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		repo = newMockRoomRepository()
		service = room.NewService(repo, logger)
	})

	Describe("CreateRoom", func() {
		It("creates a room", func() {
			created, err := service.CreateRoom(room.CreateRoomDTO{Number: "A-101", Floor: 1, Capacity: 4})

			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).NotTo(BeZero())
		})

		It("rejects a room without a number", func() {
			_, err := service.CreateRoom(room.CreateRoomDTO{Capacity: 4})

			Expect(err).To(HaveOccurred())
		})

		It("rejects a zero capacity", func() {
			_, err := service.CreateRoom(room.CreateRoomDTO{Number: "A-101"})

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("AddSeat", func() {
		var created *roommodel.Room

		BeforeEach(func() {
			var err error
			created, err = service.CreateRoom(room.CreateRoomDTO{Number: "A-101", Floor: 1, Capacity: 2})
			Expect(err).NotTo(HaveOccurred())
		})

		It("adds seats up to the room capacity", func() {
			_, err := service.AddSeat(room.AddSeatDTO{RoomID: created.ID, Label: "A"})
			Expect(err).NotTo(HaveOccurred())
			_, err = service.AddSeat(room.AddSeatDTO{RoomID: created.ID, Label: "B"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.AddSeat(room.AddSeatDTO{RoomID: created.ID, Label: "C"})

			Expect(err).To(MatchError(apperrors.ErrRoomFull))
		})

		It("fails for an unknown room", func() {
			_, err := service.AddSeat(room.AddSeatDTO{RoomID: 999, Label: "A"})

			Expect(err).To(MatchError(apperrors.ErrRoomNotFound))
		})
	})

	Describe("seat applications", func() {
		var seat *roommodel.Seat

		BeforeEach(func() {
			created, err := service.CreateRoom(room.CreateRoomDTO{Number: "A-101", Floor: 1, Capacity: 2})
			Expect(err).NotTo(HaveOccurred())
			seat, err = service.AddSeat(room.AddSeatDTO{RoomID: created.ID, Label: "A"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("accepts an application for a vacant seat", func() {
			application, err := service.Apply(7, room.ApplyDTO{SeatID: seat.ID})

			Expect(err).NotTo(HaveOccurred())
			Expect(application.Status).To(Equal(roommodel.ApplicationPending))
		})

		It("refuses an application for an occupied seat", func() {
			occupant := int64(3)
			seat.UserID = &occupant

			_, err := service.Apply(7, room.ApplyDTO{SeatID: seat.ID})

			Expect(err).To(MatchError(apperrors.ErrSeatTaken))
		})

		It("approval assigns the seat and rejects competing applications", func() {
			first, err := service.Apply(7, room.ApplyDTO{SeatID: seat.ID})
			Expect(err).NotTo(HaveOccurred())
			second, err := service.Apply(8, room.ApplyDTO{SeatID: seat.ID})
			Expect(err).NotTo(HaveOccurred())

			approved, err := service.Approve(first.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(approved.Status).To(Equal(roommodel.ApplicationApproved))
			Expect(seat.UserID).NotTo(BeNil())
			Expect(*seat.UserID).To(Equal(int64(7)))
			Expect(repo.applications[second.ID].Status).To(Equal(roommodel.ApplicationRejected))
		})

		It("refuses to approve once the seat is occupied", func() {
			application, err := service.Apply(7, room.ApplyDTO{SeatID: seat.ID})
			Expect(err).NotTo(HaveOccurred())
			occupant := int64(3)
			seat.UserID = &occupant

			_, err = service.Approve(application.ID)

			Expect(err).To(MatchError(apperrors.ErrSeatTaken))
		})

		It("refuses to approve a non-pending application", func() {
			application, err := service.Apply(7, room.ApplyDTO{SeatID: seat.ID})
			Expect(err).NotTo(HaveOccurred())
			_, err = service.Reject(application.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Approve(application.ID)

			Expect(err).To(HaveOccurred())
		})

		It("rejection leaves the seat vacant", func() {
			application, err := service.Apply(7, room.ApplyDTO{SeatID: seat.ID})
			Expect(err).NotTo(HaveOccurred())

			rejected, err := service.Reject(application.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(rejected.Status).To(Equal(roommodel.ApplicationRejected))
			Expect(seat.UserID).To(BeNil())
		})
	})
})
