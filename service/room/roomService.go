package roomsvc

import (
	"errors"
	"strings"

	"hotelbooking/model"
	roomrepo "hotelbooking/repository/room"
)

var ErrRoomExists = errors.New("room with that number already exists")

type Service interface {
	// Add validates and inserts a new room into the catalog.
	Add(number string, price float64, roomType model.RoomType) (*model.Room, error)
	// Get returns (nil, nil) when the room does not exist; lookup misses are
	// not errors, callers check for absence.
	Get(number string) (*model.Room, error)
	List() []*model.Room
}

type service struct{ r roomrepo.Repo }

func New(r roomrepo.Repo) Service { return &service{r: r} }

func (s *service) Add(number string, price float64, roomType model.RoomType) (*model.Room, error) {
	room, err := model.NewRoom(number, price, roomType)
	if err != nil {
		return nil, err
	}
	if !s.r.Add(room) {
		return nil, ErrRoomExists
	}
	return room, nil
}

func (s *service) Get(number string) (*model.Room, error) {
	if strings.TrimSpace(number) == "" {
		return nil, model.ErrEmptyRoomNumber
	}
	return s.r.Get(number), nil
}

func (s *service) List() []*model.Room { return s.r.List() }
