package search

import (
	"errors"
	"time"

	"hotelbooking/model"
)

var ErrInvalidRange = errors.New("check-in must be before check-out")

// Rooms is the availability query the probe is built on, satisfied by the
// booking service.
type Rooms interface {
	FindAvailableRooms(checkIn, checkOut time.Time) ([]*model.Room, error)
}

// Alternative is a probe result: the rooms free on the shifted window plus the
// window itself, so callers never have to recompute which offset matched.
type Alternative struct {
	Rooms    []*model.Room `json:"rooms"`
	CheckIn  time.Time     `json:"check_in"`
	CheckOut time.Time     `json:"check_out"`
}

type Service interface {
	// FindAlternativeRooms probes day offsets 1 through 7 from the requested
	// check-in, keeping the stay duration, and returns the first offset with
	// any availability. When every offset is fully booked the result carries
	// no rooms and zero dates.
	FindAlternativeRooms(checkIn, checkOut time.Time) (*Alternative, error)
}

type service struct{ rooms Rooms }

func New(r Rooms) Service { return &service{rooms: r} }

func (s *service) FindAlternativeRooms(checkIn, checkOut time.Time) (*Alternative, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return nil, ErrInvalidRange
	}
	checkIn, checkOut = model.Date(checkIn), model.Date(checkOut)
	if !checkIn.Before(checkOut) {
		return nil, ErrInvalidRange
	}
	stay := checkOut.Sub(checkIn)

	for i := 1; i <= 7; i++ {
		altIn := checkIn.AddDate(0, 0, i)
		altOut := altIn.Add(stay)
		rooms, err := s.rooms.FindAvailableRooms(altIn, altOut)
		if err != nil {
			return nil, err
		}
		if len(rooms) > 0 {
			return &Alternative{Rooms: rooms, CheckIn: altIn, CheckOut: altOut}, nil
		}
	}
	return &Alternative{Rooms: []*model.Room{}}, nil
}
