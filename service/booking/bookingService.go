package booking

import (
	"errors"
	"time"

	"hotelbooking/model"
	customerrepo "hotelbooking/repository/customer"
	reservationrepo "hotelbooking/repository/reservation"
	roomrepo "hotelbooking/repository/room"
)

// errors used by controllers

type ErrCode string

const (
	ErrInvalid          ErrCode = "INVALID_INPUT"
	ErrUnavailable      ErrCode = "ROOM_UNAVAILABLE"
	ErrRoomNotFound     ErrCode = "ROOM_NOT_FOUND"
	ErrCustomerNotFound ErrCode = "CUSTOMER_NOT_FOUND"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts the error code, or "" for uncoded errors.
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Service interface {
	// Reserve books the room for [checkIn, checkOut). The availability check
	// and the ledger insert are a single atomic step; two concurrent attempts
	// on overlapping dates for one room cannot both succeed.
	Reserve(email, roomNumber string, checkIn, checkOut time.Time) (*model.Reservation, error)

	// IsRoomAvailable reports whether no existing reservation for the room
	// overlaps [checkIn, checkOut). Missing inputs are reported unavailable.
	IsRoomAvailable(roomNumber string, checkIn, checkOut time.Time) bool

	// FindAvailableRooms returns every catalog room, in catalog order, with no
	// reservation overlapping [checkIn, checkOut).
	FindAvailableRooms(checkIn, checkOut time.Time) ([]*model.Room, error)

	// CustomerReservations lists a customer's bookings in booking order.
	// Unknown customers get an empty slice.
	CustomerReservations(email string) ([]*model.Reservation, error)

	// AllReservations flattens the whole ledger for reporting.
	AllReservations() []*model.Reservation
}

type service struct {
	rooms     roomrepo.Repo
	customers customerrepo.Repo
	ledger    reservationrepo.Repo
	now       func() time.Time
}

func New(rooms roomrepo.Repo, customers customerrepo.Repo, ledger reservationrepo.Repo) Service {
	return NewWithClock(rooms, customers, ledger, time.Now)
}

// NewWithClock injects the clock used for the no-past-check-in rule.
func NewWithClock(rooms roomrepo.Repo, customers customerrepo.Repo, ledger reservationrepo.Repo, now func() time.Time) Service {
	return &service{rooms: rooms, customers: customers, ledger: ledger, now: now}
}

func (s *service) Reserve(email, roomNumber string, checkIn, checkOut time.Time) (*model.Reservation, error) {
	if email == "" || roomNumber == "" || checkIn.IsZero() || checkOut.IsZero() {
		return nil, makeErr(ErrInvalid)
	}
	checkIn, checkOut = model.Date(checkIn), model.Date(checkOut)
	if !checkIn.Before(checkOut) {
		return nil, makeErr(ErrInvalid)
	}
	if checkIn.Before(model.Date(s.now())) {
		return nil, makeErr(ErrInvalid)
	}

	customer := s.customers.ByEmail(email)
	if customer == nil {
		return nil, makeErr(ErrCustomerNotFound)
	}
	room := s.rooms.Get(roomNumber)
	if room == nil {
		return nil, makeErr(ErrRoomNotFound)
	}

	res := &model.Reservation{
		Customer: customer,
		Room:     room,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}
	if !s.ledger.Book(res) {
		return nil, makeErr(ErrUnavailable)
	}
	return res, nil
}

func (s *service) IsRoomAvailable(roomNumber string, checkIn, checkOut time.Time) bool {
	if roomNumber == "" || checkIn.IsZero() || checkOut.IsZero() {
		return false
	}
	return !s.ledger.HasOverlap(roomNumber, model.Date(checkIn), model.Date(checkOut))
}

func (s *service) FindAvailableRooms(checkIn, checkOut time.Time) ([]*model.Room, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return nil, makeErr(ErrInvalid)
	}
	checkIn, checkOut = model.Date(checkIn), model.Date(checkOut)
	if !checkIn.Before(checkOut) {
		return nil, makeErr(ErrInvalid)
	}

	booked := s.ledger.BookedRoomNumbers(checkIn, checkOut)
	available := make([]*model.Room, 0)
	for _, room := range s.rooms.List() {
		if _, taken := booked[room.Number]; !taken {
			available = append(available, room)
		}
	}
	return available, nil
}

func (s *service) CustomerReservations(email string) ([]*model.Reservation, error) {
	if email == "" {
		return nil, makeErr(ErrInvalid)
	}
	return s.ledger.ByCustomer(email), nil
}

func (s *service) AllReservations() []*model.Reservation {
	return s.ledger.All()
}
