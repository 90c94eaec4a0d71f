package reservationrepo

import (
	"strings"
	"sync"
	"time"

	"hotelbooking/model"
)

type Repo interface {
	// Book atomically re-checks the room for conflicts and appends the
	// reservation. Reports false, without mutating anything, when an existing
	// reservation for the same room overlaps.
	Book(res *model.Reservation) bool
	// HasOverlap reports whether any reservation for the room intersects the
	// half-open [in, out) range.
	HasOverlap(roomNumber string, in, out time.Time) bool
	// BookedRoomNumbers collects the numbers of every room with at least one
	// reservation overlapping [in, out).
	BookedRoomNumbers(in, out time.Time) map[string]struct{}
	// ByCustomer returns the customer's reservations in booking order, keyed
	// by the lowercased email. Never nil; a customer with no bookings gets an
	// empty slice.
	ByCustomer(email string) []*model.Reservation
	// All flattens every customer's reservations, customers in first-booking
	// order, each customer's reservations in booking order.
	All() []*model.Reservation
}

// repo is the in-memory ledger: email -> reservations, insertion-ordered.
// A single lock covers the whole ledger; the check-then-act in Book must not
// interleave with another booking for the same room.
type repo struct {
	mu         sync.RWMutex
	byCustomer map[string][]*model.Reservation
	order      []string
}

func New() Repo {
	return &repo{byCustomer: make(map[string][]*model.Reservation)}
}

func (r *repo) Book(res *model.Reservation) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.hasOverlapLocked(res.Room.Number, res.CheckIn, res.CheckOut) {
		return false
	}
	email := strings.ToLower(res.Customer.Email)
	if _, seen := r.byCustomer[email]; !seen {
		r.order = append(r.order, email)
	}
	r.byCustomer[email] = append(r.byCustomer[email], res)
	return true
}

func (r *repo) HasOverlap(roomNumber string, in, out time.Time) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.hasOverlapLocked(roomNumber, in, out)
}

func (r *repo) hasOverlapLocked(roomNumber string, in, out time.Time) bool {
	for _, reservations := range r.byCustomer {
		for _, res := range reservations {
			if res.Room.Number == roomNumber && model.Overlaps(res.CheckIn, res.CheckOut, in, out) {
				return true
			}
		}
	}
	return false
}

func (r *repo) BookedRoomNumbers(in, out time.Time) map[string]struct{} {
	r.mu.RLock()
	defer r.mu.RUnlock()
	booked := make(map[string]struct{})
	for _, reservations := range r.byCustomer {
		for _, res := range reservations {
			if model.Overlaps(res.CheckIn, res.CheckOut, in, out) {
				booked[res.Room.Number] = struct{}{}
			}
		}
	}
	return booked
}

func (r *repo) ByCustomer(email string) []*model.Reservation {
	email = strings.ToLower(email)
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Reservation, len(r.byCustomer[email]))
	copy(out, r.byCustomer[email])
	return out
}

func (r *repo) All() []*model.Reservation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*model.Reservation
	for _, email := range r.order {
		out = append(out, r.byCustomer[email]...)
	}
	return out
}
