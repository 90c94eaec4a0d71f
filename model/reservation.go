package model

import (
	"fmt"
	"time"
)

// Reservation associates a customer with a room over a half-open [CheckIn, CheckOut)
// date range. The room is held by reference; reservations are never mutated.
type Reservation struct {
	Customer *Customer `json:"customer"`
	Room     *Room     `json:"room"`
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}

// Overlaps reports whether two half-open date ranges intersect. Touching
// endpoints (checkout day equals the next check-in day) do not overlap, so
// back-to-back stays in the same room are allowed.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && aOut.After(bIn)
}

// ConflictsWith reports whether two reservations compete for the same room on
// intersecting dates. This is the booking-conflict predicate, not equality:
// two reservations with different date ranges can still conflict.
func (r *Reservation) ConflictsWith(other *Reservation) bool {
	if r.Room.Number != other.Room.Number {
		return false
	}
	return Overlaps(r.CheckIn, r.CheckOut, other.CheckIn, other.CheckOut)
}

// Nights is the stay length in whole days.
func (r *Reservation) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

func (r *Reservation) String() string {
	return fmt.Sprintf("%s in room %s, %s to %s, %d night(s)",
		r.Customer.Email, r.Room.Number,
		r.CheckIn.Format(DateLayout), r.CheckOut.Format(DateLayout), r.Nights())
}

// DateLayout is the wire and display format for calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Date truncates t to its calendar day in UTC. All reservation dates pass
// through this so overlap comparison never sees a time-of-day component.
func Date(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
