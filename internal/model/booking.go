package model

import "time"

// BookingStatus is the display status of a booking. It is never stored
// anywhere: the backend payload carries no status and the value below
// is derived from timestamps on every render.
type BookingStatus string

const (
	StatusUpcoming  BookingStatus = "Upcoming"  // booking starts in the future
	StatusActive    BookingStatus = "Active"    // now falls inside [start, start+duration]
	StatusCompleted BookingStatus = "Completed" // booking window has passed
)

// Booking is a reservation of a slot for a vehicle over a duration,
// starting at its creation timestamp.
//
// Fields:
//  ID            – booking id.
//  SlotCode      – code of the reserved slot.
//  LocationName  – human-readable location name.
//  CreatedAt     – start of the booking window.
//  Duration      – length of the window in whole hours.
//  VehicleNumber – plate of the parked vehicle.
//  TotalAmount   – client-computed price sent to the backend verbatim.
//  Status        – derived per render via StatusAt; empty on the wire
//                  from the backend.
type Booking struct {
	ID            uint64        `json:"id"`
	SlotCode      string        `json:"slot_code"`
	LocationName  string        `json:"location_name"`
	CreatedAt     time.Time     `json:"created_at"`
	Duration      int           `json:"duration"`
	VehicleNumber string        `json:"vehicle_number"`
	TotalAmount   float64       `json:"total_amount"`
	Status        BookingStatus `json:"status,omitempty"`
}

// StatusAt derives the display status of the booking at the given
// instant. It is a pure function of (CreatedAt, Duration, now):
//
//	Upcoming  when now <  CreatedAt
//	Completed when now >  CreatedAt + Duration hours
//	Active    otherwise
//
// Both boundary instants are Active: the comparisons are strictly
// before/after, so a booking flips to Active exactly at its start and
// stays Active through the exact end instant. Callers must re-derive
// per render; the result must never outlive a single response.
func (b Booking) StatusAt(now time.Time) BookingStatus {
	end := b.CreatedAt.Add(time.Duration(b.Duration) * time.Hour)
	switch {
	case now.Before(b.CreatedAt):
		return StatusUpcoming
	case now.After(end):
		return StatusCompleted
	default:
		return StatusActive
	}
}
