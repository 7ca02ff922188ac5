// Package queue defines the message payloads exchanged over the broker
// and the background consumer that turns them into audit log lines.
package queue

// BookingCreatedEvent is published after the backend accepts a booking
// submission. It is an audit record: downstream consumers can log or
// notify without calling the parking backend again. Amounts are the
// client-computed totals the backend accepted.
type BookingCreatedEvent struct {
	EventID       string  `json:"event_id"`
	UserID        uint64  `json:"user_id"`
	SlotCode      string  `json:"slot_code"`
	LocationName  string  `json:"location_name"`
	VehicleNumber string  `json:"vehicle_number"`
	DurationHours int     `json:"duration_hours"`
	TotalAmount   float64 `json:"total_amount"`
	CreatedAt     string  `json:"created_at"`
}
