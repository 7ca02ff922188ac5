package backend

import (
	"context"
	"log"
	"sync"

	"github.com/parkeasy/parking-reservation-client/internal/model"
)

// Snapshot aggregates the collections a refresh produced. A nil field
// means that fetch failed and the caller's previous state for that
// collection stands; the JSON encoding omits such fields so consumers
// can tell "updated to empty" apart from "unchanged".
type Snapshot struct {
	Slots    []model.ParkingSlot `json:"slots,omitempty"`
	Bookings []model.Booking     `json:"bookings,omitempty"`
	Payments []model.Payment     `json:"payments,omitempty"`
}

// RefreshAll fetches slots, bookings and payments in parallel and
// returns whatever succeeded. The three calls have no ordering or
// atomicity guarantee relative to each other: each result lands in its
// own field as it arrives, and a failure in one never rolls back or
// blocks the others. Errors are logged and swallowed here; no failure
// escapes a refresh.
func (c *Client) RefreshAll(ctx context.Context, userID uint64) Snapshot {
	var snap Snapshot
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		slots, err := c.ListSlots(ctx)
		if err != nil {
			log.Printf("refresh: slots fetch failed: %v", err)
			return
		}
		snap.Slots = slots
	}()
	go func() {
		defer wg.Done()
		bookings, err := c.ListBookings(ctx, userID)
		if err != nil {
			log.Printf("refresh: bookings fetch failed: %v", err)
			return
		}
		snap.Bookings = bookings
	}()
	go func() {
		defer wg.Done()
		payments, err := c.ListPayments(ctx, userID)
		if err != nil {
			log.Printf("refresh: payments fetch failed: %v", err)
			return
		}
		snap.Payments = payments
	}()
	wg.Wait()
	return snap
}

// FetchUserData fetches the user's bookings and payments in parallel
// with the same independent-failure semantics as RefreshAll.
func (c *Client) FetchUserData(ctx context.Context, userID uint64) ([]model.Booking, []model.Payment) {
	var (
		bookings []model.Booking
		payments []model.Payment
		wg       sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		b, err := c.ListBookings(ctx, userID)
		if err != nil {
			log.Printf("refresh: bookings fetch failed: %v", err)
			return
		}
		bookings = b
	}()
	go func() {
		defer wg.Done()
		p, err := c.ListPayments(ctx, userID)
		if err != nil {
			log.Printf("refresh: payments fetch failed: %v", err)
			return
		}
		payments = p
	}()
	wg.Wait()
	return bookings, payments
}
