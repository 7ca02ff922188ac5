package model

// Payment statuses as shipped by the backend. Payments are read-only in
// this client; "Pay Now" is rendered for pending payments but is not
// wired to any operation.
const (
	PaymentPaid    = "Paid"
	PaymentPending = "Pending"
)

// Payment is a monetary record associated with a booking.
type Payment struct {
	ID            uint64  `json:"id"`
	BookingID     uint64  `json:"booking_id"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"` // Paid | Pending
	CreatedAt     string  `json:"created_at"`
	VehicleNumber string  `json:"vehicle_number"`
	SlotCode      string  `json:"slot_code"`
}
