package model

// Location describes a parking location. The backend exposes no
// location endpoint; the catalog below is shipped with the client, as
// the SPA did. Occupied and Revenue only carry values in the admin
// listing.
type Location struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	TotalSlots int     `json:"totalSlots"`
	HourlyRate float64 `json:"rate,omitempty"`
	Occupied   int     `json:"occupied,omitempty"`
	Revenue    float64 `json:"revenue,omitempty"`
}

// BookingLocations returns the locations selectable when booking a
// slot. The hourly rate here is the one used for the client-side
// total_amount computation.
func BookingLocations() []Location {
	return []Location{
		{ID: "loc1", Name: "Downtown Plaza", Address: "123 Main St, Downtown", TotalSlots: 50, HourlyRate: 5},
	}
}

// DefaultLocation is the location applied to new bookings.
func DefaultLocation() Location { return BookingLocations()[0] }

// AdminLocations returns the location listing shown in the admin
// panel, including occupancy and revenue figures.
func AdminLocations() []Location {
	return []Location{
		{ID: "loc1", Name: "Downtown Plaza", Address: "123 Main St, Downtown", TotalSlots: 50, Occupied: 29, Revenue: 450},
		{ID: "loc2", Name: "City Mall Parking", Address: "456 Shopping Ave, Central", TotalSlots: 100, Occupied: 55, Revenue: 820},
		{ID: "loc3", Name: "Airport Terminal", Address: "789 Airport Rd, North", TotalSlots: 200, Occupied: 113, Revenue: 1240},
		{ID: "loc4", Name: "Business District", Address: "321 Corporate Blvd, East", TotalSlots: 75, Occupied: 63, Revenue: 630},
	}
}
