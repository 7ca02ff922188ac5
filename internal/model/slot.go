package model

import "strings"

// ParkingSlot is a single parking space as rendered by the client.
// The backend ships `{id, is_available, slot_code}`; the Zone field is
// derived on ingest and does not exist on the wire.
//
// Fields:
//  ID          – slot id.
//  SlotCode    – printable code such as "A-07".
//  IsAvailable – whether the slot can currently be booked.
//  Zone        – prefix of SlotCode before the first '-'; empty when the
//                slot has no code.
type ParkingSlot struct {
	ID          uint64 `json:"id"`
	SlotCode    string `json:"slot_code"`
	IsAvailable bool   `json:"isAvailable"`
	Zone        string `json:"zone,omitempty"`
}

// ZoneOf derives the zone from a slot code: the substring before the
// first '-'. A code without a dash is its own zone; an empty code has
// no zone.
func ZoneOf(slotCode string) string {
	if slotCode == "" {
		return ""
	}
	if i := strings.IndexByte(slotCode, '-'); i >= 0 {
		return slotCode[:i]
	}
	return slotCode
}
