package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Active reports whether a booking in this status still holds its room.
// Cancelled bookings never block other reservations.
func (s BookingStatus) Active() bool {
	return s == BookingPending || s == BookingConfirmed
}

// CanTransition encodes the status machine: pending may confirm or cancel,
// confirmed may only cancel, cancelled is terminal.
func CanTransition(from, to BookingStatus) bool {
	switch from {
	case BookingPending:
		return to == BookingConfirmed || to == BookingCancelled
	case BookingConfirmed:
		return to == BookingCancelled
	default:
		return false
	}
}

// BookingPeriod is a half-open stay range [StartDate, EndDate).
type BookingPeriod struct {
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
}

// Overlaps reports whether two half-open ranges share at least one instant:
// s1 < e2 && s2 < e1. Back-to-back stays (checkout == checkin) do not overlap.
func (p BookingPeriod) Overlaps(o BookingPeriod) bool {
	return p.StartDate.Before(o.EndDate) && o.StartDate.Before(p.EndDate)
}

// Equal compares both bounds at instant precision.
func (p BookingPeriod) Equal(o BookingPeriod) bool {
	return p.StartDate.Equal(o.StartDate) && p.EndDate.Equal(o.EndDate)
}

// Nights is the derived duration in whole nights, floored.
func (p BookingPeriod) Nights() int {
	return int(p.EndDate.Sub(p.StartDate) / (24 * time.Hour))
}

type Booking struct {
	ID             string        `json:"id"`
	GuestID        string        `json:"guest_id" validate:"required,uuid4"`
	RoomID         string        `json:"room_id" validate:"required,uuid4"`
	Period         BookingPeriod `json:"period"`
	Status         BookingStatus `json:"status" validate:"required,oneof=pending confirmed cancelled"`
	CreatedAt      time.Time     `json:"created_at"`
	LastModifiedAt time.Time     `json:"last_modified_at"`
}

// DuplicateOf reports whether two bookings would be indistinguishable to a
// guest: same room, same guest, same stay range.
func (b Booking) DuplicateOf(o Booking) bool {
	return b.RoomID == o.RoomID && b.GuestID == o.GuestID && b.Period.Equal(o.Period)
}
