package domain

import "time"

type Hotel struct {
	ID             string    `json:"id"`
	Name           string    `json:"name" validate:"required"`
	PhoneNumber    *string   `json:"phone_number,omitempty"`
	Email          *string   `json:"email,omitempty" validate:"omitempty,email"`
	Address        string    `json:"address" validate:"required"`
	City           string    `json:"city" validate:"required"`
	Country        string    `json:"country" validate:"required"`
	CreatedAt      time.Time `json:"created_at"`
	LastModifiedAt time.Time `json:"last_modified_at"`
}

type RoomSize string

const (
	RoomSingle    RoomSize = "single"
	RoomDouble    RoomSize = "double"
	RoomTriple    RoomSize = "triple"
	RoomQuadruple RoomSize = "quadruple"
	RoomMultiple  RoomSize = "multiple"
)

// Room belongs to exactly one hotel. PriceCents is the nightly rate in
// minor currency units; it must be positive.
type Room struct {
	ID         string   `json:"id"`
	HotelID    string   `json:"hotel_id" validate:"required,uuid4"`
	Number     string   `json:"number" validate:"required"`
	Size       RoomSize `json:"size" validate:"required,oneof=single double triple quadruple multiple"`
	PriceCents int64    `json:"price_cents" validate:"required,gt=0"`
}

// HotelPatch carries the mutable hotel fields; nil means "leave unchanged".
type HotelPatch struct {
	Name        *string `json:"name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Address     *string `json:"address,omitempty"`
	City        *string `json:"city,omitempty"`
	Country     *string `json:"country,omitempty"`
}

func (p HotelPatch) Empty() bool {
	return p.Name == nil && p.PhoneNumber == nil && p.Email == nil &&
		p.Address == nil && p.City == nil && p.Country == nil
}

type RoomPatch struct {
	Number     *string   `json:"number,omitempty"`
	Size       *RoomSize `json:"size,omitempty" validate:"omitempty,oneof=single double triple quadruple multiple"`
	PriceCents *int64    `json:"price_cents,omitempty" validate:"omitempty,gt=0"`
}

func (p RoomPatch) Empty() bool {
	return p.Number == nil && p.Size == nil && p.PriceCents == nil
}
