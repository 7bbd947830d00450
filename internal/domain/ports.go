package domain

import (
	"context"
	"time"
)

type HotelRepository interface {
	CreateHotel(ctx context.Context, h *Hotel) error
	GetHotel(ctx context.Context, id string) (*Hotel, error)
	ListHotels(ctx context.Context, limit int) ([]Hotel, error)
	UpdateHotel(ctx context.Context, id string, p HotelPatch) (*Hotel, error)
	DeleteHotel(ctx context.Context, id string) error

	CreateRoom(ctx context.Context, r *Room) error
	GetRoom(ctx context.Context, id string) (*Room, error)
	ListRooms(ctx context.Context, hotelID string) ([]Room, error)
	UpdateRoom(ctx context.Context, id string, p RoomPatch) (*Room, error)
	DeleteRoom(ctx context.Context, id string) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUser(ctx context.Context, id string) (*User, error)
	UpdateUser(ctx context.Context, id string, p UserPatch) (*User, error)
	DeleteUser(ctx context.Context, id string) error
}

type BookingRepository interface {
	CreateBooking(ctx context.Context, b *Booking) error
	GetBooking(ctx context.Context, id string) (*Booking, error)
	// ListActiveByRoom returns pending and confirmed bookings for the room,
	// the candidate set for duplicate and overlap checks.
	ListActiveByRoom(ctx context.Context, roomID string) ([]Booking, error)
	UpdateBookingStatus(ctx context.Context, id string, status BookingStatus) (*Booking, error)
	DeleteBooking(ctx context.Context, id string) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}
