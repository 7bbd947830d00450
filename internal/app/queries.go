package app

import (
	"context"
	"fmt"
	"time"

	"staybook/internal/domain"
)

func hotelKey(id string) string      { return fmt.Sprintf("hotel:%s", id) }
func roomsKey(hotelID string) string { return fmt.Sprintf("hotel:%s:rooms", hotelID) }
func userKey(id string) string       { return fmt.Sprintf("user:%s", id) }

// QueryService serves the read paths, with a read-through cache in front of
// the hotel, room-list and user lookups. Bookings are read straight from the
// repository; a stale availability answer is worse than a slow one.
type QueryService struct {
	hotels   domain.HotelRepository
	users    domain.UserRepository
	bookings domain.BookingRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(h domain.HotelRepository, u domain.UserRepository, b domain.BookingRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{hotels: h, users: u, bookings: b, cache: c, cacheTTL: ttl}
}

func (s *QueryService) GetHotel(ctx context.Context, id string) (*domain.Hotel, error) {
	var h domain.Hotel
	if ok, _ := s.cache.Get(ctx, hotelKey(id), &h); ok {
		return &h, nil
	}
	got, err := s.hotels.GetHotel(ctx, id)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, hotelKey(id), got, s.cacheTTL)
	return got, nil
}

func (s *QueryService) ListHotels(ctx context.Context, limit int) ([]domain.Hotel, error) {
	return s.hotels.ListHotels(ctx, limit)
}

func (s *QueryService) GetRoom(ctx context.Context, id string) (*domain.Room, error) {
	return s.hotels.GetRoom(ctx, id)
}

func (s *QueryService) ListRooms(ctx context.Context, hotelID string) ([]domain.Room, error) {
	var rooms []domain.Room
	if ok, _ := s.cache.Get(ctx, roomsKey(hotelID), &rooms); ok {
		return rooms, nil
	}
	// confirm the hotel exists so an empty list is not ambiguous with 404
	if _, err := s.hotels.GetHotel(ctx, hotelID); err != nil {
		return nil, err
	}
	rooms, err := s.hotels.ListRooms(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, roomsKey(hotelID), rooms, s.cacheTTL)
	return rooms, nil
}

func (s *QueryService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	if ok, _ := s.cache.Get(ctx, userKey(id), &u); ok {
		return &u, nil
	}
	got, err := s.users.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, userKey(id), got, s.cacheTTL)
	return got, nil
}

func (s *QueryService) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookings.GetBooking(ctx, id)
}
