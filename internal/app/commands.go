package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"staybook/internal/domain"
)

// CommandService owns the hotel, room and user write paths. Every mutation
// validates first, then writes, then evicts the affected cache keys so the
// read side never serves a stale snapshot.
type CommandService struct {
	hotels domain.HotelRepository
	users  domain.UserRepository
	cache  domain.Cache
}

func NewCommandService(h domain.HotelRepository, u domain.UserRepository, c domain.Cache) *CommandService {
	return &CommandService{hotels: h, users: u, cache: c}
}

// ---- hotels ----

func (s *CommandService) CreateHotel(ctx context.Context, h domain.Hotel) (*domain.Hotel, error) {
	now := time.Now().UTC()
	h.ID = uuid.NewString()
	h.CreatedAt = now
	h.LastModifiedAt = now
	if err := domain.ValidateHotel(h); err != nil {
		return nil, err
	}
	if err := s.hotels.CreateHotel(ctx, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

func (s *CommandService) UpdateHotel(ctx context.Context, id string, p domain.HotelPatch) (*domain.Hotel, error) {
	if err := domain.ValidatePatch(p); err != nil {
		return nil, err
	}
	updated, err := s.hotels.UpdateHotel(ctx, id, p)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Del(ctx, hotelKey(id))
	return updated, nil
}

func (s *CommandService) DeleteHotel(ctx context.Context, id string) error {
	if err := s.hotels.DeleteHotel(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Del(ctx, hotelKey(id))
	_ = s.cache.Del(ctx, roomsKey(id))
	return nil
}

// ---- rooms ----

func (s *CommandService) CreateRoom(ctx context.Context, r domain.Room) (*domain.Room, error) {
	r.ID = uuid.NewString()
	if err := domain.ValidateRoom(r); err != nil {
		return nil, err
	}
	// parent must exist; FK failure would otherwise surface as a 500
	if _, err := s.hotels.GetHotel(ctx, r.HotelID); err != nil {
		return nil, err
	}
	if err := s.hotels.CreateRoom(ctx, &r); err != nil {
		return nil, err
	}
	_ = s.cache.Del(ctx, roomsKey(r.HotelID))
	return &r, nil
}

func (s *CommandService) UpdateRoom(ctx context.Context, id string, p domain.RoomPatch) (*domain.Room, error) {
	if err := domain.ValidatePatch(p); err != nil {
		return nil, err
	}
	updated, err := s.hotels.UpdateRoom(ctx, id, p)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Del(ctx, roomsKey(updated.HotelID))
	return updated, nil
}

func (s *CommandService) DeleteRoom(ctx context.Context, id string) error {
	room, err := s.hotels.GetRoom(ctx, id)
	if err != nil {
		return err
	}
	if err := s.hotels.DeleteRoom(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Del(ctx, roomsKey(room.HotelID))
	return nil
}

// ---- users ----

func (s *CommandService) CreateUser(ctx context.Context, u domain.User) (*domain.User, error) {
	now := time.Now().UTC()
	u.ID = uuid.NewString()
	u.CreatedAt = now
	u.LastModifiedAt = now
	if u.Status == "" {
		u.Status = domain.UserActive
	}
	if err := domain.ValidateUser(&u); err != nil {
		return nil, err
	}
	if err := s.users.CreateUser(ctx, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *CommandService) UpdateUser(ctx context.Context, id string, p domain.UserPatch) (*domain.User, error) {
	if err := domain.ValidatePatch(p); err != nil {
		return nil, err
	}
	updated, err := s.users.UpdateUser(ctx, id, p)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Del(ctx, userKey(id))
	return updated, nil
}

func (s *CommandService) DeleteUser(ctx context.Context, id string) error {
	if err := s.users.DeleteUser(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Del(ctx, userKey(id))
	return nil
}
