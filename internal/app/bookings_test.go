package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"staybook/internal/app"
	"staybook/internal/domain"
)


// ---- fakes ----

type fakeStore struct {
	hotels   map[string]domain.Hotel
	rooms    map[string]domain.Room
	users    map[string]domain.User
	bookings map[string]domain.Booking
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		hotels:   map[string]domain.Hotel{},
		rooms:    map[string]domain.Room{},
		users:    map[string]domain.User{},
		bookings: map[string]domain.Booking{},
	}
}

func (f *fakeStore) CreateHotel(ctx context.Context, h *domain.Hotel) error {
	f.hotels[h.ID] = *h
	return nil
}

func (f *fakeStore) GetHotel(ctx context.Context, id string) (*domain.Hotel, error) {
	h, ok := f.hotels[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &h, nil
}

func (f *fakeStore) ListHotels(ctx context.Context, limit int) ([]domain.Hotel, error) {
	out := make([]domain.Hotel, 0, len(f.hotels))
	for _, h := range f.hotels {
		out = append(out, h)
	}
	return out, nil
}

func (f *fakeStore) UpdateHotel(ctx context.Context, id string, p domain.HotelPatch) (*domain.Hotel, error) {
	h, ok := f.hotels[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if p.Name != nil {
		h.Name = *p.Name
	}
	f.hotels[id] = h
	return &h, nil
}

func (f *fakeStore) DeleteHotel(ctx context.Context, id string) error {
	if _, ok := f.hotels[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.hotels, id)
	return nil
}

func (f *fakeStore) CreateRoom(ctx context.Context, r *domain.Room) error {
	f.rooms[r.ID] = *r
	return nil
}

func (f *fakeStore) GetRoom(ctx context.Context, id string) (*domain.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &r, nil
}

func (f *fakeStore) ListRooms(ctx context.Context, hotelID string) ([]domain.Room, error) {
	var out []domain.Room
	for _, r := range f.rooms {
		if r.HotelID == hotelID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateRoom(ctx context.Context, id string, p domain.RoomPatch) (*domain.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if p.PriceCents != nil {
		r.PriceCents = *p.PriceCents
	}
	f.rooms[id] = r
	return &r, nil
}

func (f *fakeStore) DeleteRoom(ctx context.Context, id string) error {
	if _, ok := f.rooms[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.rooms, id)
	return nil
}

func (f *fakeStore) CreateUser(ctx context.Context, u *domain.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return domain.ErrEmailTaken
		}
	}
	f.users[u.ID] = *u
	return nil
}

func (f *fakeStore) GetUser(ctx context.Context, id string) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (f *fakeStore) UpdateUser(ctx context.Context, id string, p domain.UserPatch) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
	f.users[id] = u
	return &u, nil
}

func (f *fakeStore) DeleteUser(ctx context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeStore) CreateBooking(ctx context.Context, b *domain.Booking) error {
	f.bookings[b.ID] = *b
	return nil
}

func (f *fakeStore) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &b, nil
}

func (f *fakeStore) ListActiveByRoom(ctx context.Context, roomID string) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range f.bookings {
		if b.RoomID == roomID && b.Status.Active() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	b.Status = status
	b.LastModifiedAt = time.Now().UTC()
	f.bookings[id] = b
	return &b, nil
}

func (f *fakeStore) DeleteBooking(ctx context.Context, id string) error {
	if _, ok := f.bookings[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.bookings, id)
	return nil
}

type fakeCache struct {
	store map[string][]byte
	sets  int
	dels  int
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	raw, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = raw
	c.sets++
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	c.dels++
	return nil
}

// ---- helpers ----

const (
	guestID = "11111111-2222-4333-8444-555555555555"
	roomID  = "aaaaaaaa-bbbb-4ccc-8ddd-eeeeeeeeeeee"
)

func seedRoomAndGuest(f *fakeStore) {
	f.rooms[roomID] = domain.Room{ID: roomID, HotelID: "h-1", Number: "101", Size: domain.RoomDouble, PriceCents: 10000}
	f.users[guestID] = domain.User{ID: guestID, Name: "Ada", Surname: "Lovelace", Email: "ada@example.com", Status: domain.UserActive}
}

func stay(start, end int) domain.BookingPeriod {
	return domain.BookingPeriod{
		StartDate: time.Date(2024, 6, start, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 6, end, 0, 0, 0, 0, time.UTC),
	}
}

// ---- tests ----

func TestBook_ConfirmsWhenRoomFree(t *testing.T) {
	store := newFakeStore()
	seedRoomAndGuest(store)
	svc := app.NewBookingService(store, store, store)

	b, err := svc.Book(context.Background(), app.BookingInput{GuestID: guestID, RoomID: roomID, Period: stay(1, 4)})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if b.Status != domain.BookingConfirmed {
		t.Fatalf("status = %s, want confirmed", b.Status)
	}
	if b.Period.Nights() != 3 {
		t.Fatalf("nights = %d, want 3", b.Period.Nights())
	}
	if _, ok := store.bookings[b.ID]; !ok {
		t.Fatal("booking not persisted")
	}
}

func TestBook_MissingRoom(t *testing.T) {
	store := newFakeStore()
	store.users[guestID] = domain.User{ID: guestID}
	svc := app.NewBookingService(store, store, store)

	_, err := svc.Book(context.Background(), app.BookingInput{GuestID: guestID, RoomID: roomID, Period: stay(1, 4)})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestBook_MissingGuest(t *testing.T) {
	store := newFakeStore()
	store.rooms[roomID] = domain.Room{ID: roomID}
	svc := app.NewBookingService(store, store, store)

	_, err := svc.Book(context.Background(), app.BookingInput{GuestID: guestID, RoomID: roomID, Period: stay(1, 4)})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestBook_RejectsDuplicate(t *testing.T) {
	store := newFakeStore()
	seedRoomAndGuest(store)
	svc := app.NewBookingService(store, store, store)
	ctx := context.Background()

	if _, err := svc.Book(ctx, app.BookingInput{GuestID: guestID, RoomID: roomID, Period: stay(1, 4)}); err != nil {
		t.Fatalf("first booking: %v", err)
	}
	_, err := svc.Book(ctx, app.BookingInput{GuestID: guestID, RoomID: roomID, Period: stay(1, 4)})
	if !errors.Is(err, domain.ErrDuplicateBooking) {
		t.Fatalf("err = %v, want ErrDuplicateBooking", err)
	}
}

func TestBook_RejectsOverlap(t *testing.T) {
	store := newFakeStore()
	seedRoomAndGuest(store)
	svc := app.NewBookingService(store, store, store)
	ctx := context.Background()

	if _, err := svc.Book(ctx, app.BookingInput{GuestID: guestID, RoomID: roomID, Period: stay(1, 5)}); err != nil {
		t.Fatalf("first booking: %v", err)
	}
	_, err := svc.Book(ctx, app.BookingInput{GuestID: guestID, RoomID: roomID, Period: stay(4, 8)})
	if !errors.Is(err, domain.ErrRoomUnavailable) {
		t.Fatalf("err = %v, want ErrRoomUnavailable", err)
	}
}

func TestBook_AllowsBackToBackStays(t *testing.T) {
	store := newFakeStore()
	seedRoomAndGuest(store)
	svc := app.NewBookingService(store, store, store)
	ctx := context.Background()

	if _, err := svc.Book(ctx, app.BookingInput{GuestID: guestID, RoomID: roomID, Period: stay(1, 4)}); err != nil {
		t.Fatalf("first booking: %v", err)
	}
	// checkout day == checkin day of the next stay: half-open, no overlap
	if _, err := svc.Book(ctx, app.BookingInput{GuestID: guestID, RoomID: roomID, Period: stay(4, 7)}); err != nil {
		t.Fatalf("back-to-back booking: %v", err)
	}
}

func TestBook_IgnoresCancelledBookings(t *testing.T) {
	store := newFakeStore()
	seedRoomAndGuest(store)
	store.bookings["old"] = domain.Booking{
		ID: "old", GuestID: guestID, RoomID: roomID,
		Period: stay(1, 10), Status: domain.BookingCancelled,
	}
	svc := app.NewBookingService(store, store, store)

	if _, err := svc.Book(context.Background(), app.BookingInput{GuestID: guestID, RoomID: roomID, Period: stay(2, 5)}); err != nil {
		t.Fatalf("cancelled booking must not block the room: %v", err)
	}
}

func TestBook_RejectsInvalidPeriod(t *testing.T) {
	store := newFakeStore()
	seedRoomAndGuest(store)
	svc := app.NewBookingService(store, store, store)

	_, err := svc.Book(context.Background(), app.BookingInput{GuestID: guestID, RoomID: roomID, Period: stay(4, 4)})
	if err == nil || !domain.IsValidation(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestTransition_PendingToConfirmed(t *testing.T) {
	store := newFakeStore()
	seedRoomAndGuest(store)
	svc := app.NewBookingService(store, store, store)
	ctx := context.Background()

	held, err := svc.Book(ctx, app.BookingInput{GuestID: guestID, RoomID: roomID, Period: stay(1, 4), Status: domain.BookingPending})
	if err != nil {
		t.Fatalf("hold: %v", err)
	}
	confirmed, err := svc.Transition(ctx, held.ID, domain.BookingConfirmed)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if confirmed.Status != domain.BookingConfirmed {
		t.Fatalf("status = %s", confirmed.Status)
	}
}

func TestTransition_RejectsReopeningCancelled(t *testing.T) {
	store := newFakeStore()
	seedRoomAndGuest(store)
	store.bookings["b1"] = domain.Booking{ID: "b1", GuestID: guestID, RoomID: roomID, Period: stay(1, 4), Status: domain.BookingCancelled}
	svc := app.NewBookingService(store, store, store)

	_, err := svc.Transition(context.Background(), "b1", domain.BookingConfirmed)
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestTransition_SameStatusIsNoop(t *testing.T) {
	store := newFakeStore()
	seedRoomAndGuest(store)
	store.bookings["b1"] = domain.Booking{ID: "b1", GuestID: guestID, RoomID: roomID, Period: stay(1, 4), Status: domain.BookingConfirmed}
	svc := app.NewBookingService(store, store, store)

	got, err := svc.Transition(context.Background(), "b1", domain.BookingConfirmed)
	if err != nil || got.Status != domain.BookingConfirmed {
		t.Fatalf("got %v, %v", got, err)
	}
}

func TestTransition_CancelReleasesRoom(t *testing.T) {
	store := newFakeStore()
	seedRoomAndGuest(store)
	svc := app.NewBookingService(store, store, store)
	ctx := context.Background()

	first, err := svc.Book(ctx, app.BookingInput{GuestID: guestID, RoomID: roomID, Period: stay(1, 5)})
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if _, err := svc.Transition(ctx, first.ID, domain.BookingCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if _, err := svc.Book(ctx, app.BookingInput{GuestID: guestID, RoomID: roomID, Period: stay(2, 4)}); err != nil {
		t.Fatalf("room should be free after cancel: %v", err)
	}
}
