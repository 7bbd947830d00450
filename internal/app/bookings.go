package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"staybook/internal/adapters/observability"
	"staybook/internal/domain"
)

// BookingInput is a booking request as received from a guest.
type BookingInput struct {
	GuestID string
	RoomID  string
	Period  domain.BookingPeriod
	// Status may be "pending" to hold a room without confirming;
	// empty defaults to confirmed.
	Status domain.BookingStatus
}

// BookingService runs the booking workflow and the booking status machine.
type BookingService struct {
	bookings domain.BookingRepository
	hotels   domain.HotelRepository
	users    domain.UserRepository
}

func NewBookingService(b domain.BookingRepository, h domain.HotelRepository, u domain.UserRepository) *BookingService {
	return &BookingService{bookings: b, hotels: h, users: u}
}

// Book validates a reservation request against the room's active bookings.
// The checks run in order: request shape, room existence, guest existence,
// duplicate booking, period overlap. The first failing check decides the
// refusal, so the caller gets the most specific reason.
func (s *BookingService) Book(ctx context.Context, in BookingInput) (*domain.Booking, error) {
	status := in.Status
	if status == "" {
		status = domain.BookingConfirmed
	}

	now := time.Now().UTC()
	b := domain.Booking{
		ID:             uuid.NewString(),
		GuestID:        in.GuestID,
		RoomID:         in.RoomID,
		Period:         in.Period,
		Status:         status,
		CreatedAt:      now,
		LastModifiedAt: now,
	}
	if err := domain.ValidateBooking(b); err != nil {
		return nil, err
	}
	if b.Status == domain.BookingCancelled {
		return nil, domain.ErrInvalidTransition
	}

	if _, err := s.hotels.GetRoom(ctx, in.RoomID); err != nil {
		observability.ObserveBookingDecision("denied_missing")
		return nil, err
	}
	if _, err := s.users.GetUser(ctx, in.GuestID); err != nil {
		observability.ObserveBookingDecision("denied_missing")
		return nil, err
	}

	active, err := s.bookings.ListActiveByRoom(ctx, in.RoomID)
	if err != nil {
		return nil, err
	}
	for _, existing := range active {
		if b.DuplicateOf(existing) {
			observability.ObserveBookingDecision("denied_duplicate")
			return nil, domain.ErrDuplicateBooking
		}
	}
	for _, existing := range active {
		if b.Period.Overlaps(existing.Period) {
			observability.ObserveBookingDecision("denied_overlap")
			return nil, domain.ErrRoomUnavailable
		}
	}

	if err := s.bookings.CreateBooking(ctx, &b); err != nil {
		return nil, err
	}
	observability.ObserveBookingDecision("accepted")
	return &b, nil
}

// Transition moves a booking through the status machine. Confirming a
// pending booking re-runs the overlap check against the other active
// bookings for the room, in case the window was taken since the hold.
func (s *BookingService) Transition(ctx context.Context, id string, to domain.BookingStatus) (*domain.Booking, error) {
	current, err := s.bookings.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == to {
		return current, nil
	}
	if !domain.CanTransition(current.Status, to) {
		return nil, domain.ErrInvalidTransition
	}

	if to == domain.BookingConfirmed {
		active, err := s.bookings.ListActiveByRoom(ctx, current.RoomID)
		if err != nil {
			return nil, err
		}
		for _, existing := range active {
			if existing.ID == current.ID {
				continue
			}
			if current.Period.Overlaps(existing.Period) {
				observability.ObserveBookingDecision("denied_overlap")
				return nil, domain.ErrRoomUnavailable
			}
		}
	}

	return s.bookings.UpdateBookingStatus(ctx, id, to)
}

func (s *BookingService) Delete(ctx context.Context, id string) error {
	return s.bookings.DeleteBooking(ctx, id)
}
