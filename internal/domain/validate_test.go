package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"staybook/internal/domain"
)

func strp(s string) *string { return &s }

func TestValidateUser_NormalizesEmail(t *testing.T) {
	u := domain.User{
		Name:        "Ada",
		Surname:     "Lovelace",
		Email:       "  Ada.Lovelace@Example.COM ",
		PhoneNumber: "+1-555-000",
		Status:      domain.UserActive,
	}
	if err := domain.ValidateUser(&u); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Email != "ada.lovelace@example.com" {
		t.Fatalf("email not normalized: %q", u.Email)
	}
}

func TestValidateUser_RejectsBadEmailAndStatus(t *testing.T) {
	u := domain.User{Name: "Ada", Surname: "Lovelace", Email: "invalid-email", Status: "frozen"}
	err := domain.ValidateUser(&u)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var ve domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(ve) != 2 {
		t.Fatalf("expected 2 field errors, got %d: %v", len(ve), ve)
	}
}

func TestValidateRoom_Price(t *testing.T) {
	r := domain.Room{HotelID: uuid.NewString(), Number: "101", Size: domain.RoomDouble, PriceCents: 0}
	if err := domain.ValidateRoom(r); err == nil {
		t.Fatal("expected error for non-positive price")
	}
	r.PriceCents = 15000
	if err := domain.ValidateRoom(r); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestValidateRoom_SizeEnum(t *testing.T) {
	r := domain.Room{HotelID: uuid.NewString(), Number: "101", Size: "penthouse", PriceCents: 100}
	if err := domain.ValidateRoom(r); err == nil {
		t.Fatal("expected error for unknown room size")
	}
}

func TestValidatePeriod_Ordering(t *testing.T) {
	start := day(1)
	if err := domain.ValidatePeriod(domain.BookingPeriod{StartDate: start, EndDate: start}); err == nil {
		t.Fatal("expected error when end == start")
	}
	if err := domain.ValidatePeriod(domain.BookingPeriod{StartDate: start, EndDate: start.Add(-time.Hour)}); err == nil {
		t.Fatal("expected error when end < start")
	}
	if err := domain.ValidatePeriod(period(1, 2)); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestValidateHotel_Timestamps(t *testing.T) {
	created := day(10)
	h := domain.Hotel{
		Name:           "Palace",
		PhoneNumber:    strp("+1-000"),
		Email:          strp("palace@example.com"),
		Address:        "1 Main Street",
		City:           "City",
		Country:        "Country",
		CreatedAt:      created,
		LastModifiedAt: created.Add(-time.Hour),
	}
	if err := domain.ValidateHotel(h); err == nil {
		t.Fatal("expected error when last_modified_at precedes created_at")
	}
	h.LastModifiedAt = created.Add(time.Hour)
	if err := domain.ValidateHotel(h); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestValidateBooking_CollectsPeriodErrors(t *testing.T) {
	b := domain.Booking{
		GuestID: uuid.NewString(),
		RoomID:  uuid.NewString(),
		Period:  domain.BookingPeriod{StartDate: day(5), EndDate: day(5)},
		Status:  domain.BookingPending,
	}
	err := domain.ValidateBooking(b)
	if err == nil {
		t.Fatal("expected validation error for degenerate period")
	}
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
}
