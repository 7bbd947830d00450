package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"staybook/internal/app"
	"staybook/internal/domain"
)

type bookingRequest struct {
	GuestID   string    `json:"guest_id"`
	RoomID    string    `json:"room_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Status    string    `json:"status,omitempty"`
}

// bookingDecision is the workflow's answer to a booking request. On a denial
// BookingID is empty, Status is "denied" and ReasonForDeny names the first
// failed check.
type bookingDecision struct {
	BookingID     string          `json:"booking_id,omitempty"`
	Status        string          `json:"status"`
	ReasonForDeny string          `json:"reason_for_deny,omitempty"`
	Booking       *domain.Booking `json:"booking,omitempty"`
}

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	var in bookingRequest
	if !decodeBody(w, r, &in) {
		return
	}
	b, err := h.Bookings.Book(r.Context(), app.BookingInput{
		GuestID: in.GuestID,
		RoomID:  in.RoomID,
		Period:  domain.BookingPeriod{StartDate: in.StartDate, EndDate: in.EndDate},
		Status:  domain.BookingStatus(in.Status),
	})
	if err != nil {
		writeDenial(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, bookingDecision{
		BookingID: b.ID,
		Status:    string(b.Status),
		Booking:   b,
	})
}

// writeDenial renders a refused booking request. Workflow refusals carry the
// decision envelope; anything else falls through to the shared error mapping.
func writeDenial(w http.ResponseWriter, err error) {
	var status int
	var reason string
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status, reason = http.StatusNotFound, "room or guest does not exist"
	case errors.Is(err, domain.ErrDuplicateBooking):
		status, reason = http.StatusConflict, "duplicate booking"
	case errors.Is(err, domain.ErrRoomUnavailable):
		status, reason = http.StatusConflict, "room unavailable for the requested period"
	default:
		respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(bookingDecision{Status: "denied", ReasonForDeny: reason}); err != nil {
		log.Error().Err(err).Msg("write booking denial failed")
	}
}

func (h *Handlers) getBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	b, err := h.Q.GetBooking(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *Handlers) updateBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var in struct {
		Status domain.BookingStatus `json:"status"`
	}
	if !decodeBody(w, r, &in) {
		return
	}
	switch in.Status {
	case domain.BookingPending, domain.BookingConfirmed, domain.BookingCancelled:
	default:
		writeProblem(w, http.StatusBadRequest, "Bad Request", "status must be one of: pending, confirmed, cancelled")
		return
	}
	b, err := h.Bookings.Transition(r.Context(), id, in.Status)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *Handlers) deleteBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	if err := h.Bookings.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
