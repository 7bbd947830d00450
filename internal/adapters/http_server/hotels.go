package httpserver

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"staybook/internal/domain"
)

func (h *Handlers) createHotel(w http.ResponseWriter, r *http.Request) {
	var in domain.Hotel
	if !decodeBody(w, r, &in) {
		return
	}
	created, err := h.Cmd.CreateHotel(r.Context(), in)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if ls := r.URL.Query().Get("limit"); ls != "" {
		l, err := strconv.Atoi(ls)
		if err != nil || l <= 0 || l > 1000 {
			writeProblem(w, http.StatusBadRequest, "Bad Request", "limit must be an integer between 1 and 1000")
			return
		}
		limit = l
	}
	hotels, err := h.Q.ListHotels(r.Context(), limit)
	if err != nil {
		respondError(w, err)
		return
	}
	if hotels == nil {
		hotels = []domain.Hotel{}
	}
	writeJSON(w, http.StatusOK, hotels)
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	hotel, err := h.Q.GetHotel(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hotel)
}

func (h *Handlers) updateHotel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var p domain.HotelPatch
	if !decodeBody(w, r, &p) {
		return
	}
	if p.Empty() {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "patch must set at least one field")
		return
	}
	updated, err := h.Cmd.UpdateHotel(r.Context(), id, p)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) deleteHotel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	if err := h.Cmd.DeleteHotel(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) createRoom(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var in domain.Room
	if !decodeBody(w, r, &in) {
		return
	}
	in.HotelID = hotelID
	created, err := h.Cmd.CreateRoom(r.Context(), in)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) listRooms(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	rooms, err := h.Q.ListRooms(r.Context(), hotelID)
	if err != nil {
		respondError(w, err)
		return
	}
	if rooms == nil {
		rooms = []domain.Room{}
	}
	writeJSON(w, http.StatusOK, rooms)
}

func (h *Handlers) getRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	room, err := h.Q.GetRoom(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (h *Handlers) updateRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var p domain.RoomPatch
	if !decodeBody(w, r, &p) {
		return
	}
	if p.Empty() {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "patch must set at least one field")
		return
	}
	updated, err := h.Cmd.UpdateRoom(r.Context(), id, p)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) deleteRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	if err := h.Cmd.DeleteRoom(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
