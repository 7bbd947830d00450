package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"staybook/internal/domain"
)

func (h *Handlers) createUser(w http.ResponseWriter, r *http.Request) {
	var in domain.User
	if !decodeBody(w, r, &in) {
		return
	}
	created, err := h.Cmd.CreateUser(r.Context(), in)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	u, err := h.Q.GetUser(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *Handlers) updateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var p domain.UserPatch
	if !decodeBody(w, r, &p) {
		return
	}
	if p.Empty() {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "patch must set at least one field")
		return
	}
	updated, err := h.Cmd.UpdateUser(r.Context(), id, p)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	if err := h.Cmd.DeleteUser(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
