package handlers

import (
	"net/http"

	"github.com/placarjuarez/placar-api/services"
)

type ExtraHandler struct {
	extraService services.ExtraService
}

func NewExtraHandler(extraService services.ExtraService) *ExtraHandler {
	return &ExtraHandler{extraService: extraService}
}

func (h *ExtraHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var input services.ExtraInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	extra, err := h.extraService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"extra": extra}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ExtraHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "extraID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	extra, err := h.extraService.Get(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"extra": extra}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ExtraHandler) ListByTournamentHandler(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	extras, err := h.extraService.ListByTournament(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"extras": extras}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ExtraHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "extraID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.ExtraInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	extra, err := h.extraService.Update(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"extra": extra}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ExtraHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "extraID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.extraService.Delete(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
