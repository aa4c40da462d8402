package handlers

import (
	"net/http"

	"github.com/placarjuarez/placar-api/services"
)

type DanceHandler struct {
	danceService services.DanceService
}

func NewDanceHandler(danceService services.DanceService) *DanceHandler {
	return &DanceHandler{danceService: danceService}
}

func (h *DanceHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var input services.DanceInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	dance, err := h.danceService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"dance": dance}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *DanceHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "danceID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	dance, err := h.danceService.Get(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"dance": dance}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *DanceHandler) ListByTournamentHandler(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	minPlacement, err := queryInt(r, "min_placement")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	maxPlacement, err := queryInt(r, "max_placement")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	dances, err := h.danceService.ListByTournament(r.Context(), tournamentID, minPlacement, maxPlacement)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"dances": dances}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *DanceHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "danceID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.DanceInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	dance, err := h.danceService.Update(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"dance": dance}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *DanceHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "danceID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.danceService.Delete(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
