package handlers

import (
	"net/http"

	"github.com/placarjuarez/placar-api/services"
)

type ModalityHandler struct {
	modalityService services.ModalityService
}

func NewModalityHandler(modalityService services.ModalityService) *ModalityHandler {
	return &ModalityHandler{modalityService: modalityService}
}

func (h *ModalityHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var input services.ModalityInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	modality, err := h.modalityService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"modality": modality}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ModalityHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "modalityID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	modality, err := h.modalityService.Get(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"modality": modality}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ModalityHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	modalities, err := h.modalityService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"modalities": modalities}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ModalityHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "modalityID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.ModalityInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	modality, err := h.modalityService.Update(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"modality": modality}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ModalityHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "modalityID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.modalityService.Delete(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
