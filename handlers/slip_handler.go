package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"brcroadlines/models"
	"brcroadlines/numbering"
	"brcroadlines/repository"
)

type SlipHandler struct {
	Repo    repository.LoadingSlipRepository
	Numbers *numbering.Generator

	confirm *confirmer
}

func NewSlipHandler(repo repository.LoadingSlipRepository, numbers *numbering.Generator) *SlipHandler {
	return &SlipHandler{
		Repo:    repo,
		Numbers: numbers,
		confirm: newConfirmer(deleteWindow),
	}
}

// SaveSlip handles create and edit. A blank slip number on create is filled
// from the sequence generator; a manually-entered duplicate is rejected
// without consuming anything.
func (h *SlipHandler) SaveSlip(w http.ResponseWriter, r *http.Request) {
	var slip models.LoadingSlip
	if err := json.NewDecoder(r.Body).Decode(&slip); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if slip.Party == "" || slip.VehicleNo == "" || slip.Supplier == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Party, vehicle number, and supplier are required",
		})
		return
	}

	if slip.ID == 0 && slip.SlipNumber == "" {
		num, err := h.Numbers.Next(numbering.KindSlip)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, ApiResponse{
				Success: false,
				Message: "Failed to generate slip number: " + err.Error(),
			})
			return
		}
		slip.SlipNumber = num
	}

	if err := h.Repo.SaveSlip(&slip); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repository.ErrDuplicateNumber) {
			status = http.StatusBadRequest
		} else if errors.Is(err, repository.ErrNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, ApiResponse{
			Success: false,
			Message: "Failed to save loading slip: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Loading slip saved",
		Data:    slip,
	})
}

// GetAllSlips returns slips matching the query-string filters.
func (h *SlipHandler) GetAllSlips(w http.ResponseWriter, r *http.Request) {
	filters := make(map[string]interface{})
	q := r.URL.Query()
	for key, values := range q {
		if len(values) > 0 && values[0] != "" {
			if intVal, err := strconv.Atoi(values[0]); err == nil {
				filters[key] = intVal
			} else {
				filters[key] = values[0]
			}
		}
	}

	list, err := h.Repo.GetSlips(filters, false)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []*models.LoadingSlip{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GetSlipByID returns one slip by its path id.
func (h *SlipHandler) GetSlipByID(w http.ResponseWriter, r *http.Request, id string) {
	slipID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		http.Error(w, "invalid slip ID", http.StatusBadRequest)
		return
	}

	list, err := h.Repo.GetSlips(map[string]interface{}{"id": slipID}, true)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if len(list) == 0 {
		http.Error(w, "Loading slip not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list[0])
}

// DeleteSlip arms on the first call and deletes on the confirming call
// within the window.
func (h *SlipHandler) DeleteSlip(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		http.Error(w, "missing slip id", http.StatusBadRequest)
		return
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "invalid slip id", http.StatusBadRequest)
		return
	}

	if !h.confirm.Confirm("slip:" + idStr) {
		writeJSON(w, http.StatusOK, ApiResponse{
			Success: false,
			Message: "Confirm deletion by repeating the request",
		})
		return
	}

	if err := h.Repo.DeleteSlip(id); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repository.ErrNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, ApiResponse{
			Success: false,
			Message: "Failed to delete loading slip: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Loading slip deleted",
	})
}
