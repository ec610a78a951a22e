package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"brcroadlines/models"
	"brcroadlines/repository"
)

// ContactHandler serves the party and supplier name books. Both are flat
// lists created ad hoc from document forms.
type ContactHandler struct {
	Parties   repository.PartyRepository
	Suppliers repository.SupplierRepository
}

func NewContactHandler(parties repository.PartyRepository, suppliers repository.SupplierRepository) *ContactHandler {
	return &ContactHandler{Parties: parties, Suppliers: suppliers}
}

func (h *ContactHandler) SaveParty(w http.ResponseWriter, r *http.Request) {
	var party models.Party
	if err := json.NewDecoder(r.Body).Decode(&party); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}
	if party.Name == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Party name is required",
		})
		return
	}

	if err := h.Parties.SaveParty(&party); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to save party: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Message: "Party saved", Data: party})
}

func (h *ContactHandler) GetParties(w http.ResponseWriter, r *http.Request) {
	list, err := h.Parties.GetParties()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []*models.Party{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

func (h *ContactHandler) DeleteParty(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid party id", http.StatusBadRequest)
		return
	}

	if err := h.Parties.DeleteParty(id); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repository.ErrNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, ApiResponse{
			Success: false,
			Message: "Failed to delete party: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Party deleted"})
}

func (h *ContactHandler) SaveSupplier(w http.ResponseWriter, r *http.Request) {
	var supplier models.Supplier
	if err := json.NewDecoder(r.Body).Decode(&supplier); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}
	if supplier.Name == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Supplier name is required",
		})
		return
	}

	if err := h.Suppliers.SaveSupplier(&supplier); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to save supplier: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Message: "Supplier saved", Data: supplier})
}

func (h *ContactHandler) GetSuppliers(w http.ResponseWriter, r *http.Request) {
	list, err := h.Suppliers.GetSuppliers()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []*models.Supplier{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

func (h *ContactHandler) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid supplier id", http.StatusBadRequest)
		return
	}

	if err := h.Suppliers.DeleteSupplier(id); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repository.ErrNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, ApiResponse{
			Success: false,
			Message: "Failed to delete supplier: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Supplier deleted"})
}
