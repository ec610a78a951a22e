package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"brcroadlines/models"
	"brcroadlines/repository"
)

type BankingHandler struct {
	Repo repository.BankingRepository

	confirm *confirmer
}

func NewBankingHandler(repo repository.BankingRepository) *BankingHandler {
	return &BankingHandler{
		Repo:    repo,
		confirm: newConfirmer(deleteWindow),
	}
}

// CreateEntry records a new banking entry. Entries are immutable; there is
// no edit path.
func (h *BankingHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var entry models.BankingEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if entry.Type != models.EntryTypeCredit && entry.Type != models.EntryTypeDebit {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Entry type must be credit or debit",
		})
		return
	}
	if !entry.ValidCategory() {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Unknown entry category: " + entry.Category,
		})
		return
	}
	if entry.ReferencesDocument() && (entry.ReferenceName == nil || *entry.ReferenceName == "") {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Reference name is required for " + entry.Category + " entries",
		})
		return
	}

	if entry.Date.IsZero() {
		entry.Date = time.Now().UTC()
	}
	entry.CreatedAt = time.Now().UTC()

	if err := h.Repo.CreateEntry(&entry); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to record banking entry: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Banking entry recorded",
		Data:    entry,
	})
}

func (h *BankingHandler) GetEntries(w http.ResponseWriter, r *http.Request) {
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

	list, err := h.Repo.GetEntries(filters)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []*models.BankingEntry{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

func (h *BankingHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		http.Error(w, "missing entry id", http.StatusBadRequest)
		return
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "invalid entry id", http.StatusBadRequest)
		return
	}

	if !h.confirm.Confirm("banking:" + idStr) {
		writeJSON(w, http.StatusOK, ApiResponse{
			Success: false,
			Message: "Confirm deletion by repeating the request",
		})
		return
	}

	if err := h.Repo.DeleteEntry(id); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repository.ErrNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, ApiResponse{
			Success: false,
			Message: "Failed to delete banking entry: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Banking entry deleted"})
}
