package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"brcroadlines/derive"
	"brcroadlines/models"
	"brcroadlines/numbering"
	"brcroadlines/repository"
)

type MemoHandler struct {
	Repo     repository.MemoRepository
	SlipRepo repository.LoadingSlipRepository
	Numbers  *numbering.Generator

	confirm *confirmer
}

func NewMemoHandler(repo repository.MemoRepository, slipRepo repository.LoadingSlipRepository, numbers *numbering.Generator) *MemoHandler {
	return &MemoHandler{
		Repo:     repo,
		SlipRepo: slipRepo,
		Numbers:  numbers,
		confirm:  newConfirmer(deleteWindow),
	}
}

// SaveMemo handles create and edit. Memos may reference a loading slip or
// stand alone.
func (h *MemoHandler) SaveMemo(w http.ResponseWriter, r *http.Request) {
	var memo models.Memo
	if err := json.NewDecoder(r.Body).Decode(&memo); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if memo.Supplier == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Supplier is required",
		})
		return
	}

	if memo.ID == 0 && memo.MemoNumber == "" {
		num, err := h.Numbers.Next(numbering.KindMemo)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, ApiResponse{
				Success: false,
				Message: "Failed to generate memo number: " + err.Error(),
			})
			return
		}
		memo.MemoNumber = num
	}

	if err := h.Repo.SaveMemo(&memo); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repository.ErrDuplicateNumber) {
			status = http.StatusBadRequest
		} else if errors.Is(err, repository.ErrNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, ApiResponse{
			Success: false,
			Message: "Failed to save memo: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Memo saved",
		Data:    memo,
	})
}

// FromSlip returns a derived memo draft pre-filled from a loading slip,
// numbered and ready for the form.
func (h *MemoHandler) FromSlip(w http.ResponseWriter, r *http.Request) {
	slipIDStr := r.URL.Query().Get("slip_id")
	slipID, err := strconv.ParseInt(slipIDStr, 10, 64)
	if err != nil {
		http.Error(w, "invalid slip_id", http.StatusBadRequest)
		return
	}

	slips, err := h.SlipRepo.GetSlips(map[string]interface{}{"id": slipID}, true)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if len(slips) == 0 {
		http.Error(w, "Loading slip not found", http.StatusNotFound)
		return
	}

	draft := derive.MemoFromSlip(slips[0])
	num, err := h.Numbers.Next(numbering.KindMemo)
	if err != nil {
		http.Error(w, "failed to generate memo number: "+err.Error(), http.StatusInternalServerError)
		return
	}
	draft.MemoNumber = num

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: draft})
}

func (h *MemoHandler) GetAllMemos(w http.ResponseWriter, r *http.Request) {
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

	list, err := h.Repo.GetMemos(filters, false)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []*models.Memo{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// MarkPaid flips the one-way paid flag.
func (h *MemoHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "invalid memo id", http.StatusBadRequest)
		return
	}

	if err := h.Repo.MarkPaid(id, time.Now().UTC()); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repository.ErrNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, ApiResponse{
			Success: false,
			Message: "Failed to mark memo paid: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Memo marked paid"})
}

func (h *MemoHandler) DeleteMemo(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		http.Error(w, "missing memo id", http.StatusBadRequest)
		return
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "invalid memo id", http.StatusBadRequest)
		return
	}

	if !h.confirm.Confirm("memo:" + idStr) {
		writeJSON(w, http.StatusOK, ApiResponse{
			Success: false,
			Message: "Confirm deletion by repeating the request",
		})
		return
	}

	if err := h.Repo.DeleteMemo(id); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repository.ErrNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, ApiResponse{
			Success: false,
			Message: "Failed to delete memo: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Memo deleted"})
}
