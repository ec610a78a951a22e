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
	"brcroadlines/utils"
)

type BillHandler struct {
	Repo     repository.BillRepository
	SlipRepo repository.LoadingSlipRepository
	Numbers  *numbering.Generator

	confirm *confirmer
}

func NewBillHandler(repo repository.BillRepository, slipRepo repository.LoadingSlipRepository, numbers *numbering.Generator) *BillHandler {
	return &BillHandler{
		Repo:     repo,
		SlipRepo: slipRepo,
		Numbers:  numbers,
		confirm:  newConfirmer(deleteWindow),
	}
}

// SaveBill handles create and edit. Bills may reference a loading slip or
// stand alone.
func (h *BillHandler) SaveBill(w http.ResponseWriter, r *http.Request) {
	var bill models.Bill
	if err := json.NewDecoder(r.Body).Decode(&bill); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if bill.Party == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Party is required",
		})
		return
	}

	if bill.ID == 0 && bill.BillNumber == "" {
		num, err := h.Numbers.Next(numbering.KindBill)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, ApiResponse{
				Success: false,
				Message: "Failed to generate bill number: " + err.Error(),
			})
			return
		}
		bill.BillNumber = num
	}

	if err := h.Repo.SaveBill(&bill); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repository.ErrDuplicateNumber) {
			status = http.StatusBadRequest
		} else if errors.Is(err, repository.ErrNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, ApiResponse{
			Success: false,
			Message: "Failed to save bill: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Bill saved",
		Data:    bill,
	})
}

// FromSlip returns a derived bill draft pre-filled from a loading slip.
func (h *BillHandler) FromSlip(w http.ResponseWriter, r *http.Request) {
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

	draft := derive.BillFromSlip(slips[0])
	num, err := h.Numbers.Next(numbering.KindBill)
	if err != nil {
		http.Error(w, "failed to generate bill number: "+err.Error(), http.StatusInternalServerError)
		return
	}
	draft.BillNumber = num

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: draft})
}

func (h *BillHandler) GetAllBills(w http.ResponseWriter, r *http.Request) {
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

	list, err := h.Repo.GetBills(filters, false)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []*models.Bill{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// MarkReceived flips the one-way received flag, capturing the net amount as
// the receipt amount.
func (h *BillHandler) MarkReceived(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "invalid bill id", http.StatusBadRequest)
		return
	}

	if err := h.Repo.MarkReceived(id, time.Now().UTC()); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repository.ErrNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, ApiResponse{
			Success: false,
			Message: "Failed to mark bill received: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Bill marked received"})
}

// UploadPOD accepts a multipart POD image, normalizes it and stores it in
// R2, then records the public URL on the bill.
func (h *BillHandler) UploadPOD(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "invalid bill id", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("pod")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "POD image file is required",
		})
		return
	}
	defer file.Close()

	imgBytes, err := utils.NormalizePODImage(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Could not read POD image: " + err.Error(),
		})
		return
	}

	url, err := utils.UploadToR2(imgBytes, header.Filename, "image/jpeg")
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to upload POD image: " + err.Error(),
		})
		return
	}

	if err := h.Repo.UpdatePODImage(id, url); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repository.ErrNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, ApiResponse{
			Success: false,
			Message: "Failed to attach POD image: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "POD image attached",
		Data:    map[string]string{"pod_image": url},
	})
}

func (h *BillHandler) DeleteBill(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		http.Error(w, "missing bill id", http.StatusBadRequest)
		return
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "invalid bill id", http.StatusBadRequest)
		return
	}

	if !h.confirm.Confirm("bill:" + idStr) {
		writeJSON(w, http.StatusOK, ApiResponse{
			Success: false,
			Message: "Confirm deletion by repeating the request",
		})
		return
	}

	if err := h.Repo.DeleteBill(id); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repository.ErrNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, ApiResponse{
			Success: false,
			Message: "Failed to delete bill: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Bill deleted"})
}
