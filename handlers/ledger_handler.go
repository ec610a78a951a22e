package handlers

import (
	"net/http"
	"time"

	"brcroadlines/ledger"
	"brcroadlines/repository"
)

// LedgerHandler serves the per-subject ledger view and the dashboard totals.
// Both recompute from the full collections on every request.
type LedgerHandler struct {
	BillRepo    repository.BillRepository
	MemoRepo    repository.MemoRepository
	BankingRepo repository.BankingRepository
}

func NewLedgerHandler(bills repository.BillRepository, memos repository.MemoRepository, banking repository.BankingRepository) *LedgerHandler {
	return &LedgerHandler{BillRepo: bills, MemoRepo: memos, BankingRepo: banking}
}

// GetLedger returns the summary for one subject, selected by
// ?type=party|supplier&name=.
func (h *LedgerHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		http.Error(w, "missing subject name", http.StatusBadRequest)
		return
	}

	var subjectType ledger.SubjectType
	switch r.URL.Query().Get("type") {
	case "party":
		subjectType = ledger.SubjectParty
	case "supplier":
		subjectType = ledger.SubjectSupplier
	default:
		http.Error(w, "type must be party or supplier", http.StatusBadRequest)
		return
	}

	bills, err := h.BillRepo.GetBills(map[string]interface{}{}, false)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	memos, err := h.MemoRepo.GetMemos(map[string]interface{}{}, false)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	entries, err := h.BankingRepo.GetEntries(map[string]interface{}{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	summary := ledger.Aggregate(bills, memos, entries, name, subjectType)
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: summary})
}

// GetDashboard returns the landing-page totals.
func (h *LedgerHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	bills, err := h.BillRepo.GetBills(map[string]interface{}{}, false)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	memos, err := h.MemoRepo.GetMemos(map[string]interface{}{}, false)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	stats := ledger.Dashboard(bills, memos, time.Now())
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: stats})
}
