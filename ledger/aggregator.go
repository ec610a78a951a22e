// Package ledger folds the document collections into per-subject summaries
// and the dashboard totals. Everything here is a full recompute over the
// slices it is given; at back-office scale that beats maintaining
// incremental indexes.
package ledger

import (
	"time"

	"brcroadlines/models"
)

type SubjectType string

const (
	SubjectParty    SubjectType = "party"
	SubjectSupplier SubjectType = "supplier"
)

// Summary is the ledger line for one party or supplier.
type Summary struct {
	SubjectName        string        `json:"subject_name"`
	SubjectType        SubjectType   `json:"subject_type"`
	TotalDocuments     int           `json:"total_documents"`
	TotalEntries       int           `json:"total_entries"`
	OutstandingBalance models.Rupees `json:"outstanding_balance"`
}

// Aggregate computes the ledger summary for subjectName. For a party the
// documents are its bills and outstanding is the net of bills not yet
// received; for a supplier, its memos and the net of memos not yet paid.
// TotalEntries counts banking entries recorded against the subject's name.
func Aggregate(bills []*models.Bill, memos []*models.Memo, entries []*models.BankingEntry,
	subjectName string, subjectType SubjectType) Summary {

	sum := Summary{SubjectName: subjectName, SubjectType: subjectType}

	switch subjectType {
	case SubjectParty:
		for _, b := range bills {
			if b.Party != subjectName {
				continue
			}
			sum.TotalDocuments++
			if !b.IsReceived {
				sum.OutstandingBalance += b.NetAmount
			}
		}
	case SubjectSupplier:
		for _, m := range memos {
			if m.Supplier != subjectName {
				continue
			}
			sum.TotalDocuments++
			if !m.IsPaid {
				sum.OutstandingBalance += m.NetAmount
			}
		}
	}

	for _, e := range entries {
		if e.ReferenceName != nil && *e.ReferenceName == subjectName {
			sum.TotalEntries++
		}
	}

	return sum
}

// DashboardStats are the global figures shown on the landing page.
type DashboardStats struct {
	TotalProfit     models.Rupees `json:"total_profit"`
	PartyBalance    models.Rupees `json:"party_balance"`
	SupplierBalance models.Rupees `json:"supplier_balance"`
	MonthlyRevenue  models.Rupees `json:"monthly_revenue"`
}

// Dashboard computes the global aggregates. Profit is the sum of all memo
// commissions. Monthly revenue sums bill amounts dated in the calendar month
// of now (local time, not a rolling window).
func Dashboard(bills []*models.Bill, memos []*models.Memo, now time.Time) DashboardStats {
	var stats DashboardStats

	year, month, _ := now.Date()
	for _, b := range bills {
		if !b.IsReceived {
			stats.PartyBalance += b.NetAmount
		}
		by, bm, _ := b.Date.Date()
		if by == year && bm == month {
			stats.MonthlyRevenue += b.BillAmount
		}
	}

	for _, m := range memos {
		stats.TotalProfit += m.Commission
		if !m.IsPaid {
			stats.SupplierBalance += m.NetAmount
		}
	}

	return stats
}
