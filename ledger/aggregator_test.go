package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"brcroadlines/models"
)

func strPtr(s string) *string { return &s }

func TestAggregatePartyOutstanding(t *testing.T) {
	bills := []*models.Bill{
		{Party: "ABC Transport Ltd", NetAmount: 103500},
		{Party: "ABC Transport Ltd", NetAmount: 50000, IsReceived: true},
		{Party: "XYZ Logistics", NetAmount: 20000},
	}
	entries := []*models.BankingEntry{
		{Category: models.CategoryBillAdvance, ReferenceName: strPtr("ABC Transport Ltd")},
		{Category: models.CategoryExpense},
	}

	sum := Aggregate(bills, nil, entries, "ABC Transport Ltd", SubjectParty)
	require.Equal(t, 2, sum.TotalDocuments)
	require.Equal(t, 1, sum.TotalEntries)
	require.Equal(t, models.Rupees(103500), sum.OutstandingBalance)
}

func TestAggregateSupplierOutstanding(t *testing.T) {
	memos := []*models.Memo{
		{Supplier: "Rajesh Transport", NetAmount: 100000},
		{Supplier: "Rajesh Transport", NetAmount: 80000, IsPaid: true},
		{Supplier: "Kumar Logistics", NetAmount: 60000},
	}

	sum := Aggregate(nil, memos, nil, "Rajesh Transport", SubjectSupplier)
	require.Equal(t, 2, sum.TotalDocuments)
	require.Equal(t, models.Rupees(100000), sum.OutstandingBalance)
}

func TestAggregateUnknownSubjectIsZero(t *testing.T) {
	sum := Aggregate(nil, nil, nil, "Nobody", SubjectParty)
	require.Zero(t, sum.TotalDocuments)
	require.Zero(t, sum.TotalEntries)
	require.Zero(t, sum.OutstandingBalance)
}

func TestDashboard(t *testing.T) {
	now := time.Date(2025, time.August, 16, 12, 0, 0, 0, time.Local)

	bills := []*models.Bill{
		{Party: "ABC", BillAmount: 105000, NetAmount: 103500, Date: now.AddDate(0, 0, -2)},
		{Party: "XYZ", BillAmount: 200000, NetAmount: 198000, Date: now.AddDate(0, -1, 0)},
		{Party: "XYZ", BillAmount: 90000, NetAmount: 88000, Date: now, IsReceived: true},
	}
	memos := []*models.Memo{
		{Supplier: "Rajesh", Commission: 6000, NetAmount: 100000},
		{Supplier: "Kumar", Commission: 3000, NetAmount: 50000, IsPaid: true},
	}

	stats := Dashboard(bills, memos, now)
	require.Equal(t, models.Rupees(9000), stats.TotalProfit)
	require.Equal(t, models.Rupees(301500), stats.PartyBalance)
	require.Equal(t, models.Rupees(100000), stats.SupplierBalance)
	// Bills from last month fall outside the calendar-month window.
	require.Equal(t, models.Rupees(195000), stats.MonthlyRevenue)
}
