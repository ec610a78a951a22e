package derive

import (
	"testing"

	"github.com/stretchr/testify/require"

	"brcroadlines/models"
)

func TestLoadingSlipDerivation(t *testing.T) {
	s := &models.LoadingSlip{Freight: 100000, Advance: 20000, RTO: 5000}
	LoadingSlip(s)
	require.Equal(t, models.Rupees(80000), s.Balance)
	require.Equal(t, models.Rupees(105000), s.TotalFreight)
}

func TestLoadingSlipNegativeBalance(t *testing.T) {
	s := &models.LoadingSlip{Freight: 10000, Advance: 15000}
	LoadingSlip(s)
	require.Equal(t, models.Rupees(-5000), s.Balance)
}

func TestMemoDerivation(t *testing.T) {
	m := &models.Memo{Freight: 100000, Mamool: 1000, Detention: 2000, Extra: 0, RTO: 5000}
	Memo(m)
	require.Equal(t, models.Rupees(6000), m.Commission)
	require.Equal(t, models.Rupees(100000), m.NetAmount)
}

func TestBillDerivation(t *testing.T) {
	b := &models.Bill{BillAmount: 105000, Mamool: 500, TDS: 1000, Penalties: 0}
	Bill(b)
	require.Equal(t, models.Rupees(103500), b.NetAmount)
}

func TestIdempotence(t *testing.T) {
	s := &models.LoadingSlip{Freight: 42000, Advance: 7000, RTO: 1500}
	LoadingSlip(s)
	first := *s
	LoadingSlip(s)
	require.Equal(t, first, *s)

	m := &models.Memo{Freight: 42000, Mamool: 300, Detention: 0, Extra: 250, RTO: 1500}
	Memo(m)
	firstMemo := *m
	Memo(m)
	require.Equal(t, firstMemo, *m)

	b := &models.Bill{BillAmount: 43500, Mamool: 100, TDS: 435, Penalties: 50}
	Bill(b)
	firstBill := *b
	Bill(b)
	require.Equal(t, firstBill, *b)
}

func TestMemoFromSlip(t *testing.T) {
	slip := &models.LoadingSlip{ID: 7, Supplier: "Rajesh Transport", Freight: 100000, Advance: 20000, RTO: 5000}
	LoadingSlip(slip)

	m := MemoFromSlip(slip)
	require.NotNil(t, m.LoadingSlipID)
	require.Equal(t, int64(7), *m.LoadingSlipID)
	require.Equal(t, "Rajesh Transport", m.Supplier)
	require.Equal(t, models.Rupees(6000), m.Commission)
	require.Equal(t, models.Rupees(99000), m.NetAmount)
}

func TestBillFromSlip(t *testing.T) {
	slip := &models.LoadingSlip{ID: 7, Party: "ABC Transport Ltd", Freight: 100000, RTO: 5000}
	LoadingSlip(slip)

	b := BillFromSlip(slip)
	require.NotNil(t, b.LoadingSlipID)
	require.Equal(t, "ABC Transport Ltd", b.Party)
	require.Equal(t, models.Rupees(105000), b.BillAmount)
	require.Equal(t, models.Rupees(105000), b.NetAmount)
}
