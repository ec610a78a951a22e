// Package derive computes the dependent monetary fields of the three
// document kinds from their raw inputs. Every function is pure over the raw
// fields and idempotent: re-running it on an already-derived record only
// rewrites the derived fields with the same values. Callers must apply the
// matching function on every save so the persisted record is always fully
// derived. Amounts are plain float64 arithmetic; negative results are valid
// and never clamped.
package derive

import (
	"brcroadlines/models"
)

// CommissionRate is the fixed cut taken on memo freight. Not configurable.
const CommissionRate = 0.06

// LoadingSlip fills balance and total_freight.
func LoadingSlip(s *models.LoadingSlip) {
	s.Balance = s.Freight - s.Advance
	s.TotalFreight = s.Freight + s.RTO
}

// Memo fills commission and net_amount.
func Memo(m *models.Memo) {
	m.Commission = m.Freight * CommissionRate
	m.NetAmount = m.Freight - m.Commission - m.Mamool + m.Detention + m.Extra + m.RTO
}

// Bill fills net_amount.
func Bill(b *models.Bill) {
	b.NetAmount = b.BillAmount - b.Mamool - b.TDS - b.Penalties
}

// MemoFromSlip builds a derived memo draft pre-filled from a loading slip:
// supplier, freight and rto carry over, deductions start at zero.
func MemoFromSlip(slip *models.LoadingSlip) *models.Memo {
	m := &models.Memo{
		LoadingSlipID:   &slip.ID,
		Date:            slip.Date,
		Supplier:        slip.Supplier,
		Freight:         slip.Freight,
		RTO:             slip.RTO,
		AdvancePayments: []models.AdvancePayment{},
	}
	Memo(m)
	return m
}

// BillFromSlip builds a derived bill draft pre-filled from a loading slip.
// The bill amount starts from the slip's total freight.
func BillFromSlip(slip *models.LoadingSlip) *models.Bill {
	b := &models.Bill{
		LoadingSlipID: &slip.ID,
		Date:          slip.Date,
		Party:         slip.Party,
		BillAmount:    slip.TotalFreight,
	}
	Bill(b)
	return b
}
