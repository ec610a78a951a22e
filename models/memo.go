package models

import "time"

// Payment modes accepted on memo advances.
const (
	PaymentModeCash   = "cash"
	PaymentModeBank   = "bank"
	PaymentModeCheque = "cheque"
	PaymentModeOnline = "online"
)

// AdvancePayment is one entry of a memo's ordered advance list. Stored
// embedded (JSONB in Postgres, array in Mongo), never as its own table.
type AdvancePayment struct {
	Date      time.Time `json:"date" bson:"date"`
	Amount    Rupees    `json:"amount" bson:"amount"`
	Mode      string    `json:"mode" bson:"mode"`
	Reference *string   `json:"reference,omitempty" bson:"reference,omitempty"`
}

// Memo is the supplier-facing payment instruction for a trip. Commission and
// NetAmount are derived. LoadingSlipID is an advisory back-reference; memos
// may also be created standalone.
type Memo struct {
	ID              int64            `json:"id" bson:"_id,omitempty" db:"id"`
	MemoNumber      string           `json:"memo_number" bson:"memo_number" db:"memo_number"`
	LoadingSlipID   *int64           `json:"loading_slip_id,omitempty" bson:"loading_slip_id,omitempty" db:"loading_slip_id"`
	Date            time.Time        `json:"date" bson:"date" db:"date"`
	Supplier        string           `json:"supplier" bson:"supplier" db:"supplier"`
	Freight         Rupees           `json:"freight" bson:"freight" db:"freight"`
	Commission      Rupees           `json:"commission" bson:"commission" db:"commission"`
	Mamool          Rupees           `json:"mamool" bson:"mamool" db:"mamool"`
	Detention       Rupees           `json:"detention" bson:"detention" db:"detention"`
	Extra           Rupees           `json:"extra" bson:"extra" db:"extra"`
	RTO             Rupees           `json:"rto" bson:"rto" db:"rto"`
	NetAmount       Rupees           `json:"net_amount" bson:"net_amount" db:"net_amount"`
	AdvancePayments []AdvancePayment `json:"advance_payments" bson:"advance_payments" db:"advance_payments"`
	IsPaid          bool             `json:"is_paid" bson:"is_paid" db:"is_paid"`
	PaymentDate     *time.Time       `json:"payment_date,omitempty" bson:"payment_date,omitempty" db:"payment_date"`
	PaymentAmount   *Rupees          `json:"payment_amount,omitempty" bson:"payment_amount,omitempty" db:"payment_amount"`
	CreatedAt       time.Time        `json:"created_at" bson:"created_at" db:"created_at"`
	UpdatedAt       *time.Time       `json:"updated_at,omitempty" bson:"updated_at,omitempty" db:"updated_at"`
}
