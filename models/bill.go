package models

import "time"

// Bill is the party-facing receivable for a trip. NetAmount is derived.
// The pending -> received transition is one-way: marking received captures
// receipt_date and the net amount at that moment, and is never undone.
type Bill struct {
	ID            int64      `json:"id" bson:"_id,omitempty" db:"id"`
	BillNumber    string     `json:"bill_number" bson:"bill_number" db:"bill_number"`
	LoadingSlipID *int64     `json:"loading_slip_id,omitempty" bson:"loading_slip_id,omitempty" db:"loading_slip_id"`
	Date          time.Time  `json:"date" bson:"date" db:"date"`
	Party         string     `json:"party" bson:"party" db:"party"`
	BillAmount    Rupees     `json:"bill_amount" bson:"bill_amount" db:"bill_amount"`
	Mamool        Rupees     `json:"mamool" bson:"mamool" db:"mamool"`
	TDS           Rupees     `json:"tds" bson:"tds" db:"tds"`
	Penalties     Rupees     `json:"penalties" bson:"penalties" db:"penalties"`
	NetAmount     Rupees     `json:"net_amount" bson:"net_amount" db:"net_amount"`
	PODImage      *string    `json:"pod_image,omitempty" bson:"pod_image,omitempty" db:"pod_image"`
	IsReceived    bool       `json:"is_received" bson:"is_received" db:"is_received"`
	ReceiptDate   *time.Time `json:"receipt_date,omitempty" bson:"receipt_date,omitempty" db:"receipt_date"`
	ReceiptAmount *Rupees    `json:"receipt_amount,omitempty" bson:"receipt_amount,omitempty" db:"receipt_amount"`
	CreatedAt     time.Time  `json:"created_at" bson:"created_at" db:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty" db:"updated_at"`
}
