package models

import "time"

type MobileEntry struct {
	Number string `json:"number" bson:"number" db:"number"`
	Label  string `json:"label" bson:"label" db:"label"`
}

// CompanyProfile holds the letterhead and bank details printed on exported
// PDFs. A single row/document; saving with an ID updates in place.
type CompanyProfile struct {
	ID            int64         `json:"id" bson:"_id,omitempty" db:"id"`
	CompanyName   string        `json:"company_name" bson:"company_name" db:"company_name"`
	Address       string        `json:"address" bson:"address" db:"address"`
	City          string        `json:"city" bson:"city" db:"city"`
	State         string        `json:"state" bson:"state" db:"state"`
	Pincode       string        `json:"pincode" bson:"pincode" db:"pincode"`
	GSTIN         string        `json:"gstin" bson:"gstin" db:"gstin"`
	PAN           string        `json:"pan" bson:"pan" db:"pan"`
	Mobile        []MobileEntry `json:"mobile" bson:"mobile" db:"mobile"`
	BankName      string        `json:"bank_name" bson:"bank_name" db:"bank_name"`
	AccountNumber string        `json:"account_number" bson:"account_number" db:"account_number"`
	IFSCCode      string        `json:"ifsc_code" bson:"ifsc_code" db:"ifsc_code"`
	Footnote      string        `json:"footnote" bson:"footnote" db:"footnote"`
	CreatedAt     time.Time     `json:"created_at" bson:"created_at" db:"created_at"`
}
