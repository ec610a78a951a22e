package models

import "time"

const (
	EntryTypeCredit = "credit"
	EntryTypeDebit  = "debit"
)

const (
	CategoryBillAdvance = "bill_advance"
	CategoryBillPayment = "bill_payment"
	CategoryMemoAdvance = "memo_advance"
	CategoryMemoPayment = "memo_payment"
	CategoryExpense     = "expense"
	CategoryOther       = "other"
)

// BankingEntry records a bank credit/debit. Entries are immutable once
// created; the only mutation is deletion.
type BankingEntry struct {
	ID            int64     `json:"id" bson:"_id,omitempty" db:"id"`
	Type          string    `json:"type" bson:"type" db:"type"`
	Category      string    `json:"category" bson:"category" db:"category"`
	Amount        Rupees    `json:"amount" bson:"amount" db:"amount"`
	Date          time.Time `json:"date" bson:"date" db:"date"`
	ReferenceID   *string   `json:"reference_id,omitempty" bson:"reference_id,omitempty" db:"reference_id"`
	ReferenceName *string   `json:"reference_name,omitempty" bson:"reference_name,omitempty" db:"reference_name"`
	Narration     string    `json:"narration" bson:"narration" db:"narration"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}

// ReferencesDocument reports whether the category implies a bill or memo
// reference, in which case reference fields are required at creation.
func (e *BankingEntry) ReferencesDocument() bool {
	switch e.Category {
	case CategoryBillAdvance, CategoryBillPayment, CategoryMemoAdvance, CategoryMemoPayment:
		return true
	}
	return false
}

// ValidCategory reports whether the category is one of the known values.
func (e *BankingEntry) ValidCategory() bool {
	switch e.Category {
	case CategoryBillAdvance, CategoryBillPayment, CategoryMemoAdvance,
		CategoryMemoPayment, CategoryExpense, CategoryOther:
		return true
	}
	return false
}
