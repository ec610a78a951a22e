package repository

import (
	"time"

	"brcroadlines/models"
)

// BillRepository stores party bills. MarkReceived is one-way: the first call
// stamps receipt_date and captures the net amount as receipt_amount; later
// calls are no-ops.
type BillRepository interface {
	SaveBill(bill *models.Bill) error
	GetBills(filters map[string]interface{}, single bool) ([]*models.Bill, error)
	MarkReceived(id int64, t time.Time) error
	UpdatePODImage(id int64, url string) error
	DeleteBill(id int64) error
}
