package repository

import (
	"time"

	"brcroadlines/models"
)

// MemoRepository stores supplier memos. MarkPaid is one-way: the first call
// stamps payment_date and captures the net amount; later calls are no-ops.
type MemoRepository interface {
	SaveMemo(memo *models.Memo) error
	GetMemos(filters map[string]interface{}, single bool) ([]*models.Memo, error)
	MarkPaid(id int64, t time.Time) error
	DeleteMemo(id int64) error
}
