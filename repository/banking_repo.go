package repository

import "brcroadlines/models"

// BankingRepository stores banking entries. Entries are immutable once
// created; there is no update operation.
type BankingRepository interface {
	CreateEntry(entry *models.BankingEntry) error
	GetEntries(filters map[string]interface{}) ([]*models.BankingEntry, error)
	DeleteEntry(id int64) error
}
