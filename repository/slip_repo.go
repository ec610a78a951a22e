package repository

import "brcroadlines/models"

// LoadingSlipRepository stores loading slips. Save handles both create
// (ID == 0) and update, re-derives the dependent amounts, and enforces
// slip-number uniqueness excluding the record being edited.
type LoadingSlipRepository interface {
	SaveSlip(slip *models.LoadingSlip) error
	GetSlips(filters map[string]interface{}, single bool) ([]*models.LoadingSlip, error)
	DeleteSlip(id int64) error
}
