package repository

import "brcroadlines/models"

// PartyRepository stores parties, created ad hoc from forms. Documents
// reference them by name only.
type PartyRepository interface {
	SaveParty(p *models.Party) error
	GetParties() ([]*models.Party, error)
	DeleteParty(id int64) error
}

// SupplierRepository stores suppliers, same shape as parties.
type SupplierRepository interface {
	SaveSupplier(s *models.Supplier) error
	GetSuppliers() ([]*models.Supplier, error)
	DeleteSupplier(id int64) error
}
