package repository

import "brcroadlines/models"

// ProfileRepository stores the company letterhead and bank details used by
// the PDF exporter.
type ProfileRepository interface {
	SaveProfile(p *models.CompanyProfile) error
	GetProfile() (*models.CompanyProfile, error)
}
