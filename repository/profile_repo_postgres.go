package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"brcroadlines/models"
)

type PostgresProfileRepo struct {
	DB *sql.DB
}

func NewPostgresProfileRepo(db *sql.DB) *PostgresProfileRepo {
	return &PostgresProfileRepo{DB: db}
}

// SaveProfile inserts or updates the company profile. Mobile entries are
// stored as a JSONB column.
func (r *PostgresProfileRepo) SaveProfile(p *models.CompanyProfile) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	mobileJSON, err := json.Marshal(p.Mobile)
	if err != nil {
		return err
	}

	if p.ID > 0 {
		_, err = r.DB.Exec(`
			UPDATE company_profile
			SET company_name=$1, address=$2, city=$3, state=$4, pincode=$5,
				gstin=$6, pan=$7, mobile=$8, bank_name=$9, account_number=$10,
				ifsc_code=$11, footnote=$12
			WHERE id=$13
		`, p.CompanyName, p.Address, p.City, p.State, p.Pincode,
			p.GSTIN, p.PAN, mobileJSON, p.BankName, p.AccountNumber,
			p.IFSCCode, p.Footnote, p.ID)
		return err
	}

	return r.DB.QueryRow(`
		INSERT INTO company_profile
		(company_name, address, city, state, pincode, gstin, pan, mobile,
		 bank_name, account_number, ifsc_code, footnote, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		RETURNING id
	`, p.CompanyName, p.Address, p.City, p.State, p.Pincode, p.GSTIN, p.PAN,
		mobileJSON, p.BankName, p.AccountNumber, p.IFSCCode, p.Footnote, p.CreatedAt,
	).Scan(&p.ID)
}

// GetProfile fetches the latest saved profile, nil when none exists.
func (r *PostgresProfileRepo) GetProfile() (*models.CompanyProfile, error) {
	p := &models.CompanyProfile{}
	var mobileJSON []byte

	err := r.DB.QueryRow(`
		SELECT id, company_name, address, city, state, pincode, gstin, pan, mobile,
		       bank_name, account_number, ifsc_code, footnote, created_at
		FROM company_profile
		ORDER BY id DESC LIMIT 1
	`).Scan(&p.ID, &p.CompanyName, &p.Address, &p.City, &p.State, &p.Pincode,
		&p.GSTIN, &p.PAN, &mobileJSON, &p.BankName, &p.AccountNumber,
		&p.IFSCCode, &p.Footnote, &p.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if len(mobileJSON) > 0 {
		if err := json.Unmarshal(mobileJSON, &p.Mobile); err != nil {
			return nil, err
		}
	}
	return p, nil
}
