package repository

import (
	"database/sql"
	"time"

	"brcroadlines/models"
)

type PostgresPartyRepo struct {
	DB *sql.DB
}

func NewPostgresPartyRepo(db *sql.DB) *PostgresPartyRepo {
	return &PostgresPartyRepo{DB: db}
}

func (r *PostgresPartyRepo) SaveParty(p *models.Party) error {
	if p.ID == 0 {
		if p.CreatedAt.IsZero() {
			p.CreatedAt = time.Now().UTC()
		}
		return r.DB.QueryRow(`
			INSERT INTO party(name,address,contact,created_at)
			VALUES($1,$2,$3,$4)
			RETURNING id
		`, p.Name, p.Address, p.Contact, p.CreatedAt).Scan(&p.ID)
	}
	res, err := r.DB.Exec(`
		UPDATE party SET name=$1, address=$2, contact=$3 WHERE id=$4
	`, p.Name, p.Address, p.Contact, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresPartyRepo) GetParties() ([]*models.Party, error) {
	rows, err := r.DB.Query(`SELECT id, name, address, contact, created_at FROM party ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Party
	for rows.Next() {
		var p models.Party
		if err := rows.Scan(&p.ID, &p.Name, &p.Address, &p.Contact, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &p)
	}
	return result, rows.Err()
}

func (r *PostgresPartyRepo) DeleteParty(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM party WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

type PostgresSupplierRepo struct {
	DB *sql.DB
}

func NewPostgresSupplierRepo(db *sql.DB) *PostgresSupplierRepo {
	return &PostgresSupplierRepo{DB: db}
}

func (r *PostgresSupplierRepo) SaveSupplier(s *models.Supplier) error {
	if s.ID == 0 {
		if s.CreatedAt.IsZero() {
			s.CreatedAt = time.Now().UTC()
		}
		return r.DB.QueryRow(`
			INSERT INTO supplier(name,address,contact,created_at)
			VALUES($1,$2,$3,$4)
			RETURNING id
		`, s.Name, s.Address, s.Contact, s.CreatedAt).Scan(&s.ID)
	}
	res, err := r.DB.Exec(`
		UPDATE supplier SET name=$1, address=$2, contact=$3 WHERE id=$4
	`, s.Name, s.Address, s.Contact, s.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresSupplierRepo) GetSuppliers() ([]*models.Supplier, error) {
	rows, err := r.DB.Query(`SELECT id, name, address, contact, created_at FROM supplier ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Supplier
	for rows.Next() {
		var s models.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.Contact, &s.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &s)
	}
	return result, rows.Err()
}

func (r *PostgresSupplierRepo) DeleteSupplier(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM supplier WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
