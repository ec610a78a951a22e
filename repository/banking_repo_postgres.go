package repository

import (
	"database/sql"
	"time"

	"brcroadlines/models"
)

type PostgresBankingRepo struct {
	DB *sql.DB
}

func NewPostgresBankingRepo(db *sql.DB) *PostgresBankingRepo {
	return &PostgresBankingRepo{DB: db}
}

func (r *PostgresBankingRepo) CreateEntry(entry *models.BankingEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	return r.DB.QueryRow(`
		INSERT INTO banking_entry(type,category,amount,date,reference_id,reference_name,narration,created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id
	`,
		entry.Type, entry.Category, entry.Amount, entry.Date,
		entry.ReferenceID, entry.ReferenceName, entry.Narration, entry.CreatedAt,
	).Scan(&entry.ID)
}

func (r *PostgresBankingRepo) GetEntries(filters map[string]interface{}) ([]*models.BankingEntry, error) {
	query := `
		SELECT id, type, category, amount, date, reference_id, reference_name, narration, created_at
		FROM banking_entry
	`

	where, args := buildWhere(filters, bankingFilterColumns)
	query += where
	query += " ORDER BY date DESC, id DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.BankingEntry
	for rows.Next() {
		var e models.BankingEntry
		err := rows.Scan(
			&e.ID, &e.Type, &e.Category, &e.Amount, &e.Date,
			&e.ReferenceID, &e.ReferenceName, &e.Narration, &e.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, &e)
	}
	return result, rows.Err()
}

func (r *PostgresBankingRepo) DeleteEntry(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM banking_entry WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
