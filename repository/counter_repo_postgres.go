package repository

import "database/sql"

type PostgresCounterRepo struct {
	DB *sql.DB
}

func NewPostgresCounterRepo(db *sql.DB) *PostgresCounterRepo {
	return &PostgresCounterRepo{DB: db}
}

func (r *PostgresCounterRepo) GetLastNumber(kind string) (string, error) {
	var n string
	err := r.DB.QueryRow(`SELECT last_number FROM counter WHERE kind=$1`, kind).Scan(&n)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return n, err
}

func (r *PostgresCounterRepo) SetLastNumber(kind, number string) error {
	_, err := r.DB.Exec(`
		INSERT INTO counter(kind, last_number)
		VALUES($1, $2)
		ON CONFLICT(kind) DO UPDATE SET last_number = EXCLUDED.last_number
	`, kind, number)
	return err
}
