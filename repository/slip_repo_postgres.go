package repository

import (
	"database/sql"
	"time"

	"brcroadlines/derive"
	"brcroadlines/models"
)

type PostgresSlipRepo struct {
	DB *sql.DB
}

func NewPostgresSlipRepo(db *sql.DB) *PostgresSlipRepo {
	return &PostgresSlipRepo{DB: db}
}

// SaveSlip inserts (ID == 0) or updates a loading slip. Derived amounts are
// recomputed before the write so a raw record can never be persisted.
func (r *PostgresSlipRepo) SaveSlip(slip *models.LoadingSlip) error {
	derive.LoadingSlip(slip)

	var exists bool
	err := r.DB.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM loading_slip WHERE slip_number=$1 AND id<>$2)
	`, slip.SlipNumber, slip.ID).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateNumber
	}

	if slip.ID == 0 {
		if slip.CreatedAt.IsZero() {
			slip.CreatedAt = time.Now().UTC()
		}
		return r.DB.QueryRow(`
			INSERT INTO loading_slip(
				slip_number,date,party,vehicle_no,from_location,to_location,
				dimension,weight,supplier,freight,advance,rto,balance,total_freight,created_at
			)
			VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
			RETURNING id
		`,
			slip.SlipNumber, slip.Date, slip.Party, slip.VehicleNo, slip.FromLocation, slip.ToLocation,
			slip.Dimension, slip.Weight, slip.Supplier, slip.Freight, slip.Advance, slip.RTO,
			slip.Balance, slip.TotalFreight, slip.CreatedAt,
		).Scan(&slip.ID)
	}

	now := time.Now().UTC()
	slip.UpdatedAt = &now
	res, err := r.DB.Exec(`
		UPDATE loading_slip SET
			slip_number=$1, date=$2, party=$3, vehicle_no=$4,
			from_location=$5, to_location=$6, dimension=$7, weight=$8,
			supplier=$9, freight=$10, advance=$11, rto=$12,
			balance=$13, total_freight=$14, updated_at=$15
		WHERE id=$16
	`,
		slip.SlipNumber, slip.Date, slip.Party, slip.VehicleNo,
		slip.FromLocation, slip.ToLocation, slip.Dimension, slip.Weight,
		slip.Supplier, slip.Freight, slip.Advance, slip.RTO,
		slip.Balance, slip.TotalFreight, slip.UpdatedAt, slip.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetSlips fetches slips matching the column filters; single=true stops at
// one record.
func (r *PostgresSlipRepo) GetSlips(filters map[string]interface{}, single bool) ([]*models.LoadingSlip, error) {
	query := `
		SELECT id, slip_number, date, party, vehicle_no, from_location, to_location,
		       dimension, weight, supplier, freight, advance, rto, balance, total_freight,
		       created_at, updated_at
		FROM loading_slip
	`

	where, args := buildWhere(filters, slipFilterColumns)
	query += where
	if !single {
		query += " ORDER BY created_at DESC"
	} else {
		query += " LIMIT 1"
	}

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.LoadingSlip
	for rows.Next() {
		var s models.LoadingSlip
		err := rows.Scan(
			&s.ID, &s.SlipNumber, &s.Date, &s.Party, &s.VehicleNo, &s.FromLocation, &s.ToLocation,
			&s.Dimension, &s.Weight, &s.Supplier, &s.Freight, &s.Advance, &s.RTO,
			&s.Balance, &s.TotalFreight, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, &s)
	}
	return result, rows.Err()
}

func (r *PostgresSlipRepo) DeleteSlip(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM loading_slip WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
