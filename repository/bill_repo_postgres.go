package repository

import (
	"database/sql"
	"time"

	"brcroadlines/derive"
	"brcroadlines/models"
)

type PostgresBillRepo struct {
	DB *sql.DB
}

func NewPostgresBillRepo(db *sql.DB) *PostgresBillRepo {
	return &PostgresBillRepo{DB: db}
}

// SaveBill inserts (ID == 0) or updates a bill, recomputing the net amount
// first.
func (r *PostgresBillRepo) SaveBill(bill *models.Bill) error {
	derive.Bill(bill)

	var exists bool
	err := r.DB.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM bill WHERE bill_number=$1 AND id<>$2)
	`, bill.BillNumber, bill.ID).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateNumber
	}

	if bill.ID == 0 {
		if bill.CreatedAt.IsZero() {
			bill.CreatedAt = time.Now().UTC()
		}
		return r.DB.QueryRow(`
			INSERT INTO bill(
				bill_number,loading_slip_id,date,party,bill_amount,mamool,tds,penalties,
				net_amount,pod_image,is_received,created_at
			)
			VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
			RETURNING id
		`,
			bill.BillNumber, bill.LoadingSlipID, bill.Date, bill.Party, bill.BillAmount,
			bill.Mamool, bill.TDS, bill.Penalties, bill.NetAmount, bill.PODImage,
			bill.IsReceived, bill.CreatedAt,
		).Scan(&bill.ID)
	}

	now := time.Now().UTC()
	bill.UpdatedAt = &now
	res, err := r.DB.Exec(`
		UPDATE bill SET
			bill_number=$1, loading_slip_id=$2, date=$3, party=$4,
			bill_amount=$5, mamool=$6, tds=$7, penalties=$8, net_amount=$9,
			updated_at=$10
		WHERE id=$11
	`,
		bill.BillNumber, bill.LoadingSlipID, bill.Date, bill.Party,
		bill.BillAmount, bill.Mamool, bill.TDS, bill.Penalties, bill.NetAmount,
		bill.UpdatedAt, bill.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresBillRepo) GetBills(filters map[string]interface{}, single bool) ([]*models.Bill, error) {
	query := `
		SELECT id, bill_number, loading_slip_id, date, party, bill_amount, mamool, tds,
		       penalties, net_amount, pod_image, is_received, receipt_date, receipt_amount,
		       created_at, updated_at
		FROM bill
	`

	where, args := buildWhere(filters, billFilterColumns)
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

	var result []*models.Bill
	for rows.Next() {
		var b models.Bill
		err := rows.Scan(
			&b.ID, &b.BillNumber, &b.LoadingSlipID, &b.Date, &b.Party, &b.BillAmount,
			&b.Mamool, &b.TDS, &b.Penalties, &b.NetAmount, &b.PODImage,
			&b.IsReceived, &b.ReceiptDate, &b.ReceiptAmount, &b.CreatedAt, &b.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, &b)
	}
	return result, rows.Err()
}

// MarkReceived flips is_received once, capturing the current net amount as
// the receipt amount. An already-received bill is left untouched.
func (r *PostgresBillRepo) MarkReceived(id int64, t time.Time) error {
	res, err := r.DB.Exec(`
		UPDATE bill
		SET is_received=TRUE, receipt_date=$1, receipt_amount=net_amount, updated_at=$1
		WHERE id=$2 AND is_received=FALSE
	`, t, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}

	var exists bool
	if err := r.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM bill WHERE id=$1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresBillRepo) UpdatePODImage(id int64, url string) error {
	res, err := r.DB.Exec(`UPDATE bill SET pod_image=$1, updated_at=$2 WHERE id=$3`,
		url, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresBillRepo) DeleteBill(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM bill WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
