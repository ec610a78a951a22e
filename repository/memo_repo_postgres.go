package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"brcroadlines/derive"
	"brcroadlines/models"
)

type PostgresMemoRepo struct {
	DB *sql.DB
}

func NewPostgresMemoRepo(db *sql.DB) *PostgresMemoRepo {
	return &PostgresMemoRepo{DB: db}
}

// SaveMemo inserts (ID == 0) or updates a memo, recomputing commission and
// net amount first. Advance payments are stored as a JSONB column.
func (r *PostgresMemoRepo) SaveMemo(memo *models.Memo) error {
	derive.Memo(memo)

	var exists bool
	err := r.DB.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM memo WHERE memo_number=$1 AND id<>$2)
	`, memo.MemoNumber, memo.ID).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateNumber
	}

	if memo.AdvancePayments == nil {
		memo.AdvancePayments = []models.AdvancePayment{}
	}
	advancesJSON, err := json.Marshal(memo.AdvancePayments)
	if err != nil {
		return err
	}

	if memo.ID == 0 {
		if memo.CreatedAt.IsZero() {
			memo.CreatedAt = time.Now().UTC()
		}
		return r.DB.QueryRow(`
			INSERT INTO memo(
				memo_number,loading_slip_id,date,supplier,freight,commission,
				mamool,detention,extra,rto,net_amount,advance_payments,is_paid,created_at
			)
			VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
			RETURNING id
		`,
			memo.MemoNumber, memo.LoadingSlipID, memo.Date, memo.Supplier, memo.Freight, memo.Commission,
			memo.Mamool, memo.Detention, memo.Extra, memo.RTO, memo.NetAmount, advancesJSON,
			memo.IsPaid, memo.CreatedAt,
		).Scan(&memo.ID)
	}

	now := time.Now().UTC()
	memo.UpdatedAt = &now
	res, err := r.DB.Exec(`
		UPDATE memo SET
			memo_number=$1, loading_slip_id=$2, date=$3, supplier=$4,
			freight=$5, commission=$6, mamool=$7, detention=$8, extra=$9, rto=$10,
			net_amount=$11, advance_payments=$12, updated_at=$13
		WHERE id=$14
	`,
		memo.MemoNumber, memo.LoadingSlipID, memo.Date, memo.Supplier,
		memo.Freight, memo.Commission, memo.Mamool, memo.Detention, memo.Extra, memo.RTO,
		memo.NetAmount, advancesJSON, memo.UpdatedAt, memo.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresMemoRepo) GetMemos(filters map[string]interface{}, single bool) ([]*models.Memo, error) {
	query := `
		SELECT id, memo_number, loading_slip_id, date, supplier, freight, commission,
		       mamool, detention, extra, rto, net_amount, advance_payments,
		       is_paid, payment_date, payment_amount, created_at, updated_at
		FROM memo
	`

	where, args := buildWhere(filters, memoFilterColumns)
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

	var result []*models.Memo
	for rows.Next() {
		var m models.Memo
		var advancesJSON []byte
		err := rows.Scan(
			&m.ID, &m.MemoNumber, &m.LoadingSlipID, &m.Date, &m.Supplier, &m.Freight, &m.Commission,
			&m.Mamool, &m.Detention, &m.Extra, &m.RTO, &m.NetAmount, &advancesJSON,
			&m.IsPaid, &m.PaymentDate, &m.PaymentAmount, &m.CreatedAt, &m.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		m.AdvancePayments = []models.AdvancePayment{}
		if len(advancesJSON) > 0 {
			if err := json.Unmarshal(advancesJSON, &m.AdvancePayments); err != nil {
				return nil, err
			}
		}
		result = append(result, &m)
	}
	return result, rows.Err()
}

// MarkPaid flips is_paid once, capturing the net amount at that moment.
// A memo that is already paid is left untouched.
func (r *PostgresMemoRepo) MarkPaid(id int64, t time.Time) error {
	res, err := r.DB.Exec(`
		UPDATE memo
		SET is_paid=TRUE, payment_date=$1, payment_amount=net_amount, updated_at=$1
		WHERE id=$2 AND is_paid=FALSE
	`, t, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}

	var exists bool
	if err := r.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM memo WHERE id=$1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresMemoRepo) DeleteMemo(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM memo WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
