package field

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ferdiebergado/riskapi/internal/db"
	"github.com/ferdiebergado/riskapi/internal/pkg/errs"
)

var _ Repository = (*SQLRepository)(nil)

type SQLRepository struct {
	db *sql.DB
}

func NewRepository(conn *sql.DB) *SQLRepository {
	return &SQLRepository{db: conn}
}

const QueryFieldListByRiskType = `
SELECT rtf_id, rt_id, rtf_meta FROM risk_type_fields
WHERE rt_id = $1
ORDER BY rtf_id`

func (r *SQLRepository) ListByRiskType(ctx context.Context, riskTypeID int64) ([]Field, error) {
	exec := db.ExecutorFromContext(ctx, r.db)
	rows, err := exec.QueryContext(ctx, QueryFieldListByRiskType, riskTypeID)
	if err != nil {
		return nil, fmt.Errorf("field repository: list fields of risk type %d: %w", riskTypeID, errs.FromDB(err))
	}
	defer rows.Close()

	fields := make([]Field, 0)
	for rows.Next() {
		var (
			f    Field
			meta []byte
		)
		if err := rows.Scan(&f.ID, &f.RiskTypeID, &meta); err != nil {
			return nil, fmt.Errorf("field repository: scan row: %w", errs.FromDB(err))
		}
		f.Metadata = meta
		fields = append(fields, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("field repository: iterate over field rows: %w", errs.FromDB(err))
	}

	return fields, nil
}

const QueryFieldCreate = `
INSERT INTO risk_type_fields (rt_id, rtf_meta)
VALUES ($1, $2)
RETURNING rtf_id, rt_id, rtf_meta`

func (r *SQLRepository) Create(ctx context.Context, params CreateParams) (Field, error) {
	exec := db.ExecutorFromContext(ctx, r.db)
	row := exec.QueryRowContext(ctx, QueryFieldCreate, params.RiskTypeID, string(params.Metadata))

	var (
		f    Field
		meta []byte
	)
	if err := row.Scan(&f.ID, &f.RiskTypeID, &meta); err != nil {
		return Field{}, fmt.Errorf("field repository: create field for risk type %d: %w", params.RiskTypeID, errs.FromDB(err))
	}
	f.Metadata = meta

	return f, nil
}

const QueryFieldFind = "SELECT rtf_id, rt_id, rtf_meta FROM risk_type_fields WHERE rtf_id = $1"

func (r *SQLRepository) Find(ctx context.Context, id int64) (Field, error) {
	exec := db.ExecutorFromContext(ctx, r.db)
	row := exec.QueryRowContext(ctx, QueryFieldFind, id)

	var (
		f    Field
		meta []byte
	)
	if err := row.Scan(&f.ID, &f.RiskTypeID, &meta); err != nil {
		return Field{}, fmt.Errorf("field repository: find field %d: %w", id, errs.FromDB(err))
	}
	f.Metadata = meta

	return f, nil
}

const QueryFieldUpdate = "UPDATE risk_type_fields SET rt_id = $1, rtf_meta = $2 WHERE rtf_id = $3"

func (r *SQLRepository) Update(ctx context.Context, params UpdateParams) error {
	exec := db.ExecutorFromContext(ctx, r.db)
	res, err := exec.ExecContext(ctx, QueryFieldUpdate, params.RiskTypeID, string(params.Metadata), params.ID)
	if err != nil {
		return fmt.Errorf("field repository: update field %d: %w", params.ID, errs.FromDB(err))
	}

	return checkAffected(res, "update", params.ID)
}

const QueryFieldDelete = "DELETE FROM risk_type_fields WHERE rtf_id = $1"

func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	exec := db.ExecutorFromContext(ctx, r.db)
	res, err := exec.ExecContext(ctx, QueryFieldDelete, id)
	if err != nil {
		return fmt.Errorf("field repository: delete field %d: %w", id, errs.FromDB(err))
	}

	return checkAffected(res, "delete", id)
}

func checkAffected(res sql.Result, op string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("field repository: %s field %d: rows affected: %w", op, id, err)
	}

	if n == 0 {
		return fmt.Errorf("field repository: %s field %d: %w", op, id, errs.ErrNotFound)
	}

	return nil
}
