package risktype

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ferdiebergado/riskapi/internal/db"
	"github.com/ferdiebergado/riskapi/internal/field"
	"github.com/ferdiebergado/riskapi/internal/model"
	"github.com/ferdiebergado/riskapi/internal/pkg/errs"
)

var _ Repository = (*SQLRepository)(nil)

type SQLRepository struct {
	db *sql.DB
}

func NewRepository(conn *sql.DB) *SQLRepository {
	return &SQLRepository{db: conn}
}

const QueryRiskTypeList = `
SELECT rt.rt_id, rt.rt_meta, f.rtf_id, f.rtf_meta
FROM risk_types rt
LEFT JOIN risk_type_fields f ON f.rt_id = rt.rt_id
ORDER BY rt.rt_id, f.rtf_id`

// List returns every risk type with its fields in one round trip.
func (r *SQLRepository) List(ctx context.Context) ([]RiskType, error) {
	exec := db.ExecutorFromContext(ctx, r.db)
	rows, err := exec.QueryContext(ctx, QueryRiskTypeList)
	if err != nil {
		return nil, fmt.Errorf("risk type repository: list risk types: %w", errs.FromDB(err))
	}
	defer rows.Close()

	riskTypes, err := collect(rows)
	if err != nil {
		return nil, fmt.Errorf("risk type repository: list risk types: %w", err)
	}

	return riskTypes, nil
}

const QueryRiskTypeFind = `
SELECT rt.rt_id, rt.rt_meta, f.rtf_id, f.rtf_meta
FROM risk_types rt
LEFT JOIN risk_type_fields f ON f.rt_id = rt.rt_id
WHERE rt.rt_id = $1
ORDER BY f.rtf_id`

func (r *SQLRepository) Find(ctx context.Context, id int64) (RiskType, error) {
	exec := db.ExecutorFromContext(ctx, r.db)
	rows, err := exec.QueryContext(ctx, QueryRiskTypeFind, id)
	if err != nil {
		return RiskType{}, fmt.Errorf("risk type repository: find risk type %d: %w", id, errs.FromDB(err))
	}
	defer rows.Close()

	riskTypes, err := collect(rows)
	if err != nil {
		return RiskType{}, fmt.Errorf("risk type repository: find risk type %d: %w", id, err)
	}

	if len(riskTypes) == 0 {
		return RiskType{}, fmt.Errorf("risk type repository: find risk type %d: %w", id, errs.ErrNotFound)
	}

	return riskTypes[0], nil
}

// collect folds joined rows ordered by rt_id into risk types with nested fields.
func collect(rows *sql.Rows) ([]RiskType, error) {
	riskTypes := make([]RiskType, 0)
	for rows.Next() {
		var (
			rtID      int64
			rtMeta    []byte
			fieldID   sql.NullInt64
			fieldMeta []byte
		)
		if err := rows.Scan(&rtID, &rtMeta, &fieldID, &fieldMeta); err != nil {
			return nil, fmt.Errorf("scan row: %w", errs.FromDB(err))
		}

		last := len(riskTypes) - 1
		if last < 0 || riskTypes[last].ID != rtID {
			riskTypes = append(riskTypes, RiskType{
				Model:  model.Model{ID: rtID, Metadata: rtMeta},
				Fields: make([]field.Field, 0),
			})
			last++
		}

		if fieldID.Valid {
			riskTypes[last].Fields = append(riskTypes[last].Fields, field.Field{
				Model:      model.Model{ID: fieldID.Int64, Metadata: fieldMeta},
				RiskTypeID: rtID,
			})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over risk type rows: %w", errs.FromDB(err))
	}

	return riskTypes, nil
}

const QueryRiskTypeCreate = "INSERT INTO risk_types (rt_meta) VALUES ($1) RETURNING rt_id, rt_meta"

func (r *SQLRepository) Create(ctx context.Context, meta json.RawMessage) (RiskType, error) {
	exec := db.ExecutorFromContext(ctx, r.db)
	row := exec.QueryRowContext(ctx, QueryRiskTypeCreate, string(meta))

	var (
		id     int64
		stored []byte
	)
	if err := row.Scan(&id, &stored); err != nil {
		return RiskType{}, fmt.Errorf("risk type repository: create risk type: %w", errs.FromDB(err))
	}

	return RiskType{
		Model:  model.Model{ID: id, Metadata: stored},
		Fields: make([]field.Field, 0),
	}, nil
}

const QueryRiskTypeUpdate = "UPDATE risk_types SET rt_meta = $1 WHERE rt_id = $2"

func (r *SQLRepository) Update(ctx context.Context, id int64, meta json.RawMessage) error {
	exec := db.ExecutorFromContext(ctx, r.db)
	res, err := exec.ExecContext(ctx, QueryRiskTypeUpdate, string(meta), id)
	if err != nil {
		return fmt.Errorf("risk type repository: update risk type %d: %w", id, errs.FromDB(err))
	}

	return checkAffected(res, "update", id)
}

// QueryRiskTypeDelete relies on ON DELETE CASCADE to remove the fields.
const QueryRiskTypeDelete = "DELETE FROM risk_types WHERE rt_id = $1"

func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	exec := db.ExecutorFromContext(ctx, r.db)
	res, err := exec.ExecContext(ctx, QueryRiskTypeDelete, id)
	if err != nil {
		return fmt.Errorf("risk type repository: delete risk type %d: %w", id, errs.FromDB(err))
	}

	return checkAffected(res, "delete", id)
}

func checkAffected(res sql.Result, op string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("risk type repository: %s risk type %d: rows affected: %w", op, id, err)
	}

	if n == 0 {
		return fmt.Errorf("risk type repository: %s risk type %d: %w", op, id, errs.ErrNotFound)
	}

	return nil
}
