package medication

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) PlanRepository {
	return &repoPG{pool: pool}
}

const planCols = `id, medication_name, dosage, frequency, color, start_date, end_date, created_at`

func scanPlan(row pgx.Row) (*Plan, error) {
	var p Plan
	err := row.Scan(&p.ID, &p.MedicationName, &p.Dosage, &p.Frequency,
		&p.Color, &p.StartDate, &p.EndDate, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *repoPG) Create(ctx context.Context, p *Plan) error {
	const q = `
		INSERT INTO medication_plans (id, medication_name, dosage, frequency, color, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`
	return r.pool.QueryRow(ctx, q,
		p.ID, p.MedicationName, p.Dosage, p.Frequency, p.Color, p.StartDate, p.EndDate,
	).Scan(&p.CreatedAt)
}

func (r *repoPG) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*Plan, error) {
	if len(ids) == 0 {
		return []*Plan{}, nil
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+planCols+` FROM medication_plans WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := make([]*Plan, 0, len(ids))
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM medication_plans WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
