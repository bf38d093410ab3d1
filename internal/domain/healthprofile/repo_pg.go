package healthprofile

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) CreateEmpty(ctx context.Context, userID uuid.UUID) error {
	const q = `
		INSERT INTO health_profiles (id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING`
	_, err := r.pool.Exec(ctx, q, uuid.New(), userID)
	return err
}

func (r *repoPG) Get(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	const q = `
		SELECT blood_type, blood_pressure,
		       cholesterol_total, cholesterol_hdl, cholesterol_ldl,
		       has_allergies, allergies, has_conditions, conditions, updated_at
		FROM health_profiles
		WHERE user_id = $1`

	var (
		p               Profile
		total, hdl, ldl *float64
	)
	err := r.pool.QueryRow(ctx, q, userID).Scan(
		&p.BloodType, &p.BloodPressure,
		&total, &hdl, &ldl,
		&p.HasAllergies, &p.Allergies, &p.HasConditions, &p.Conditions, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if total != nil || hdl != nil || ldl != nil {
		p.Cholesterol = &Cholesterol{Total: total, HDL: hdl, LDL: ldl}
	}
	return &p, nil
}

// Save is a single-statement upsert. COALESCE keeps stored values where the
// update carries nil; the cholesterol triple is replaced as a unit when the
// update supplies one.
func (r *repoPG) Save(ctx context.Context, userID uuid.UUID, upd ProfileUpdate) error {
	const q = `
		INSERT INTO health_profiles (
			id, user_id, blood_type, blood_pressure,
			cholesterol_total, cholesterol_hdl, cholesterol_ldl,
			has_allergies, allergies, has_conditions, conditions, updated_at
		)
		VALUES (
			$1, $2, COALESCE($3, ''), COALESCE($4, ''),
			$5, $6, $7,
			COALESCE($8, FALSE), COALESCE($9::text[], '{}'),
			COALESCE($10, FALSE), COALESCE($11::text[], '{}'), now()
		)
		ON CONFLICT (user_id) DO UPDATE SET
			blood_type        = COALESCE($3, health_profiles.blood_type),
			blood_pressure    = COALESCE($4, health_profiles.blood_pressure),
			cholesterol_total = CASE WHEN $12 THEN $5 ELSE health_profiles.cholesterol_total END,
			cholesterol_hdl   = CASE WHEN $12 THEN $6 ELSE health_profiles.cholesterol_hdl END,
			cholesterol_ldl   = CASE WHEN $12 THEN $7 ELSE health_profiles.cholesterol_ldl END,
			has_allergies     = COALESCE($8, health_profiles.has_allergies),
			allergies         = COALESCE($9::text[], health_profiles.allergies),
			has_conditions    = COALESCE($10, health_profiles.has_conditions),
			conditions        = COALESCE($11::text[], health_profiles.conditions),
			updated_at        = now()`

	var total, hdl, ldl *float64
	if upd.Cholesterol != nil {
		total, hdl, ldl = upd.Cholesterol.Total, upd.Cholesterol.HDL, upd.Cholesterol.LDL
	}

	_, err := r.pool.Exec(ctx, q,
		uuid.New(), userID, upd.BloodType, upd.BloodPressure,
		total, hdl, ldl,
		upd.HasAllergies, upd.Allergies, upd.HasConditions, upd.Conditions,
		upd.Cholesterol != nil,
	)
	return err
}

func (r *repoPG) Delete(ctx context.Context, userID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM health_profiles WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
