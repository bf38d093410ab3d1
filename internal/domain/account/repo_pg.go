package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const userCols = `id, name, email, password_hash, age, height, weight,
	ethnicity, sex, medication_ids, created_at, updated_at`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Age, &u.Height,
		&u.Weight, &u.Ethnicity, &u.Sex, &u.MedicationIDs, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repoPG) Create(ctx context.Context, u *User) error {
	u.ID = uuid.New()
	if u.MedicationIDs == nil {
		u.MedicationIDs = []uuid.UUID{}
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, age, height, weight,
			ethnicity, sex, medication_ids)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Age, u.Height, u.Weight,
		u.Ethnicity, u.Sex, u.MedicationIDs)
	if isUniqueViolation(err) {
		return ErrEmailInUse
	}
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userCols+` FROM users WHERE id = $1`, id))
}

func (r *repoPG) GetByEmail(ctx context.Context, email string) (*User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userCols+` FROM users WHERE email = $1`, email))
}

func (r *repoPG) UpdateProfile(ctx context.Context, id uuid.UUID, upd ProfileUpdate) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE users SET
			name = COALESCE($2, name),
			age = COALESCE($3, age),
			height = COALESCE($4, height),
			weight = COALESCE($5, weight),
			ethnicity = COALESCE($6, ethnicity),
			sex = COALESCE($7, sex),
			updated_at = NOW()
		WHERE id = $1`,
		id, upd.Name, upd.Age, upd.Height, upd.Weight, upd.Ethnicity, upd.Sex)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) MedicationIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.pool.QueryRow(ctx,
		`SELECT medication_ids FROM users WHERE id = $1`, userID).Scan(&ids)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *repoPG) AppendMedicationID(ctx context.Context, userID, medicationID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE users SET medication_ids = array_append(medication_ids, $2), updated_at = NOW()
		WHERE id = $1`, userID, medicationID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) RemoveMedicationID(ctx context.Context, userID, medicationID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE users SET medication_ids = array_remove(medication_ids, $2), updated_at = NOW()
		WHERE id = $1`, userID, medicationID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
