package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/RMahshie/pants/internal/repository"
	"github.com/RMahshie/pants/pkg/models"
)

// PostgresTargetRepository implements TargetRepository for PostgreSQL
type PostgresTargetRepository struct {
	db *sql.DB
}

// NewPostgresTargetRepository creates a new PostgreSQL target repository
func NewPostgresTargetRepository(db *sql.DB) repository.TargetRepository {
	return &PostgresTargetRepository{db: db}
}

// List retrieves all targets
func (r *PostgresTargetRepository) List(ctx context.Context) ([]*models.Target, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT nutrient, min_value, max_value, updated_at
		FROM targets
		ORDER BY nutrient`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	targets := []*models.Target{}
	for rows.Next() {
		var target models.Target
		var minValue, maxValue sql.NullFloat64

		if err := rows.Scan(&target.Nutrient, &minValue, &maxValue, &target.UpdatedAt); err != nil {
			return nil, err
		}

		if minValue.Valid {
			target.Min = &minValue.Float64
		}
		if maxValue.Valid {
			target.Max = &maxValue.Float64
		}
		targets = append(targets, &target)
	}

	return targets, rows.Err()
}

// Upsert creates or replaces the target of a nutrient
func (r *PostgresTargetRepository) Upsert(ctx context.Context, target *models.Target) error {
	target.UpdatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO targets (nutrient, min_value, max_value, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (nutrient) DO UPDATE
		SET min_value = EXCLUDED.min_value, max_value = EXCLUDED.max_value, updated_at = EXCLUDED.updated_at`,
		target.Nutrient,
		target.Min,
		target.Max,
		target.UpdatedAt)

	return err
}

// Delete removes the target of a nutrient
func (r *PostgresTargetRepository) Delete(ctx context.Context, nutrient string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM targets WHERE nutrient = $1`, nutrient)
	if err != nil {
		return err
	}
	return expectOne(res)
}
