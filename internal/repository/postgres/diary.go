package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/RMahshie/pants/internal/repository"
	"github.com/RMahshie/pants/pkg/models"
	"github.com/google/uuid"
)

const diaryFoodColumns = `id, day, meal, ingredient_id, recipe_id, quantity, created_at`

// PostgresDiaryRepository implements DiaryRepository for PostgreSQL
type PostgresDiaryRepository struct {
	db *sql.DB
}

// NewPostgresDiaryRepository creates a new PostgreSQL diary repository
func NewPostgresDiaryRepository(db *sql.DB) repository.DiaryRepository {
	return &PostgresDiaryRepository{db: db}
}

// Create inserts a diary food
func (r *PostgresDiaryRepository) Create(ctx context.Context, food *models.DiaryFood) error {
	if food.ID == "" {
		food.ID = uuid.New().String()
	}
	if food.CreatedAt.IsZero() {
		food.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO diary_foods (` + diaryFoodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		food.ID,
		food.Day.Format(models.DateLayout),
		food.Meal,
		food.IngredientID,
		food.RecipeID,
		food.Quantity,
		food.CreatedAt)

	return translateInsertError(err)
}

// ListByDay retrieves the foods logged on a day in the order they were logged
func (r *PostgresDiaryRepository) ListByDay(ctx context.Context, day time.Time) ([]*models.DiaryFood, error) {
	return r.ListRange(ctx, day, day)
}

// ListRange retrieves the foods logged between two days inclusive
func (r *PostgresDiaryRepository) ListRange(ctx context.Context, from, to time.Time) ([]*models.DiaryFood, error) {
	query := `
		SELECT ` + diaryFoodColumns + `
		FROM diary_foods
		WHERE day BETWEEN $1 AND $2
		ORDER BY day, created_at, id`

	rows, err := r.db.QueryContext(ctx, query, from.Format(models.DateLayout), to.Format(models.DateLayout))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	foods := []*models.DiaryFood{}
	for rows.Next() {
		var food models.DiaryFood
		var ingredientID, recipeID sql.NullString

		err := rows.Scan(
			&food.ID,
			&food.Day,
			&food.Meal,
			&ingredientID,
			&recipeID,
			&food.Quantity,
			&food.CreatedAt)
		if err != nil {
			return nil, err
		}

		if ingredientID.Valid {
			food.IngredientID = &ingredientID.String
		}
		if recipeID.Valid {
			food.RecipeID = &recipeID.String
		}
		food.Day = food.Day.UTC()
		foods = append(foods, &food)
	}

	return foods, rows.Err()
}

// Delete removes a diary food
func (r *PostgresDiaryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM diary_foods WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectOne(res)
}
