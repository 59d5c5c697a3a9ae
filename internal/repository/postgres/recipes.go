package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/RMahshie/pants/internal/repository"
	"github.com/RMahshie/pants/pkg/models"
	"github.com/google/uuid"
)

// PostgresRecipeRepository implements RecipeRepository for PostgreSQL
type PostgresRecipeRepository struct {
	db *sql.DB
}

// NewPostgresRecipeRepository creates a new PostgreSQL recipe repository
func NewPostgresRecipeRepository(db *sql.DB) repository.RecipeRepository {
	return &PostgresRecipeRepository{db: db}
}

// Create inserts a recipe and its components in one transaction
func (r *PostgresRecipeRepository) Create(ctx context.Context, recipe *models.Recipe) (err error) {
	if recipe.ID == "" {
		recipe.ID = uuid.New().String()
	}
	if recipe.CreatedAt.IsZero() {
		recipe.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO recipes (id, name, description, servings, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		recipe.ID,
		recipe.Name,
		recipe.Description,
		recipe.Servings,
		recipe.CreatedAt)
	if err != nil {
		return err
	}

	for i, component := range recipe.Components {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO recipe_ingredients (recipe_id, position, ingredient_id, grams)
			VALUES ($1, $2, $3, $4)`,
			recipe.ID,
			i,
			component.IngredientID,
			component.Grams)
		if err != nil {
			return translateInsertError(err)
		}
	}

	return tx.Commit()
}

// GetByID retrieves a recipe with its components
func (r *PostgresRecipeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, servings, created_at
		FROM recipes
		WHERE id = $1`, id).Scan(
		&recipe.ID,
		&recipe.Name,
		&recipe.Description,
		&recipe.Servings,
		&recipe.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT ingredient_id, grams
		FROM recipe_ingredients
		WHERE recipe_id = $1
		ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recipe.Components = []models.RecipeComponent{}
	for rows.Next() {
		var component models.RecipeComponent
		if err := rows.Scan(&component.IngredientID, &component.Grams); err != nil {
			return nil, err
		}
		recipe.Components = append(recipe.Components, component)
	}

	return &recipe, rows.Err()
}

// List retrieves all recipes with their components, ordered by name
func (r *PostgresRecipeRepository) List(ctx context.Context) ([]*models.Recipe, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT r.id, r.name, r.description, r.servings, r.created_at, ri.ingredient_id, ri.grams
		FROM recipes r
		LEFT JOIN recipe_ingredients ri ON ri.recipe_id = r.id
		ORDER BY lower(r.name), r.id, ri.position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recipes := []*models.Recipe{}
	var current *models.Recipe
	for rows.Next() {
		var recipe models.Recipe
		var ingredientID sql.NullString
		var grams sql.NullFloat64

		err := rows.Scan(
			&recipe.ID,
			&recipe.Name,
			&recipe.Description,
			&recipe.Servings,
			&recipe.CreatedAt,
			&ingredientID,
			&grams)
		if err != nil {
			return nil, err
		}

		if current == nil || current.ID != recipe.ID {
			recipe.Components = []models.RecipeComponent{}
			current = &recipe
			recipes = append(recipes, current)
		}
		if ingredientID.Valid {
			current.Components = append(current.Components, models.RecipeComponent{
				IngredientID: ingredientID.String,
				Grams:        grams.Float64,
			})
		}
	}

	return recipes, rows.Err()
}

// Delete removes a recipe and its components. Recipes logged in the diary
// cannot be deleted.
func (r *PostgresRecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	return expectOne(res)
}
