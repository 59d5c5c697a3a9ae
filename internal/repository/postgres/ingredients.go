package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/RMahshie/pants/internal/repository"
	"github.com/RMahshie/pants/pkg/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const ingredientColumns = `id, name, description, kcal, protein, carbohydrate, sugar, fat, saturated_fat, fibre, salt, created_at, updated_at`

// PostgresIngredientRepository implements IngredientRepository for PostgreSQL
type PostgresIngredientRepository struct {
	db *sql.DB
}

// NewPostgresIngredientRepository creates a new PostgreSQL ingredient repository
func NewPostgresIngredientRepository(db *sql.DB) repository.IngredientRepository {
	return &PostgresIngredientRepository{db: db}
}

// Create inserts a new ingredient record
func (r *PostgresIngredientRepository) Create(ctx context.Context, ingredient *models.Ingredient) error {
	if ingredient.ID == "" {
		ingredient.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if ingredient.CreatedAt.IsZero() {
		ingredient.CreatedAt = now
	}
	ingredient.UpdatedAt = now

	query := `
		INSERT INTO ingredients (` + ingredientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	n := ingredient.Nutrition
	_, err := r.db.ExecContext(ctx, query,
		ingredient.ID,
		ingredient.Name,
		ingredient.Description,
		n.Kcal,
		n.Protein,
		n.Carbohydrate,
		n.Sugar,
		n.Fat,
		n.SaturatedFat,
		n.Fibre,
		n.Salt,
		ingredient.CreatedAt,
		ingredient.UpdatedAt)

	return err
}

// GetByID retrieves an ingredient by ID
func (r *PostgresIngredientRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE id = $1`

	ingredient, err := scanIngredient(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translateError(err)
	}
	return ingredient, nil
}

// GetByIDs retrieves several ingredients at once, keyed by ID. Unknown IDs
// are simply missing from the result.
func (r *PostgresIngredientRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Ingredient, error) {
	result := make(map[uuid.UUID]*models.Ingredient, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}

	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE id = ANY($1::uuid[])`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(keys))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		ingredient, err := scanIngredient(rows)
		if err != nil {
			return nil, err
		}
		id, err := uuid.Parse(ingredient.ID)
		if err != nil {
			return nil, err
		}
		result[id] = ingredient
	}

	return result, rows.Err()
}

// List retrieves all ingredients ordered by name
func (r *PostgresIngredientRepository) List(ctx context.Context) ([]*models.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients ORDER BY lower(name), id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ingredients := []*models.Ingredient{}
	for rows.Next() {
		ingredient, err := scanIngredient(rows)
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ingredient)
	}

	return ingredients, rows.Err()
}

// Update replaces the name, description and nutrition of an ingredient
func (r *PostgresIngredientRepository) Update(ctx context.Context, ingredient *models.Ingredient) error {
	ingredient.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE ingredients
		SET name = $1, description = $2, kcal = $3, protein = $4, carbohydrate = $5, sugar = $6,
		    fat = $7, saturated_fat = $8, fibre = $9, salt = $10, updated_at = $11
		WHERE id = $12`

	n := ingredient.Nutrition
	res, err := r.db.ExecContext(ctx, query,
		ingredient.Name,
		ingredient.Description,
		n.Kcal,
		n.Protein,
		n.Carbohydrate,
		n.Sugar,
		n.Fat,
		n.SaturatedFat,
		n.Fibre,
		n.Salt,
		ingredient.UpdatedAt,
		ingredient.ID)
	if err != nil {
		return err
	}

	return expectOne(res)
}

// Delete removes an ingredient. Ingredients used by recipes or the diary
// cannot be deleted.
func (r *PostgresIngredientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM ingredients WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	return expectOne(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIngredient(row rowScanner) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	n := &ingredient.Nutrition

	err := row.Scan(
		&ingredient.ID,
		&ingredient.Name,
		&ingredient.Description,
		&n.Kcal,
		&n.Protein,
		&n.Carbohydrate,
		&n.Sugar,
		&n.Fat,
		&n.SaturatedFat,
		&n.Fibre,
		&n.Salt,
		&ingredient.CreatedAt,
		&ingredient.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &ingredient, nil
}
