package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/RMahshie/pants/internal/repository"
	"github.com/RMahshie/pants/pkg/models"
	"github.com/google/uuid"
)

const productColumns = `id, ingredient_id, name, pack_grams, price, created_at, updated_at`

// PostgresProductRepository implements ProductRepository for PostgreSQL
type PostgresProductRepository struct {
	db *sql.DB
}

// NewPostgresProductRepository creates a new PostgreSQL product repository
func NewPostgresProductRepository(db *sql.DB) repository.ProductRepository {
	return &PostgresProductRepository{db: db}
}

// Create inserts a new product. An unknown ingredient yields ErrNotFound.
func (r *PostgresProductRepository) Create(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		product.ID,
		product.IngredientID,
		product.Name,
		product.PackGrams,
		product.Price,
		product.CreatedAt,
		product.UpdatedAt)

	return translateInsertError(err)
}

// GetByID retrieves a product by ID
func (r *PostgresProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translateError(err)
	}
	return product, nil
}

// List retrieves all products ordered by name
func (r *PostgresProductRepository) List(ctx context.Context) ([]*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY lower(name), id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []*models.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

// Update replaces the ingredient, name, pack size and price of a product
func (r *PostgresProductRepository) Update(ctx context.Context, product *models.Product) error {
	product.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE products
		SET ingredient_id = $1, name = $2, pack_grams = $3, price = $4, updated_at = $5
		WHERE id = $6`

	res, err := r.db.ExecContext(ctx, query,
		product.IngredientID,
		product.Name,
		product.PackGrams,
		product.Price,
		product.UpdatedAt,
		product.ID)
	if err != nil {
		return translateInsertError(err)
	}

	return expectOne(res)
}

// Delete removes a product
func (r *PostgresProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectOne(res)
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var product models.Product

	err := row.Scan(
		&product.ID,
		&product.IngredientID,
		&product.Name,
		&product.PackGrams,
		&product.Price,
		&product.CreatedAt,
		&product.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &product, nil
}
