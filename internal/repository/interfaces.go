package repository

import (
	"context"
	"errors"
	"time"

	"github.com/RMahshie/pants/pkg/models"
	"github.com/google/uuid"
)

// ErrNotFound is returned when a record does not exist
var ErrNotFound = errors.New("record not found")

// IngredientRepository defines the interface for ingredient data operations
type IngredientRepository interface {
	Create(ctx context.Context, ingredient *models.Ingredient) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Ingredient, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Ingredient, error)
	List(ctx context.Context) ([]*models.Ingredient, error)
	Update(ctx context.Context, ingredient *models.Ingredient) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RecipeRepository defines the interface for recipe data operations
type RecipeRepository interface {
	Create(ctx context.Context, recipe *models.Recipe) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Recipe, error)
	List(ctx context.Context) ([]*models.Recipe, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DiaryRepository defines the interface for diary food operations
type DiaryRepository interface {
	Create(ctx context.Context, food *models.DiaryFood) error
	ListByDay(ctx context.Context, day time.Time) ([]*models.DiaryFood, error)
	ListRange(ctx context.Context, from, to time.Time) ([]*models.DiaryFood, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TargetRepository defines the interface for nutrient target operations
type TargetRepository interface {
	List(ctx context.Context) ([]*models.Target, error)
	Upsert(ctx context.Context, target *models.Target) error
	Delete(ctx context.Context, nutrient string) error
}

// ProductRepository defines the interface for product price operations
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	List(ctx context.Context) ([]*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ErrInUse is returned when a record cannot be deleted because others reference it
var ErrInUse = errors.New("record is still referenced")
