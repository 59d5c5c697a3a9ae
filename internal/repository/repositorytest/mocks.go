// Package repositorytest provides testify mocks of the repository interfaces.
package repositorytest

import (
	"context"
	"time"

	"github.com/RMahshie/pants/pkg/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockIngredientRepository implements repository.IngredientRepository for testing
type MockIngredientRepository struct {
	mock.Mock
}

func (m *MockIngredientRepository) Create(ctx context.Context, ingredient *models.Ingredient) error {
	args := m.Called(ctx, ingredient)
	return args.Error(0)
}

func (m *MockIngredientRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Ingredient, error) {
	args := m.Called(ctx, id)
	ingredient, _ := args.Get(0).(*models.Ingredient)
	return ingredient, args.Error(1)
}

func (m *MockIngredientRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Ingredient, error) {
	args := m.Called(ctx, ids)
	found, _ := args.Get(0).(map[uuid.UUID]*models.Ingredient)
	return found, args.Error(1)
}

func (m *MockIngredientRepository) List(ctx context.Context) ([]*models.Ingredient, error) {
	args := m.Called(ctx)
	ingredients, _ := args.Get(0).([]*models.Ingredient)
	return ingredients, args.Error(1)
}

func (m *MockIngredientRepository) Update(ctx context.Context, ingredient *models.Ingredient) error {
	args := m.Called(ctx, ingredient)
	return args.Error(0)
}

func (m *MockIngredientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRecipeRepository implements repository.RecipeRepository for testing
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	args := m.Called(ctx, id)
	recipe, _ := args.Get(0).(*models.Recipe)
	return recipe, args.Error(1)
}

func (m *MockRecipeRepository) List(ctx context.Context) ([]*models.Recipe, error) {
	args := m.Called(ctx)
	recipes, _ := args.Get(0).([]*models.Recipe)
	return recipes, args.Error(1)
}

func (m *MockRecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDiaryRepository implements repository.DiaryRepository for testing
type MockDiaryRepository struct {
	mock.Mock
}

func (m *MockDiaryRepository) Create(ctx context.Context, food *models.DiaryFood) error {
	args := m.Called(ctx, food)
	return args.Error(0)
}

func (m *MockDiaryRepository) ListByDay(ctx context.Context, day time.Time) ([]*models.DiaryFood, error) {
	args := m.Called(ctx, day)
	foods, _ := args.Get(0).([]*models.DiaryFood)
	return foods, args.Error(1)
}

func (m *MockDiaryRepository) ListRange(ctx context.Context, from, to time.Time) ([]*models.DiaryFood, error) {
	args := m.Called(ctx, from, to)
	foods, _ := args.Get(0).([]*models.DiaryFood)
	return foods, args.Error(1)
}

func (m *MockDiaryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTargetRepository implements repository.TargetRepository for testing
type MockTargetRepository struct {
	mock.Mock
}

func (m *MockTargetRepository) List(ctx context.Context) ([]*models.Target, error) {
	args := m.Called(ctx)
	targets, _ := args.Get(0).([]*models.Target)
	return targets, args.Error(1)
}

func (m *MockTargetRepository) Upsert(ctx context.Context, target *models.Target) error {
	args := m.Called(ctx, target)
	return args.Error(0)
}

func (m *MockTargetRepository) Delete(ctx context.Context, nutrient string) error {
	args := m.Called(ctx, nutrient)
	return args.Error(0)
}

// MockProductRepository implements repository.ProductRepository for testing
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*models.Product)
	return product, args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context) ([]*models.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]*models.Product)
	return products, args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
