package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/RMahshie/pants/internal/repository/repositorytest"
	"github.com/RMahshie/pants/pkg/models"
	"github.com/RMahshie/pants/pkg/visuals"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockNutritionService implements nutrition.Service for testing
type MockNutritionService struct {
	mock.Mock
}

func (m *MockNutritionService) RecipeNutrition(ctx context.Context, recipe *models.Recipe) (models.Nutrition, error) {
	args := m.Called(ctx, recipe)
	return args.Get(0).(models.Nutrition), args.Error(1)
}

func (m *MockNutritionService) EntryNutrition(ctx context.Context, food *models.DiaryFood) (models.SummaryEntry, error) {
	args := m.Called(ctx, food)
	return args.Get(0).(models.SummaryEntry), args.Error(1)
}

func (m *MockNutritionService) DaySummary(ctx context.Context, day time.Time) (*models.DaySummary, error) {
	args := m.Called(ctx, day)
	summary, _ := args.Get(0).(*models.DaySummary)
	return summary, args.Error(1)
}

func (m *MockNutritionService) RangeSummaries(ctx context.Context, from, to time.Time) ([]*models.DaySummary, error) {
	args := m.Called(ctx, from, to)
	summaries, _ := args.Get(0).([]*models.DaySummary)
	return summaries, args.Error(1)
}

type testPages struct {
	pages       *Pages
	router      *chi.Mux
	nutrition   *MockNutritionService
	ingredients *repositorytest.MockIngredientRepository
	recipes     *repositorytest.MockRecipeRepository
	targets     *repositorytest.MockTargetRepository
	products    *repositorytest.MockProductRepository
}

var testDay = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func setupPages(t *testing.T) *testPages {
	t.Helper()
	tp := &testPages{
		router:      chi.NewRouter(),
		nutrition:   &MockNutritionService{},
		ingredients: &repositorytest.MockIngredientRepository{},
		recipes:     &repositorytest.MockRecipeRepository{},
		targets:     &repositorytest.MockTargetRepository{},
		products:    &repositorytest.MockProductRepository{},
	}

	pages, err := NewPages(Config{BarStyle: visuals.DefaultBarStyle, Version: "1.0.0"},
		tp.nutrition, tp.ingredients, tp.recipes, tp.targets, tp.products)
	require.NoError(t, err)
	pages.now = func() time.Time { return testDay.Add(20 * time.Hour) }
	pages.Routes(tp.router)
	tp.pages = pages

	return tp
}

func (tp *testPages) get(path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	tp.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func daySummary() *models.DaySummary {
	low, high, protein := 100.0, 150.0, 150.0
	fish := "6b0f7c4e-1f0a-4c1e-9d33-5d2f0f6a7a01"
	return &models.DaySummary{
		Day: testDay,
		Rows: []models.SummaryRow{
			{Nutrient: "kcal", Label: "Energy", Unit: "kcal", Value: 30, Min: &low, Max: &high},
			{Nutrient: "protein", Label: "Protein", Unit: "g", Value: 300, Max: &protein},
			{Nutrient: "salt", Label: "Salt", Unit: "g", Value: 2.5},
		},
		Entries: []models.SummaryEntry{
			{
				Food:      &models.DiaryFood{Day: testDay, Meal: models.MealDinner, IngredientID: &fish, Quantity: 250},
				Name:      "Fish & chips",
				Unit:      "g",
				Nutrition: models.Nutrition{Kcal: 30, Protein: 300},
			},
		},
	}
}

func TestDiaryRedirectsToToday(t *testing.T) {
	tp := setupPages(t)

	rec := tp.get("/diary/")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/diary/2024-03-01/", rec.Header().Get("Location"))
}

func TestDiaryPage(t *testing.T) {
	tp := setupPages(t)
	tp.nutrition.On("DaySummary", mock.Anything, testDay).Return(daySummary(), nil)

	rec := tp.get("/diary/2024-03-01/")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Friday 1 March 2024")
	assert.Contains(t, body, `<a href="/diary/2024-02-29/">`)
	assert.Contains(t, body, `<a href="/diary/2024-03-02/">`)

	// valminmax and percminmax
	assert.Contains(t, body, "<td>30.0<small> (30%-20%)</small> kcal</td>")
	assert.Contains(t, body, "<td>30%-20%</td>")
	assert.Contains(t, body, "<td>300.0<small> (200%)</small> g</td>")
	assert.Contains(t, body, "<td>2.5 g</td>")
	assert.Contains(t, body, "<td>%-%</td>")

	// progressbar against the maximum, 100 when there is none
	assert.Contains(t, body, `<div class="w3-black"><div class="w3-deep-purple" style="width:20%">30.0</div></div>`)
	assert.Contains(t, body, `<div class="w3-black"><div class="w3-deep-purple" style="width:100%">300.0</div></div>`)
	assert.Contains(t, body, `<div class="w3-black"><div class="w3-deep-purple" style="width:2%">2.5</div></div>`)

	assert.Contains(t, body, "Fish &amp; chips")
	assert.Contains(t, body, "250 g")
	tp.nutrition.AssertExpectations(t)
}

func TestDiaryPage_BadDate(t *testing.T) {
	tp := setupPages(t)

	rec := tp.get("/diary/2024-13-01/")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDiaryPage_ServiceError(t *testing.T) {
	tp := setupPages(t)
	tp.nutrition.On("DaySummary", mock.Anything, testDay).Return(nil, assert.AnError)

	rec := tp.get("/diary/2024-03-01/")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<html")
}

func TestIndexPage(t *testing.T) {
	tp := setupPages(t)
	tp.nutrition.On("DaySummary", mock.Anything, mock.MatchedBy(func(day time.Time) bool {
		return day.Format(models.DateLayout) == "2024-03-01"
	})).Return(daySummary(), nil)

	rec := tp.get("/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<a href="/diary/2024-03-01/">2024-03-01</a>`)
	assert.Contains(t, rec.Body.String(), "30.0<small> (30%-20%)</small>")
}

func TestTodayUsesUTCDay(t *testing.T) {
	tp := setupPages(t)
	// 23:30 on 1 March in New York is already 2 March in UTC
	newYork := time.FixedZone("EST", -5*60*60)
	tp.pages.now = func() time.Time { return time.Date(2024, 3, 1, 23, 30, 0, 0, newYork) }
	nextDay := testDay.AddDate(0, 0, 1)
	tp.nutrition.On("DaySummary", mock.Anything, nextDay).Return(daySummary(), nil)

	rec := tp.get("/diary/")
	assert.Equal(t, "/diary/2024-03-02/", rec.Header().Get("Location"))

	rec = tp.get("/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<a href="/diary/2024-03-02/">2024-03-02</a>`)
	tp.nutrition.AssertExpectations(t)
}

func TestIngredientsPage(t *testing.T) {
	tp := setupPages(t)
	tp.ingredients.On("List", mock.Anything).Return([]*models.Ingredient{
		{Name: "Egg white", Nutrition: models.Nutrition{Kcal: 40, Protein: 10}},
		{Name: "Water", Nutrition: models.Nutrition{}},
	}, nil)

	rec := tp.get("/ingredients/")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<td>0.25</td>")
	assert.Contains(t, body, "<td>NaN</td>")
}

func TestIngredientsPage_IntegralRatio(t *testing.T) {
	tp := setupPages(t)
	tp.ingredients.On("List", mock.Anything).Return([]*models.Ingredient{
		{Name: "Protein isolate", Nutrition: models.Nutrition{Kcal: 1, Protein: 30}},
	}, nil)

	rec := tp.get("/ingredients/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<td>30.0</td>")
}

func TestProductsPage(t *testing.T) {
	tp := setupPages(t)
	oats, salt := uuid.New(), uuid.New()
	tp.products.On("List", mock.Anything).Return([]*models.Product{
		{ID: uuid.NewString(), IngredientID: oats.String(), Name: "Oats 500g", PackGrams: 500, Price: 2},
		{ID: uuid.NewString(), IngredientID: salt.String(), Name: "Sea salt", PackGrams: 100, Price: 3},
	}, nil)
	tp.ingredients.On("GetByIDs", mock.Anything, []uuid.UUID{oats, salt}).Return(map[uuid.UUID]*models.Ingredient{
		oats: {ID: oats.String(), Name: "Oats", Nutrition: models.Nutrition{Kcal: 40}},
		salt: {ID: salt.String(), Name: "Salt"},
	}, nil)

	rec := tp.get("/products/")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<td>Oats 500g</td>\n<td>Oats</td>\n<td>500</td>\n<td>2.00</td>\n<td>0.4</td>\n<td>0.01</td>")
	// no energy, so no price per kcal
	assert.Contains(t, body, "<td>Sea salt</td>\n<td>Salt</td>\n<td>100</td>\n<td>3.00</td>\n<td>3.0</td>\n<td>NaN</td>")
	tp.products.AssertExpectations(t)
	tp.ingredients.AssertExpectations(t)
}

func TestProductsPage_StoreError(t *testing.T) {
	tp := setupPages(t)
	tp.products.On("List", mock.Anything).Return(nil, assert.AnError)

	rec := tp.get("/products/")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRecipesPage(t *testing.T) {
	tp := setupPages(t)
	porridge := &models.Recipe{Name: "Porridge", Servings: 2}
	tp.recipes.On("List", mock.Anything).Return([]*models.Recipe{porridge}, nil)
	tp.nutrition.On("RecipeNutrition", mock.Anything, porridge).Return(models.Nutrition{Kcal: 227, Protein: 10.45}, nil)

	rec := tp.get("/recipes/")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<td>Porridge</td>")
	assert.Contains(t, body, "227 kcal")
	assert.Contains(t, body, "10.4 g")
}

func TestTargetsPage(t *testing.T) {
	tp := setupPages(t)
	low := 1800.0
	tp.targets.On("List", mock.Anything).Return([]*models.Target{{Nutrient: "kcal", Min: &low}}, nil)

	rec := tp.get("/targets/")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<td>Energy (kcal)</td>\n<td>1800.0</td>\n<td>-</td>")
	assert.Contains(t, body, "<td>Salt (g)</td>")
}

func TestAboutPage(t *testing.T) {
	tp := setupPages(t)

	rec := tp.get("/about/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Version 1.0.0")
}
