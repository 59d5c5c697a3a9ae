package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/RMahshie/pants/internal/api/handlers"
	"github.com/RMahshie/pants/internal/export"
	"github.com/RMahshie/pants/internal/nutrition"
	"github.com/RMahshie/pants/internal/repository"
	"github.com/RMahshie/pants/pkg/models"
	"github.com/danielgtaylor/huma/v2"
)

// Version is reported by the health endpoint and the OpenAPI document
const Version = "1.0.0"

// Prefix is the path all REST operations are mounted under
const Prefix = "/api/1"

// Repositories bundles the stores the API reads and writes
type Repositories struct {
	Ingredients repository.IngredientRepository
	Recipes     repository.RecipeRepository
	Diary       repository.DiaryRepository
	Targets     repository.TargetRepository
	Products    repository.ProductRepository
}

// collections are listed by the API root, keyed by resource name
var collections = []string{"ingredient", "recipe", "diaryfood", "targets", "product"}

// TrailingSlash lets API paths be requested with a trailing slash, as in
// /api/1/ingredient/. Paths outside Prefix are left alone since the HTML
// pages are mounted with trailing slashes.
func TrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if strings.HasPrefix(path, Prefix+"/") && strings.HasSuffix(path, "/") {
			r.URL.Path = strings.TrimRight(path, "/")
			r.URL.RawPath = ""
		}
		next.ServeHTTP(w, r)
	})
}

// RegisterRoutes sets up all API routes. exportSvc may be nil when no
// export bucket is configured.
func RegisterRoutes(api huma.API, repos Repositories, nutritionSvc nutrition.Service, exportSvc export.Service) {
	// Initialize handlers
	ingredientHandler := handlers.NewIngredientHandler(repos.Ingredients)
	recipeHandler := handlers.NewRecipeHandler(repos.Recipes, nutritionSvc)
	diaryHandler := handlers.NewDiaryHandler(repos.Diary, nutritionSvc)
	targetHandler := handlers.NewTargetHandler(repos.Targets)
	summaryHandler := handlers.NewSummaryHandler(nutritionSvc, exportSvc)
	productHandler := handlers.NewProductHandler(repos.Products, repos.Ingredients)

	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns the health status of the service",
	}, func(ctx context.Context, input *struct{}) (*models.HealthResponse, error) {
		resp := &models.HealthResponse{}
		resp.Body.Status = "healthy"
		resp.Body.Version = Version
		resp.Body.Time = time.Now()
		return resp, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "apiRoot",
		Method:      http.MethodGet,
		Path:        Prefix,
		Summary:     "List API collections",
		Description: "Maps each resource name to the path of its collection",
	}, func(ctx context.Context, input *struct{}) (*models.APIRootResponse, error) {
		resp := &models.APIRootResponse{Body: make(map[string]string, len(collections))}
		for _, name := range collections {
			resp.Body[name] = Prefix + "/" + name + "/"
		}
		return resp, nil
	})

	// Ingredients
	huma.Register(api, huma.Operation{
		OperationID: "listIngredients",
		Method:      http.MethodGet,
		Path:        Prefix + "/ingredient",
		Summary:     "List ingredients",
		Tags:        []string{"Ingredients"},
	}, ingredientHandler.ListIngredients)

	huma.Register(api, huma.Operation{
		OperationID:   "createIngredient",
		Method:        http.MethodPost,
		Path:          Prefix + "/ingredient",
		Summary:       "Create an ingredient",
		Description:   "Creates an ingredient with its nutrition per 100 g",
		Tags:          []string{"Ingredients"},
		DefaultStatus: http.StatusCreated,
	}, ingredientHandler.CreateIngredient)

	huma.Register(api, huma.Operation{
		OperationID: "getIngredient",
		Method:      http.MethodGet,
		Path:        Prefix + "/ingredient/{id}",
		Summary:     "Get an ingredient",
		Tags:        []string{"Ingredients"},
	}, ingredientHandler.GetIngredient)

	huma.Register(api, huma.Operation{
		OperationID: "updateIngredient",
		Method:      http.MethodPut,
		Path:        Prefix + "/ingredient/{id}",
		Summary:     "Update an ingredient",
		Tags:        []string{"Ingredients"},
	}, ingredientHandler.UpdateIngredient)

	huma.Register(api, huma.Operation{
		OperationID: "deleteIngredient",
		Method:      http.MethodDelete,
		Path:        Prefix + "/ingredient/{id}",
		Summary:     "Delete an ingredient",
		Description: "Fails with 409 while a recipe or diary food uses the ingredient",
		Tags:        []string{"Ingredients"},
	}, ingredientHandler.DeleteIngredient)

	// Recipes
	huma.Register(api, huma.Operation{
		OperationID: "listRecipes",
		Method:      http.MethodGet,
		Path:        Prefix + "/recipe",
		Summary:     "List recipes",
		Tags:        []string{"Recipes"},
	}, recipeHandler.ListRecipes)

	huma.Register(api, huma.Operation{
		OperationID:   "createRecipe",
		Method:        http.MethodPost,
		Path:          Prefix + "/recipe",
		Summary:       "Create a recipe",
		Description:   "Creates a recipe from weighed ingredients and returns its nutrition per serving",
		Tags:          []string{"Recipes"},
		DefaultStatus: http.StatusCreated,
	}, recipeHandler.CreateRecipe)

	huma.Register(api, huma.Operation{
		OperationID: "getRecipe",
		Method:      http.MethodGet,
		Path:        Prefix + "/recipe/{id}",
		Summary:     "Get a recipe",
		Description: "Returns the recipe with its nutrition per serving",
		Tags:        []string{"Recipes"},
	}, recipeHandler.GetRecipe)

	huma.Register(api, huma.Operation{
		OperationID: "deleteRecipe",
		Method:      http.MethodDelete,
		Path:        Prefix + "/recipe/{id}",
		Summary:     "Delete a recipe",
		Tags:        []string{"Recipes"},
	}, recipeHandler.DeleteRecipe)

	// Diary
	huma.Register(api, huma.Operation{
		OperationID: "listDiaryFoods",
		Method:      http.MethodGet,
		Path:        Prefix + "/diaryfood",
		Summary:     "List the foods logged on a day",
		Tags:        []string{"Diary"},
	}, diaryHandler.ListDiaryFoods)

	huma.Register(api, huma.Operation{
		OperationID:   "createDiaryFood",
		Method:        http.MethodPost,
		Path:          Prefix + "/diaryfood",
		Summary:       "Log a food",
		Description:   "Logs grams of an ingredient or servings of a recipe on a day",
		Tags:          []string{"Diary"},
		DefaultStatus: http.StatusCreated,
	}, diaryHandler.CreateDiaryFood)

	huma.Register(api, huma.Operation{
		OperationID: "deleteDiaryFood",
		Method:      http.MethodDelete,
		Path:        Prefix + "/diaryfood/{id}",
		Summary:     "Delete a logged food",
		Tags:        []string{"Diary"},
	}, diaryHandler.DeleteDiaryFood)

	huma.Register(api, huma.Operation{
		OperationID: "getDaySummary",
		Method:      http.MethodGet,
		Path:        Prefix + "/diary/{date}/summary",
		Summary:     "Summarise a day",
		Description: "Returns the day's totals per nutrient annotated with their target percentages",
		Tags:        []string{"Diary"},
	}, summaryHandler.GetDaySummary)

	huma.Register(api, huma.Operation{
		OperationID: "exportDiary",
		Method:      http.MethodPost,
		Path:        Prefix + "/diary/export",
		Summary:     "Export a range of days",
		Description: "Writes the days to a spreadsheet in object storage and returns a download URL",
		Tags:        []string{"Diary"},
	}, summaryHandler.ExportDiary)

	// Targets
	huma.Register(api, huma.Operation{
		OperationID: "listTargets",
		Method:      http.MethodGet,
		Path:        Prefix + "/targets",
		Summary:     "List nutrient targets",
		Tags:        []string{"Targets"},
	}, targetHandler.ListTargets)

	huma.Register(api, huma.Operation{
		OperationID: "putTarget",
		Method:      http.MethodPut,
		Path:        Prefix + "/targets/{nutrient}",
		Summary:     "Set a nutrient target",
		Tags:        []string{"Targets"},
	}, targetHandler.PutTarget)

	huma.Register(api, huma.Operation{
		OperationID: "deleteTarget",
		Method:      http.MethodDelete,
		Path:        Prefix + "/targets/{nutrient}",
		Summary:     "Remove a nutrient target",
		Tags:        []string{"Targets"},
	}, targetHandler.DeleteTarget)

	// Products
	huma.Register(api, huma.Operation{
		OperationID: "listProducts",
		Method:      http.MethodGet,
		Path:        Prefix + "/product",
		Summary:     "List products",
		Tags:        []string{"Products"},
	}, productHandler.ListProducts)

	huma.Register(api, huma.Operation{
		OperationID:   "createProduct",
		Method:        http.MethodPost,
		Path:          Prefix + "/product",
		Summary:       "Create a product",
		Description:   "Records the price of a pack of an ingredient",
		Tags:          []string{"Products"},
		DefaultStatus: http.StatusCreated,
	}, productHandler.CreateProduct)

	huma.Register(api, huma.Operation{
		OperationID: "getProduct",
		Method:      http.MethodGet,
		Path:        Prefix + "/product/{id}",
		Summary:     "Get a product",
		Tags:        []string{"Products"},
	}, productHandler.GetProduct)

	huma.Register(api, huma.Operation{
		OperationID: "updateProduct",
		Method:      http.MethodPut,
		Path:        Prefix + "/product/{id}",
		Summary:     "Update a product",
		Tags:        []string{"Products"},
	}, productHandler.UpdateProduct)

	huma.Register(api, huma.Operation{
		OperationID: "deleteProduct",
		Method:      http.MethodDelete,
		Path:        Prefix + "/product/{id}",
		Summary:     "Delete a product",
		Tags:        []string{"Products"},
	}, productHandler.DeleteProduct)
}
