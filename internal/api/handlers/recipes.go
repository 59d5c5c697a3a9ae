package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/RMahshie/pants/internal/nutrition"
	"github.com/RMahshie/pants/internal/repository"
	"github.com/RMahshie/pants/pkg/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"
)

// RecipeHandler handles recipe HTTP requests
type RecipeHandler struct {
	repo         repository.RecipeRepository
	nutritionSvc nutrition.Service
}

// NewRecipeHandler creates a new recipe handler
func NewRecipeHandler(repo repository.RecipeRepository, nutritionSvc nutrition.Service) *RecipeHandler {
	return &RecipeHandler{
		repo:         repo,
		nutritionSvc: nutritionSvc,
	}
}

// ListRecipes returns all recipes
func (h *RecipeHandler) ListRecipes(ctx context.Context, _ *struct{}) (*models.ListRecipesResponse, error) {
	recipes, err := h.repo.List(ctx)
	if err != nil {
		return nil, storeError(err, "Recipe", "list")
	}

	resp := &models.ListRecipesResponse{}
	resp.Body.Recipes = recipes
	return resp, nil
}

// CreateRecipe stores a recipe after checking all of its ingredients exist
func (h *RecipeHandler) CreateRecipe(ctx context.Context, req *models.CreateRecipeRequest) (*models.RecipeResponse, error) {
	if len(req.Body.Components) == 0 {
		return nil, huma.Error400BadRequest("A recipe needs at least one ingredient")
	}
	if req.Body.Servings <= 0 {
		return nil, huma.Error400BadRequest("Servings must be greater than zero")
	}

	recipe := &models.Recipe{
		Name:        strings.TrimSpace(req.Body.Name),
		Description: req.Body.Description,
		Servings:    req.Body.Servings,
		Components:  make([]models.RecipeComponent, 0, len(req.Body.Components)),
	}
	for _, c := range req.Body.Components {
		if c.Grams <= 0 {
			return nil, huma.Error400BadRequest("Ingredient weights must be greater than zero")
		}
		id, err := normaliseID(&c.IngredientID, "ingredient")
		if err != nil {
			return nil, err
		}
		recipe.Components = append(recipe.Components, models.RecipeComponent{IngredientID: *id, Grams: c.Grams})
	}

	perServing, err := h.nutritionSvc.RecipeNutrition(ctx, recipe)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, huma.Error400BadRequest("Recipe refers to an unknown ingredient", err)
		}
		return nil, huma.Error500InternalServerError("Failed to compute recipe nutrition", err)
	}

	if err := h.repo.Create(ctx, recipe); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, huma.Error400BadRequest("Recipe refers to an unknown ingredient", err)
		}
		return nil, storeError(err, "Recipe", "create")
	}

	log.Info().Str("recipeID", recipe.ID).Str("name", recipe.Name).Int("components", len(recipe.Components)).Msg("Recipe created")
	return &models.RecipeResponse{Body: models.RecipeDetail{Recipe: *recipe, PerServing: perServing}}, nil
}

// GetRecipe returns a recipe with its nutrition per serving
func (h *RecipeHandler) GetRecipe(ctx context.Context, req *models.RecipeIDRequest) (*models.RecipeResponse, error) {
	id, err := parseID(req.ID, "recipe")
	if err != nil {
		return nil, err
	}

	recipe, err := h.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Recipe", "get")
	}

	perServing, err := h.nutritionSvc.RecipeNutrition(ctx, recipe)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to compute recipe nutrition", err)
	}

	return &models.RecipeResponse{Body: models.RecipeDetail{Recipe: *recipe, PerServing: perServing}}, nil
}

// DeleteRecipe removes a recipe no diary food refers to
func (h *RecipeHandler) DeleteRecipe(ctx context.Context, req *models.RecipeIDRequest) (*struct{}, error) {
	id, err := parseID(req.ID, "recipe")
	if err != nil {
		return nil, err
	}

	if err := h.repo.Delete(ctx, id); err != nil {
		return nil, storeError(err, "Recipe", "delete")
	}

	log.Info().Str("recipeID", id.String()).Msg("Recipe deleted")
	return nil, nil
}
