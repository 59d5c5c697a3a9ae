package handlers

import (
	"context"
	"errors"

	"github.com/RMahshie/pants/internal/nutrition"
	"github.com/RMahshie/pants/internal/repository"
	"github.com/RMahshie/pants/pkg/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"
)

// DiaryHandler handles diary food HTTP requests
type DiaryHandler struct {
	repo         repository.DiaryRepository
	nutritionSvc nutrition.Service
}

// NewDiaryHandler creates a new diary handler
func NewDiaryHandler(repo repository.DiaryRepository, nutritionSvc nutrition.Service) *DiaryHandler {
	return &DiaryHandler{
		repo:         repo,
		nutritionSvc: nutritionSvc,
	}
}

// ListDiaryFoods returns the foods logged on a day
func (h *DiaryHandler) ListDiaryFoods(ctx context.Context, req *models.ListDiaryFoodsRequest) (*models.ListDiaryFoodsResponse, error) {
	day, err := parseDay(req.Date)
	if err != nil {
		return nil, err
	}

	foods, err := h.repo.ListByDay(ctx, day)
	if err != nil {
		return nil, storeError(err, "Diary food", "list")
	}

	resp := &models.ListDiaryFoodsResponse{}
	resp.Body.DiaryFoods = foods
	return resp, nil
}

// CreateDiaryFood logs an ingredient or a recipe on a day
func (h *DiaryHandler) CreateDiaryFood(ctx context.Context, req *models.CreateDiaryFoodRequest) (*models.DiaryFoodResponse, error) {
	body := req.Body
	if (body.IngredientID == nil) == (body.RecipeID == nil) {
		return nil, huma.Error400BadRequest("Exactly one of ingredient_id and recipe_id must be given")
	}
	if body.Quantity <= 0 {
		return nil, huma.Error400BadRequest("Quantity must be greater than zero")
	}

	day, err := parseDay(body.Day)
	if err != nil {
		return nil, err
	}
	ingredientID, err := normaliseID(body.IngredientID, "ingredient")
	if err != nil {
		return nil, err
	}
	recipeID, err := normaliseID(body.RecipeID, "recipe")
	if err != nil {
		return nil, err
	}

	food := &models.DiaryFood{
		Day:          day,
		Meal:         body.Meal,
		IngredientID: ingredientID,
		RecipeID:     recipeID,
		Quantity:     body.Quantity,
	}

	// resolving the food proves the ingredient or recipe exists
	if _, err := h.nutritionSvc.EntryNutrition(ctx, food); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, huma.Error400BadRequest("Diary food refers to an unknown ingredient or recipe", err)
		}
		return nil, huma.Error500InternalServerError("Failed to resolve diary food", err)
	}

	if err := h.repo.Create(ctx, food); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, huma.Error400BadRequest("Diary food refers to an unknown ingredient or recipe", err)
		}
		return nil, storeError(err, "Diary food", "create")
	}

	log.Info().
		Str("diaryFoodID", food.ID).
		Str("day", body.Day).
		Str("meal", food.Meal).
		Float64("quantity", food.Quantity).
		Msg("Diary food logged")
	return &models.DiaryFoodResponse{Body: food}, nil
}

// DeleteDiaryFood removes a logged food
func (h *DiaryHandler) DeleteDiaryFood(ctx context.Context, req *models.DiaryFoodIDRequest) (*struct{}, error) {
	id, err := parseID(req.ID, "diary food")
	if err != nil {
		return nil, err
	}

	if err := h.repo.Delete(ctx, id); err != nil {
		return nil, storeError(err, "Diary food", "delete")
	}

	log.Info().Str("diaryFoodID", id.String()).Msg("Diary food deleted")
	return nil, nil
}
