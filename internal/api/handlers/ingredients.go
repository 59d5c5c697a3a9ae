package handlers

import (
	"context"
	"strings"

	"github.com/RMahshie/pants/internal/repository"
	"github.com/RMahshie/pants/pkg/models"
	"github.com/rs/zerolog/log"
)

// IngredientHandler handles ingredient HTTP requests
type IngredientHandler struct {
	repo repository.IngredientRepository
}

// NewIngredientHandler creates a new ingredient handler
func NewIngredientHandler(repo repository.IngredientRepository) *IngredientHandler {
	return &IngredientHandler{repo: repo}
}

// ListIngredients returns all ingredients
func (h *IngredientHandler) ListIngredients(ctx context.Context, _ *struct{}) (*models.ListIngredientsResponse, error) {
	ingredients, err := h.repo.List(ctx)
	if err != nil {
		return nil, storeError(err, "Ingredient", "list")
	}

	resp := &models.ListIngredientsResponse{}
	resp.Body.Ingredients = ingredients
	return resp, nil
}

// CreateIngredient stores a new ingredient
func (h *IngredientHandler) CreateIngredient(ctx context.Context, req *models.CreateIngredientRequest) (*models.IngredientResponse, error) {
	ingredient := &models.Ingredient{
		Name:        strings.TrimSpace(req.Body.Name),
		Description: req.Body.Description,
		Nutrition:   req.Body.Nutrition,
	}

	if err := h.repo.Create(ctx, ingredient); err != nil {
		return nil, storeError(err, "Ingredient", "create")
	}

	log.Info().Str("ingredientID", ingredient.ID).Str("name", ingredient.Name).Msg("Ingredient created")
	return &models.IngredientResponse{Body: ingredient}, nil
}

// GetIngredient returns a single ingredient
func (h *IngredientHandler) GetIngredient(ctx context.Context, req *models.IngredientIDRequest) (*models.IngredientResponse, error) {
	id, err := parseID(req.ID, "ingredient")
	if err != nil {
		return nil, err
	}

	ingredient, err := h.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Ingredient", "get")
	}
	return &models.IngredientResponse{Body: ingredient}, nil
}

// UpdateIngredient replaces the name, description and nutrition of an ingredient
func (h *IngredientHandler) UpdateIngredient(ctx context.Context, req *models.UpdateIngredientRequest) (*models.IngredientResponse, error) {
	id, err := parseID(req.ID, "ingredient")
	if err != nil {
		return nil, err
	}

	ingredient, err := h.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Ingredient", "get")
	}
	ingredient.Name = strings.TrimSpace(req.Body.Name)
	ingredient.Description = req.Body.Description
	ingredient.Nutrition = req.Body.Nutrition

	if err := h.repo.Update(ctx, ingredient); err != nil {
		return nil, storeError(err, "Ingredient", "update")
	}

	log.Info().Str("ingredientID", ingredient.ID).Msg("Ingredient updated")
	return &models.IngredientResponse{Body: ingredient}, nil
}

// DeleteIngredient removes an ingredient no recipe or diary food refers to
func (h *IngredientHandler) DeleteIngredient(ctx context.Context, req *models.IngredientIDRequest) (*struct{}, error) {
	id, err := parseID(req.ID, "ingredient")
	if err != nil {
		return nil, err
	}

	if err := h.repo.Delete(ctx, id); err != nil {
		return nil, storeError(err, "Ingredient", "delete")
	}

	log.Info().Str("ingredientID", id.String()).Msg("Ingredient deleted")
	return nil, nil
}
