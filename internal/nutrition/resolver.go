package nutrition

import (
	"context"
	"fmt"

	"github.com/RMahshie/pants/internal/repository"
	"github.com/RMahshie/pants/pkg/models"
	"github.com/google/uuid"
)

// resolver loads the ingredients and recipes a set of diary foods refers
// to, so that each is fetched once
type resolver struct {
	svc         *service
	ingredients map[string]*models.Ingredient
	recipes     map[string]*models.Recipe
}

func (s *service) newResolver() *resolver {
	return &resolver{
		svc:         s,
		ingredients: make(map[string]*models.Ingredient),
		recipes:     make(map[string]*models.Recipe),
	}
}

func (r *resolver) load(ctx context.Context, foods []*models.DiaryFood) error {
	var ingredientIDs []string
	for _, food := range foods {
		switch {
		case food.IngredientID != nil:
			ingredientIDs = append(ingredientIDs, *food.IngredientID)
		case food.RecipeID != nil:
			recipe, err := r.recipe(ctx, *food.RecipeID)
			if err != nil {
				return err
			}
			ingredientIDs = append(ingredientIDs, componentIDs(recipe)...)
		}
	}
	return r.loadIngredients(ctx, ingredientIDs)
}

func (r *resolver) recipe(ctx context.Context, id string) (*models.Recipe, error) {
	if recipe, ok := r.recipes[id]; ok {
		return recipe, nil
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("recipe %q: %w", id, err)
	}
	recipe, err := r.svc.recipes.GetByID(ctx, parsed)
	if err != nil {
		return nil, fmt.Errorf("recipe %s: %w", id, err)
	}
	r.recipes[id] = recipe
	return recipe, nil
}

func (r *resolver) loadIngredients(ctx context.Context, ids []string) error {
	var missing []uuid.UUID
	seen := make(map[string]bool)
	for _, id := range ids {
		if _, ok := r.ingredients[id]; ok || seen[id] {
			continue
		}
		seen[id] = true
		parsed, err := uuid.Parse(id)
		if err != nil {
			return fmt.Errorf("ingredient %q: %w", id, err)
		}
		missing = append(missing, parsed)
	}
	if len(missing) == 0 {
		return nil
	}

	found, err := r.svc.ingredients.GetByIDs(ctx, missing)
	if err != nil {
		return fmt.Errorf("failed to load ingredients: %w", err)
	}
	for _, id := range missing {
		ingredient, ok := found[id]
		if !ok {
			return fmt.Errorf("ingredient %s: %w", id, repository.ErrNotFound)
		}
		r.ingredients[id.String()] = ingredient
	}
	return nil
}

// perServing sums the weighed ingredients and divides by the servings
func (r *resolver) perServing(recipe *models.Recipe) (models.Nutrition, error) {
	var total models.Nutrition
	for _, c := range recipe.Components {
		ingredient, ok := r.ingredients[c.IngredientID]
		if !ok {
			return models.Nutrition{}, fmt.Errorf("ingredient %s: %w", c.IngredientID, repository.ErrNotFound)
		}
		total = total.Add(ingredient.Nutrition.Scale(c.Grams / 100))
	}
	if recipe.Servings <= 0 {
		return models.Nutrition{}, fmt.Errorf("recipe %s has %v servings", recipe.ID, recipe.Servings)
	}
	return total.Scale(1 / recipe.Servings), nil
}

func (r *resolver) entry(food *models.DiaryFood) (models.SummaryEntry, error) {
	switch {
	case food.IngredientID != nil:
		ingredient, ok := r.ingredients[*food.IngredientID]
		if !ok {
			return models.SummaryEntry{}, fmt.Errorf("ingredient %s: %w", *food.IngredientID, repository.ErrNotFound)
		}
		return models.SummaryEntry{
			Food:      food,
			Name:      ingredient.Name,
			Unit:      "g",
			Nutrition: ingredient.Nutrition.Scale(food.Quantity / 100),
		}, nil
	case food.RecipeID != nil:
		recipe, ok := r.recipes[*food.RecipeID]
		if !ok {
			return models.SummaryEntry{}, fmt.Errorf("recipe %s: %w", *food.RecipeID, repository.ErrNotFound)
		}
		perServing, err := r.perServing(recipe)
		if err != nil {
			return models.SummaryEntry{}, err
		}
		return models.SummaryEntry{
			Food:      food,
			Name:      recipe.Name,
			Unit:      "servings",
			Nutrition: perServing.Scale(food.Quantity),
		}, nil
	}
	return models.SummaryEntry{}, fmt.Errorf("diary food %s has neither ingredient nor recipe", food.ID)
}
