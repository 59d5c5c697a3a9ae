package nutrition

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RMahshie/pants/internal/repository"
	"github.com/RMahshie/pants/pkg/models"
	"github.com/rs/zerolog/log"
)

// MaxRangeDays bounds RangeSummaries
const MaxRangeDays = 366

// ErrInvalidRange is returned for reversed or overly long day ranges
var ErrInvalidRange = errors.New("invalid day range")

// Service computes nutrition for recipes and diary days
type Service interface {
	RecipeNutrition(ctx context.Context, recipe *models.Recipe) (models.Nutrition, error)
	EntryNutrition(ctx context.Context, food *models.DiaryFood) (models.SummaryEntry, error)
	DaySummary(ctx context.Context, day time.Time) (*models.DaySummary, error)
	RangeSummaries(ctx context.Context, from, to time.Time) ([]*models.DaySummary, error)
}

type service struct {
	ingredients repository.IngredientRepository
	recipes     repository.RecipeRepository
	diary       repository.DiaryRepository
	targets     repository.TargetRepository
}

// NewService creates a nutrition service on top of the repositories
func NewService(ingredients repository.IngredientRepository, recipes repository.RecipeRepository, diary repository.DiaryRepository, targets repository.TargetRepository) Service {
	return &service{
		ingredients: ingredients,
		recipes:     recipes,
		diary:       diary,
		targets:     targets,
	}
}

// RecipeNutrition returns the nutrition of a single serving of recipe
func (s *service) RecipeNutrition(ctx context.Context, recipe *models.Recipe) (models.Nutrition, error) {
	r := s.newResolver()
	if err := r.loadIngredients(ctx, componentIDs(recipe)); err != nil {
		return models.Nutrition{}, err
	}
	return r.perServing(recipe)
}

// EntryNutrition resolves a single diary food to its name and nutrition
func (s *service) EntryNutrition(ctx context.Context, food *models.DiaryFood) (models.SummaryEntry, error) {
	r := s.newResolver()
	if err := r.load(ctx, []*models.DiaryFood{food}); err != nil {
		return models.SummaryEntry{}, err
	}
	return r.entry(food)
}

// DaySummary totals everything logged on day against the nutrient targets
func (s *service) DaySummary(ctx context.Context, day time.Time) (*models.DaySummary, error) {
	day = truncateDay(day)

	foods, err := s.diary.ListByDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list diary foods: %w", err)
	}

	summaries, err := s.summarise(ctx, day, day, foods)
	if err != nil {
		return nil, err
	}
	return summaries[0], nil
}

// RangeSummaries returns one summary per day from from to to inclusive
func (s *service) RangeSummaries(ctx context.Context, from, to time.Time) ([]*models.DaySummary, error) {
	from, to = truncateDay(from), truncateDay(to)
	if to.Before(from) {
		return nil, fmt.Errorf("%w: %s is before %s", ErrInvalidRange, to.Format(models.DateLayout), from.Format(models.DateLayout))
	}
	if days := int(to.Sub(from).Hours()/24) + 1; days > MaxRangeDays {
		return nil, fmt.Errorf("%w: %d days requested, at most %d allowed", ErrInvalidRange, days, MaxRangeDays)
	}

	foods, err := s.diary.ListRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list diary foods: %w", err)
	}

	return s.summarise(ctx, from, to, foods)
}

func (s *service) summarise(ctx context.Context, from, to time.Time, foods []*models.DiaryFood) ([]*models.DaySummary, error) {
	targets, err := s.targets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list targets: %w", err)
	}
	byNutrient := make(map[string]*models.Target, len(targets))
	for _, t := range targets {
		byNutrient[t.Nutrient] = t
	}

	r := s.newResolver()
	if err := r.load(ctx, foods); err != nil {
		return nil, err
	}

	var summaries []*models.DaySummary
	index := make(map[string]*models.DaySummary)
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		summary := &models.DaySummary{Day: day, Entries: []models.SummaryEntry{}}
		summaries = append(summaries, summary)
		index[day.Format(models.DateLayout)] = summary
	}

	for _, food := range foods {
		summary, ok := index[food.Day.Format(models.DateLayout)]
		if !ok {
			continue
		}
		entry, err := r.entry(food)
		if err != nil {
			return nil, err
		}
		summary.Entries = append(summary.Entries, entry)
		summary.Total = summary.Total.Add(entry.Nutrition)
	}

	for _, summary := range summaries {
		summary.Rows = rows(summary.Total, byNutrient)
	}

	log.Debug().
		Str("from", from.Format(models.DateLayout)).
		Str("to", to.Format(models.DateLayout)).
		Int("foods", len(foods)).
		Msg("Summarised diary days")

	return summaries, nil
}

// rows lays out the totals in catalogue order alongside their targets
func rows(total models.Nutrition, targets map[string]*models.Target) []models.SummaryRow {
	result := make([]models.SummaryRow, 0, len(models.Nutrients))
	for _, n := range models.Nutrients {
		value, _ := total.Get(n.Key)
		row := models.SummaryRow{
			Nutrient: n.Key,
			Label:    n.Label,
			Unit:     n.Unit,
			Value:    value,
		}
		if t, ok := targets[n.Key]; ok {
			row.Min = t.Min
			row.Max = t.Max
		}
		result = append(result, row)
	}
	return result
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func componentIDs(recipe *models.Recipe) []string {
	ids := make([]string, 0, len(recipe.Components))
	for _, c := range recipe.Components {
		ids = append(ids, c.IngredientID)
	}
	return ids
}
