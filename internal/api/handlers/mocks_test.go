package handlers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/RMahshie/pants/internal/export"
	"github.com/RMahshie/pants/pkg/models"
	"github.com/danielgtaylor/huma/v2"
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

// MockExportService implements export.Service for testing
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) ExportRange(ctx context.Context, from, to time.Time) (*export.Result, error) {
	args := m.Called(ctx, from, to)
	result, _ := args.Get(0).(*export.Result)
	return result, args.Error(1)
}

// statusOf returns the HTTP status carried by a huma error
func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.True(t, errors.As(err, &se), "expected a huma status error, got %v", err)
	return se.GetStatus()
}

func ptr[T any](v T) *T {
	return &v
}
