package handlers

import (
	"context"

	"github.com/RMahshie/pants/internal/repository"
	"github.com/RMahshie/pants/pkg/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"
)

// TargetHandler handles nutrient target HTTP requests
type TargetHandler struct {
	repo repository.TargetRepository
}

// NewTargetHandler creates a new target handler
func NewTargetHandler(repo repository.TargetRepository) *TargetHandler {
	return &TargetHandler{repo: repo}
}

// ListTargets returns all configured targets
func (h *TargetHandler) ListTargets(ctx context.Context, _ *struct{}) (*models.ListTargetsResponse, error) {
	targets, err := h.repo.List(ctx)
	if err != nil {
		return nil, storeError(err, "Target", "list")
	}

	resp := &models.ListTargetsResponse{}
	resp.Body.Targets = targets
	return resp, nil
}

// PutTarget sets the daily minimum and maximum of a nutrient
func (h *TargetHandler) PutTarget(ctx context.Context, req *models.PutTargetRequest) (*models.TargetResponse, error) {
	target := &models.Target{
		Nutrient: req.Nutrient,
		Min:      req.Body.Min,
		Max:      req.Body.Max,
	}
	if err := target.Validate(); err != nil {
		return nil, huma.Error400BadRequest(err.Error(), err)
	}

	if err := h.repo.Upsert(ctx, target); err != nil {
		return nil, storeError(err, "Target", "save")
	}

	log.Info().Str("nutrient", target.Nutrient).Msg("Target saved")
	return &models.TargetResponse{Body: target}, nil
}

// DeleteTarget removes the target of a nutrient
func (h *TargetHandler) DeleteTarget(ctx context.Context, req *models.TargetNutrientRequest) (*struct{}, error) {
	if _, ok := models.LookupNutrient(req.Nutrient); !ok {
		return nil, huma.Error400BadRequest("Unknown nutrient " + req.Nutrient)
	}

	if err := h.repo.Delete(ctx, req.Nutrient); err != nil {
		return nil, storeError(err, "Target", "delete")
	}

	log.Info().Str("nutrient", req.Nutrient).Msg("Target deleted")
	return nil, nil
}
