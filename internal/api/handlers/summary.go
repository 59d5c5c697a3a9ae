package handlers

import (
	"context"
	"errors"

	"github.com/RMahshie/pants/internal/export"
	"github.com/RMahshie/pants/internal/nutrition"
	"github.com/RMahshie/pants/pkg/models"
	"github.com/RMahshie/pants/pkg/visuals"
	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"
)

// SummaryHandler handles diary summary and export HTTP requests
type SummaryHandler struct {
	nutritionSvc nutrition.Service
	exportSvc    export.Service
}

// NewSummaryHandler creates a new summary handler. A nil exportSvc disables exports.
func NewSummaryHandler(nutritionSvc nutrition.Service, exportSvc export.Service) *SummaryHandler {
	return &SummaryHandler{
		nutritionSvc: nutritionSvc,
		exportSvc:    exportSvc,
	}
}

// GetDaySummary returns the totals of a day against the targets
func (h *SummaryHandler) GetDaySummary(ctx context.Context, req *models.DaySummaryRequest) (*models.DaySummaryResponse, error) {
	day, err := parseDay(req.Date)
	if err != nil {
		return nil, err
	}

	summary, err := h.nutritionSvc.DaySummary(ctx, day)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to summarise day", err)
	}

	resp := &models.DaySummaryResponse{}
	resp.Body.Day = summary.Day.Format(models.DateLayout)
	resp.Body.Entries = summary.Entries
	resp.Body.Total = summary.Total
	resp.Body.Rows = make([]models.SummaryRowView, 0, len(summary.Rows))
	for _, row := range summary.Rows {
		resp.Body.Rows = append(resp.Body.Rows, models.SummaryRowView{
			SummaryRow: row,
			Display:    string(visuals.ValMinMax(row.Value, row.Min, row.Max)),
			Percent:    visuals.PercentRange(row.Value, row.Min, row.Max),
		})
	}
	return resp, nil
}

// ExportDiary writes a range of days to a spreadsheet and returns its download URL
func (h *SummaryHandler) ExportDiary(ctx context.Context, req *models.ExportDiaryRequest) (*models.ExportDiaryResponse, error) {
	if h.exportSvc == nil {
		return nil, huma.Error503ServiceUnavailable("Exports are not configured")
	}

	from, err := parseDay(req.Body.From)
	if err != nil {
		return nil, err
	}
	to, err := parseDay(req.Body.To)
	if err != nil {
		return nil, err
	}

	log.Info().Str("from", req.Body.From).Str("to", req.Body.To).Msg("Diary export requested")
	result, err := h.exportSvc.ExportRange(ctx, from, to)
	if err != nil {
		if errors.Is(err, nutrition.ErrInvalidRange) {
			return nil, huma.Error400BadRequest(err.Error(), err)
		}
		return nil, huma.Error500InternalServerError("Failed to export diary", err)
	}

	resp := &models.ExportDiaryResponse{}
	resp.Body.Key = result.Key
	resp.Body.DownloadURL = result.DownloadURL
	resp.Body.ExpiresIn = int(result.ExpiresIn.Seconds())
	return resp, nil
}
