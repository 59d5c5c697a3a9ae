package export

import (
	"context"
	"fmt"
	"time"

	"github.com/RMahshie/pants/internal/nutrition"
	"github.com/RMahshie/pants/internal/storage"
	"github.com/RMahshie/pants/pkg/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Result locates an uploaded export
type Result struct {
	Key         string
	DownloadURL string
	ExpiresIn   time.Duration
}

// Service exports diary ranges to object storage
type Service interface {
	ExportRange(ctx context.Context, from, to time.Time) (*Result, error)
}

type service struct {
	nutrition nutrition.Service
	store     storage.ObjectStore
	urlExpiry time.Duration
}

// NewService creates an export service. Download URLs stay valid for urlExpiry.
func NewService(nutritionSvc nutrition.Service, store storage.ObjectStore, urlExpiry time.Duration) Service {
	return &service{
		nutrition: nutritionSvc,
		store:     store,
		urlExpiry: urlExpiry,
	}
}

// ExportRange builds a workbook of the days from..to, uploads it and
// returns a pre-signed link to it
func (s *service) ExportRange(ctx context.Context, from, to time.Time) (*Result, error) {
	summaries, err := s.nutrition.RangeSummaries(ctx, from, to)
	if err != nil {
		return nil, err
	}

	data, err := Workbook(summaries)
	if err != nil {
		return nil, fmt.Errorf("failed to build workbook: %w", err)
	}

	key := fmt.Sprintf("exports/%s_%s_%s.xlsx", from.Format(models.DateLayout), to.Format(models.DateLayout), uuid.New())
	log.Info().Str("key", key).Int("bytes", len(data)).Int("days", len(summaries)).Msg("Uploading diary export")

	if err := s.store.Upload(ctx, key, storage.ContentTypeXLSX, data); err != nil {
		return nil, err
	}

	url, err := s.store.GenerateDownloadURL(ctx, key, s.urlExpiry)
	if err != nil {
		return nil, err
	}

	return &Result{
		Key:         key,
		DownloadURL: url,
		ExpiresIn:   s.urlExpiry,
	}, nil
}
