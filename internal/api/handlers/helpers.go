package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/RMahshie/pants/internal/repository"
	"github.com/RMahshie/pants/pkg/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
)

// parseID parses a path ID, answering 400 with the kind of record in the message
func parseID(id, kind string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return uuid.Nil, huma.Error400BadRequest("Invalid "+kind+" ID", err)
	}
	return parsed, nil
}

// normaliseID returns the canonical lower-case form of a referenced ID
func normaliseID(id *string, kind string) (*string, error) {
	if id == nil {
		return nil, nil
	}
	parsed, err := parseID(*id, kind)
	if err != nil {
		return nil, err
	}
	s := parsed.String()
	return &s, nil
}

func parseDay(s string) (time.Time, error) {
	day, err := models.ParseDay(strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, huma.Error400BadRequest("Invalid date, expected YYYY-MM-DD", err)
	}
	return day, nil
}

// storeError maps repository errors to HTTP errors
func storeError(err error, kind, action string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return huma.Error404NotFound(kind+" not found", err)
	case errors.Is(err, repository.ErrInUse):
		return huma.Error409Conflict(kind+" is still in use", err)
	}
	return huma.Error500InternalServerError("Failed to "+action+" "+strings.ToLower(kind), err)
}
