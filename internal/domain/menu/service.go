package menu

import (
	"context"
	"log/slog"
	"strings"

	apperrors "github.com/feastly/backend/pkg/errors"
)

// Service exposes menu retrieval.
type Service interface {
	GetMenu(ctx context.Context, restaurantID string) (Menu, error)
}

type service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService wires up the menu domain.
func NewService(repo Repository, logger *slog.Logger) Service {
	return &service{repo: repo, logger: logger.With("component", "menu.service")}
}

func (s *service) GetMenu(ctx context.Context, restaurantID string) (Menu, error) {
	id := strings.TrimSpace(restaurantID)
	if id == "" {
		return Menu{}, apperrors.Wrap("invalid_input", "restaurantId cannot be empty", nil)
	}
	m, found, err := s.repo.FindByRestaurantID(ctx, id)
	if err != nil {
		return Menu{}, apperrors.Wrap("menu_error", "menu lookup failed", err)
	}
	if !found {
		return Menu{}, apperrors.Wrap("menu_not_found", "no menu for restaurant "+id, nil)
	}
	return m, nil
}
