package menu

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/IGN03/TMC/pkg/db/models"
	pkgerrors "github.com/IGN03/TMC/pkg/errors"
)

type menuRepository interface {
	List(ctx context.Context, activeOnly bool, category string) ([]models.MenuItem, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.MenuItem, error)
	Create(ctx context.Context, item models.MenuItem) (*models.MenuItem, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) error
}

// Service exposes menu operations.
type Service interface {
	List(ctx context.Context, includeInactive bool, category string) ([]models.MenuItem, error)
	Get(ctx context.Context, id uuid.UUID) (*models.MenuItem, error)
	Create(ctx context.Context, input MenuItemInput) (*models.MenuItem, error)
	Update(ctx context.Context, id uuid.UUID, input MenuItemInput) (*models.MenuItem, error)
}

type service struct {
	repo menuRepository
}

// NewService builds a menu service with the provided repository.
func NewService(repo menuRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("menu repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, includeInactive bool, category string) ([]models.MenuItem, error) {
	items, err := s.repo.List(ctx, !includeInactive, category)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list menu items")
	}
	return items, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.MenuItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load menu item")
	}
	return item, nil
}

func (s *service) Create(ctx context.Context, input MenuItemInput) (*models.MenuItem, error) {
	item := input.Normalize()
	if !item.HasRequiredPostFields() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name, price and description are required")
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create menu item")
	}
	return created, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input MenuItemInput) (*models.MenuItem, error) {
	fields := input.UpdateMap()
	if len(fields) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no fields to update")
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update menu item")
	}

	return s.Get(ctx, id)
}
