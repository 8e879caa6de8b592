package locations

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/IGN03/TMC/pkg/db/models"
	pkgerrors "github.com/IGN03/TMC/pkg/errors"
)

type locationRepository interface {
	List(ctx context.Context, activeOnly bool) ([]models.PickupLocation, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.PickupLocation, error)
	Create(ctx context.Context, loc models.PickupLocation) (*models.PickupLocation, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) error
	DeactivateAllTx(tx *gorm.DB) error
	ActivateTx(tx *gorm.DB, id uuid.UUID) error
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes pickup location operations.
type Service interface {
	List(ctx context.Context, includeInactive bool) ([]models.PickupLocation, error)
	Get(ctx context.Context, id uuid.UUID) (*models.PickupLocation, error)
	Create(ctx context.Context, input PickupLocationInput) (*models.PickupLocation, error)
	Update(ctx context.Context, id uuid.UUID, input PickupLocationInput) (*models.PickupLocation, error)
	Activate(ctx context.Context, id uuid.UUID) (*models.PickupLocation, error)
}

type service struct {
	repo locationRepository
	tx   txRunner
}

// NewService builds a pickup location service.
func NewService(repo locationRepository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("location repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx}, nil
}

func (s *service) List(ctx context.Context, includeInactive bool) ([]models.PickupLocation, error) {
	locs, err := s.repo.List(ctx, !includeInactive)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list pickup locations")
	}
	return locs, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.PickupLocation, error) {
	loc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "pickup location not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load pickup location")
	}
	return loc, nil
}

func (s *service) Create(ctx context.Context, input PickupLocationInput) (*models.PickupLocation, error) {
	loc := input.Normalize()
	if !loc.HasRequiredPostFields() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "address, contactInfo and name are required")
	}
	// New locations always start inactive; activation is its own operation.
	loc.Active = false

	created, err := s.repo.Create(ctx, loc)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create pickup location")
	}
	return created, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input PickupLocationInput) (*models.PickupLocation, error) {
	fields := input.UpdateMap()
	if len(fields) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no fields to update")
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "pickup location not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update pickup location")
	}

	return s.Get(ctx, id)
}

// Activate clears the currently active location and marks the target active
// in one transaction, so two racing activations can never leave two rows
// active.
func (s *service) Activate(ctx context.Context, id uuid.UUID) (*models.PickupLocation, error) {
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.repo.DeactivateAllTx(tx); err != nil {
			return err
		}
		return s.repo.ActivateTx(tx, id)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "pickup location not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "activate pickup location")
	}

	return s.Get(ctx, id)
}
