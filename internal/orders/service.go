package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/IGN03/TMC/pkg/db/models"
	pkgerrors "github.com/IGN03/TMC/pkg/errors"
)

type orderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]models.Order, error)
	ListOpen(ctx context.Context) ([]models.Order, error)
	MarkCompleted(ctx context.Context, id uuid.UUID, completedAt string) (bool, error)
}

// Service exposes order read and fulfillment operations. Order creation goes
// through the checkout service.
type Service interface {
	ListForAccount(ctx context.Context, accountID uuid.UUID) ([]models.Order, error)
	ListOpen(ctx context.Context) ([]models.Order, error)
	Get(ctx context.Context, requesterID uuid.UUID, requesterStaff bool, id uuid.UUID) (*models.Order, error)
	Complete(ctx context.Context, id uuid.UUID) (*models.Order, error)
}

type service struct {
	repo orderRepository
	now  func() time.Time
}

// NewService builds an order service with the provided repository.
func NewService(repo orderRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

func (s *service) ListForAccount(ctx context.Context, accountID uuid.UUID) ([]models.Order, error) {
	orders, err := s.repo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return orders, nil
}

func (s *service) ListOpen(ctx context.Context) ([]models.Order, error) {
	orders, err := s.repo.ListOpen(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list open orders")
	}
	return orders, nil
}

// Get returns the order when the requester owns it or is staff.
func (s *service) Get(ctx context.Context, requesterID uuid.UUID, requesterStaff bool, id uuid.UUID) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}

	if !requesterStaff {
		if order.AccountID == nil || *order.AccountID != requesterID {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
	}
	return order, nil
}

// Complete stamps the order as fulfilled. The update is conditional on the
// order still being open, so a double completion surfaces as a state
// conflict instead of silently overwriting the first timestamp.
func (s *service) Complete(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	completedAt := s.now().UTC().Format(time.RFC3339)
	done, err := s.repo.MarkCompleted(ctx, id, completedAt)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "complete order")
	}
	if !done {
		order, err := s.repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
		}
		if order.IsCompleted() {
			return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "order already completed")
		}
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return order, nil
}
