package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/IGN03/TMC/pkg/db"
	"github.com/IGN03/TMC/pkg/db/models"
	dbtypes "github.com/IGN03/TMC/pkg/db/types"
	pkgerrors "github.com/IGN03/TMC/pkg/errors"
)

type accountRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) error
	ReplaceCart(ctx context.Context, id uuid.UUID, entries dbtypes.CartEntries) error
}

// Service exposes account profile and cart operations.
type Service interface {
	Get(ctx context.Context, id uuid.UUID) (*AccountDTO, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, input AccountInput) (*AccountDTO, error)
	GetCart(ctx context.Context, id uuid.UUID) (dbtypes.CartEntries, error)
	ReplaceCart(ctx context.Context, id uuid.UUID, raw []CartEntryInput) (dbtypes.CartEntries, error)
	ClearCart(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo accountRepository
}

// NewService builds an account service with the provided repository.
func NewService(repo accountRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("account repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*AccountDTO, error) {
	acct, err := s.loadAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(acct), nil
}

func (s *service) UpdateProfile(ctx context.Context, id uuid.UUID, input AccountInput) (*AccountDTO, error) {
	fields := input.UpdateMap()
	if len(fields) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no fields to update")
	}
	if email, ok := fields["email"].(string); ok && email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email cannot be empty")
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "account not found")
		}
		if db.IsUniqueViolation(err, "idx_accounts_email") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already in use")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update account")
	}

	return s.Get(ctx, id)
}

func (s *service) GetCart(ctx context.Context, id uuid.UUID) (dbtypes.CartEntries, error) {
	acct, err := s.loadAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	if acct.Cart == nil {
		return dbtypes.CartEntries{}, nil
	}
	return acct.Cart, nil
}

func (s *service) ReplaceCart(ctx context.Context, id uuid.UUID, raw []CartEntryInput) (dbtypes.CartEntries, error) {
	entries, err := ParseCartEntries(raw)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ReplaceCart(ctx, id, entries); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "account not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "replace cart")
	}
	return entries, nil
}

func (s *service) ClearCart(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.ReplaceCart(ctx, id, dbtypes.CartEntries{}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "account not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
	}
	return nil
}

func (s *service) loadAccount(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	acct, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "account not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load account")
	}
	return acct, nil
}
