package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/IGN03/TMC/pkg/db/models"
	pkgerrors "github.com/IGN03/TMC/pkg/errors"
)

type accountReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	ClearCartTx(tx *gorm.DB, id uuid.UUID) error
}

type menuReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.MenuItem, error)
}

type locationReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.PickupLocation, error)
}

type orderWriter interface {
	CreateTx(tx *gorm.DB, order models.Order) (*models.Order, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Input carries the checkout parameters accompanying the stored cart.
type Input struct {
	PickupLocation *uuid.UUID
	Tip            *decimal.Decimal
}

// Service turns an account's stored cart into a priced, persisted order.
type Service interface {
	PlaceOrder(ctx context.Context, accountID uuid.UUID, input Input) (*models.Order, error)
}

type service struct {
	accounts  accountReader
	menu      menuReader
	locations locationReader
	orders    orderWriter
	tx        txRunner
	now       func() time.Time
}

// NewService builds the checkout service.
func NewService(accounts accountReader, menu menuReader, locations locationReader, orders orderWriter, tx txRunner) (Service, error) {
	if accounts == nil {
		return nil, fmt.Errorf("account repository required")
	}
	if menu == nil {
		return nil, fmt.Errorf("menu repository required")
	}
	if locations == nil {
		return nil, fmt.Errorf("location repository required")
	}
	if orders == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{
		accounts:  accounts,
		menu:      menu,
		locations: locations,
		orders:    orders,
		tx:        tx,
		now:       time.Now,
	}, nil
}

// PlaceOrder reads the account's cart, re-prices every entry against the
// current menu, and persists the order and the cart clear in one
// transaction. The order's items are the cart entries verbatim; only the
// cost is derived from the resolved menu items.
func (s *service) PlaceOrder(ctx context.Context, accountID uuid.UUID, input Input) (*models.Order, error) {
	if accountID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "account id required")
	}

	tip := decimal.Zero
	if input.Tip != nil {
		if input.Tip.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "tip cannot be negative")
		}
		tip = *input.Tip
	}

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "account not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load account")
	}

	if len(account.Cart) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeEmptyCart, "cart is empty")
	}

	if input.PickupLocation != nil {
		if _, err := s.locations.FindByID(ctx, *input.PickupLocation); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "pickup location not found")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load pickup location")
		}
	}

	cost := decimal.Zero
	for _, entry := range account.Cart {
		item, err := s.menu.FindByID(ctx, entry.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "menu item no longer available").
					WithDetails(map[string]any{"menuItemId": entry.MenuItemID})
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load menu item")
		}
		qty := entry.Quantity
		if qty < 1 {
			qty = 1
		}
		cost = cost.Add(item.Price.Mul(decimal.NewFromInt(int64(qty))))
	}

	order := models.Order{
		AccountID:      &account.ID,
		OrderTime:      s.now().UTC().Format(time.RFC3339),
		PickupLocation: input.PickupLocation,
		Items:          account.Cart,
		CostOfItems:    cost,
		Tip:            tip,
		Completed:      "",
	}
	if !order.HasRequiredPostFields() {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "composed order is not persistable")
	}

	var created *models.Order
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		var txErr error
		created, txErr = s.orders.CreateTx(tx, order)
		if txErr != nil {
			return txErr
		}
		return s.accounts.ClearCartTx(tx, account.ID)
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist order")
	}

	return created, nil
}
