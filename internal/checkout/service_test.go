package checkout

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/IGN03/TMC/pkg/db/models"
	dbtypes "github.com/IGN03/TMC/pkg/db/types"
	pkgerrors "github.com/IGN03/TMC/pkg/errors"
)

type stubAccounts struct {
	acct        *models.Account
	cartCleared bool
}

func (s *stubAccounts) FindByID(_ context.Context, id uuid.UUID) (*models.Account, error) {
	if s.acct == nil || s.acct.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return s.acct, nil
}

func (s *stubAccounts) ClearCartTx(_ *gorm.DB, id uuid.UUID) error {
	if s.acct == nil || s.acct.ID != id {
		return gorm.ErrRecordNotFound
	}
	s.acct.Cart = dbtypes.CartEntries{}
	s.cartCleared = true
	return nil
}

type stubMenu struct {
	items   map[uuid.UUID]*models.MenuItem
	fetches int
}

func (s *stubMenu) FindByID(_ context.Context, id uuid.UUID) (*models.MenuItem, error) {
	s.fetches++
	item, ok := s.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

type stubLocations struct {
	loc *models.PickupLocation
}

func (s *stubLocations) FindByID(_ context.Context, id uuid.UUID) (*models.PickupLocation, error) {
	if s.loc == nil || s.loc.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return s.loc, nil
}

type stubOrders struct {
	created *models.Order
	err     error
}

func (s *stubOrders) CreateTx(_ *gorm.DB, order models.Order) (*models.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	order.ID = uuid.New()
	s.created = &order
	return &order, nil
}

type stubTx struct{}

func (stubTx) WithTx(_ context.Context, fn func(tx *gorm.DB) error) error {
	return fn(&gorm.DB{})
}

type fixture struct {
	accounts  *stubAccounts
	menu      *stubMenu
	locations *stubLocations
	orders    *stubOrders
	svc       Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		accounts:  &stubAccounts{},
		menu:      &stubMenu{items: map[uuid.UUID]*models.MenuItem{}},
		locations: &stubLocations{},
		orders:    &stubOrders{},
	}
	svc, err := NewService(f.accounts, f.menu, f.locations, f.orders, stubTx{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	f.svc = svc
	return f
}

func (f *fixture) addMenuItem(price string) uuid.UUID {
	item := &models.MenuItem{
		ID:          uuid.New(),
		Name:        "item",
		Price:       decimal.RequireFromString(price),
		Description: "desc",
		Active:      true,
	}
	f.menu.items[item.ID] = item
	return item.ID
}

func (f *fixture) seedAccount(cart dbtypes.CartEntries) *models.Account {
	f.accounts.acct = &models.Account{
		ID:    uuid.New(),
		Name:  "Ada",
		Email: "ada@example.com",
		Cart:  cart,
	}
	return f.accounts.acct
}

func decPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func TestPlaceOrderSumsExactPrices(t *testing.T) {
	f := newFixture(t)
	idA := f.addMenuItem("9.99")
	idB := f.addMenuItem("25.00")
	idC := f.addMenuItem("25.00")
	acct := f.seedAccount(dbtypes.CartEntries{
		{MenuItemID: idA, Quantity: 1},
		{MenuItemID: idB, Quantity: 1},
		{MenuItemID: idC, Quantity: 1},
	})

	order, err := f.svc.PlaceOrder(context.Background(), acct.ID, Input{})
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if !order.CostOfItems.Equal(decimal.RequireFromString("59.99")) {
		t.Fatalf("expected cost 59.99, got %s", order.CostOfItems)
	}
	if len(order.Items) != 3 {
		t.Fatalf("expected items to preserve the cart, got %d entries", len(order.Items))
	}
	if order.Items[0].MenuItemID != idA {
		t.Fatal("expected cart order preserved")
	}
	if order.ID == uuid.Nil {
		t.Fatal("expected assigned order id")
	}
}

func TestPlaceOrderMultipliesByQuantity(t *testing.T) {
	f := newFixture(t)
	id := f.addMenuItem("3.50")
	acct := f.seedAccount(dbtypes.CartEntries{{MenuItemID: id, Quantity: 4}})

	order, err := f.svc.PlaceOrder(context.Background(), acct.ID, Input{Tip: decPtr("2.00")})
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if !order.CostOfItems.Equal(decimal.RequireFromString("14.00")) {
		t.Fatalf("expected cost 14.00, got %s", order.CostOfItems)
	}
	if !order.Tip.Equal(decimal.RequireFromString("2.00")) {
		t.Fatalf("expected tip 2.00, got %s", order.Tip)
	}
}

func TestPlaceOrderClearsCartWithOrderWrite(t *testing.T) {
	f := newFixture(t)
	id := f.addMenuItem("5.00")
	acct := f.seedAccount(dbtypes.CartEntries{{MenuItemID: id, Quantity: 1}})

	if _, err := f.svc.PlaceOrder(context.Background(), acct.ID, Input{}); err != nil {
		t.Fatalf("place order: %v", err)
	}
	if !f.accounts.cartCleared {
		t.Fatal("expected cart to be cleared in the same transaction")
	}
	if len(f.accounts.acct.Cart) != 0 {
		t.Fatal("expected empty cart after checkout")
	}
}

func TestPlaceOrderEmptyCartFailsBeforeAnyMenuFetch(t *testing.T) {
	f := newFixture(t)
	acct := f.seedAccount(dbtypes.CartEntries{})

	_, err := f.svc.PlaceOrder(context.Background(), acct.ID, Input{})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeEmptyCart {
		t.Fatalf("expected empty cart error, got %v", err)
	}
	if f.menu.fetches != 0 {
		t.Fatalf("expected no menu fetches, got %d", f.menu.fetches)
	}
	if f.orders.created != nil {
		t.Fatal("no order should be created")
	}
}

func TestPlaceOrderRejectsNilAccountID(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.PlaceOrder(context.Background(), uuid.Nil, Input{})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPlaceOrderUnknownAccount(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.PlaceOrder(context.Background(), uuid.New(), Input{})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPlaceOrderUnresolvableCartEntry(t *testing.T) {
	f := newFixture(t)
	acct := f.seedAccount(dbtypes.CartEntries{{MenuItemID: uuid.New(), Quantity: 1}})

	_, err := f.svc.PlaceOrder(context.Background(), acct.ID, Input{})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for stale cart entry, got %v", err)
	}
	if f.orders.created != nil {
		t.Fatal("no order should be created when an entry cannot be resolved")
	}
}

func TestPlaceOrderUnknownPickupLocation(t *testing.T) {
	f := newFixture(t)
	id := f.addMenuItem("5.00")
	acct := f.seedAccount(dbtypes.CartEntries{{MenuItemID: id, Quantity: 1}})

	unknown := uuid.New()
	_, err := f.svc.PlaceOrder(context.Background(), acct.ID, Input{PickupLocation: &unknown})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for pickup location, got %v", err)
	}
}

func TestPlaceOrderRejectsNegativeTip(t *testing.T) {
	f := newFixture(t)
	id := f.addMenuItem("5.00")
	acct := f.seedAccount(dbtypes.CartEntries{{MenuItemID: id, Quantity: 1}})

	_, err := f.svc.PlaceOrder(context.Background(), acct.ID, Input{Tip: decPtr("-1.00")})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPlaceOrderValidPickupLocation(t *testing.T) {
	f := newFixture(t)
	id := f.addMenuItem("5.00")
	acct := f.seedAccount(dbtypes.CartEntries{{MenuItemID: id, Quantity: 1}})
	f.locations.loc = &models.PickupLocation{ID: uuid.New(), Name: "Downtown", Active: true}

	order, err := f.svc.PlaceOrder(context.Background(), acct.ID, Input{PickupLocation: &f.locations.loc.ID})
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if order.PickupLocation == nil || *order.PickupLocation != f.locations.loc.ID {
		t.Fatal("expected pickup location recorded on the order")
	}
}
