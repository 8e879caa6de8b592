package menu

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/IGN03/TMC/pkg/db/models"
	pkgerrors "github.com/IGN03/TMC/pkg/errors"
)

type stubMenuRepo struct {
	items   []models.MenuItem
	item    *models.MenuItem
	created *models.MenuItem
	updated map[string]any
	err     error
}

func (s *stubMenuRepo) List(_ context.Context, activeOnly bool, category string) ([]models.MenuItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := []models.MenuItem{}
	for _, item := range s.items {
		if activeOnly && !item.Active {
			continue
		}
		if category != "" && item.Category != category {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *stubMenuRepo) FindByID(_ context.Context, id uuid.UUID) (*models.MenuItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.item == nil || s.item.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return s.item, nil
}

func (s *stubMenuRepo) Create(_ context.Context, item models.MenuItem) (*models.MenuItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	item.ID = uuid.New()
	s.created = &item
	return &item, nil
}

func (s *stubMenuRepo) Update(_ context.Context, id uuid.UUID, fields map[string]any) error {
	if s.err != nil {
		return s.err
	}
	if s.item == nil || s.item.ID != id {
		return gorm.ErrRecordNotFound
	}
	s.updated = fields
	return nil
}

func stringPtr(v string) *string          { return &v }
func boolPtr(v bool) *bool                { return &v }
func decPtr(v string) *decimal.Decimal    { d := decimal.RequireFromString(v); return &d }
func newService(t *testing.T, repo menuRepository) Service {
	t.Helper()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestNewServiceRequiresRepo(t *testing.T) {
	if _, err := NewService(nil); err == nil {
		t.Fatal("expected error creating service without repo")
	}
}

func TestListFiltersInactiveForPublicCallers(t *testing.T) {
	repo := &stubMenuRepo{items: []models.MenuItem{
		{Name: "espresso", Active: true},
		{Name: "retired latte", Active: false},
	}}
	svc := newService(t, repo)

	items, err := svc.List(context.Background(), false, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].Name != "espresso" {
		t.Fatalf("expected only active items, got %v", items)
	}

	items, err = svc.List(context.Background(), true, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected all items for staff, got %d", len(items))
	}
}

func TestListFiltersByCategory(t *testing.T) {
	repo := &stubMenuRepo{items: []models.MenuItem{
		{Name: "espresso", Active: true, Category: "Drinks"},
		{Name: "burger", Active: true, Category: "Main"},
	}}
	svc := newService(t, repo)

	items, err := svc.List(context.Background(), false, "Drinks")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].Name != "espresso" {
		t.Fatalf("expected only drinks, got %v", items)
	}
}

func TestCreateRejectsMissingRequiredFields(t *testing.T) {
	svc := newService(t, &stubMenuRepo{})

	_, err := svc.Create(context.Background(), MenuItemInput{Name: stringPtr("espresso")})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateAppliesDefaults(t *testing.T) {
	repo := &stubMenuRepo{}
	svc := newService(t, repo)

	created, err := svc.Create(context.Background(), MenuItemInput{
		Name:        stringPtr("espresso"),
		Price:       decPtr("3.50"),
		Description: stringPtr("double shot"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !created.Active {
		t.Fatal("expected active default of true")
	}
	if created.Category != "Main" {
		t.Fatalf("expected category default Main, got %s", created.Category)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected repo-assigned id")
	}
}

func TestGetNotFound(t *testing.T) {
	svc := newService(t, &stubMenuRepo{})

	_, err := svc.Get(context.Background(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetDependencyError(t *testing.T) {
	svc := newService(t, &stubMenuRepo{err: errors.New("boom")})

	_, err := svc.Get(context.Background(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestUpdateOnlyTouchesProvidedFields(t *testing.T) {
	item := &models.MenuItem{ID: uuid.New(), Name: "espresso", Active: true}
	repo := &stubMenuRepo{item: item}
	svc := newService(t, repo)

	_, err := svc.Update(context.Background(), item.ID, MenuItemInput{Active: boolPtr(false)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(repo.updated) != 1 {
		t.Fatalf("expected single updated column, got %v", repo.updated)
	}
	if repo.updated["active"] != false {
		t.Fatalf("expected active=false, got %v", repo.updated["active"])
	}
}

func TestUpdateRejectsEmptyInput(t *testing.T) {
	svc := newService(t, &stubMenuRepo{})

	_, err := svc.Update(context.Background(), uuid.New(), MenuItemInput{})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
