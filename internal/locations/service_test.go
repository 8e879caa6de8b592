package locations

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/IGN03/TMC/pkg/db/models"
	pkgerrors "github.com/IGN03/TMC/pkg/errors"
)

type stubLocationRepo struct {
	locs        map[uuid.UUID]*models.PickupLocation
	err         error
	deactivated bool
}

func newStubLocationRepo(locs ...*models.PickupLocation) *stubLocationRepo {
	repo := &stubLocationRepo{locs: map[uuid.UUID]*models.PickupLocation{}}
	for _, loc := range locs {
		repo.locs[loc.ID] = loc
	}
	return repo
}

func (s *stubLocationRepo) List(_ context.Context, activeOnly bool) ([]models.PickupLocation, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := []models.PickupLocation{}
	for _, loc := range s.locs {
		if !activeOnly || loc.Active {
			out = append(out, *loc)
		}
	}
	return out, nil
}

func (s *stubLocationRepo) FindByID(_ context.Context, id uuid.UUID) (*models.PickupLocation, error) {
	if s.err != nil {
		return nil, s.err
	}
	loc, ok := s.locs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return loc, nil
}

func (s *stubLocationRepo) Create(_ context.Context, loc models.PickupLocation) (*models.PickupLocation, error) {
	if s.err != nil {
		return nil, s.err
	}
	loc.ID = uuid.New()
	s.locs[loc.ID] = &loc
	return &loc, nil
}

func (s *stubLocationRepo) Update(_ context.Context, id uuid.UUID, fields map[string]any) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.locs[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	if name, ok := fields["name"].(string); ok {
		s.locs[id].Name = name
	}
	return nil
}

func (s *stubLocationRepo) DeactivateAllTx(_ *gorm.DB) error {
	if s.err != nil {
		return s.err
	}
	for _, loc := range s.locs {
		loc.Active = false
	}
	s.deactivated = true
	return nil
}

func (s *stubLocationRepo) ActivateTx(_ *gorm.DB, id uuid.UUID) error {
	if s.err != nil {
		return s.err
	}
	loc, ok := s.locs[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	loc.Active = true
	return nil
}

type stubTxRunner struct{}

func (stubTxRunner) WithTx(_ context.Context, fn func(tx *gorm.DB) error) error {
	return fn(&gorm.DB{})
}

func stringPtr(v string) *string { return &v }

func newService(t *testing.T, repo locationRepository) Service {
	t.Helper()
	svc, err := NewService(repo, stubTxRunner{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestNewServiceRequiresDeps(t *testing.T) {
	if _, err := NewService(nil, stubTxRunner{}); err == nil {
		t.Fatal("expected error without repo")
	}
	if _, err := NewService(newStubLocationRepo(), nil); err == nil {
		t.Fatal("expected error without tx runner")
	}
}

func TestCreateRequiresFieldsAndStartsInactive(t *testing.T) {
	repo := newStubLocationRepo()
	svc := newService(t, repo)

	_, err := svc.Create(context.Background(), PickupLocationInput{Name: stringPtr("Downtown")})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}

	active := true
	created, err := svc.Create(context.Background(), PickupLocationInput{
		Address:     stringPtr("1 Main St"),
		ContactInfo: stringPtr("555-0100"),
		Name:        stringPtr("Downtown"),
		Active:      &active,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Active {
		t.Fatal("new locations must start inactive even when the input says otherwise")
	}
}

func TestActivateSwitchesActiveLocation(t *testing.T) {
	locA := &models.PickupLocation{ID: uuid.New(), Name: "A", Active: true}
	locB := &models.PickupLocation{ID: uuid.New(), Name: "B", Active: false}
	repo := newStubLocationRepo(locA, locB)
	svc := newService(t, repo)

	activated, err := svc.Activate(context.Background(), locB.ID)
	if err != nil {
		t.Fatalf("activate: %v", err)
	}
	if !activated.Active {
		t.Fatal("target should be active")
	}
	if locA.Active {
		t.Fatal("previously active location should be cleared")
	}
	if !repo.deactivated {
		t.Fatal("expected clear-all to run before activation")
	}
}

func TestActivateUnknownLocation(t *testing.T) {
	svc := newService(t, newStubLocationRepo())

	_, err := svc.Activate(context.Background(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListDependencyError(t *testing.T) {
	repo := newStubLocationRepo()
	repo.err = errors.New("boom")
	svc := newService(t, repo)

	_, err := svc.List(context.Background(), false)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestUpdateCannotTouchActiveFlag(t *testing.T) {
	loc := &models.PickupLocation{ID: uuid.New(), Name: "A"}
	repo := newStubLocationRepo(loc)
	svc := newService(t, repo)

	active := true
	_, err := svc.Update(context.Background(), loc.ID, PickupLocationInput{Active: &active})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for active-only update, got %v", err)
	}
}
