package locations

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/IGN03/TMC/pkg/db/models"
)

// Repository handles pickup location persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to pickup location operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns pickup locations, optionally restricted to the active one.
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]models.PickupLocation, error) {
	query := r.db.WithContext(ctx).Order("name")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	var locs []models.PickupLocation
	if err := query.Find(&locs).Error; err != nil {
		return nil, err
	}
	return locs, nil
}

// FindByID loads a pickup location by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.PickupLocation, error) {
	var loc models.PickupLocation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&loc).Error; err != nil {
		return nil, err
	}
	return &loc, nil
}

// Create inserts the location using its persistable column map; the
// identifier is assigned here, never taken from the caller.
func (r *Repository) Create(ctx context.Context, loc models.PickupLocation) (*models.PickupLocation, error) {
	doc := loc.PersistableMap()
	doc["id"] = uuid.New()
	if err := r.db.WithContext(ctx).Model(&models.PickupLocation{}).Create(doc).Error; err != nil {
		return nil, err
	}
	loc.ID = doc["id"].(uuid.UUID)
	return &loc, nil
}

// Update applies the provided column values to the location.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	result := r.db.WithContext(ctx).
		Model(&models.PickupLocation{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeactivateAllTx clears the active flag on every location inside the
// provided transaction.
func (r *Repository) DeactivateAllTx(tx *gorm.DB) error {
	if tx == nil {
		return gorm.ErrInvalidTransaction
	}
	return tx.Model(&models.PickupLocation{}).
		Where("active = ?", true).
		Update("active", false).Error
}

// ActivateTx marks the target location active inside the provided
// transaction.
func (r *Repository) ActivateTx(tx *gorm.DB, id uuid.UUID) error {
	if tx == nil {
		return gorm.ErrInvalidTransaction
	}
	result := tx.Model(&models.PickupLocation{}).
		Where("id = ?", id).
		Update("active", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
