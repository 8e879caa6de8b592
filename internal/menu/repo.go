package menu

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/IGN03/TMC/pkg/db/models"
)

// Repository handles menu item persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to menu item operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns menu items, optionally restricted to active ones or a single
// category.
func (r *Repository) List(ctx context.Context, activeOnly bool, category string) ([]models.MenuItem, error) {
	query := r.db.WithContext(ctx).Order("category, name")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}
	var items []models.MenuItem
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID loads a menu item by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Create inserts the item using its persistable column map; the identifier is
// assigned here, never taken from the caller.
func (r *Repository) Create(ctx context.Context, item models.MenuItem) (*models.MenuItem, error) {
	doc := item.PersistableMap()
	doc["id"] = uuid.New()
	if err := r.db.WithContext(ctx).Model(&models.MenuItem{}).Create(doc).Error; err != nil {
		return nil, err
	}
	item.ID = doc["id"].(uuid.UUID)
	return &item, nil
}

// Update applies the provided column values to the item.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	result := r.db.WithContext(ctx).
		Model(&models.MenuItem{}).
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
