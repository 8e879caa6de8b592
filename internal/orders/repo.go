package orders

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/IGN03/TMC/pkg/db/models"
)

// Repository handles order persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to order operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateTx inserts the order inside the provided transaction; the identifier
// is assigned here, never taken from the caller.
func (r *Repository) CreateTx(tx *gorm.DB, order models.Order) (*models.Order, error) {
	if tx == nil {
		return nil, gorm.ErrInvalidTransaction
	}
	doc := order.PersistableMap()
	doc["id"] = uuid.New()
	if err := tx.Model(&models.Order{}).Create(doc).Error; err != nil {
		return nil, err
	}
	order.ID = doc["id"].(uuid.UUID)
	return &order, nil
}

// FindByID loads an order by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// ListByAccount returns the account's orders, newest first.
func (r *Repository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("order_time DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListOpen returns orders that have not been marked completed.
func (r *Repository) ListOpen(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Where("completed = ''").
		Order("order_time").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// MarkCompleted stamps the order with the completion time. Reports false when
// the order does not exist or was already completed.
func (r *Repository) MarkCompleted(ctx context.Context, id uuid.UUID, completedAt string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ? AND completed = ''", id).
		Update("completed", completedAt)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
