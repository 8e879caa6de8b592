package accounts

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/IGN03/TMC/pkg/db/models"
	dbtypes "github.com/IGN03/TMC/pkg/db/types"
)

// Repository handles account persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to account operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByID loads an account by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	var acct models.Account
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&acct).Error; err != nil {
		return nil, err
	}
	return &acct, nil
}

// FindByEmail loads an account by email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	var acct models.Account
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&acct).Error; err != nil {
		return nil, err
	}
	return &acct, nil
}

// Create inserts the account using its persistable column map; the identifier
// is assigned here, never taken from the caller.
func (r *Repository) Create(ctx context.Context, acct models.Account) (*models.Account, error) {
	doc := acct.PersistableMap()
	doc["id"] = uuid.New()
	if err := r.db.WithContext(ctx).Model(&models.Account{}).Create(doc).Error; err != nil {
		return nil, err
	}
	acct.ID = doc["id"].(uuid.UUID)
	return &acct, nil
}

// Update applies the provided column values to the account.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	result := r.db.WithContext(ctx).
		Model(&models.Account{}).
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

// ReplaceCart overwrites the account's cart.
func (r *Repository) ReplaceCart(ctx context.Context, id uuid.UUID, entries dbtypes.CartEntries) error {
	return r.Update(ctx, id, map[string]any{"cart": entries})
}

// ClearCartTx empties the account's cart inside the provided transaction.
func (r *Repository) ClearCartTx(tx *gorm.DB, id uuid.UUID) error {
	if tx == nil {
		return gorm.ErrInvalidTransaction
	}
	result := tx.Model(&models.Account{}).
		Where("id = ?", id).
		Update("cart", dbtypes.CartEntries{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
