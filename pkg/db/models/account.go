package models

import (
	"github.com/google/uuid"

	dbtypes "github.com/IGN03/TMC/pkg/db/types"
)

// Access levels. Anything at or above AccessLevelStaff can reach the staff
// surface; registration always starts customers at AccessLevelCustomer.
const (
	AccessLevelUnset    = -1
	AccessLevelCustomer = 0
	AccessLevelStaff    = 1
)

// Account is a registered customer or staff member. The password is stored
// only as an Argon2id hash, never as the raw credential.
type Account struct {
	ID           uuid.UUID           `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name         string              `gorm:"column:name;not null;default:''" json:"name"`
	Email        string              `gorm:"column:email;not null;default:'';uniqueIndex:idx_accounts_email" json:"email"`
	Phone        string              `gorm:"column:phone;not null;default:''" json:"phone"`
	PasswordHash string              `gorm:"column:password_hash;not null;default:''" json:"-"`
	AccessLevel  int                 `gorm:"column:access_level;not null;default:-1" json:"accessLevel"`
	Cart         dbtypes.CartEntries `gorm:"column:cart;type:jsonb;not null;default:'[]'" json:"cart"`
}

func (Account) TableName() string { return "accounts" }

func (a Account) HasRequiredPostFields() bool {
	return a.Name != "" && a.Email != "" && a.PasswordHash != ""
}

func (a Account) PersistableMap() map[string]any {
	cart := a.Cart
	if cart == nil {
		cart = dbtypes.CartEntries{}
	}
	return map[string]any{
		"name":          a.Name,
		"email":         a.Email,
		"phone":         a.Phone,
		"password_hash": a.PasswordHash,
		"access_level":  a.AccessLevel,
		"cart":          cart,
	}
}

// IsStaff reports whether the account may use the staff surface.
func (a Account) IsStaff() bool {
	return a.AccessLevel >= AccessLevelStaff
}
