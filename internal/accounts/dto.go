package accounts

import (
	"github.com/google/uuid"

	"github.com/IGN03/TMC/pkg/db/models"
	dbtypes "github.com/IGN03/TMC/pkg/db/types"
	pkgerrors "github.com/IGN03/TMC/pkg/errors"
)

// AccountInput captures raw client input for profile fields. Absent and null
// fields fall back to the defaults in Normalize.
type AccountInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// Normalize produces a model with profile defaults applied. Password hashing
// and access level assignment happen in the auth service, never here.
func (in AccountInput) Normalize() models.Account {
	acct := models.Account{
		Name:        "",
		Email:       "",
		Phone:       "",
		AccessLevel: models.AccessLevelUnset,
		Cart:        dbtypes.CartEntries{},
	}
	if in.Name != nil {
		acct.Name = *in.Name
	}
	if in.Email != nil {
		acct.Email = *in.Email
	}
	if in.Phone != nil {
		acct.Phone = *in.Phone
	}
	return acct
}

// UpdateMap returns only the profile columns the caller explicitly provided.
func (in AccountInput) UpdateMap() map[string]any {
	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Email != nil {
		fields["email"] = *in.Email
	}
	if in.Phone != nil {
		fields["phone"] = *in.Phone
	}
	return fields
}

// CartEntryInput is one entry of a cart replacement request.
type CartEntryInput struct {
	MenuItemID string `json:"menuItemId" validate:"required"`
	Quantity   *int   `json:"quantity"`
}

// ParseCartEntries validates and converts raw cart input. Malformed menu item
// identifiers are rejected here so no bad reference ever reaches the store.
func ParseCartEntries(raw []CartEntryInput) (dbtypes.CartEntries, error) {
	entries := make(dbtypes.CartEntries, 0, len(raw))
	for _, in := range raw {
		id, err := uuid.Parse(in.MenuItemID)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "malformed menu item id").
				WithDetails(map[string]any{"menuItemId": in.MenuItemID})
		}
		qty := 1
		if in.Quantity != nil {
			if *in.Quantity < 1 {
				return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
			}
			qty = *in.Quantity
		}
		entries = append(entries, dbtypes.CartEntry{MenuItemID: id, Quantity: qty})
	}
	return entries, nil
}

// AccountDTO is the safe response shape for account data.
type AccountDTO struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Email       string              `json:"email"`
	Phone       string              `json:"phone"`
	AccessLevel int                 `json:"accessLevel"`
	Cart        dbtypes.CartEntries `json:"cart"`
}

// FromModel maps the persisted account into a DTO, dropping the hash.
func FromModel(m *models.Account) *AccountDTO {
	if m == nil {
		return nil
	}
	cart := m.Cart
	if cart == nil {
		cart = dbtypes.CartEntries{}
	}
	return &AccountDTO{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		AccessLevel: m.AccessLevel,
		Cart:        cart,
	}
}
