package menu

import (
	"github.com/shopspring/decimal"

	"github.com/IGN03/TMC/pkg/db/models"
)

// MenuItemInput captures raw client input for creating or updating a menu
// item. Pointer fields distinguish "absent or null" from an explicit value;
// absent fields fall back to the defaults in Normalize.
type MenuItemInput struct {
	Name        *string          `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Allergen    *string          `json:"allergen"`
	Description *string          `json:"description"`
	Image       *string          `json:"image"`
	Active      *bool            `json:"active"`
	Category    *string          `json:"category"`
}

// Normalize produces a fully populated model, substituting the field default
// wherever the input left a field unset or null.
func (in MenuItemInput) Normalize() models.MenuItem {
	item := models.MenuItem{
		Name:        "",
		Price:       decimal.NewFromInt(-1),
		Allergen:    "",
		Description: "",
		Image:       "",
		Active:      true,
		Category:    "Main",
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Price != nil {
		item.Price = *in.Price
	}
	if in.Allergen != nil {
		item.Allergen = *in.Allergen
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Image != nil {
		item.Image = *in.Image
	}
	if in.Active != nil {
		item.Active = *in.Active
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	return item
}

// UpdateMap returns only the columns the caller explicitly provided.
func (in MenuItemInput) UpdateMap() map[string]any {
	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Price != nil {
		fields["price"] = *in.Price
	}
	if in.Allergen != nil {
		fields["allergen"] = *in.Allergen
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Image != nil {
		fields["image"] = *in.Image
	}
	if in.Active != nil {
		fields["active"] = *in.Active
	}
	if in.Category != nil {
		fields["category"] = *in.Category
	}
	return fields
}
