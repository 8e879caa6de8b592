package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItem represents a single orderable dish or drink on the menu.
type MenuItem struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name        string          `gorm:"column:name;not null;default:''" json:"name"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null" json:"price"`
	Allergen    string          `gorm:"column:allergen;not null;default:''" json:"allergen"`
	Description string          `gorm:"column:description;not null;default:''" json:"description"`
	Image       string          `gorm:"column:image;not null;default:''" json:"image"`
	Active      bool            `gorm:"column:active;not null;default:true" json:"active"`
	Category    string          `gorm:"column:category;not null;default:'Main'" json:"category"`
}

func (MenuItem) TableName() string { return "menu_items" }

// HasRequiredPostFields reports whether the item carries enough data to be
// inserted. Price keeps its unset sentinel of -1 until a caller provides one.
func (m MenuItem) HasRequiredPostFields() bool {
	return m.Name != "" &&
		!m.Price.Equal(decimal.NewFromInt(-1)) &&
		m.Description != ""
}

// PersistableMap returns every column except the identifier, suitable for an
// insert where the repository assigns the id.
func (m MenuItem) PersistableMap() map[string]any {
	return map[string]any{
		"name":        m.Name,
		"price":       m.Price,
		"allergen":    m.Allergen,
		"description": m.Description,
		"image":       m.Image,
		"active":      m.Active,
		"category":    m.Category,
	}
}
