package models

import "github.com/google/uuid"

// PickupLocation is a site where customers collect orders. At most one
// location is active at a time; the partial unique index on active enforces
// that at the database level.
type PickupLocation struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Address     string    `gorm:"column:address;not null;default:''" json:"address"`
	ContactInfo string    `gorm:"column:contact_info;not null;default:''" json:"contactInfo"`
	Name        string    `gorm:"column:name;not null;default:''" json:"name"`
	Active      bool      `gorm:"column:active;not null;default:false" json:"active"`
	PickupTime  string    `gorm:"column:pickup_time;not null;default:''" json:"pickupTime"`
}

func (PickupLocation) TableName() string { return "pickup_locations" }

func (p PickupLocation) HasRequiredPostFields() bool {
	return p.Address != "" && p.ContactInfo != "" && p.Name != ""
}

func (p PickupLocation) PersistableMap() map[string]any {
	return map[string]any{
		"address":      p.Address,
		"contact_info": p.ContactInfo,
		"name":         p.Name,
		"active":       p.Active,
		"pickup_time":  p.PickupTime,
	}
}
