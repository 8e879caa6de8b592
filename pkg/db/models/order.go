package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	dbtypes "github.com/IGN03/TMC/pkg/db/types"
)

// Order is a priced checkout snapshot. Items holds the cart entries verbatim
// as they were at checkout time; CostOfItems is the server-computed sum.
type Order struct {
	ID             uuid.UUID           `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	AccountID      *uuid.UUID          `gorm:"column:account_id;type:uuid;index" json:"accountId"`
	OrderTime      string              `gorm:"column:order_time;not null;default:''" json:"orderTime"`
	PickupLocation *uuid.UUID          `gorm:"column:pickup_location;type:uuid" json:"pickupLocation"`
	Items          dbtypes.CartEntries `gorm:"column:items;type:jsonb;not null;default:'[]'" json:"items"`
	CostOfItems    decimal.Decimal     `gorm:"column:cost_of_items;type:numeric(10,2);not null" json:"costOfItems"`
	Tip            decimal.Decimal     `gorm:"column:tip;type:numeric(10,2);not null" json:"tip"`
	Completed      string              `gorm:"column:completed;not null;default:''" json:"completed"`
}

func (Order) TableName() string { return "orders" }

func (o Order) HasRequiredPostFields() bool {
	return o.AccountID != nil &&
		o.OrderTime != "" &&
		!o.CostOfItems.Equal(decimal.NewFromInt(-1))
}

func (o Order) PersistableMap() map[string]any {
	items := o.Items
	if items == nil {
		items = dbtypes.CartEntries{}
	}
	return map[string]any{
		"account_id":      o.AccountID,
		"order_time":      o.OrderTime,
		"pickup_location": o.PickupLocation,
		"items":           items,
		"cost_of_items":   o.CostOfItems,
		"tip":             o.Tip,
		"completed":       o.Completed,
	}
}

// IsCompleted reports whether staff have marked the order done.
func (o Order) IsCompleted() bool {
	return o.Completed != ""
}
