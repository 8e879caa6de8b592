package dbtypes

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartEntry references a menu item pending checkout, optionally carrying a
// client-cached name/price snapshot. The snapshot is display-only; pricing at
// checkout always re-reads the menu item.
type CartEntry struct {
	MenuItemID uuid.UUID        `json:"menuItemId"`
	Quantity   int              `json:"quantity"`
	Name       string           `json:"name,omitempty"`
	Price      *decimal.Decimal `json:"price,omitempty"`
}

// CartEntries is stored as a jsonb column on accounts and orders.
type CartEntries []CartEntry

func (c *CartEntries) Scan(src any) error {
	if src == nil {
		*c = CartEntries{}
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("CartEntries: unsupported Scan type %T", src)
	}

	if len(raw) == 0 {
		*c = CartEntries{}
		return nil
	}

	var out []CartEntry
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("CartEntries: decode: %w", err)
	}
	if out == nil {
		out = []CartEntry{}
	}
	*c = CartEntries(out)
	return nil
}

func (c CartEntries) Value() (driver.Value, error) {
	if c == nil {
		return "[]", nil
	}
	raw, err := json.Marshal([]CartEntry(c))
	if err != nil {
		return nil, fmt.Errorf("CartEntries: encode: %w", err)
	}
	return string(raw), nil
}
