package locations

import "github.com/IGN03/TMC/pkg/db/models"

// PickupLocationInput captures raw client input for creating or updating a
// pickup location. Absent and null fields fall back to the defaults in
// Normalize.
type PickupLocationInput struct {
	Address     *string `json:"address"`
	ContactInfo *string `json:"contactInfo"`
	Name        *string `json:"name"`
	Active      *bool   `json:"active"`
	PickupTime  *string `json:"pickupTime"`
}

// Normalize produces a fully populated model, substituting defaults for unset
// or null fields.
func (in PickupLocationInput) Normalize() models.PickupLocation {
	loc := models.PickupLocation{
		Address:     "",
		ContactInfo: "",
		Name:        "",
		Active:      false,
		PickupTime:  "",
	}
	if in.Address != nil {
		loc.Address = *in.Address
	}
	if in.ContactInfo != nil {
		loc.ContactInfo = *in.ContactInfo
	}
	if in.Name != nil {
		loc.Name = *in.Name
	}
	if in.Active != nil {
		loc.Active = *in.Active
	}
	if in.PickupTime != nil {
		loc.PickupTime = *in.PickupTime
	}
	return loc
}

// UpdateMap returns only the columns the caller explicitly provided. Active is
// deliberately excluded; activation goes through the dedicated operation so
// the single-active invariant cannot be bypassed.
func (in PickupLocationInput) UpdateMap() map[string]any {
	fields := map[string]any{}
	if in.Address != nil {
		fields["address"] = *in.Address
	}
	if in.ContactInfo != nil {
		fields["contact_info"] = *in.ContactInfo
	}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.PickupTime != nil {
		fields["pickup_time"] = *in.PickupTime
	}
	return fields
}
