package accounts

import (
	"encoding/json"
	"testing"

	"github.com/IGN03/TMC/pkg/db/models"
)

func TestNormalizeEmptyInputYieldsDefaults(t *testing.T) {
	acct := AccountInput{}.Normalize()

	if acct.Name != "" || acct.Email != "" || acct.Phone != "" {
		t.Fatalf("expected empty string defaults, got %+v", acct)
	}
	if acct.AccessLevel != models.AccessLevelUnset {
		t.Fatalf("expected unset access level, got %d", acct.AccessLevel)
	}
	if acct.Cart == nil || len(acct.Cart) != 0 {
		t.Fatalf("expected empty cart, got %v", acct.Cart)
	}
	if acct.PasswordHash != "" {
		t.Fatal("normalization must never produce a password hash")
	}
}

func TestNormalizeTreatsNullAsAbsent(t *testing.T) {
	var fromNulls AccountInput
	raw := `{"name":null,"email":null,"phone":null}`
	if err := json.Unmarshal([]byte(raw), &fromNulls); err != nil {
		t.Fatalf("decode: %v", err)
	}

	got := fromNulls.Normalize()
	want := AccountInput{}.Normalize()
	if got.Name != want.Name || got.Email != want.Email || got.Phone != want.Phone ||
		got.AccessLevel != want.AccessLevel || len(got.Cart) != len(want.Cart) {
		t.Fatalf("explicit nulls should normalize identically to absent fields: got %+v want %+v", got, want)
	}
}

func TestNormalizeKeepsProvidedValuesVerbatim(t *testing.T) {
	acct := AccountInput{
		Name:  stringPtr("Ada"),
		Email: stringPtr("ada@example.com"),
		Phone: stringPtr("555-0100"),
	}.Normalize()

	if acct.Name != "Ada" || acct.Email != "ada@example.com" || acct.Phone != "555-0100" {
		t.Fatalf("provided values were not kept: %+v", acct)
	}
}

func TestUpdateMapOmitsAbsentFields(t *testing.T) {
	fields := AccountInput{Name: stringPtr("Grace")}.UpdateMap()
	if len(fields) != 1 || fields["name"] != "Grace" {
		t.Fatalf("expected only the name column, got %v", fields)
	}
}
