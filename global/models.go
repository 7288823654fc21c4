package global

import (
	"strings"
	"time"
)

const (
	BackendAzureAD         = "Azure AD"
	BackendBusinessCentral = "Business Central"
)

// User is the cross-backend representation of one person. The email is the
// correlation key between both backends; the per-backend ids are filled in as
// the corresponding create call succeeds.
type User struct {
	ID          string `json:"id"`
	UserName    string `json:"user_name"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DisplayName string `json:"display_name"`
	JobTitle    string `json:"job_title"`
	Department  string `json:"department"`
	PhoneNumber string `json:"phone_number"`
	IsActive    bool   `json:"is_active"`

	Roles    []Role    `json:"roles"`
	Licenses []License `json:"licenses"`

	BCUserID   string `json:"bc_user_id"`
	ExistsInBC bool   `json:"exists_in_bc"`

	AzureADID       string `json:"azure_ad_id"`
	ExistsInAzureAD bool   `json:"exists_in_azure_ad"`

	CreatedAt time.Time `json:"created_date"`
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// EffectiveDisplayName falls back to first + last name when no explicit
// display name was provided.
func (u *User) EffectiveDisplayName() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}

	return u.FullName()
}

// MailNickname derives the mail nickname from the user name or email.
func (u *User) MailNickname() string {
	source := u.UserName
	if source == "" {
		source = u.Email
	}

	if idx := strings.Index(source, "@"); idx >= 0 {
		return source[:idx]
	}

	return source
}

// Role is a Business Central permission set. Equality is by id only.
type Role struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsSelected  bool   `json:"is_selected"`
}

func (r Role) Equal(other Role) bool {
	return r.ID == other.ID
}

// License is one entry of the tenant license catalog. The local id is a
// catalog primary key; SkuID is the backend's notion of identity and the only
// key used for reconciliation across backends.
type License struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	SkuID       string `json:"sku_id"`
	Description string `json:"description"`
	IsSelected  bool   `json:"is_selected"`
}

// SameSKU reports whether both licenses refer to the same backend SKU.
func (l License) SameSKU(other License) bool {
	return l.SkuID != "" && l.SkuID == other.SkuID
}

// FindLicenseBySKU returns the first catalog entry with the given SKU id.
func FindLicenseBySKU(catalog []License, skuID string) (License, bool) {
	for _, l := range catalog {
		if l.SkuID == skuID {
			return l, true
		}
	}

	return License{}, false
}

// SelectedLicenses filters the licenses marked as selected, preserving order.
func SelectedLicenses(licenses []License) []License {
	selected := make([]License, 0, len(licenses))

	for _, l := range licenses {
		if l.IsSelected {
			selected = append(selected, l)
		}
	}

	return selected
}

// SelectedRoles filters the roles marked as selected, preserving order.
func SelectedRoles(roles []Role) []Role {
	selected := make([]Role, 0, len(roles))

	for _, r := range roles {
		if r.IsSelected {
			selected = append(selected, r)
		}
	}

	return selected
}
