package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/itops-tools/user-provisioning/global"
)

// friendlyLicenseNames maps Graph SKU part numbers to the names users know.
// Unknown part numbers fall through unchanged.
var friendlyLicenseNames = map[string]string{
	"O365_BUSINESS_ESSENTIALS":     "Microsoft 365 Business Basic",
	"O365_BUSINESS_PREMIUM":        "Microsoft 365 Business Standard",
	"ENTERPRISEPACK":               "Microsoft 365 E3",
	"ENTERPRISEPREMIUM":            "Microsoft 365 E5",
	"STANDARDPACK":                 "Office 365 E1",
	"ENTERPRISEPREMIUM_NOPSTNCONF": "Microsoft 365 E5 without Audio Conferencing",
	"DEVELOPERPACK":                "Microsoft 365 E5 Developer",
	"FLOW_FREE":                    "Power Automate Free",
	"POWER_BI_STANDARD":            "Power BI Free",
	"POWER_BI_PRO":                 "Power BI Pro",
}

// GetAvailableLicenses reads the tenant-wide subscribed SKU catalog. When the
// backend call fails, the locally configured fallback catalog is returned
// instead of an error; deciding whether an empty catalog is fatal is up to
// the caller.
func (c *Client) GetAvailableLicenses(ctx context.Context) ([]global.License, error) {
	status, data, err := c.rest.Get(ctx, "subscribedSkus", nil)
	if err != nil || !global.IsSuccess(status) {
		if err == nil {
			err = &global.BackendQueryError{Backend: global.BackendAzureAD, Op: "subscribed SKUs", StatusCode: status, Body: string(data)}
		}

		logger.Warn(fmt.Sprintf("could not read license catalog, using %d configured fallback licenses: %s", len(c.fallbackLicenses), err.Error()))

		fallback := make([]global.License, len(c.fallbackLicenses))
		copy(fallback, c.fallbackLicenses)

		return fallback, nil
	}

	var page listResponse[subscribedSku]
	if err = json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("parsing subscribed SKU response: %w", err)
	}

	licenses := make([]global.License, 0, len(page.Value))

	for _, sku := range page.Value {
		licenses = append(licenses, global.License{
			ID:          sku.ID,
			SkuID:       sku.SkuID,
			Name:        friendlyLicenseName(sku.SkuPartNumber),
			Description: fmt.Sprintf("Available: %d of %d", sku.PrepaidUnits.Enabled-sku.ConsumedUnits, sku.PrepaidUnits.Enabled),
		})
	}

	return licenses, nil
}

// GetUserLicenses resolves the SKUs assigned to a user against the tenant
// catalog, keyed on SKU id. SKUs missing from the catalog are kept with a
// synthesized local id and a generic name rather than dropped.
func (c *Client) GetUserLicenses(ctx context.Context, userID string) ([]global.License, error) {
	query := url.Values{}
	query.Set("$select", "id,assignedLicenses")

	status, data, err := c.rest.Get(ctx, "users/"+url.PathEscape(userID), query)
	if err != nil {
		return nil, err
	}

	if !global.IsSuccess(status) {
		return nil, &global.BackendQueryError{Backend: global.BackendAzureAD, Op: "user licenses", StatusCode: status, Body: string(data)}
	}

	var raw graphUser
	if err = json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing user licenses response: %w", err)
	}

	if len(raw.AssignedLicenses) == 0 {
		return nil, nil
	}

	catalog, err := c.GetAvailableLicenses(ctx)
	if err != nil {
		return nil, err
	}

	licenses := make([]global.License, 0, len(raw.AssignedLicenses))

	for _, assigned := range raw.AssignedLicenses {
		if known, found := global.FindLicenseBySKU(catalog, assigned.SkuID); found {
			known.IsSelected = true
			licenses = append(licenses, known)

			continue
		}

		licenses = append(licenses, global.License{
			ID:         uuid.NewString(),
			SkuID:      assigned.SkuID,
			Name:       fmt.Sprintf("License %s", assigned.SkuID),
			IsSelected: true,
		})
	}

	return licenses, nil
}

// AssignLicense adds one SKU to the user. Assigning an already-assigned SKU
// is accepted by the backend, so callers may treat this as idempotent.
func (c *Client) AssignLicense(ctx context.Context, userID, skuID string) error {
	body := assignLicenseRequest{
		AddLicenses:    []assignedLicense{{SkuID: normalizeSkuID(skuID)}},
		RemoveLicenses: []string{},
	}

	status, data, err := c.rest.Post(ctx, "users/"+url.PathEscape(userID)+"/assignLicense", &body)
	if err != nil {
		return err
	}

	if !global.IsSuccess(status) {
		return &global.BackendMutationError{Backend: global.BackendAzureAD, Op: "assign license", StatusCode: status, Body: string(data)}
	}

	logger.Info(fmt.Sprintf("license assigned in Azure AD: user %s, SKU %s", userID, skuID))

	return nil
}

// RemoveLicense removes one SKU from the user. Removing a SKU that is not
// assigned is reported as a normalized mutation error, never as a panic or a
// transport-level failure.
func (c *Client) RemoveLicense(ctx context.Context, userID, skuID string) error {
	body := assignLicenseRequest{
		AddLicenses:    []assignedLicense{},
		RemoveLicenses: []string{normalizeSkuID(skuID)},
	}

	status, data, err := c.rest.Post(ctx, "users/"+url.PathEscape(userID)+"/assignLicense", &body)
	if err != nil {
		return err
	}

	if !global.IsSuccess(status) {
		return &global.BackendMutationError{Backend: global.BackendAzureAD, Op: "remove license", StatusCode: status, Body: string(data)}
	}

	logger.Info(fmt.Sprintf("license removed in Azure AD: user %s, SKU %s", userID, skuID))

	return nil
}

func friendlyLicenseName(skuPartNumber string) string {
	if name, found := friendlyLicenseNames[skuPartNumber]; found {
		return name
	}

	return skuPartNumber
}

// normalizeSkuID canonicalizes SKU ids that are GUIDs; anything else is sent
// as-is and left for the backend to judge.
func normalizeSkuID(skuID string) string {
	if id, err := uuid.Parse(skuID); err == nil {
		return id.String()
	}

	return skuID
}
