package graph

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/itops-tools/user-provisioning/config"
	"github.com/itops-tools/user-provisioning/global"
)

var logger hclog.Logger

func init() {
	logger = hclog.L()
}

// Client talks to the Microsoft Graph API for the directory side of
// provisioning: users, the subscribed SKU catalog and license assignment.
// Each client owns its token provider, so two clients never share a cached
// token.
type Client struct {
	rest                  *global.RESTClient
	requirePasswordChange bool
	fallbackLicenses      []global.License
}

// NewClient builds a client from the Graph configuration section. The app
// section supplies the force-password-change flag applied on create and the
// fallback license catalog used when the subscribedSkus call fails.
func NewClient(cfg config.MicrosoftGraphConfig, app config.AppConfig) (*Client, error) {
	tokens, err := global.NewClientSecretTokenProvider(
		global.BackendAzureAD, cfg.TenantID, cfg.ClientID, cfg.ClientSecret, cfg.Authority, cfg.Scopes)
	if err != nil {
		return nil, err
	}

	return newClient(global.NewRESTClient(cfg.BaseURL, tokens), app.RequirePasswordChange, app.DefaultLicenses), nil
}

func newClient(rest *global.RESTClient, requirePasswordChange bool, fallbackLicenses []global.License) *Client {
	return &Client{
		rest:                  rest,
		requirePasswordChange: requirePasswordChange,
		fallbackLicenses:      fallbackLicenses,
	}
}

// TestConnection probes the tenant by reading the organization resource.
func (c *Client) TestConnection(ctx context.Context) error {
	status, body, err := c.rest.Get(ctx, "organization", nil)
	if err != nil {
		return err
	}

	if !global.IsSuccess(status) {
		return &global.BackendQueryError{Backend: global.BackendAzureAD, Op: "organization", StatusCode: status, Body: string(body)}
	}

	var page listResponse[organizationResource]
	if err = json.Unmarshal(body, &page); err != nil {
		return fmt.Errorf("parsing organization response: %w", err)
	}

	if len(page.Value) == 0 {
		return fmt.Errorf("connected to %s but the organization resource is empty", global.BackendAzureAD)
	}

	return nil
}
