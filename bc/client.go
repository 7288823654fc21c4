package bc

import (
	"context"
	"fmt"
	"net/url"

	"github.com/hashicorp/go-hclog"

	"github.com/itops-tools/user-provisioning/config"
	"github.com/itops-tools/user-provisioning/global"
)

var logger hclog.Logger

func init() {
	logger = hclog.L()
}

// Client talks to the Business Central API for the business side of
// provisioning: company users and permission sets. Each client owns its token
// provider.
type Client struct {
	rest          *global.RESTClient
	apiVersion    string
	companyID     string
	fallbackRoles []global.Role
}

// NewClient builds a client from the Business Central configuration section.
// The fallback roles come from the app defaults and stand in for the
// permission set catalog when the backend cannot be read.
func NewClient(cfg config.BusinessCentralConfig, app config.AppConfig) (*Client, error) {
	// Business Central uses its own resource as the scope of the
	// client-credentials grant.
	scope := fmt.Sprintf("%s/.default", cfg.BaseURL)

	tokens, err := global.NewClientSecretTokenProvider(
		global.BackendBusinessCentral, cfg.TenantID, cfg.ClientID, cfg.ClientSecret, "", []string{scope})
	if err != nil {
		return nil, err
	}

	return newClient(global.NewRESTClient(cfg.BaseURL, tokens), cfg.APIVersion, cfg.CompanyID, app.DefaultRoles), nil
}

func newClient(rest *global.RESTClient, apiVersion, companyID string, fallbackRoles []global.Role) *Client {
	if apiVersion == "" {
		apiVersion = "v2.0"
	}

	return &Client{
		rest:          rest,
		apiVersion:    apiVersion,
		companyID:     companyID,
		fallbackRoles: fallbackRoles,
	}
}

// companyPath builds "{apiVersion}/companies({companyId})/<resource>".
func (c *Client) companyPath(resource string) string {
	path := fmt.Sprintf("%s/companies(%s)", c.apiVersion, url.PathEscape(c.companyID))

	if resource != "" {
		path += "/" + resource
	}

	return path
}

// TestConnection probes the configured company.
func (c *Client) TestConnection(ctx context.Context) error {
	status, body, err := c.rest.Get(ctx, c.companyPath(""), nil)
	if err != nil {
		return err
	}

	if !global.IsSuccess(status) {
		return &global.BackendQueryError{Backend: global.BackendBusinessCentral, Op: "company", StatusCode: status, Body: string(body)}
	}

	return nil
}
