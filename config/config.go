package config

import (
	"time"

	"github.com/itops-tools/user-provisioning/global"
)

// BusinessCentralConfig holds the connection settings for the Business
// Central API.
type BusinessCentralConfig struct {
	BaseURL      string `json:"base_url"`
	TenantID     string `json:"tenant_id"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	CompanyID    string `json:"company_id"`
	APIVersion   string `json:"api_version"`
}

// MicrosoftGraphConfig holds the connection settings for Microsoft Graph.
type MicrosoftGraphConfig struct {
	BaseURL      string   `json:"base_url"`
	TenantID     string   `json:"tenant_id"`
	ClientID     string   `json:"client_id"`
	ClientSecret string   `json:"client_secret"`
	Authority    string   `json:"authority"`
	Scopes       []string `json:"scopes"`
}

// AppConfig holds application-level defaults: the at-rest encryption key, the
// fallback role and license catalogs, and the provisioning defaults.
type AppConfig struct {
	EncryptionKey         string           `json:"encryption_key"`
	DefaultRoles          []global.Role    `json:"default_roles"`
	DefaultLicenses       []global.License `json:"default_licenses"`
	EmailDomain           string           `json:"email_domain"`
	LogRetentionDays      int              `json:"log_retention_days"`
	EnableDetailedLogging bool             `json:"enable_detailed_logging"`
	RequirePasswordChange bool             `json:"require_password_change"`
	DefaultPassword       string           `json:"default_password"`
	LastUpdated           string           `json:"last_updated"`
}

type Config struct {
	BusinessCentral BusinessCentralConfig `json:"business_central"`
	MicrosoftGraph  MicrosoftGraphConfig  `json:"microsoft_graph"`
	App             AppConfig             `json:"app"`
}

// Default returns the initial configuration written on first run. Credentials
// are intentionally empty; the tool refuses to talk to a backend until its
// section is complete.
func Default() *Config {
	return &Config{
		BusinessCentral: BusinessCentralConfig{
			APIVersion: "v2.0",
		},
		MicrosoftGraph: MicrosoftGraphConfig{
			BaseURL:   "https://graph.microsoft.com/v1.0",
			Authority: "https://login.microsoftonline.com/{0}/v2.0",
			Scopes:    []string{"https://graph.microsoft.com/.default"},
		},
		App: AppConfig{
			EmailDomain:           "example.com",
			LogRetentionDays:      30,
			EnableDetailedLogging: true,
			RequirePasswordChange: true,
			DefaultPassword:       "Welcome123!",
			LastUpdated:           time.Now().Format(time.RFC3339),
		},
	}
}

// IsBusinessCentralComplete reports whether the Business Central section has
// everything needed to authenticate and address a company.
func (c *Config) IsBusinessCentralComplete() bool {
	bc := c.BusinessCentral

	return bc.BaseURL != "" && bc.TenantID != "" && bc.ClientID != "" && bc.ClientSecret != "" && bc.CompanyID != ""
}

// IsMicrosoftGraphComplete reports whether the Graph section has everything
// needed to authenticate.
func (c *Config) IsMicrosoftGraphComplete() bool {
	mg := c.MicrosoftGraph

	return mg.BaseURL != "" && mg.TenantID != "" && mg.ClientID != "" && mg.ClientSecret != ""
}

// IsAppComplete reports whether the application section is usable.
func (c *Config) IsAppComplete() bool {
	return c.App.EncryptionKey != "" && c.App.EmailDomain != ""
}

func (c *Config) IsComplete() bool {
	return c.IsBusinessCentralComplete() && c.IsMicrosoftGraphComplete() && c.IsAppComplete()
}
