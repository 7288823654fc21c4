package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/itops-tools/user-provisioning/global"
)

const (
	configDirName  = ".user_provisioning_tool"
	configFileName = "config.json"
)

var logger hclog.Logger

func init() {
	logger = hclog.L()
}

// Manager owns the on-disk configuration: a JSON file in the user profile
// directory. Client secrets are encrypted at rest with the app encryption
// key; every other value is stored as-is.
type Manager struct {
	dir  string
	path string
	cfg  *Config
}

// NewManager places the configuration under the user's home directory.
func NewManager() (*Manager, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolving home directory: %w", err)
	}

	return NewManagerAt(filepath.Join(home, configDirName)), nil
}

// NewManagerAt places the configuration under an explicit directory.
func NewManagerAt(dir string) *Manager {
	return &Manager{
		dir:  dir,
		path: filepath.Join(dir, configFileName),
		cfg:  Default(),
	}
}

func (m *Manager) Path() string {
	return m.path
}

// Dir returns the directory holding the configuration and the log files.
func (m *Manager) Dir() string {
	return m.dir
}

func (m *Manager) Config() *Config {
	return m.cfg
}

// Load reads the stored configuration, falling back to defaults when no file
// exists yet. A missing encryption key is generated and persisted so secrets
// written later can always be encrypted.
func (m *Manager) Load() error {
	data, err := os.ReadFile(m.path)

	switch {
	case err == nil:
		cfg := Default()
		if uerr := json.Unmarshal(data, cfg); uerr != nil {
			return fmt.Errorf("parsing %s: %w", m.path, uerr)
		}

		m.cfg = cfg

		logger.Info("configuration loaded from local file")
	case os.IsNotExist(err):
		m.cfg = Default()

		logger.Info("no configuration file found, starting from defaults")
	default:
		return fmt.Errorf("reading %s: %w", m.path, err)
	}

	if m.cfg.App.EncryptionKey == "" {
		key, kerr := GenerateKey()
		if kerr != nil {
			return fmt.Errorf("generating encryption key: %w", kerr)
		}

		m.cfg.App.EncryptionKey = key

		if serr := m.Save(); serr != nil {
			return serr
		}

		logger.Info("initial configuration generated")
	}

	return m.decryptSecrets()
}

// Save writes the configuration, encrypting the client secrets with the app
// key first. The in-memory config keeps the plain secrets.
func (m *Manager) Save() error {
	if err := os.MkdirAll(m.dir, 0o700); err != nil {
		return fmt.Errorf("creating %s: %w", m.dir, err)
	}

	m.cfg.App.LastUpdated = time.Now().Format(time.RFC3339)

	stored := *m.cfg

	if key := m.cfg.App.EncryptionKey; key != "" {
		var err error

		if stored.BusinessCentral.ClientSecret, err = EncryptString(key, m.cfg.BusinessCentral.ClientSecret); err != nil {
			return fmt.Errorf("encrypting Business Central secret: %w", err)
		}

		if stored.MicrosoftGraph.ClientSecret, err = EncryptString(key, m.cfg.MicrosoftGraph.ClientSecret); err != nil {
			return fmt.Errorf("encrypting Microsoft Graph secret: %w", err)
		}
	}

	data, err := json.MarshalIndent(&stored, "", "    ")
	if err != nil {
		return err
	}

	if err = os.WriteFile(m.path, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", m.path, err)
	}

	logger.Info("configuration saved")

	return nil
}

func (m *Manager) decryptSecrets() error {
	key := m.cfg.App.EncryptionKey

	secret, err := DecryptString(key, m.cfg.BusinessCentral.ClientSecret)
	if err != nil {
		return fmt.Errorf("decrypting Business Central secret: %w", err)
	}

	m.cfg.BusinessCentral.ClientSecret = secret

	if secret, err = DecryptString(key, m.cfg.MicrosoftGraph.ClientSecret); err != nil {
		return fmt.Errorf("decrypting Microsoft Graph secret: %w", err)
	}

	m.cfg.MicrosoftGraph.ClientSecret = secret

	return nil
}

// AvailableRoles returns the locally configured fallback role catalog.
func (m *Manager) AvailableRoles() []global.Role {
	roles := make([]global.Role, len(m.cfg.App.DefaultRoles))
	copy(roles, m.cfg.App.DefaultRoles)

	return roles
}

// SaveRole inserts or updates a fallback role, generating a local id for new
// entries.
func (m *Manager) SaveRole(role global.Role) error {
	if role.ID == "" {
		role.ID = uuid.NewString()
	}

	replaced := false

	for i, r := range m.cfg.App.DefaultRoles {
		if r.ID == role.ID {
			m.cfg.App.DefaultRoles[i] = role
			replaced = true

			break
		}
	}

	if !replaced {
		m.cfg.App.DefaultRoles = append(m.cfg.App.DefaultRoles, role)
	}

	return m.Save()
}

func (m *Manager) DeleteRole(roleID string) error {
	kept := m.cfg.App.DefaultRoles[:0]

	for _, r := range m.cfg.App.DefaultRoles {
		if r.ID != roleID {
			kept = append(kept, r)
		}
	}

	m.cfg.App.DefaultRoles = kept

	return m.Save()
}

// AvailableLicenses returns the locally configured fallback license catalog.
func (m *Manager) AvailableLicenses() []global.License {
	licenses := make([]global.License, len(m.cfg.App.DefaultLicenses))
	copy(licenses, m.cfg.App.DefaultLicenses)

	return licenses
}

// SaveLicense inserts or updates a fallback license, generating a local id
// for new entries.
func (m *Manager) SaveLicense(license global.License) error {
	if license.ID == "" {
		license.ID = uuid.NewString()
	}

	replaced := false

	for i, l := range m.cfg.App.DefaultLicenses {
		if l.ID == license.ID {
			m.cfg.App.DefaultLicenses[i] = license
			replaced = true

			break
		}
	}

	if !replaced {
		m.cfg.App.DefaultLicenses = append(m.cfg.App.DefaultLicenses, license)
	}

	return m.Save()
}

func (m *Manager) DeleteLicense(licenseID string) error {
	kept := m.cfg.App.DefaultLicenses[:0]

	for _, l := range m.cfg.App.DefaultLicenses {
		if l.ID != licenseID {
			kept = append(kept, l)
		}
	}

	m.cfg.App.DefaultLicenses = kept

	return m.Save()
}
