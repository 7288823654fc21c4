package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/itops-tools/user-provisioning/bc"
	"github.com/itops-tools/user-provisioning/config"
	"github.com/itops-tools/user-provisioning/global"
	"github.com/itops-tools/user-provisioning/graph"
	"github.com/itops-tools/user-provisioning/logging"
	"github.com/itops-tools/user-provisioning/provisioning"
)

var logger hclog.Logger

func main() {
	_ = godotenv.Load()

	logger = hclog.New(&hclog.LoggerOptions{
		Name:  "user-provisioning",
		Level: hclog.LevelFromString(envOr("LOG_LEVEL", "info")),
	})
	hclog.SetDefault(logger)

	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "user-provisioning",
		Short:         "Provision user accounts in Azure AD and Business Central",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.AddCommand(provisionCmd())
	cmd.AddCommand(licensesCmd())
	cmd.AddCommand(rolesCmd())
	cmd.AddCommand(configCmd())
	cmd.AddCommand(logsCmd())
	cmd.AddCommand(testCmd())

	return cmd
}

// services loads the configuration and opens the audit log. Environment
// variables override whatever the config file holds, which keeps secrets
// out of the file on shared machines.
func services() (*config.Manager, *logging.Service, error) {
	manager, err := config.NewManager()
	if err != nil {
		return nil, nil, err
	}

	if err := manager.Load(); err != nil {
		return nil, nil, err
	}

	applyEnvOverrides(manager.Config())

	logs := logging.NewService(logger, manager.Dir())

	return manager, logs, nil
}

func applyEnvOverrides(cfg *config.Config) {
	overrideFromEnv(&cfg.MicrosoftGraph.TenantID, "GRAPH_TENANT_ID")
	overrideFromEnv(&cfg.MicrosoftGraph.ClientID, "GRAPH_CLIENT_ID")
	overrideFromEnv(&cfg.MicrosoftGraph.ClientSecret, "GRAPH_CLIENT_SECRET")
	overrideFromEnv(&cfg.BusinessCentral.BaseURL, "BC_BASE_URL")
	overrideFromEnv(&cfg.BusinessCentral.TenantID, "BC_TENANT_ID")
	overrideFromEnv(&cfg.BusinessCentral.ClientID, "BC_CLIENT_ID")
	overrideFromEnv(&cfg.BusinessCentral.ClientSecret, "BC_CLIENT_SECRET")
	overrideFromEnv(&cfg.BusinessCentral.CompanyID, "BC_COMPANY_ID")
}

func overrideFromEnv(target *string, key string) {
	if value := os.Getenv(key); value != "" {
		*target = value
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func provisionCmd() *cobra.Command {
	var requestFile string

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Run the provisioning workflow for one user",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, logs, err := services()
			if err != nil {
				return err
			}

			cfg := manager.Config()
			if !cfg.IsMicrosoftGraphComplete() {
				return fmt.Errorf("microsoft graph configuration is incomplete, run 'user-provisioning config show'")
			}

			raw, err := os.ReadFile(requestFile)
			if err != nil {
				return fmt.Errorf("reading request file: %w", err)
			}

			var req provisioning.Request
			if err := json.Unmarshal(raw, &req); err != nil {
				return fmt.Errorf("parsing request file: %w", err)
			}

			if req.SyncToBusiness && !cfg.IsBusinessCentralComplete() {
				return fmt.Errorf("business central configuration is incomplete, run 'user-provisioning config show'")
			}

			directory, err := graph.NewClient(cfg.MicrosoftGraph, cfg.App)
			if err != nil {
				return err
			}

			var business *bc.Client

			if req.SyncToBusiness {
				if business, err = bc.NewClient(cfg.BusinessCentral, cfg.App); err != nil {
					return err
				}
			}

			orchestrator := provisioning.NewOrchestrator(directory, business, logs)

			outcome, err := orchestrator.Provision(cmd.Context(), &req)
			printOutcome(cmd, outcome)

			if err != nil {
				return err
			}

			return outcome.Err()
		},
	}

	cmd.Flags().StringVarP(&requestFile, "file", "f", "", "path to the provisioning request JSON")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func printOutcome(cmd *cobra.Command, outcome *provisioning.Outcome) {
	if outcome.Failed {
		cmd.Printf("Provisioning of %s failed at stage %s\n", outcome.Email, outcome.FailedStage)
		return
	}

	cmd.Printf("Provisioning of %s reached stage %s\n", outcome.Email, outcome.Stage)

	if outcome.DirectoryCreated {
		cmd.Printf("  Azure AD account: %s\n", outcome.DirectoryID)
	}

	if outcome.SyncRequested {
		if outcome.BusinessCreated {
			cmd.Printf("  Business Central account: %s\n", outcome.BusinessID)
		} else {
			cmd.Printf("  Business Central account: not created\n")
		}
	}

	for _, assignment := range outcome.Licenses {
		cmd.Printf("  License %s: %s\n", assignment.Name, assignmentStatus(assignment))
	}

	for _, assignment := range outcome.Roles {
		cmd.Printf("  Role %s: %s\n", assignment.Name, assignmentStatus(assignment))
	}

	for _, note := range outcome.Notes {
		cmd.Printf("  Note: %s\n", note)
	}
}

func assignmentStatus(assignment provisioning.AssignmentResult) string {
	if assignment.OK() {
		return "assigned"
	}

	return fmt.Sprintf("failed (%v)", assignment.Err)
}

func licensesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "licenses",
		Short: "List the licenses available for assignment",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, _, err := services()
			if err != nil {
				return err
			}

			cfg := manager.Config()
			if !cfg.IsMicrosoftGraphComplete() {
				return printCatalogLicenses(cmd, manager.AvailableLicenses())
			}

			directory, err := graph.NewClient(cfg.MicrosoftGraph, cfg.App)
			if err != nil {
				return err
			}

			licenses, err := directory.GetAvailableLicenses(cmd.Context())
			if err != nil {
				return err
			}

			return printCatalogLicenses(cmd, licenses)
		},
	}
}

func printCatalogLicenses(cmd *cobra.Command, licenses []global.License) error {
	if len(licenses) == 0 {
		return fmt.Errorf("no licenses available for assignment")
	}

	for _, license := range licenses {
		cmd.Printf("%s\t%s\t%s\n", license.SkuID, license.Name, license.Description)
	}

	return nil
}

func rolesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "List the Business Central permission sets available for assignment",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, _, err := services()
			if err != nil {
				return err
			}

			cfg := manager.Config()

			var roles []global.Role

			if cfg.IsBusinessCentralComplete() {
				business, err := bc.NewClient(cfg.BusinessCentral, cfg.App)
				if err != nil {
					return err
				}

				roles, err = business.GetRoles(cmd.Context())
				if err != nil {
					return err
				}
			} else {
				roles = manager.AvailableRoles()
			}

			if len(roles) == 0 {
				return fmt.Errorf("no roles available for assignment")
			}

			for _, role := range roles {
				cmd.Printf("%s\t%s\t%s\n", role.ID, role.Name, role.Description)
			}

			return nil
		},
	}
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the stored configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the configuration file with defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := config.NewManager()
			if err != nil {
				return err
			}

			if err := manager.Load(); err != nil {
				return err
			}

			if err := manager.Save(); err != nil {
				return err
			}

			cmd.Printf("Configuration written to %s\n", manager.Path())

			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the configuration state without secrets",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, _, err := services()
			if err != nil {
				return err
			}

			cfg := manager.Config()

			cmd.Printf("Configuration file: %s\n", manager.Path())
			cmd.Printf("Microsoft Graph: %s\n", sectionState(cfg.IsMicrosoftGraphComplete()))
			cmd.Printf("Business Central: %s\n", sectionState(cfg.IsBusinessCentralComplete()))
			cmd.Printf("Application: %s\n", sectionState(cfg.IsAppComplete()))

			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set one configuration value, e.g. microsoft_graph.tenant_id",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, _, err := services()
			if err != nil {
				return err
			}

			if err := setConfigValue(manager.Config(), args[0], args[1]); err != nil {
				return err
			}

			return manager.Save()
		},
	})

	return cmd
}

func sectionState(complete bool) string {
	if complete {
		return "configured"
	}

	return "incomplete"
}

func setConfigValue(cfg *config.Config, key, value string) error {
	targets := map[string]*string{
		"microsoft_graph.base_url":       &cfg.MicrosoftGraph.BaseURL,
		"microsoft_graph.tenant_id":      &cfg.MicrosoftGraph.TenantID,
		"microsoft_graph.client_id":      &cfg.MicrosoftGraph.ClientID,
		"microsoft_graph.client_secret":  &cfg.MicrosoftGraph.ClientSecret,
		"microsoft_graph.authority":      &cfg.MicrosoftGraph.Authority,
		"business_central.base_url":      &cfg.BusinessCentral.BaseURL,
		"business_central.tenant_id":     &cfg.BusinessCentral.TenantID,
		"business_central.client_id":     &cfg.BusinessCentral.ClientID,
		"business_central.client_secret": &cfg.BusinessCentral.ClientSecret,
		"business_central.company_id":    &cfg.BusinessCentral.CompanyID,
		"business_central.api_version":   &cfg.BusinessCentral.APIVersion,
		"app.email_domain":               &cfg.App.EmailDomain,
		"app.default_password":           &cfg.App.DefaultPassword,
	}

	target, ok := targets[strings.ToLower(key)]
	if !ok {
		return fmt.Errorf("unknown configuration key %q", key)
	}

	*target = value

	return nil
}

func logsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Inspect the application audit log",
	}

	var level string
	var limit int

	show := &cobra.Command{
		Use:   "show",
		Short: "Print recent log entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logs, err := services()
			if err != nil {
				return err
			}

			entries := logs.Entries(logging.Filter{Level: level, MaxCount: limit})
			for _, entry := range entries {
				cmd.Println(entry.String())
			}

			return nil
		},
	}
	show.Flags().StringVar(&level, "level", "", "only show entries of this level")
	show.Flags().IntVar(&limit, "limit", 50, "maximum number of entries")

	export := &cobra.Command{
		Use:   "export <path>",
		Short: "Export the log to a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logs, err := services()
			if err != nil {
				return err
			}

			path, err := logs.ExportCSV(args[0], logging.Filter{})
			if err != nil {
				return err
			}

			cmd.Printf("Log exported to %s\n", path)

			return nil
		},
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Clear the log, keeping a timestamped backup",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logs, err := services()
			if err != nil {
				return err
			}

			return logs.Clear()
		},
	}

	cmd.AddCommand(show, export, clear)

	return cmd
}

func testCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Verify connectivity to both backends",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, _, err := services()
			if err != nil {
				return err
			}

			cfg := manager.Config()
			failed := false

			if cfg.IsMicrosoftGraphComplete() {
				directory, err := graph.NewClient(cfg.MicrosoftGraph, cfg.App)
				if err == nil {
					err = directory.TestConnection(cmd.Context())
				}

				failed = reportConnection(cmd, global.BackendAzureAD, err) || failed
			} else {
				cmd.Printf("%s: not configured\n", global.BackendAzureAD)
			}

			if cfg.IsBusinessCentralComplete() {
				business, err := bc.NewClient(cfg.BusinessCentral, cfg.App)
				if err == nil {
					err = business.TestConnection(cmd.Context())
				}

				failed = reportConnection(cmd, global.BackendBusinessCentral, err) || failed
			} else {
				cmd.Printf("%s: not configured\n", global.BackendBusinessCentral)
			}

			if failed {
				return fmt.Errorf("one or more backends are unreachable")
			}

			return nil
		},
	}
}

func reportConnection(cmd *cobra.Command, backend string, err error) bool {
	if err != nil {
		cmd.Printf("%s: %v\n", backend, err)
		return true
	}

	cmd.Printf("%s: ok\n", backend)

	return false
}
