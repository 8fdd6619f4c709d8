package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/berrythewa/sysclip/internal/config"
)

// newConfigCmd creates the config command
func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage sysclip configuration",
	}

	cmd.AddCommand(newConfigShowCmd(a))
	cmd.AddCommand(newConfigInitCmd(a))
	cmd.AddCommand(newConfigPathCmd(a))
	return cmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch format {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(a.cfg)
			case "yaml":
				data, err := yaml.Marshal(a.cfg)
				if err != nil {
					return fmt.Errorf("failed to marshal config: %w", err)
				}
				_, err = out.Write(data)
				return err
			default:
				return fmt.Errorf("unsupported format: %s", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format (yaml or json)")
	return cmd
}

func newConfigInitCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath := a.cfg.SystemPaths.ConfigFile
			if configPath == "" {
				return fmt.Errorf("no configuration path could be determined")
			}

			if _, err := os.Stat(configPath); err == nil && !force {
				return fmt.Errorf("configuration already exists at %s\nUse --force to overwrite or 'sysclip config show' to view current config", configPath)
			}

			cfg := config.DefaultConfig()
			a.logger.Info("Initializing sysclip configuration", zap.String("config_path", configPath))

			if err := cfg.Save(configPath); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Configuration initialized at: %s\n", configPath)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force overwrite existing configuration")
	return cmd
}

func newConfigPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), a.cfg.SystemPaths.ConfigFile)
			return err
		},
	}
}
