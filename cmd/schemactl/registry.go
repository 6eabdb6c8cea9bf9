package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lucid-schemas/pkg/registry"
	"lucid-schemas/pkg/schema"
)

func newRegistryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registry",
		Short: "Export or check the contract registry document",
	}

	var path, version string
	cmd.PersistentFlags().StringVar(&path, "path", "", "Registry file (default: registry.path from config)")

	export := &cobra.Command{
		Use:   "export",
		Short: "Write the registry document for the compiled-in contracts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target := a.registryPath(path)
			if version == "" {
				version = a.cfg.App.Version
			}
			reg := registry.Build(schema.Definitions(), version, a.clock())
			if err := reg.Validate(); err != nil {
				return err
			}
			if err := registry.Save(reg, target); err != nil {
				return err
			}
			a.log.Info("Registry exported", map[string]interface{}{
				"path":      target,
				"version":   reg.Version,
				"contracts": len(reg.Contracts),
			})
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d contracts to %s\n", len(reg.Contracts), target)
			return nil
		},
	}
	export.Flags().StringVar(&version, "version", "", "Registry version (default: app.version from config)")

	check := &cobra.Command{
		Use:   "check",
		Short: "Fail when the stored registry differs from the compiled-in contracts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target := a.registryPath(path)
			stored, err := registry.LoadRegistry(target)
			if err != nil {
				return fmt.Errorf("failed to load registry: %w", err)
			}
			if err := stored.Validate(); err != nil {
				return fmt.Errorf("registry validation failed: %w", err)
			}

			changes, err := registry.Diff(stored, registry.Build(schema.Definitions(), stored.Version, a.clock()))
			if err != nil {
				return err
			}
			if len(changes) > 0 {
				a.log.Warn("Registry out of date", map[string]interface{}{"path": target, "changes": changes})
				return fmt.Errorf("registry %s is out of date:\n  %s", target, strings.Join(changes, "\n  "))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registry validation passed. Found %d contracts.\n", len(stored.Contracts))
			return nil
		},
	}

	cmd.AddCommand(export, check)
	return cmd
}

func (a *app) registryPath(flag string) string {
	if flag != "" {
		return flag
	}
	return a.cfg.Registry.Path
}
