package main

import (
	"context"
	"fmt"

	"github.com/mchmarny/adminnav/pkg/config"
	"github.com/mchmarny/adminnav/pkg/navigation"
	"github.com/mchmarny/adminnav/pkg/registry"
	"github.com/spf13/cobra"
)

// coreNavigation is the navigation contributed by the admin itself. Entries
// from a YAML definition with the same names are merged into these.
func coreNavigation(context.Context) (*navigation.Item, error) {
	root := navigation.New("core")

	dashboard := navigation.New("dashboard")
	dashboard.SetID("dashboard")
	dashboard.SetIcon("su-dashboard")
	dashboard.SetView("admin.dashboard")
	dashboard.SetPosition(0)

	settings := navigation.New("settings")
	settings.SetID("settings")
	settings.SetIcon("su-cog")
	settings.SetPosition(1000)

	root.AddChild(dashboard)
	root.AddChild(settings)

	return root, nil
}

// buildRegistry registers the core navigation and, when a config path is
// given by flag or environment, the YAML definition. Flags take precedence
// over the environment in the returned settings.
func buildRegistry(cmd *cobra.Command, opts ...registry.Option) (*registry.Registry, *config.Settings, error) {
	settings, err := config.SettingsFromEnv()
	if err != nil {
		return nil, nil, err
	}

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		settings.ConfigPath = path
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		settings.LogLevel = level
	}

	reg := registry.New(opts...)
	if err := reg.Register(registry.ProviderFunc{ID: "core", Fn: coreNavigation}); err != nil {
		return nil, nil, err
	}

	if settings.ConfigPath == "" {
		return reg, settings, nil
	}

	f, err := config.Load(settings.ConfigPath)
	if err != nil {
		return nil, nil, err
	}

	if err := reg.Register(f.Provider("config")); err != nil {
		return nil, nil, fmt.Errorf("failed to register config navigation: %w", err)
	}

	return reg, settings, nil
}
