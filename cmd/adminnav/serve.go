package main

import (
	"github.com/mchmarny/adminnav/pkg/admin"
	"github.com/mchmarny/adminnav/pkg/registry"
	"github.com/mchmarny/adminnav/pkg/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the navigation API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			promReg := prometheus.NewRegistry()

			reg, settings, err := buildRegistry(cmd, registry.WithRegisterer(promReg))
			if err != nil {
				return err
			}

			port := settings.Port
			if cmd.Flags().Changed("port") {
				port, _ = cmd.Flags().GetInt("port")
			}

			return admin.Run(cmd.Context(), reg, promReg, settings.LogLevel, server.WithPort(port))
		},
	}

	cmd.Flags().String("log-level", "", "Log level: debug, info, warn or error (env LOG_LEVEL)")
	cmd.Flags().IntP("port", "p", server.DefaultPort, "Port to run the server on (env ADMINNAV_PORT)")

	return cmd
}
