package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mchmarny/adminnav/pkg/admin"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "adminnav",
		Short:         "Serve and inspect the admin navigation",
		Version:       admin.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringP("config", "c", "", "Path to a YAML navigation definition (env ADMINNAV_CONFIG)")

	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newPrintCommand())
	cmd.AddCommand(newVersionCommand())

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of adminnav",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "adminnav %s\n", admin.Version)
			fmt.Fprintf(out, "  Commit:    %s\n", admin.Commit)
			fmt.Fprintf(out, "  Built:     %s\n", admin.Date)
		},
	}
}
