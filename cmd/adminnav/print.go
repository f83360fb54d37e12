package main

import (
	"encoding/json"
	"fmt"

	"github.com/mchmarny/adminnav/pkg/navigation"
	"github.com/spf13/cobra"
)

func newPrintCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print the assembled navigation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, _, err := buildRegistry(cmd)
			if err != nil {
				return err
			}

			root, err := reg.Navigation(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(root.ToArray())
			}

			_, err = fmt.Fprint(out, navigation.Tree(root.Freeze()).String())
			return err
		},
	}

	cmd.Flags().Bool("json", false, "Print the serialized payload instead of a tree")

	return cmd
}
