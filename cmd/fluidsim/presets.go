package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/1n0r1/euler-fluid-sim/pkg/preset"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range preset.Names() {
				info, _ := preset.Lookup(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", name, info.Description)
			}
		},
	}
}
