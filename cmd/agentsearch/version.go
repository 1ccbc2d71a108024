package main

import (
	"fmt"

	"github.com/jingshiliu/qc-artificial-intelligence/meta"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of agentsearch",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "agentsearch version %s\n", meta.Version)
	},
}
