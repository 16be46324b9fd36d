package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/victoralfred/execshim"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of execshim",
	RunE: func(_ *cobra.Command, _ []string) error {
		fmt.Println("execshim", execshim.Version())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
