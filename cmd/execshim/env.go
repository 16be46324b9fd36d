package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/victoralfred/execshim"
)

// envCmd represents the env command
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Display the current redirect configuration",
	RunE: func(_ *cobra.Command, _ []string) error {
		value, ok := os.LookupEnv(execshim.RedirectEnvVar)
		if !ok {
			fmt.Printf("%s is unset: calls pass through unmodified\n", execshim.RedirectEnvVar)
			return nil
		}
		fmt.Printf("%s=%s\n", execshim.RedirectEnvVar, value)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(envCmd)
}
