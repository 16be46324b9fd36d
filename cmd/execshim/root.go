package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "execshim",
	Short: "Redirect process launches to a substitute executable",
	Long: `execshim stands in for a utility and routes its launch through the
interception trampoline. When ` + "`PITY_REPORT_CONTAINER_PATH`" + ` is set, the
launch is redirected to that path; when unset, it passes through unchanged.
The argument vector and environment are forwarded untouched either way.`,
	SilenceUsage: true,
}
