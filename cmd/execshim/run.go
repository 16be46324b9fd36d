package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/victoralfred/execshim"
	"github.com/victoralfred/execshim/config"
	"github.com/victoralfred/execshim/hooks"
	"github.com/victoralfred/execshim/internal/execve"
	"github.com/victoralfred/execshim/observability"
)

var (
	runConfigFile string
	runAuditLog   string
	runExtraEnv   []string
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <utility> [args...]",
	Short: "Replace this process with a utility, routed through the trampoline",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		utility := args[0]

		path := utility
		if utility != filepath.Base(utility) && !filepath.IsAbs(utility) {
			return fmt.Errorf("invalid utility %q: use a bare name or an absolute path", utility)
		}
		if !filepath.IsAbs(utility) {
			resolved, err := exec.LookPath(utility)
			if err != nil {
				return fmt.Errorf("resolving %s: %w", utility, err)
			}
			path = resolved
		}

		cfg := config.DefaultConfig()
		if runConfigFile != "" {
			loaded, err := config.Load(filepath.Dir(runConfigFile), filepath.Base(runConfigFile))
			if err != nil {
				return err
			}
			cfg = loaded
		}
		if runAuditLog != "" {
			cfg.Audit.Enabled = true
			cfg.Audit.BasePath = filepath.Dir(runAuditLog)
			cfg.Audit.FilePath = filepath.Base(runAuditLog)
		}

		builder := execshim.NewBuilder()

		if cfg.Audit.Enabled {
			auditLogger, err := observability.NewFileAuditLogger(cfg.Audit)
			if err != nil {
				return fmt.Errorf("creating audit logger: %w", err)
			}
			registry := hooks.NewRegistry()
			if err := registry.Register(observability.NewAuditHook(auditLogger)); err != nil {
				return err
			}
			builder.WithHooks(registry)
		}

		if cfg.Telemetry.EnableMetrics || cfg.Telemetry.EnableTracing {
			telemetry, err := observability.NewTelemetry(cfg.Telemetry)
			if err != nil {
				return fmt.Errorf("creating telemetry: %w", err)
			}
			builder.WithTelemetry(telemetry)
		}

		tr, err := builder.Build()
		if err != nil {
			return err
		}

		// argv[0] stays the caller-supplied name: the launched program sees
		// the utility's name even when the launch is redirected.
		argv := append([]string{utility}, args[1:]...)

		var envp []string
		if len(runExtraEnv) > 0 {
			envp = execve.MergeEnv(os.Environ(), runExtraEnv)
		}

		// Does not return on success: the process image is replaced.
		execErr := tr.Exec(cmd.Context(), path, argv, envp)
		log.Error().Err(execErr).Str("utility", utility).Msg("process replacement failed")
		return execErr
	},
}

func init() {
	runCmd.Flags().StringVar(&runConfigFile, "config", "", "path to an execshim.yaml configuration file")
	runCmd.Flags().StringVar(&runAuditLog, "audit-log", "", "record interception decisions to this file")
	runCmd.Flags().StringArrayVar(&runExtraEnv, "env", nil, "additional KEY=value entries for the replaced process")
	// Flags after the utility belong to the utility, not to execshim.
	runCmd.Flags().SetInterspersed(false)

	rootCmd.AddCommand(runCmd)
}
