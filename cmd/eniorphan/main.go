package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"eniorphan/internal/config"
	"eniorphan/internal/orchestrator"
	aws "eniorphan/internal/providers/aws"
	"eniorphan/pkg/logging"
)

// Exit codes
const (
	exitOK       = 0
	exitError    = 1
	exitNotFound = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	exitCode := exitOK
	rootCmd := newRootCommand(&exitCode)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if exitCode == exitOK {
			exitCode = exitError
		}
	}
	return exitCode
}

func newRootCommand(exitCode *int) *cobra.Command {
	cfg := config.Default()
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "eniorphan",
		Short: "Diagnose why a Lambda-managed network interface has not been reclaimed",
		Long: `eniorphan inspects a Lambda-managed ENI, finds the function versions that still
share its subnet and security groups, and checks CloudTrail for out-of-band
security group changes that would prevent the platform from reclaiming it.

No resource is modified.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := resolveConfig(cmd, cfg, configPath)
			if err != nil {
				*exitCode = exitError
				return err
			}

			logger, err := logging.New(logging.Options{
				Level:  resolved.LogLevel,
				Format: logging.Format(resolved.LogFormat),
			})
			if err != nil {
				*exitCode = exitError
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			service, err := orchestrator.NewDefaultService(ctx, resolved, logger)
			if err != nil {
				*exitCode = exitError
				return fmt.Errorf("failed to initialize the service: %w", err)
			}

			if _, err := service.Run(ctx); err != nil {
				*exitCode = exitCodeFor(err)
				return err
			}
			return nil
		},
	}

	bindFlags(rootCmd, &cfg, &configPath)

	return rootCmd
}

// exitCodeFor maps a run error to the process exit code.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return exitOK
	case aws.IsErrorCategory(err, aws.ErrResourceNotFound):
		return exitNotFound
	default:
		return exitError
	}
}

func bindFlags(cmd *cobra.Command, cfg *config.Config, configPath *string) {
	flags := cmd.Flags()
	flags.StringVar(&cfg.InterfaceID, "eni-id", "", "ID of the network interface to diagnose (required)")
	flags.StringVar(&cfg.Region, "region", "", "AWS region of the interface (default: config file, then AWS_REGION)")
	flags.StringVar(&cfg.Output, "output", cfg.Output, "Output format: table or json")
	flags.DurationVar(&cfg.Lookback, "lookback", cfg.Lookback, "How far back to search CloudTrail for security group changes (max 2160h)")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: console or json")
	flags.StringVar(configPath, "config", "", "Path to an HCL configuration file")
	_ = cmd.MarkFlagRequired("eni-id")
}

// resolveConfig merges defaults, the optional config file, AWS_REGION and the
// flags that were set explicitly, in increasing order of precedence.
func resolveConfig(cmd *cobra.Command, flagValues config.Config, configPath string) (config.Config, error) {
	resolved := config.Default()

	if configPath != "" {
		fc, err := config.LoadFile(configPath)
		if err != nil {
			return resolved, err
		}
		if err := resolved.ApplyFile(fc); err != nil {
			return resolved, err
		}
	}

	flags := cmd.Flags()
	resolved.InterfaceID = flagValues.InterfaceID
	if flags.Changed("region") {
		resolved.Region = flagValues.Region
	}
	if flags.Changed("output") {
		resolved.Output = flagValues.Output
	}
	if flags.Changed("lookback") {
		resolved.Lookback = flagValues.Lookback
	}
	if flags.Changed("log-level") {
		resolved.LogLevel = flagValues.LogLevel
	}
	if flags.Changed("log-format") {
		resolved.LogFormat = flagValues.LogFormat
	}
	resolved.ApplyEnv(os.Getenv)

	return resolved, resolved.Validate()
}
