// Command dispatch composes a text message, asks for confirmation, posts it
// to a configured endpoint and celebrates a successful delivery.
//
// Run without arguments to start the interactive TUI, or use `dispatch send`
// from scripts.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"message-dispatch/dispatch"
	"message-dispatch/models"
	"message-dispatch/transport"
	"message-dispatch/tui"
	"message-dispatch/ui"
	"message-dispatch/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type cliFlags struct {
	configPath      string
	endpoint        string
	mode            string
	timeout         time.Duration
	logLevel        string
	logFile         string
	simulatedDelay  time.Duration
	simulateFailure bool
	assumeYes       bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &cliFlags{}

	rootCmd := &cobra.Command{
		Use:   "dispatch",
		Short: "Compose and send a message to an external endpoint",
		Long: `dispatch sends one text message at a time to a configured HTTP endpoint.

Every send goes through a confirmation step. Configuration is read from
dispatch.yaml, a .env file, DISPATCH_* environment variables and flags,
later sources winning.

Run without arguments to start the interactive interface.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, flags)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Path to configuration file (default "+utils.DefaultConfigFile+" when present)")
	pf.StringVarP(&flags.endpoint, "endpoint", "e", "", "Endpoint URL messages are posted to")
	pf.StringVarP(&flags.mode, "mode", "m", "", "Transport mode: standard, opaque or simulated")
	pf.DurationVarP(&flags.timeout, "timeout", "t", 0, "Per-attempt transmission timeout")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	pf.StringVar(&flags.logFile, "log-file", "", "Write logs to this file")
	pf.DurationVar(&flags.simulatedDelay, "simulated-delay", 0, "Delay of the simulated transport")
	pf.BoolVar(&flags.simulateFailure, "simulate-failure", false, "Make the simulated transport fail")

	sendCmd := &cobra.Command{
		Use:   "send [text]",
		Short: "Send one message without the interactive interface",
		Long: `Send runs the same compose, confirm, send and celebrate cycle on a plain
terminal. The message is taken from the arguments or prompted for when none
are given. The command exits non-zero when delivery fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSend(cmd, flags, args)
		},
	}
	sendCmd.Flags().BoolVarP(&flags.assumeYes, "yes", "y", false, "Skip the confirmation prompt")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printConfig(cmd, flags)
		},
	}

	rootCmd.AddCommand(sendCmd, configCmd)
	return rootCmd
}

// loadConfig layers flags over utils.LoadConfig. Only flags set explicitly
// override the file and environment.
func loadConfig(cmd *cobra.Command, flags *cliFlags) (models.Config, error) {
	cfg, err := utils.LoadConfig(flags.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return cfg, err
	}

	changed := cmd.Flags().Changed
	if changed("endpoint") {
		cfg.EndpointURL = flags.endpoint
	}
	if changed("mode") {
		cfg.TransportMode = models.TransportMode(flags.mode)
	}
	if changed("timeout") {
		cfg.Timeout = flags.timeout
	}
	if changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if changed("log-file") {
		cfg.LogFile = flags.logFile
	}
	if changed("simulated-delay") {
		cfg.SimulatedDelay = flags.simulatedDelay
	}
	if changed("simulate-failure") {
		cfg.SimulateFailure = flags.simulateFailure
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newController builds the transport and the controller for cfg
func newController(cfg models.Config, logger *zap.Logger) (*dispatch.Controller, error) {
	tr, err := transport.New(cfg, logger)
	if err != nil {
		return nil, err
	}
	return dispatch.NewControllerFromConfig(cfg, tr, dispatch.WithLogger(logger)), nil
}

func runInteractive(cmd *cobra.Command, flags *cliFlags) error {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, logs only go to a file
	logger, err := utils.NewLogger(cfg.LogLevel, cfg.LogFile, false)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	controller, err := newController(cfg, logger)
	if err != nil {
		return err
	}

	return tui.Run(controller,
		tui.WithLogger(logger),
		tui.WithEndpoint(cfg.EndpointURL, string(cfg.TransportMode)))
}

func runSend(cmd *cobra.Command, flags *cliFlags, args []string) error {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	logger, err := utils.NewLogger(cfg.LogLevel, cfg.LogFile, true)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	controller, err := newController(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	session := ui.NewSession(cmd.InOrStdin(), out, ui.WithSessionLogger(logger))
	ui.PrintBanner(out)

	text := strings.Join(args, " ")
	if text == "" {
		text = session.PromptInput("Message", "")
	}

	ev, err := session.Send(ctx, controller, text, flags.assumeYes)
	switch {
	case errors.Is(err, ui.ErrCancelled):
		return nil
	case err != nil:
		return err
	case ev.Kind == dispatch.EventNotifyFailure:
		return fmt.Errorf("delivery failed: %w", ev.Err)
	}

	logger.Info("message delivered",
		zap.String("request_id", ev.RequestID),
		zap.String("mode", string(cfg.TransportMode)))
	return nil
}

func printConfig(cmd *cobra.Command, flags *cliFlags) error {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	data, err := utils.MarshalConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
