package main

import (
	"context"
	"fmt"
	"time"

	"calcui/internal/config"
	"calcui/internal/logger"
	"calcui/internal/trace"
	"calcui/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "0.1.0" // overridden at build time with -ldflags "-X main.version=..."

// shutdownTimeout bounds the final span flush on exit.
const shutdownTimeout = 5 * time.Second

// app carries state shared by the commands of one invocation.
type app struct {
	v          *viper.Viper
	configFile string
	envFile    string
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.NewViper()}

	root := &cobra.Command{
		Use:   "calcui",
		Short: "Keypad calculator for the terminal",
		Long: `calcui is a single-screen calculator: a display above a keypad, driven by
keyboard or mouse, with a dark and a light theme.

Type digits and operators directly, or move across the keypad with the arrow
keys and press enter. Press SPC for commands and ? for help.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runTUI,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default $XDG_CONFIG_HOME/calcui/config.yaml)")
	flags.StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	flags.String(config.KeyTheme, "dark", "initial theme (dark|light)")
	flags.String(config.KeyLogLevel, "info", "log level (debug|info|warn|error)")
	flags.String(config.KeyLogFile, "", "write logs to this file (default: logging disabled)")
	for _, key := range []string{config.KeyTheme, config.KeyLogLevel, config.KeyLogFile} {
		if err := a.v.BindPFlag(key, flags.Lookup(key)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", key, err))
		}
	}

	root.AddCommand(newEvalCmd(), newVersionCmd())
	return root
}

// setup resolves configuration and configures logging for every command.
func (a *app) setup(_ *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(a.envFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

func (a *app) runTUI(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	mode, err := ui.ParseThemeMode(a.cfg.Theme)
	if err != nil {
		return err
	}

	exporter, err := trace.NewOTLPExporter(ctx, a.cfg.OTLPEndpoint, a.cfg.ServiceName)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := exporter.Shutdown(sctx); err != nil {
			logger.Warn("trace shutdown", "err", err)
		}
	}()

	logger.Info("starting", "version", version, "theme", mode, "tracing", exporter != nil)

	model := ui.NewAppModel(ui.WithTheme(mode), ui.WithContext(ctx)).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	logger.Info("exited")
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "calcui v%s\n", version)
		},
	}
}
