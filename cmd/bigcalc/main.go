// Command bigcalc evaluates arbitrary-precision integer expressions.
//
//	bigcalc eval 0xffffffffffffffff '*' 0xffffffffffffffff
//	bigcalc eval -- -7 % 3
//	bigcalc convert 255 --to 16
//	bigcalc neg 0b101 --radix 2
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var version = "0.1.0-dev"

// app holds the state shared by every subcommand once the persistent flags
// and the config file have been resolved.
type app struct {
	configPath string
	cfg        config
	log        *slog.Logger
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line in args and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	a := &app{cfg: defaultConfig(), log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		errColor := color.New(color.FgRed, color.Bold)
		setColor(errColor, a.useColor(stderr))
		errColor.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "bigcalc",
		Short:         "Arbitrary-precision integer calculator",
		Long:          `bigcalc evaluates and converts integers of any size`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a TOML config file")
	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().String("log-level", "warn", "log level (debug|info|warn|error)")
	root.PersistentFlags().String("log-fmt", "text", "log format (text|json)")
	root.PersistentFlags().Int("radix", 10, "output radix (2-36)")

	root.AddCommand(newEvalCmd(a))
	root.AddCommand(newConvertCmd(a))
	root.AddCommand(newNegCmd(a))
	return root
}

// setup loads the config file, lets explicitly set flags override it, and
// installs the logger.
func (a *app) setup(cmd *cobra.Command) error {
	path, explicit := a.configPath, a.configPath != ""
	if !explicit {
		path = defaultConfigPath()
	}
	if path != "" {
		cfg, err := loadConfig(path, explicit)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	flags := cmd.Flags()
	var err error
	if flags.Changed("color") {
		if a.cfg.Color, err = flags.GetString("color"); err != nil {
			return fmt.Errorf("failed to get color flag: %w", err)
		}
	}
	if flags.Changed("log-level") {
		if a.cfg.LogLevel, err = flags.GetString("log-level"); err != nil {
			return fmt.Errorf("failed to get log-level flag: %w", err)
		}
	}
	if flags.Changed("log-fmt") {
		if a.cfg.LogFmt, err = flags.GetString("log-fmt"); err != nil {
			return fmt.Errorf("failed to get log-fmt flag: %w", err)
		}
	}
	if flags.Changed("radix") {
		if a.cfg.Radix, err = flags.GetInt("radix"); err != nil {
			return fmt.Errorf("failed to get radix flag: %w", err)
		}
	}
	if err := a.cfg.validate(); err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), a.cfg.LogLevel, a.cfg.LogFmt, a.useColor(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	a.log = logger
	a.log.Debug("config resolved", "path", path, "radix", a.cfg.Radix, "color", a.cfg.Color)
	return nil
}

// useColor reports whether output written to w should be colorized.
func (a *app) useColor(w io.Writer) bool {
	switch a.cfg.Color {
	case "on":
		return true
	case "off":
		return false
	}
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

// isTerminal reports whether f is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func setColor(c *color.Color, on bool) {
	if on {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
}
