package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/colors-autosplitter/internal/autosplit"
	"github.com/CodexForgeBR/colors-autosplitter/internal/banner"
	"github.com/CodexForgeBR/colors-autosplitter/internal/cli"
	"github.com/CodexForgeBR/colors-autosplitter/internal/config"
	"github.com/CodexForgeBR/colors-autosplitter/internal/exitcode"
	"github.com/CodexForgeBR/colors-autosplitter/internal/logging"
	"github.com/CodexForgeBR/colors-autosplitter/internal/process"
	sighandler "github.com/CodexForgeBR/colors-autosplitter/internal/signal"
	"github.com/CodexForgeBR/colors-autosplitter/internal/timer"
)

// version vars injected via ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout))
}

// execute runs the root command and returns the process exit code.
func execute(args []string, out io.Writer) int {
	cfg := config.NewDefaultConfig()
	code := exitcode.Success

	rootCmd := &cobra.Command{
		Use:     "colors-autosplitter",
		Short:   "Autosplitter for Sonic Colors: Ultimate",
		Long:    "Reads Sonic Colors: Ultimate's memory and starts, splits and resets a speedrun timer.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateFlags(cmd, cfg); err != nil {
				return err
			}
			var err error
			code, err = runAutosplitter(cmd, cfg)
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)

	cli.BindFlags(rootCmd, cfg)
	cli.SetCustomHelp(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		logging.Error(err.Error())
		if code == exitcode.Success {
			code = exitcode.Error
		}
	}
	return code
}

func runAutosplitter(cmd *cobra.Command, cfg *config.Config) (int, error) {
	finalCfg, err := config.LoadWithPrecedence(
		config.GlobalConfigPath(),
		config.ProjectConfigPath,
		cfg.ConfigFile,
		cli.Overrides(cmd.Flags(), cfg),
	)
	if err != nil {
		return exitcode.Error, fmt.Errorf("load config: %w", err)
	}

	// Merge CLI-only flags (not in config files)
	finalCfg.ConfigFile = cfg.ConfigFile
	finalCfg.ListLevels = cfg.ListLevels
	finalCfg.SkipSplits = cfg.SkipSplits
	cfg = finalCfg

	logging.SetVerbose(cfg.Verbose)
	out := cmd.OutOrStdout()

	if cfg.ListLevels {
		banner.PrintLevelList(out, cfg.Splits)
		return exitcode.Success, nil
	}

	enabled := 0
	for _, on := range cfg.Splits {
		if on {
			enabled++
		}
	}
	banner.PrintStartupBanner(out, version, cfg.ProcessNames, cfg.TickRate, enabled)

	t := timer.NewLocal()
	t.OnEvent = reportEvent(out)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := sighandler.SetupSignalHandler(ctx, cancel, func() {
		logging.Warn("Interrupted, detaching...")
	})
	defer sig.Stop()

	runner := autosplit.New(t, autosplit.Options{
		ProcessNames: cfg.ProcessNames,
		Settings:     cfg.Settings(),
		TickRate:     cfg.TickRate,
		Out:          out,
	})

	logging.Info("Waiting for the game...")
	err = runner.Run(ctx)

	switch {
	case errors.Is(err, process.ErrUnsupported):
		banner.PrintShutdownBanner(out, exitcode.Name(exitcode.Unsupported))
		return exitcode.Unsupported, err
	case sig.Interrupted():
		banner.PrintShutdownBanner(out, exitcode.Name(exitcode.Interrupted))
		return exitcode.Interrupted, nil
	case err != nil && !errors.Is(err, context.Canceled):
		return exitcode.Error, err
	}
	return exitcode.Success, nil
}

// reportEvent prints timer transitions as they happen. A reset also prints
// the splits of the run it ended.
func reportEvent(out io.Writer) func(timer.Event) {
	return func(ev timer.Event) {
		switch ev.Kind {
		case timer.EventStart:
			logging.Timer("Start")
		case timer.EventSplit:
			logging.Timer(fmt.Sprintf("Split %d at %s", ev.Segment, logging.FormatGameTime(ev.GameTime)))
		case timer.EventReset:
			logging.Timer(fmt.Sprintf("Reset at %s", logging.FormatGameTime(ev.GameTime)))
			banner.PrintRunSummaryBanner(out, ev.GameTime, ev.Splits)
		}
	}
}
