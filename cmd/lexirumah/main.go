// Command lexirumah curates the cognate coding of the LexiRumah word list.
//
// It runs the stages
//
//	0  prepare   raw word list    -> unaligned.tsv
//	1  cluster   unaligned.tsv    -> tap-cognates.tsv (external)
//	2  resolve   tap-cognates.tsv -> tap-cognates-mg.tsv
//	3  merge     tap-cognates-mg.tsv -> tap-cognates-merged.tsv
//	4  align     tap-cognates-merged.tsv -> tap-aligned.tsv (external)
//	5  validate  tap-aligned.tsv  -> tap-alignments-merged.tsv
//
// from --start to --end inclusive.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	lexirumah "github.com/Anaphory/lexirumah-data"
	"github.com/Anaphory/lexirumah-data/internal/app"
	"github.com/Anaphory/lexirumah-data/internal/config"
	"github.com/Anaphory/lexirumah-data/internal/pipeline"
)

const defaultInput = "all_data.tsv"

type flags struct {
	opts        pipeline.Options
	configPath  string
	workDir     string
	inventory   string
	metricsFile string
	logLevel    string
	logFormat   string
}

func newRootCmd(stderr io.Writer) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "lexirumah [filename]",
		Short: "Curate cognate classes and alignments of a word list",
		Long: `Curate cognate classes and alignments of a word list.

The automatic clustering (stage 1) and alignment (stage 4) are external;
configure external.cluster_command and external.align_command, or
provide their output in the work directory.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f.opts.Input = defaultInput
			if len(args) == 1 {
				f.opts.Input = args[0]
			}
			if err := f.opts.Validate(); err != nil {
				return err
			}
			return run(cmd, stderr, f)
		},
	}

	fl := cmd.Flags()
	fl.IntVar(&f.opts.Start, "start", pipeline.StagePrepare, "first stage to run")
	fl.IntVar(&f.opts.End, "end", pipeline.StageMerge, "last stage to run")
	fl.BoolVar(&f.opts.KeepOrthographic, "keep-orthographic", false, "keep orthographic doculects (IDs ending in -o)")
	fl.BoolVar(&f.opts.WithinMeaning, "within-meaning", false, "split cognate classes at concept boundaries")
	fl.StringVar(&f.opts.Coding, "coding", "", "manual cognate coding to resolve instead of the automatic one")
	fl.StringArrayVar(&f.opts.Resets, "reset", nil, "cognate set, doculect ID or concept to reset to the automatic coding (repeatable)")
	fl.StringVar(&f.configPath, "config", "", "YAML configuration file")
	fl.StringVar(&f.workDir, "workdir", "", "directory holding the stage artifacts")
	fl.StringVar(&f.inventory, "inventory", "", "phonetic inventory YAML file")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "write run metrics to this file in Prometheus text format")
	fl.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")
	fl.StringVar(&f.logFormat, "log-format", "", "log format: text or json")
	return cmd
}

func run(cmd *cobra.Command, stderr io.Writer, f flags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	fl := cmd.Flags()
	if fl.Changed("workdir") {
		cfg.WorkDir = f.workDir
	}
	if fl.Changed("inventory") {
		cfg.Inventory = f.inventory
	}
	if fl.Changed("metrics-file") {
		cfg.MetricsFile = f.metricsFile
	}
	if fl.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if fl.Changed("log-format") {
		cfg.Log.Format = f.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := app.NewLogger(stderr, cfg.Log).With(slog.String("run_id", uuid.NewString()))

	inv, err := lexirumah.LoadInventory(cfg.Inventory)
	if err != nil {
		return err
	}

	metrics := app.NewMetrics()
	p := pipeline.New(logger, *cfg, inv, metrics)
	p.SetExternalOutput(stderr)
	runErr := p.Run(cmd.Context(), f.opts)

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Error("writing metrics failed", slog.String("error", err.Error()))
		}
	}
	return runErr
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "lexirumah: %v\n", err)
		stop()
		os.Exit(1)
	}
}
