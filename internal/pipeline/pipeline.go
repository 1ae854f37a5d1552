// Package pipeline runs the curation stages 0 to 5 over the artifacts of a
// work directory. Each stage reads the complete output of its predecessors
// and writes one new artifact.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	lexirumah "github.com/Anaphory/lexirumah-data"
	"github.com/Anaphory/lexirumah-data/internal/app"
	"github.com/Anaphory/lexirumah-data/internal/config"
)

// Stage numbers, in execution order.
const (
	StagePrepare = iota
	StageCluster
	StageResolve
	StageMerge
	StageAlign
	StageValidate
)

// LastStage is the highest stage number.
const LastStage = StageValidate

var stageNames = [...]string{
	StagePrepare:  "prepare",
	StageCluster:  "cluster",
	StageResolve:  "resolve",
	StageMerge:    "merge",
	StageAlign:    "align",
	StageValidate: "validate",
}

// StageName returns the name of stage n.
func StageName(n int) string {
	if n < 0 || n > LastStage {
		return fmt.Sprintf("stage%d", n)
	}
	return stageNames[n]
}

// Options are the per-run choices of the operator.
type Options struct {
	// Input is the raw word list read by stage 0.
	Input string
	// Start and End bound the stages to run, inclusive.
	Start, End int
	// KeepOrthographic keeps doculects whose ID ends in "-o".
	KeepOrthographic bool
	// WithinMeaning splits cognate classes at concept boundaries.
	WithinMeaning bool
	// Coding is a manual cognate coding used instead of the automatic one.
	Coding string
	// Resets are cognate labels, doculect IDs and concepts to reset to the
	// automatic coding.
	Resets []string
}

// Validate checks the stage range and the inputs it needs.
func (o Options) Validate() error {
	if o.Start < 0 || o.End > LastStage || o.Start > o.End {
		return fmt.Errorf("invalid stage range %d..%d (stages are 0..%d)", o.Start, o.End, LastStage)
	}
	if o.Start <= StagePrepare && o.Input == "" {
		return errors.New("stage 0 needs an input file")
	}
	return nil
}

// StageResult holds the outcome of one completed stage.
type StageResult struct {
	Stage    int
	Name     string
	Rows     int
	Duration time.Duration
}

// StageError reports the stage a run halted at.
type StageError struct {
	Stage int
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %d (%s): %v", e.Stage, StageName(e.Stage), e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Pipeline runs stages against one work directory.
type Pipeline struct {
	log     *slog.Logger
	cfg     config.Config
	seg     *lexirumah.Segmenter
	metrics *app.Metrics

	// external receives the output of external commands.
	external io.Writer

	results []StageResult
}

// New creates a Pipeline. The segmenter reports unclassified symbols to
// metrics and to the debug log.
func New(log *slog.Logger, cfg config.Config, inv *lexirumah.Inventory, metrics *app.Metrics) *Pipeline {
	p := &Pipeline{
		log:      log,
		cfg:      cfg,
		metrics:  metrics,
		external: os.Stderr,
	}
	p.seg = lexirumah.NewSegmenter(inv, lexirumah.WithUnclassified(func(form string, symbol rune) {
		metrics.UnclassifiedSymbols.WithLabelValues(string(symbol)).Inc()
		log.Debug("unclassified symbol", slog.String("form", form), slog.String("symbol", string(symbol)))
	}))
	return p
}

// SetExternalOutput redirects the output of external commands.
func (p *Pipeline) SetExternalOutput(w io.Writer) {
	p.external = w
}

// Results returns the completed stages of the last Run.
func (p *Pipeline) Results() []StageResult {
	return p.results
}

type stageFunc func(ctx context.Context, opts Options) (int, error)

// Run executes stages opts.Start through opts.End in order and halts at the
// first failure. A failed stage leaves no artifact behind.
func (p *Pipeline) Run(ctx context.Context, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	stages := [...]stageFunc{
		StagePrepare:  p.prepare,
		StageCluster:  p.cluster,
		StageResolve:  p.resolve,
		StageMerge:    p.merge,
		StageAlign:    p.align,
		StageValidate: p.validate,
	}

	p.results = nil
	for n := opts.Start; n <= opts.End; n++ {
		name := StageName(n)
		start := time.Now()
		p.log.Info("starting stage", slog.Int("stage", n), slog.String("name", name))

		rows, err := stages[n](ctx, opts)
		elapsed := time.Since(start)
		if err != nil {
			p.log.Error("stage failed",
				slog.Int("stage", n),
				slog.String("name", name),
				slog.String("error", err.Error()),
				slog.Duration("duration", elapsed),
			)
			return &StageError{Stage: n, Err: err}
		}

		p.metrics.ObserveStage(name, rows, elapsed)
		p.results = append(p.results, StageResult{Stage: n, Name: name, Rows: rows, Duration: elapsed})
		p.log.Info("stage completed",
			slog.Int("stage", n),
			slog.String("name", name),
			slog.Int("rows", rows),
			slog.Duration("duration", elapsed),
		)
	}

	p.log.Info("pipeline completed", slog.Int("stages_run", len(p.results)))
	return nil
}

// path resolves an artifact name inside the work directory.
func (p *Pipeline) path(name string) string {
	return filepath.Join(p.cfg.WorkDir, name)
}
