package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/Anaphory/lexirumah-data/internal/table"
)

// cluster runs the automatic cognate detection, or checks its output.
func (p *Pipeline) cluster(ctx context.Context, _ Options) (int, error) {
	required := append([]string{ColAutoCogID}, cognateColumns...)
	return p.runExternal(ctx, "cluster", p.cfg.External.ClusterCommand,
		p.path(p.cfg.Artifacts.Unaligned), p.path(p.cfg.Artifacts.AutoCognates), required...)
}

// align runs the multiple sequence alignment, or checks its output.
func (p *Pipeline) align(ctx context.Context, _ Options) (int, error) {
	return p.runExternal(ctx, "align", p.cfg.External.AlignCommand,
		p.path(p.cfg.Artifacts.Merged), p.path(p.cfg.Artifacts.Aligned), ColCogID, ColAlignment)
}

// runExternal runs command, if any, to turn input into output, then checks
// that output exists with the required columns.
func (p *Pipeline) runExternal(ctx context.Context, name string, command []string, input, output string, required ...string) (int, error) {
	if len(command) > 0 {
		if _, err := os.Stat(input); err != nil {
			return 0, fmt.Errorf("%s input: %w", name, err)
		}
		args, err := expandCommand(command, input, output)
		if err != nil {
			return 0, err
		}
		p.log.Info("running external command", slog.String("step", name), slog.Any("command", args))

		cmd := exec.CommandContext(ctx, args[0], args[1:]...)
		cmd.Stdout = p.external
		cmd.Stderr = p.external
		if err := cmd.Run(); err != nil {
			return 0, fmt.Errorf("%s command %s: %w", name, args[0], err)
		}
	} else {
		p.log.Info("no external command configured, using existing artifact",
			slog.String("step", name), slog.String("artifact", output))
	}

	t, err := table.ReadFile(output)
	if err != nil {
		return 0, fmt.Errorf("%s output: %w", name, err)
	}
	if err := t.Require(required...); err != nil {
		return 0, fmt.Errorf("%s output %s: %w", name, output, err)
	}
	return t.Len(), nil
}

// expandCommand substitutes absolute artifact paths for the {input} and
// {output} placeholders.
func expandCommand(command []string, input, output string) ([]string, error) {
	if len(command) == 0 || command[0] == "" {
		return nil, errors.New("empty command")
	}
	in, err := filepath.Abs(input)
	if err != nil {
		return nil, err
	}
	out, err := filepath.Abs(output)
	if err != nil {
		return nil, err
	}
	r := strings.NewReplacer("{input}", in, "{output}", out)
	args := make([]string, len(command))
	for i, a := range command {
		args[i] = r.Replace(a)
	}
	return args, nil
}
