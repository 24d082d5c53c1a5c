package embed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"dualsub/internal/ffmpeg"
	"dualsub/pkg/util"
)

// Runner executes burn-in jobs against a resolved ffmpeg executor.
type Runner struct {
	logger zerolog.Logger
	exec   *ffmpeg.Executor
}

// NewRunner creates a job runner.
func NewRunner(logger zerolog.Logger, exec *ffmpeg.Executor) *Runner {
	return &Runner{
		logger: logger.With().Str("component", "runner").Logger(),
		exec:   exec,
	}
}

// Run validates the job, invokes ffmpeg and verifies the output file
// exists, returning its path. Progress events are forwarded to the
// channel, which is closed before Run returns; a nil channel disables
// progress reporting. Run blocks for the lifetime of the child process.
func (r *Runner) Run(ctx context.Context, job Job, progress chan<- ffmpeg.Progress) (string, error) {
	if progress != nil {
		defer close(progress)
	}

	if err := job.Validate(); err != nil {
		return "", err
	}

	out := job.OutputPath()
	r.logger.Info().
		Str("video", job.VideoPath).
		Str("mode", job.Mode).
		Bool("downscale", job.Downscale).
		Str("output", out).
		Msg("starting burn-in")

	opts := ffmpeg.RunOptions{
		Args: job.Args(),
		LogHandler: func(line string) {
			r.logger.Debug().Str("ffmpeg", line).Msg("encode output")
		},
	}
	if progress != nil {
		opts.ProgressHandler = func(p ffmpeg.Progress) {
			progress <- p
		}
	}

	if err := r.exec.Run(ctx, opts); err != nil {
		return "", fmt.Errorf("burn-in failed: %w", err)
	}

	// A zero exit with no file on disk still counts as failure.
	if !util.FileExists(out) {
		return "", fmt.Errorf("encode finished but output file is missing: %s", out)
	}

	r.logger.Info().Str("output", out).Msg("burn-in complete")
	return out, nil
}
