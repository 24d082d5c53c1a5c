package ffmpeg

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/rs/zerolog"

	"dualsub/pkg/util"
)

// ErrNotFound is returned when no ffmpeg executable can be resolved.
var ErrNotFound = errors.New("ffmpeg executable not found: install it or add it to PATH")

// windowsInstallDir is the conventional install location checked when
// ffmpeg is absent from PATH on Windows.
const windowsInstallDir = `C:\ffmpeg\bin\ffmpeg.exe`

// Executor runs ffmpeg as a child process with progress streaming.
type Executor struct {
	logger      zerolog.Logger
	ffmpegPath  string
	ffprobePath string
}

// New resolves the ffmpeg binary and builds an executor. A non-empty
// binaryPath (config override) is used as-is after an existence check.
func New(logger zerolog.Logger, binaryPath string) (*Executor, error) {
	path := binaryPath
	if path == "" {
		var err error
		path, err = Resolve()
		if err != nil {
			return nil, err
		}
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	// ffprobe is optional; only the determinate progress bar needs it.
	ffprobePath, _ := exec.LookPath("ffprobe")

	return &Executor{
		logger:      logger.With().Str("component", "ffmpeg").Logger(),
		ffmpegPath:  path,
		ffprobePath: ffprobePath,
	}, nil
}

// Resolve finds ffmpeg on PATH, falling back to the common Windows
// install location.
func Resolve() (string, error) {
	if p, err := exec.LookPath("ffmpeg"); err == nil {
		return p, nil
	}
	if runtime.GOOS == "windows" {
		if _, err := os.Stat(windowsInstallDir); err == nil {
			return windowsInstallDir, nil
		}
	}
	return "", ErrNotFound
}

// Path returns the resolved ffmpeg executable path.
func (e *Executor) Path() string {
	return e.ffmpegPath
}

// Run launches ffmpeg with the given arguments and blocks until the
// child exits. Stdout is discarded; stderr is consumed line by line
// and every line carrying a time= marker is reported as a Progress
// event. The child is always waited on, whatever the outcome.
func (e *Executor) Run(ctx context.Context, opts RunOptions) error {
	if len(opts.Args) == 0 {
		return fmt.Errorf("no arguments provided")
	}

	e.logger.Debug().
		Str("cmd", e.ffmpegPath).
		Strs("args", opts.Args).
		Msg("executing ffmpeg")

	cmd := exec.CommandContext(ctx, e.ffmpegPath, opts.Args...)

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start ffmpeg: %w", err)
	}

	lastLine := e.streamStderr(stderr, opts)

	if err := cmd.Wait(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if lastLine != "" {
			return fmt.Errorf("ffmpeg execution failed: %w: %s", err, lastLine)
		}
		return fmt.Errorf("ffmpeg execution failed: %w", err)
	}

	e.logger.Debug().Msg("ffmpeg execution completed")
	return nil
}

// streamStderr scans the diagnostic stream, forwarding every line to
// the log handler and time= markers to the progress handler. The last
// non-empty line is kept for error reporting.
func (e *Executor) streamStderr(r io.Reader, opts RunOptions) string {
	scanner := bufio.NewScanner(r)
	scanner.Split(scanStatusLines)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var last string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) != "" {
			last = line
		}

		if opts.LogHandler != nil {
			opts.LogHandler(line)
		}

		if opts.ProgressHandler != nil {
			if raw, ok := extractTime(line); ok {
				elapsed, _ := util.ParseTimestamp(raw)
				opts.ProgressHandler(Progress{Raw: raw, Elapsed: elapsed})
			}
		}
	}
	return last
}

// extractTime pulls the encoded timestamp out of an ffmpeg stats line.
// Lines without the marker are normal and simply skipped.
func extractTime(line string) (string, bool) {
	i := strings.Index(line, "time=")
	if i < 0 {
		return "", false
	}
	rest := line[i+len("time="):]
	if j := strings.IndexAny(rest, " \t"); j >= 0 {
		rest = rest[:j]
	}
	rest = strings.TrimSpace(rest)
	if rest == "" || rest == "N/A" {
		return "", false
	}
	return rest, true
}

// scanStatusLines splits on \n or \r so the carriage-return rewritten
// stats lines ffmpeg emits surface as individual lines.
func scanStatusLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
