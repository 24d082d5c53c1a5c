package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// ProbeDuration returns the container duration of a media file. The
// GUI uses it to turn progress timestamps into a completion fraction;
// callers must tolerate an error and fall back to indeterminate
// progress when ffprobe is unavailable.
func (e *Executor) ProbeDuration(ctx context.Context, path string) (time.Duration, error) {
	if e.ffprobePath == "" {
		return 0, errors.New("ffprobe not found in PATH")
	}

	cmd := exec.CommandContext(ctx, e.ffprobePath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)

	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return 0, fmt.Errorf("ffprobe failed: %w", err)
	}

	secs, err := strconv.ParseFloat(strings.TrimSpace(out.String()), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration: %w", err)
	}
	return time.Duration(secs * float64(time.Second)), nil
}
