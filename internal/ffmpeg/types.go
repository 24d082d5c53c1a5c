package ffmpeg

import "time"

// Progress is a single progress event parsed from the ffmpeg stderr
// stream while an encode is running.
type Progress struct {
	// Raw is the timestamp exactly as ffmpeg printed it, e.g. "00:01:23.45".
	Raw string
	// Elapsed is Raw parsed into a duration. Zero when Raw was unparseable.
	Elapsed time.Duration
}

// ProgressFunc receives progress events during a run.
type ProgressFunc func(Progress)

// RunOptions configures a single ffmpeg invocation.
type RunOptions struct {
	Args            []string
	ProgressHandler ProgressFunc
	LogHandler      func(line string)
}

// Subtitle style defaults, shared by both burned-in tracks.
const (
	DefaultFontName = "Arial"
	DefaultFontSize = 24
	DefaultOutline  = 2
	DefaultShadow   = 1

	// Default vertical margins in pixels from the frame bottom. The
	// English track sits above the Vietnamese one, so its margin must
	// stay the larger of the two.
	DefaultEnglishMargin    = 60
	DefaultVietnameseMargin = 24
)

// DownscaleHeight is the target height when the optional downscale
// stage is enabled. Width is computed by ffmpeg to preserve aspect
// ratio while staying even.
const DownscaleHeight = 720
