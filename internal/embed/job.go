package embed

import (
	"fmt"
	"path/filepath"
	"strings"

	"dualsub/internal/config"
	"dualsub/internal/ffmpeg"
	"dualsub/pkg/util"
)

// OutputSuffix is appended to the video stem to name the result file.
const OutputSuffix = "_dual_subbed.mp4"

// Job is the single-use parameter record for one burn-in run. It is
// collected from the GUI or CLI, turned into an argument list once,
// and discarded after the external process exits.
type Job struct {
	VideoPath         string
	EnglishSubPath    string
	VietnameseSubPath string
	OutputDir         string

	Mode      string
	Downscale bool

	Style            ffmpeg.SubtitleStyle
	EnglishMargin    int
	VietnameseMargin int
}

// NewJob seeds a job with the configured style and encode defaults.
func NewJob(cfg *config.Config) Job {
	return Job{
		OutputDir: cfg.OutputDir,
		Mode:      cfg.DefaultMode,
		Style: ffmpeg.SubtitleStyle{
			FontName: cfg.Subtitles.FontName,
			FontSize: cfg.Subtitles.FontSize,
			Outline:  cfg.Subtitles.OutlineWidth,
			Shadow:   cfg.Subtitles.ShadowDepth,
		},
		EnglishMargin:    cfg.Subtitles.EnglishMargin,
		VietnameseMargin: cfg.Subtitles.VietnameseMargin,
	}
}

// Validate checks every input before the external tool is touched,
// reporting a specific error for the first missing piece.
func (j Job) Validate() error {
	if !util.FileExists(j.VideoPath) {
		return fmt.Errorf("video file not found: %q", j.VideoPath)
	}
	if !util.FileExists(j.EnglishSubPath) {
		return fmt.Errorf("english subtitle file not found: %q", j.EnglishSubPath)
	}
	if !util.FileExists(j.VietnameseSubPath) {
		return fmt.Errorf("vietnamese subtitle file not found: %q", j.VietnameseSubPath)
	}
	if !util.DirExists(j.OutputDir) {
		return fmt.Errorf("output directory not found: %q", j.OutputDir)
	}
	// The stacking order only holds while the English track keeps the
	// larger bottom offset.
	if j.EnglishMargin <= j.VietnameseMargin {
		return fmt.Errorf("english margin (%d) must exceed vietnamese margin (%d)",
			j.EnglishMargin, j.VietnameseMargin)
	}
	return nil
}

// OutputPath names the result file from the video stem inside the
// chosen output directory.
func (j Job) OutputPath() string {
	base := filepath.Base(j.VideoPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(j.OutputDir, stem+OutputSuffix)
}

// Args derives the full ffmpeg argument list for this job.
func (j Job) Args() []string {
	chain := ffmpeg.BuildDualSubtitleFilter(ffmpeg.FilterOptions{
		EnglishPath:      j.EnglishSubPath,
		VietnamesePath:   j.VietnameseSubPath,
		EnglishMargin:    j.EnglishMargin,
		VietnameseMargin: j.VietnameseMargin,
		Downscale:        j.Downscale,
		Style:            j.Style,
	})
	return ffmpeg.BuildArgs(j.VideoPath, chain, ffmpeg.SettingsFor(j.Mode), j.OutputPath())
}
