package ffmpeg

import (
	"fmt"
	"strings"
)

// SubtitleStyle is the shared ASS force_style applied to both tracks.
type SubtitleStyle struct {
	FontName string
	FontSize int
	Outline  int
	Shadow   int
}

// DefaultStyle returns the stock subtitle appearance.
func DefaultStyle() SubtitleStyle {
	return SubtitleStyle{
		FontName: DefaultFontName,
		FontSize: DefaultFontSize,
		Outline:  DefaultOutline,
		Shadow:   DefaultShadow,
	}
}

func (s SubtitleStyle) common() string {
	return fmt.Sprintf("FontName=%s,Fontsize=%d,Outline=%d,Shadow=%d",
		s.FontName, s.FontSize, s.Outline, s.Shadow)
}

// FilterOptions describes the dual-subtitle burn-in filter graph.
type FilterOptions struct {
	EnglishPath      string
	VietnamesePath   string
	EnglishMargin    int // pixels from frame bottom, must exceed VietnameseMargin
	VietnameseMargin int
	Downscale        bool
	Style            SubtitleStyle
}

// BuildDualSubtitleFilter composes the two-stage burn-in chain. The
// English track is rendered first with the larger bottom margin so it
// stacks above the Vietnamese track, then the labeled output feeds the
// Vietnamese stage. The final stage either downscales to 720p (even
// width, aspect preserved) or normalizes the pixel format so the chain
// always terminates in a [vout] label.
func BuildDualSubtitleFilter(opts FilterOptions) string {
	style := opts.Style.common()

	stages := []string{
		fmt.Sprintf("[0:v]subtitles=%s:charenc=UTF-8:force_style='Alignment=2,MarginV=%d,%s'[v1]",
			EscapeSubtitlePath(opts.EnglishPath), opts.EnglishMargin, style),
		fmt.Sprintf("[v1]subtitles=%s:charenc=UTF-8:force_style='Alignment=2,MarginV=%d,%s'[v2]",
			EscapeSubtitlePath(opts.VietnamesePath), opts.VietnameseMargin, style),
	}

	if opts.Downscale {
		stages = append(stages, fmt.Sprintf("[v2]scale=-2:%d[vout]", DownscaleHeight))
	} else {
		stages = append(stages, "[v2]format=yuv420p[vout]")
	}

	return strings.Join(stages, ";")
}
