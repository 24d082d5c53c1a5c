package ffmpeg

import (
	"strconv"
	"strings"
)

// Compression mode names as shown in the mode selector.
const (
	ModeNormal   = "normal"
	ModeSmaller  = "smaller"
	ModeSmallest = "smallest"
)

// EncodeSettings bundles the codec, speed preset and quality knobs a
// compression mode fixes.
type EncodeSettings struct {
	VideoCodec   string
	Preset       string
	CRF          int
	AudioCodec   string
	AudioBitrate string
}

// SettingsFor maps a compression mode name to its encode settings.
// Unrecognized names deliberately fall back to "normal" rather than
// erroring, matching the permissive mode selector contract.
func SettingsFor(mode string) EncodeSettings {
	switch strings.ToLower(mode) {
	case ModeSmallest:
		return EncodeSettings{
			VideoCodec:   "libx265",
			Preset:       "medium",
			CRF:          28,
			AudioCodec:   "aac",
			AudioBitrate: "128k",
		}
	case ModeSmaller:
		return EncodeSettings{
			VideoCodec:   "libx264",
			Preset:       "medium",
			CRF:          24,
			AudioCodec:   "aac",
			AudioBitrate: "160k",
		}
	default:
		return EncodeSettings{
			VideoCodec:   "libx264",
			Preset:       "medium",
			CRF:          18,
			AudioCodec:   "aac",
			AudioBitrate: "192k",
		}
	}
}

// Modes lists the selectable compression modes in display order.
func Modes() []string {
	return []string{ModeNormal, ModeSmaller, ModeSmallest}
}

// VideoArgs renders the video-codec portion of the argument list.
func (s EncodeSettings) VideoArgs() []string {
	return []string{"-c:v", s.VideoCodec, "-preset", s.Preset, "-crf", strconv.Itoa(s.CRF)}
}

// AudioArgs renders the audio-codec portion of the argument list.
func (s EncodeSettings) AudioArgs() []string {
	return []string{"-c:a", s.AudioCodec, "-b:a", s.AudioBitrate}
}
