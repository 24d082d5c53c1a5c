package dropzone

import (
	"os"
	"path/filepath"
	"strings"
)

// videoExts are the extensions routed to the video slot.
var videoExts = map[string]bool{
	".mp4": true,
	".mkv": true,
	".mov": true,
	".avi": true,
	".m4v": true,
}

// vietnameseHints mark a subtitle filename as the Vietnamese track.
var vietnameseHints = []string{"vi", "viet", "vietnam"}

// Assignment is the routing target for dropped paths. Fields left
// untouched keep their previous values, so repeated drops merge into
// the current selection.
type Assignment struct {
	Video         string
	EnglishSub    string
	VietnameseSub string
	OutputDir     string
}

// IsVideo reports whether the path carries a known video extension.
func IsVideo(path string) bool {
	return videoExts[strings.ToLower(filepath.Ext(path))]
}

// HasVietnameseHint reports whether a subtitle filename looks like the
// Vietnamese track.
func HasVietnameseHint(name string) bool {
	name = strings.ToLower(name)
	for _, hint := range vietnameseHints {
		if strings.Contains(name, hint) {
			return true
		}
	}
	return false
}

// Classify routes a batch of dropped paths onto the assignment.
// Directories become the output directory and videos fill the video
// slot, last one winning in both cases. Subtitle files route by the
// filename heuristic: a Vietnamese hint claims the Vietnamese slot,
// otherwise the English slot fills first and any later unmarked file
// lands in the Vietnamese slot. Best effort; the GUI offers a swap
// action and manual pickers to correct misrouting.
func (a *Assignment) Classify(paths []string) {
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		if info, err := os.Stat(p); err == nil && info.IsDir() {
			a.OutputDir = p
			continue
		}

		switch {
		case IsVideo(p):
			a.Video = p
		case strings.EqualFold(filepath.Ext(p), ".srt"):
			switch {
			case HasVietnameseHint(filepath.Base(p)):
				a.VietnameseSub = p
			case a.EnglishSub == "":
				a.EnglishSub = p
			default:
				a.VietnameseSub = p
			}
		}
	}
}

// ClassifyPayload tokenizes a raw payload string and routes the result.
func (a *Assignment) ClassifyPayload(data string) {
	a.Classify(SplitPayload(data))
}

// Swap exchanges the two subtitle slots.
func (a *Assignment) Swap() {
	a.EnglishSub, a.VietnameseSub = a.VietnameseSub, a.EnglishSub
}
