package gui

import (
	"reflect"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
)

func newSlots(t *testing.T) *slots {
	t.Helper()
	test.NewApp()
	return &slots{
		video:      widget.NewEntry(),
		english:    widget.NewEntry(),
		vietnamese: widget.NewEntry(),
		out:        widget.NewEntry(),
	}
}

func TestHandleDropPinsTargetSlot(t *testing.T) {
	s := newSlots(t)

	// Dropped on the english row, so the Vietnamese filename hint must
	// not reroute it.
	s.handleDrop(s.english, []string{"/subs/Vietnamese Class Notes.srt"})

	if s.english.Text != "/subs/Vietnamese Class Notes.srt" {
		t.Errorf("english = %q, want the dropped path pinned", s.english.Text)
	}
	if s.vietnamese.Text != "" {
		t.Errorf("vietnamese = %q, want empty", s.vietnamese.Text)
	}
}

func TestHandleDropMultipleFilesUseClassifier(t *testing.T) {
	s := newSlots(t)

	// Several files at once always go through the classifier, even
	// when they land on a slot row.
	s.handleDrop(s.video, []string{"/a/movie.mp4", "/a/english.srt", "/a/viet.srt"})

	if s.video.Text != "/a/movie.mp4" {
		t.Errorf("video = %q", s.video.Text)
	}
	if s.english.Text != "/a/english.srt" {
		t.Errorf("english = %q", s.english.Text)
	}
	if s.vietnamese.Text != "/a/viet.srt" {
		t.Errorf("vietnamese = %q", s.vietnamese.Text)
	}
}

func TestHandleDropOutsideSlotsUsesClassifier(t *testing.T) {
	s := newSlots(t)
	s.handleDrop(nil, []string{"/a/viet.srt"})

	if s.vietnamese.Text != "/a/viet.srt" {
		t.Errorf("vietnamese = %q, want /a/viet.srt", s.vietnamese.Text)
	}
}

func TestClassifyKeepsPinnedSlots(t *testing.T) {
	s := newSlots(t)
	s.english.SetText("/pinned/en.srt")

	s.classify([]string{"/a/extra.srt"})

	if s.english.Text != "/pinned/en.srt" {
		t.Errorf("english = %q, want the pinned path kept", s.english.Text)
	}
	if s.vietnamese.Text != "/a/extra.srt" {
		t.Errorf("vietnamese = %q, want /a/extra.srt", s.vietnamese.Text)
	}
}

func TestTitleMode(t *testing.T) {
	tests := map[string]string{
		"normal":   "Normal",
		"smaller":  "Smaller",
		"Smallest": "Smallest",
		"":         "",
	}
	for in, want := range tests {
		if got := titleMode(in); got != want {
			t.Errorf("titleMode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDisplayModes(t *testing.T) {
	want := []string{"Normal", "Smaller", "Smallest"}
	if got := displayModes(); !reflect.DeepEqual(got, want) {
		t.Errorf("displayModes() = %v, want %v", got, want)
	}
}
