package gui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"dualsub/internal/config"
	"dualsub/internal/dropzone"
	"dualsub/internal/embed"
	"dualsub/internal/ffmpeg"
	"dualsub/pkg/util"
)

var (
	videoFilter = storage.NewExtensionFileFilter([]string{".mp4", ".mkv", ".mov", ".avi", ".m4v"})
	srtFilter   = storage.NewExtensionFileFilter([]string{".srt"})
)

// slots groups the four path entries so drops can be routed onto them.
type slots struct {
	video      *widget.Entry
	english    *widget.Entry
	vietnamese *widget.Entry
	out        *widget.Entry
}

func (s *slots) all() []*widget.Entry {
	return []*widget.Entry{s.video, s.english, s.vietnamese, s.out}
}

// classify merges dropped paths into whatever is already selected, so
// the heuristic only fills slots the user has not pinned by hand.
func (s *slots) classify(paths []string) {
	assign := &dropzone.Assignment{
		Video:         s.video.Text,
		EnglishSub:    s.english.Text,
		VietnameseSub: s.vietnamese.Text,
		OutputDir:     s.out.Text,
	}
	assign.Classify(paths)
	s.video.SetText(assign.Video)
	s.english.SetText(assign.EnglishSub)
	s.vietnamese.SetText(assign.VietnameseSub)
	s.out.SetText(assign.OutputDir)
}

// handleDrop routes a drop: a single path dropped directly onto a slot
// row pins that slot, bypassing the filename heuristic; everything
// else goes through the classifier.
func (s *slots) handleDrop(target *widget.Entry, paths []string) {
	if target != nil && len(paths) == 1 {
		target.SetText(paths[0])
		return
	}
	s.classify(paths)
}

// slotAt hit-tests a window drop position against the slot entries.
func (s *slots) slotAt(pos fyne.Position) *widget.Entry {
	driver := fyne.CurrentApp().Driver()
	for _, entry := range s.all() {
		topLeft := driver.AbsolutePositionForObject(entry)
		size := entry.Size()
		if pos.X >= topLeft.X && pos.X <= topLeft.X+size.Width &&
			pos.Y >= topLeft.Y && pos.Y <= topLeft.Y+size.Height {
			return entry
		}
	}
	return nil
}

// titleMode renders a mode name for display; SettingsFor lowercases it
// on the way back in.
func titleMode(mode string) string {
	if mode == "" {
		return mode
	}
	return strings.ToUpper(mode[:1]) + mode[1:]
}

func displayModes() []string {
	modes := ffmpeg.Modes()
	out := make([]string, len(modes))
	for i, m := range modes {
		out[i] = titleMode(m)
	}
	return out
}

// Run builds the main window and blocks until it is closed. All
// widget state lives on the interactive thread; the encode itself
// runs on a worker goroutine that reports back through fyne.Do.
func Run(logger zerolog.Logger, cfg *config.Config) {
	a := app.NewWithID("dualsub")
	w := a.NewWindow("Dual Subtitle Embedder (EN over VI)")
	w.Resize(fyne.NewSize(820, 600))

	videoEntry := widget.NewEntry()
	videoEntry.SetPlaceHolder("Video file (.mp4 .mkv .mov .avi .m4v)")
	enEntry := widget.NewEntry()
	enEntry.SetPlaceHolder("English SRT (rendered just above the Vietnamese track)")
	viEntry := widget.NewEntry()
	viEntry.SetPlaceHolder("Vietnamese SRT (rendered nearest the bottom)")
	outEntry := widget.NewEntry()
	outEntry.SetText(cfg.OutputDir)

	routes := &slots{video: videoEntry, english: enEntry, vietnamese: viEntry, out: outEntry}

	w.SetOnDropped(func(pos fyne.Position, uris []fyne.URI) {
		paths := make([]string, 0, len(uris))
		for _, u := range uris {
			paths = append(paths, u.Path())
		}
		routes.handleDrop(routes.slotAt(pos), paths)
	})

	browseFile := func(entry *widget.Entry, filter storage.FileFilter) func() {
		return func() {
			fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
				if err != nil {
					dialog.ShowError(err, w)
					return
				}
				if reader == nil {
					return
				}
				path := reader.URI().Path()
				reader.Close()
				entry.SetText(path)
			}, w)
			fd.SetFilter(filter)
			fd.Show()
		}
	}

	browseDir := func() {
		dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil {
				dialog.ShowError(err, w)
				return
			}
			if uri == nil {
				return
			}
			outEntry.SetText(uri.Path())
		}, w)
	}

	swapBtn := widget.NewButton("Swap EN <-> VI", func() {
		en := enEntry.Text
		enEntry.SetText(viEntry.Text)
		viEntry.SetText(en)
	})

	modeSelect := widget.NewSelect(displayModes(), nil)
	modeSelect.SetSelected(titleMode(cfg.DefaultMode))
	downscaleCheck := widget.NewCheck("Downscale to 720p", nil)

	fontEntry := widget.NewEntry()
	fontEntry.SetText(strconv.Itoa(cfg.Subtitles.FontSize))
	enMarginEntry := widget.NewEntry()
	enMarginEntry.SetText(strconv.Itoa(cfg.Subtitles.EnglishMargin))
	viMarginEntry := widget.NewEntry()
	viMarginEntry.SetText(strconv.Itoa(cfg.Subtitles.VietnameseMargin))

	status := widget.NewLabel("Drop files anywhere in the window, or click Browse.")
	status.Wrapping = fyne.TextWrapWord
	bar := widget.NewProgressBar()
	bar.Hide()
	spinner := widget.NewProgressBarInfinite()
	spinner.Stop()
	spinner.Hide()

	var startBtn *widget.Button
	startBtn = widget.NewButton("Embed Subtitles", func() {
		job := embed.NewJob(cfg)
		job.VideoPath = strings.TrimSpace(videoEntry.Text)
		job.EnglishSubPath = strings.TrimSpace(enEntry.Text)
		job.VietnameseSubPath = strings.TrimSpace(viEntry.Text)
		job.OutputDir = strings.TrimSpace(outEntry.Text)
		job.Mode = modeSelect.Selected
		job.Downscale = downscaleCheck.Checked

		var parseErr error
		job.Style.FontSize, parseErr = parseNumber("font size", fontEntry.Text)
		if parseErr == nil {
			job.EnglishMargin, parseErr = parseNumber("EN margin", enMarginEntry.Text)
		}
		if parseErr == nil {
			job.VietnameseMargin, parseErr = parseNumber("VI margin", viMarginEntry.Text)
		}
		if parseErr == nil {
			parseErr = job.Validate()
		}
		if parseErr != nil {
			status.SetText(parseErr.Error())
			dialog.ShowError(parseErr, w)
			return
		}

		exec, err := ffmpeg.New(logger, cfg.FFmpeg.BinaryPath)
		if err != nil {
			status.SetText(err.Error())
			dialog.ShowError(err, w)
			return
		}

		startBtn.Disable()
		status.SetText("Starting ffmpeg...")
		runner := embed.NewRunner(logger, exec)
		progress := make(chan ffmpeg.Progress, 16)
		started := time.Now()

		go func() {
			// Probe first so time= events can drive a real bar; an
			// unprobeable input just gets the indeterminate one.
			total, _ := exec.ProbeDuration(context.Background(), job.VideoPath)
			totalText := util.FormatDuration(total)
			fyne.Do(func() {
				if total > 0 {
					bar.SetValue(0)
					bar.Show()
				} else {
					spinner.Show()
					spinner.Start()
				}
			})

			// The runner closes the channel, but buffered events may
			// still be queued when it returns. The completion update
			// waits for the drain so a stale "Encoding..." status can
			// never land after "Done".
			drained := make(chan struct{})
			go func() {
				defer close(drained)
				for p := range progress {
					raw := p.Raw
					frac := 0.0
					if total > 0 && p.Elapsed > 0 {
						frac = min(p.Elapsed.Seconds()/total.Seconds(), 1)
					}
					fyne.Do(func() {
						if total > 0 {
							status.SetText(fmt.Sprintf("Encoding... %s / %s", raw, totalText))
							bar.SetValue(frac)
						} else {
							status.SetText("Encoding... time=" + raw)
						}
					})
				}
			}()

			out, err := runner.Run(context.Background(), job, progress)
			<-drained
			fyne.Do(func() {
				bar.Hide()
				spinner.Stop()
				spinner.Hide()
				startBtn.Enable()
				if err != nil {
					status.SetText(err.Error())
					dialog.ShowError(err, w)
					return
				}
				status.SetText(fmt.Sprintf("Done in %.1fs -> %s", time.Since(started).Seconds(), out))
				dialog.ShowInformation("Success", "Created\n"+out, w)
			})
		}()
	})

	row := func(label string, entry *widget.Entry, browse func()) fyne.CanvasObject {
		return container.NewVBox(
			widget.NewLabel(label),
			container.NewBorder(nil, nil, nil, widget.NewButton("Browse...", browse), entry),
		)
	}

	styleRow := container.NewHBox(
		widget.NewLabel("Font size:"), fontEntry,
		widget.NewLabel("EN margin (px from bottom):"), enMarginEntry,
		widget.NewLabel("VI margin:"), viMarginEntry,
	)
	compressionRow := container.NewHBox(
		widget.NewLabel("Mode:"), modeSelect,
		downscaleCheck,
	)

	w.SetContent(container.NewVBox(
		widget.NewLabelWithStyle(
			"Drop here: video + English/Vietnamese .srt (auto-detected). Drop onto a row to pin that slot; drop a folder to set the output directory.",
			fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
		row("Video file", videoEntry, browseFile(videoEntry, videoFilter)),
		row("English SRT (top, just above VI)", enEntry, browseFile(enEntry, srtFilter)),
		row("Vietnamese SRT (bottom)", viEntry, browseFile(viEntry, srtFilter)),
		swapBtn,
		row("Output folder", outEntry, browseDir),
		compressionRow,
		styleRow,
		container.NewBorder(nil, nil, nil, startBtn, container.NewStack(bar, spinner)),
		status,
	))

	w.ShowAndRun()
}

func parseNumber(label, text string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", label, text)
	}
	return v, nil
}
