package embed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dualsub/internal/config"
)

func writeFile(t *testing.T, path string) string {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func validJob(t *testing.T) Job {
	t.Helper()
	dir := t.TempDir()

	cfg, err := config.Load(filepath.Join(dir, "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("config load: %v", err)
	}

	job := NewJob(cfg)
	job.VideoPath = writeFile(t, filepath.Join(dir, "sample.mp4"))
	job.EnglishSubPath = writeFile(t, filepath.Join(dir, "english.srt"))
	job.VietnameseSubPath = writeFile(t, filepath.Join(dir, "vietsub.srt"))
	job.OutputDir = dir
	return job
}

func TestNewJobDefaults(t *testing.T) {
	job := validJob(t)

	if job.Mode != "smaller" {
		t.Errorf("default mode = %q, want smaller", job.Mode)
	}
	if job.Style.FontName != "Arial" || job.Style.FontSize != 24 {
		t.Errorf("default style = %+v", job.Style)
	}
	if job.EnglishMargin != 60 || job.VietnameseMargin != 24 {
		t.Errorf("default margins = %d/%d, want 60/24", job.EnglishMargin, job.VietnameseMargin)
	}
}

func TestJobValidate(t *testing.T) {
	if err := validJob(t).Validate(); err != nil {
		t.Fatalf("valid job should pass validation: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(*Job)
		wantErr string
	}{
		{"missing video", func(j *Job) { j.VideoPath = "/nope/sample.mp4" }, "video file not found"},
		{"missing english srt", func(j *Job) { j.EnglishSubPath = "/nope/en.srt" }, "english subtitle file not found"},
		{"missing vietnamese srt", func(j *Job) { j.VietnameseSubPath = "/nope/vi.srt" }, "vietnamese subtitle file not found"},
		{"missing output dir", func(j *Job) { j.OutputDir = "/nope/out" }, "output directory not found"},
		{"video path is a directory", func(j *Job) { j.VideoPath = j.OutputDir }, "video file not found"},
		{"inverted margins", func(j *Job) { j.EnglishMargin, j.VietnameseMargin = 10, 40 }, "must exceed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := validJob(t)
			tt.mutate(&job)

			err := job.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestJobOutputPath(t *testing.T) {
	job := Job{VideoPath: "/videos/My Movie.mkv", OutputDir: "/out"}

	want := filepath.Join("/out", "My Movie_dual_subbed.mp4")
	if got := job.OutputPath(); got != want {
		t.Errorf("OutputPath() = %q, want %q", got, want)
	}
}

func TestJobArgs(t *testing.T) {
	job := validJob(t)
	job.Mode = "smallest"
	args := job.Args()

	joined := strings.Join(args, " ")
	if args[0] != "-y" {
		t.Errorf("args should request overwrite first: %v", args)
	}
	if !strings.Contains(joined, "-filter_complex") {
		t.Errorf("args should carry the filter graph: %q", joined)
	}
	if !strings.Contains(joined, "-c:v libx265") {
		t.Errorf("smallest mode should pick libx265: %q", joined)
	}
	if !strings.Contains(joined, "-movflags +faststart") {
		t.Errorf("args should enable faststart: %q", joined)
	}
	if args[len(args)-1] != job.OutputPath() {
		t.Errorf("last arg should be the output path: %v", args)
	}
}
