package embed

import (
	"context"
	"os"
	"testing"

	"github.com/rs/zerolog"

	"dualsub/internal/ffmpeg"
)

// Run must close the progress channel before returning, on every path,
// so a consumer draining it always terminates and callers can wait for
// the drain before publishing a final status.
func TestRunClosesProgressChannel(t *testing.T) {
	executor, err := ffmpeg.New(zerolog.Nop(), os.Args[0])
	if err != nil {
		t.Fatalf("executor: %v", err)
	}

	progress := make(chan ffmpeg.Progress, 4)
	runner := NewRunner(zerolog.Nop(), executor)
	if _, err := runner.Run(context.Background(), Job{}, progress); err == nil {
		t.Fatal("expected a validation error for an empty job")
	}

	select {
	case _, ok := <-progress:
		if ok {
			t.Error("expected a closed channel, got a progress event")
		}
	default:
		t.Error("progress channel left open after Run returned")
	}
}
