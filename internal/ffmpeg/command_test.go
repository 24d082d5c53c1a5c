package ffmpeg

import (
	"reflect"
	"testing"
)

func TestBuildArgs(t *testing.T) {
	chain := "[0:v]x[vout]"
	args := BuildArgs("/in/sample.mp4", chain, SettingsFor("smaller"), "/out/sample_dual_subbed.mp4")

	want := []string{
		"-y",
		"-i", "/in/sample.mp4",
		"-filter_complex", chain,
		"-map", "[vout]",
		"-map", "0:a?",
		"-c:v", "libx264", "-preset", "medium", "-crf", "24",
		"-c:a", "aac", "-b:a", "160k",
		"-movflags", "+faststart",
		"/out/sample_dual_subbed.mp4",
	}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("BuildArgs() =\n%v\nwant\n%v", args, want)
	}
}

func TestBuildArgsAudioOptional(t *testing.T) {
	args := BuildArgs("in.mp4", "chain", SettingsFor("normal"), "out.mp4")

	// The audio map must carry the optional marker so a silent input
	// does not fail the command.
	for i, a := range args {
		if a == "0:a?" && i > 0 && args[i-1] == "-map" {
			return
		}
	}
	t.Errorf("args should map the source audio optionally: %v", args)
}
