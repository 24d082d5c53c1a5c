package ffmpeg

// BuildArgs assembles the complete argument list for a burn-in encode:
// overwrite without prompting, the filter graph, the filtered video
// stream mapped alongside the (optional) source audio, codec settings
// for the chosen mode, and faststart metadata placement.
func BuildArgs(video, filterChain string, settings EncodeSettings, output string) []string {
	args := []string{
		"-y",
		"-i", video,
		"-filter_complex", filterChain,
		"-map", "[vout]",
		"-map", "0:a?",
	}
	args = append(args, settings.VideoArgs()...)
	args = append(args, settings.AudioArgs()...)
	args = append(args, "-movflags", "+faststart", output)
	return args
}
