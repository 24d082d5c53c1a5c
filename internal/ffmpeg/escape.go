package ffmpeg

import "strings"

// EscapeSubtitlePath escapes a file path for embedding inside a
// subtitles filter expression. Backslashes are doubled before colons
// and single quotes get their own escapes, otherwise the later
// substitutions would mangle the earlier ones. The result is wrapped
// in single quotes so drive letters and spaces survive filter parsing.
func EscapeSubtitlePath(path string) string {
	p := strings.ReplaceAll(path, `\`, `\\`)
	p = strings.ReplaceAll(p, ":", `\:`)
	p = strings.ReplaceAll(p, "'", `\'`)
	return "'" + p + "'"
}
