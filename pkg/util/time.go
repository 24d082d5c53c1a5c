package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseTimestamp parses an ffmpeg-style timestamp (HH:MM:SS.mmm,
// MM:SS or plain seconds) into a duration.
func ParseTimestamp(s string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) == 0 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid timestamp format: %s", s)
	}

	var total float64
	for _, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid timestamp format: %s", s)
		}
		total = total*60 + v
	}
	return time.Duration(total * float64(time.Second)), nil
}

// FormatDuration renders a duration as an ffmpeg timestamp
// (HH:MM:SS.mmm).
func FormatDuration(d time.Duration) string {
	secs := d.Seconds()
	h := int(secs) / 3600
	m := (int(secs) % 3600) / 60
	return fmt.Sprintf("%02d:%02d:%06.3f", h, m, secs-float64(h*3600+m*60))
}
