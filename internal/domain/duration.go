package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatHMS renders seconds as zero-padded HH:MM:SS. Hours are not wrapped
// at 24 and grow beyond two digits when needed. Negative input renders as zero.
func FormatHMS(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// FormatDuration truncates d to whole seconds and renders it with FormatHMS.
func FormatDuration(d time.Duration) string {
	return FormatHMS(int64(d / time.Second))
}

// ParseHMS parses "H:MM:SS" (any number of hour digits) into seconds.
func ParseHMS(s string) (int64, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, s)
	}
	var vals [3]int64
	for i, p := range parts {
		if p == "" {
			return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, s)
		}
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, s)
		}
		vals[i] = n
	}
	if vals[1] > 59 || vals[2] > 59 {
		return 0, fmt.Errorf("%w: %q: minutes and seconds must be below 60", ErrMalformedDuration, s)
	}
	return vals[0]*3600 + vals[1]*60 + vals[2], nil
}

// ClampElapsed maps a negative interval (end before start) to zero.
func ClampElapsed(seconds int64) int64 {
	if seconds < 0 {
		return 0
	}
	return seconds
}
