package domain

import "fmt"

var byteUnits = []string{"B", "KiB", "MiB", "GiB", "TiB"}

// FormatBytes renders a byte count in binary units. Whole numbers for the B
// tier, two decimals above it, "?" for negative (unknown) counts.
func FormatBytes(n int64) string {
	if n < 0 {
		return "?"
	}

	v := float64(n)
	i := 0
	for v >= 1024 && i < len(byteUnits)-1 {
		v /= 1024
		i++
	}

	if i == 0 {
		return fmt.Sprintf("%d %s", n, byteUnits[0])
	}
	return fmt.Sprintf("%.2f %s", v, byteUnits[i])
}

// FormatETA renders a second count as MM:SS.
func FormatETA(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// FormatDuration renders a media duration as H:MM:SS, or M:SS under an hour.
func FormatDuration(seconds int) string {
	mins, secs := seconds/60, seconds%60
	hours, mins := mins/60, mins%60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, mins, secs)
	}
	return fmt.Sprintf("%d:%02d", mins, secs)
}
