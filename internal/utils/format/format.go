package format

import (
	"fmt"
	"time"
)

// SizeKB renders a byte count in kilobytes with two decimal places,
// matching how the list screens display document sizes.
func SizeKB(bytes int64) string {
	return fmt.Sprintf("%.2f KB", float64(bytes)/1024)
}

// Date renders a timestamp as a local calendar date.
func Date(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

// Truncate shortens a string for table output.
func Truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}
