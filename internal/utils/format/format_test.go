package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSizeKB(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{name: "two kilobytes", bytes: 2048, want: "2.00 KB"},
		{name: "zero", bytes: 0, want: "0.00 KB"},
		{name: "sub-kilobyte", bytes: 512, want: "0.50 KB"},
		{name: "large file", bytes: 10485760, want: "10240.00 KB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SizeKB(tt.bytes))
		})
	}
}

func TestDate(t *testing.T) {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, ts.Local().Format("2006-01-02"), Date(ts))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "very lo...", Truncate("very long string", 10))
}
