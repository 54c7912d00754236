package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilenameFromDisposition(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
		ok     bool
	}{
		{
			name:   "quoted filename",
			header: `attachment; filename="report.pdf"`,
			want:   "report.pdf",
			ok:     true,
		},
		{
			name:   "unquoted filename",
			header: `attachment; filename=notes.txt`,
			want:   "notes.txt",
			ok:     true,
		},
		{
			name:   "inline disposition",
			header: `inline; filename="view.md"`,
			want:   "view.md",
			ok:     true,
		},
		{
			name:   "missing header",
			header: "",
			ok:     false,
		},
		{
			name:   "no filename parameter",
			header: "attachment",
			ok:     false,
		},
		{
			name:   "garbage header",
			header: ";;;",
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := filenameFromDisposition(tt.header)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
