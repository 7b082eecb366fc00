package listing

import (
	"testing"

	fsutil "github.com/kk-code-lab/fexplorer/internal/fs"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0.0B"},
		{1, "1.0B"},
		{1023, "1023.0B"},
		{1024, "1.0KB"},
		{1536, "1.5KB"},
		{1024 * 1024, "1.0MB"},
		{5 * 1024 * 1024 * 1024, "5.0GB"},
		{1 << 40, "1.0TB"},
		{1 << 50, "1.0PB"},
		{1 << 60, "1024.0PB"},
	}

	for _, tt := range tests {
		if got := FormatSize(tt.bytes); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestKindLabel(t *testing.T) {
	tests := []struct {
		entry fsutil.Entry
		want  string
	}{
		{fsutil.Entry{Name: "docs", IsDir: true}, "Folder"},
		{fsutil.Entry{Name: "a.jpg", Extension: ".jpg"}, "JPG"},
		{fsutil.Entry{Name: "Makefile"}, "File"},
		{fsutil.Entry{Name: ".bashrc", Extension: fsutil.Extension(".bashrc")}, "File"},
		{fsutil.ParentEntry("/"), "Folder"},
	}

	for _, tt := range tests {
		if got := KindLabel(tt.entry); got != tt.want {
			t.Errorf("KindLabel(%q) = %q, want %q", tt.entry.Name, got, tt.want)
		}
	}
}
