package listing

import (
	"fmt"
	"strings"

	fsutil "github.com/kk-code-lab/fexplorer/internal/fs"
)

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// FormatSize renders a byte count with one decimal in the first unit where the
// value drops below 1024. PB is the last unit.
func FormatSize(bytes int64) string {
	value := float64(bytes)
	for i, unit := range sizeUnits {
		if value < 1024 || i == len(sizeUnits)-1 {
			return fmt.Sprintf("%.1f%s", value, unit)
		}
		value /= 1024
	}
	return ""
}

// KindLabel is the "type" column: Folder, the upper-cased extension, or File.
func KindLabel(e fsutil.Entry) string {
	if e.IsDir {
		return "Folder"
	}
	if ext := strings.TrimPrefix(e.Extension, "."); ext != "" {
		return strings.ToUpper(ext)
	}
	return "File"
}
