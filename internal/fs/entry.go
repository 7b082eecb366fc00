package fs

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ParentName is the name of the synthetic entry that leads to the parent directory.
const ParentName = ".."

// Entry describes a single child of a listed directory.
type Entry struct {
	Name      string
	FullPath  string
	IsDir     bool
	IsSymlink bool
	IsParent  bool
	Size      int64 // meaningless for directories
	Extension string
	Modified  time.Time
	Mode      os.FileMode
}

// IsHidden reports whether the entry should be treated as hidden.
func (e Entry) IsHidden() bool {
	if e.IsParent {
		return false
	}
	return IsHidden(e.FullPath, e.Name)
}

// ParentEntry builds the synthetic ".." entry pointing at parent.
func ParentEntry(parent string) Entry {
	return Entry{
		Name:     ParentName,
		FullPath: parent,
		IsDir:    true,
		IsParent: true,
	}
}

// Extension returns the lowercase extension of name including the dot.
// Leading dots belong to the name, so ".bashrc" and ".png" have none.
func Extension(name string) string {
	base := strings.TrimLeft(name, ".")
	if strings.LastIndexByte(base, '.') < 0 {
		return ""
	}
	return strings.ToLower(filepath.Ext(base))
}
