package fs

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// UnknownMIME is reported when the content type cannot be sniffed.
const UnknownMIME = "unknown"

// Properties is the detail view of a single entry.
type Properties struct {
	Name      string
	Path      string
	IsDir     bool
	IsSymlink bool
	Size      int64
	Mode      os.FileMode
	Modified  time.Time
	MIME      string
}

// Kind returns a human label for the entry type.
func (p Properties) Kind() string {
	if p.IsDir {
		return "Folder"
	}
	return "File"
}

// ReadProperties stats path and, for regular files, sniffs the MIME type from
// the leading bytes.
func ReadProperties(fsys FileSystem, path string) (Properties, error) {
	linfo, err := fsys.Lstat(path)
	if err != nil {
		return Properties{}, err
	}
	info := linfo
	isSymlink := linfo.Mode()&os.ModeSymlink != 0
	if isSymlink {
		if target, err := fsys.Stat(path); err == nil {
			info = target
		}
	}

	props := Properties{
		Name:      filepath.Base(path),
		Path:      path,
		IsDir:     info.IsDir(),
		IsSymlink: isSymlink,
		Size:      info.Size(),
		Mode:      info.Mode(),
		Modified:  info.ModTime(),
	}
	if props.IsDir {
		props.MIME = "inode/directory"
		return props, nil
	}

	props.MIME = detectMIME(fsys, path)
	return props, nil
}

func detectMIME(fsys FileSystem, path string) string {
	f, err := fsys.Open(path)
	if err != nil {
		return UnknownMIME
	}
	defer func() {
		_ = f.Close()
	}()

	mtype, err := mimetype.DetectReader(f)
	if err != nil || mtype == nil {
		return UnknownMIME
	}
	return mtype.String()
}
