//go:build windows

package fs

// IsHidden checks the hidden attribute, falling back to the dot-prefix rule
// when attributes are unavailable (for example on in-memory filesystems).
func IsHidden(fullPath string, name string) bool {
	if name == ParentName {
		return false
	}
	attrs, err := getFileAttributes(fullPath, name)
	if err != nil {
		return len(name) > 0 && name[0] == '.'
	}
	return attrs&fileAttributeHidden != 0
}
