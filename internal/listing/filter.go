package listing

import (
	"sort"
	"strings"
)

// AllPattern is the filter notation that lets every file through.
const AllPattern = "*"

// FilterSpec restricts which files appear in a listing. The zero value allows
// everything. Directories always pass.
type FilterSpec struct {
	exts map[string]struct{}
}

// AllFiles returns the pass-everything filter.
func AllFiles() FilterSpec {
	return FilterSpec{}
}

// NewFilterSpec builds an extension allow-list. Extensions are lowercased and
// given a leading dot; empty values are ignored. No extensions means "all".
func NewFilterSpec(exts ...string) FilterSpec {
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" || ext == AllPattern {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = struct{}{}
	}
	if len(set) == 0 {
		return FilterSpec{}
	}
	return FilterSpec{exts: set}
}

// ParseFilterSpec reads the ";"-separated notation, e.g. ".jpg;.png". "*" and
// the empty string mean all files.
func ParseFilterSpec(pattern string) FilterSpec {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" || pattern == AllPattern {
		return AllFiles()
	}
	return NewFilterSpec(strings.FieldsFunc(pattern, func(r rune) bool {
		return r == ';' || r == ',' || r == ' '
	})...)
}

// IsAll reports whether the filter lets every file through.
func (f FilterSpec) IsAll() bool {
	return len(f.exts) == 0
}

// Allows reports whether a file with the given lowercase extension passes.
func (f FilterSpec) Allows(ext string) bool {
	if f.IsAll() {
		return true
	}
	_, ok := f.exts[ext]
	return ok
}

// Extensions returns the sorted allow-list; nil for "all".
func (f FilterSpec) Extensions() []string {
	if f.IsAll() {
		return nil
	}
	out := make([]string, 0, len(f.exts))
	for ext := range f.exts {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// String renders the filter back in ";" notation.
func (f FilterSpec) String() string {
	if f.IsAll() {
		return AllPattern
	}
	return strings.Join(f.Extensions(), ";")
}

// Equal compares two filters by content.
func (f FilterSpec) Equal(other FilterSpec) bool {
	return f.String() == other.String()
}

// Preset is a named filter offered by the UI.
type Preset struct {
	Name   string
	Filter FilterSpec
}

// DefaultPresets mirrors the classic explorer buttons.
func DefaultPresets() []Preset {
	return []Preset{
		{Name: "All", Filter: AllFiles()},
		{Name: "Images", Filter: ParseFilterSpec(".jpg;.png;.gif")},
		{Name: "Documents", Filter: ParseFilterSpec(".txt;.pdf;.docx")},
	}
}

// MergePresets appends extra named patterns to base. A preset whose name
// matches case-insensitively keeps its name and takes the new filter. Extra
// presets are added in name order.
func MergePresets(base []Preset, extra map[string]string) []Preset {
	out := append([]Preset(nil), base...)
	names := make([]string, 0, len(extra))
	for name := range extra {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		preset := Preset{Name: name, Filter: ParseFilterSpec(extra[name])}
		replaced := false
		for i := range out {
			if strings.EqualFold(out[i].Name, name) {
				out[i].Filter = preset.Filter
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, preset)
		}
	}
	return out
}
