// Package assets exposes the site's static files as one filesystem: an optional
// on-disk media directory layered over the assets embedded in the binary.
package assets

import (
	"errors"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/tuxprint/tds-website/web"
)

// Layered resolves each name against its layers in order; the first layer that
// has the file wins.
type Layered []fs.FS

func (l Layered) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	for _, layer := range l {
		f, err := layer.Open(name)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

// ReadDir merges directory listings across layers. Entries of earlier layers
// shadow later ones with the same name.
func (l Layered) ReadDir(name string) ([]fs.DirEntry, error) {
	seen := make(map[string]fs.DirEntry)
	found := false
	for _, layer := range l {
		entries, err := fs.ReadDir(layer, name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		found = true
		for _, e := range entries {
			if _, ok := seen[e.Name()]; !ok {
				seen[e.Name()] = e
			}
		}
	}
	if !found {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrNotExist}
	}

	out := make([]fs.DirEntry, 0, len(seen))
	for _, e := range seen {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out, nil
}

// New returns the site filesystem. Files resolve as assets/<name>. When mediaDir
// is set, it is treated as the assets/ directory and takes precedence.
func New(mediaDir string) fs.FS {
	return NewWith(web.Static(), mediaDir)
}

// NewWith layers mediaDir over base.
func NewWith(base fs.FS, mediaDir string) fs.FS {
	if mediaDir == "" {
		return base
	}
	return Layered{mediaFS{os.DirFS(mediaDir)}, base}
}

// mediaFS mounts a flat media directory under assets/.
type mediaFS struct {
	dir fs.FS
}

func (m mediaFS) Open(name string) (fs.File, error) {
	if name == "." {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	if name == "assets" {
		return m.dir.Open(".")
	}
	rel, ok := cutAssets(name)
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return m.dir.Open(rel)
}

func (m mediaFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if name == "assets" {
		return fs.ReadDir(m.dir, ".")
	}
	rel, ok := cutAssets(name)
	if !ok {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrNotExist}
	}
	return fs.ReadDir(m.dir, rel)
}

func cutAssets(name string) (string, bool) {
	rel, ok := strings.CutPrefix(name, "assets/")
	return rel, ok && rel != ""
}
