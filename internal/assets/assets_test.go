package assets

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseFS() fstest.MapFS {
	return fstest.MapFS{
		"assets/main.css":         {Data: []byte("embedded main")},
		"assets/tailwind.css":     {Data: []byte("embedded tailwind")},
		"assets/site.webmanifest": {Data: []byte("{}")},
	}
}

func mediaDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tds_promo.webm"), []byte("av1"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.css"), []byte("override main"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "icons"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "icons", "badge.svg"), []byte("<svg/>"), 0o644))
	return dir
}

func TestNewWith_NoMediaDir(t *testing.T) {
	base := baseFS()
	fsys := NewWith(base, "")

	data, err := fs.ReadFile(fsys, "assets/main.css")
	require.NoError(t, err)
	assert.Equal(t, "embedded main", string(data))

	_, err = fs.ReadFile(fsys, "assets/tds_promo.webm")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestNewWith_MediaShadowsEmbedded(t *testing.T) {
	fsys := NewWith(baseFS(), mediaDir(t))

	tests := []struct {
		name string
		want string
	}{
		{"assets/main.css", "override main"},
		{"assets/tailwind.css", "embedded tailwind"},
		{"assets/tds_promo.webm", "av1"},
		{"assets/icons/badge.svg", "<svg/>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := fs.ReadFile(fsys, tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestLayered_Missing(t *testing.T) {
	fsys := NewWith(baseFS(), mediaDir(t))

	_, err := fsys.Open("assets/nope.png")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = fsys.Open("tds_promo.webm")
	assert.ErrorIs(t, err, fs.ErrNotExist, "media files only resolve under assets/")

	_, err = fsys.Open("../etc/passwd")
	assert.ErrorIs(t, err, fs.ErrInvalid)
}

func TestLayered_WalkMergesLayers(t *testing.T) {
	fsys := NewWith(baseFS(), mediaDir(t))

	var files []string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"assets/icons/badge.svg",
		"assets/main.css",
		"assets/site.webmanifest",
		"assets/tailwind.css",
		"assets/tds_promo.webm",
	}, files)
}

func TestNew_Embedded(t *testing.T) {
	data, err := fs.ReadFile(New(""), "assets/site.webmanifest")
	require.NoError(t, err)
	assert.Contains(t, string(data), "TDS: Delta")
}
