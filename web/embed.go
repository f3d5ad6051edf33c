// Package web embeds the small static assets shipped inside the binary.
// Large media (videos, poster, PNG icons) are served from MEDIA_DIR instead.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static/assets/*.css static/assets/*.webmanifest
var StaticFS embed.FS

// Static returns the embedded tree rooted at static/, so files resolve as assets/<name>.
func Static() fs.FS {
	sub, err := fs.Sub(StaticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
