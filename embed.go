// Package atrium provides the embedded demo site content and an overlay
// filesystem that checks local disk first, falling back to embedded.
package atrium

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed content
var rawContent embed.FS

// Content is the embedded site content filesystem with the "content/" prefix stripped.
var Content = mustSub(rawContent, "content")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// OverlayFS returns a filesystem that checks localDir on disk first,
// falling back to the embedded filesystem for files not found locally.
// A user site directory shadows the embedded demo content file by file.
func OverlayFS(localDir string, embedded fs.FS) fs.FS {
	return overlayFS{localDir: localDir, embedded: embedded}
}

type overlayFS struct {
	localDir string
	embedded fs.FS
}

func (o overlayFS) Open(name string) (fs.File, error) {
	f, err := os.Open(o.localDir + "/" + name)
	if err == nil {
		return f, nil
	}
	return o.embedded.Open(name)
}
