// Package web embeds the single-page client so the server ships as one
// binary.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFiles embed.FS

func Static() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
