// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package web provides the embedded static assets (CSS, JS) served at
// /static/.
package web

//go:generate sh -c "test -f static/js/htmx.min.js || curl -fsSL -o static/js/htmx.min.js https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

import (
	"embed"
	"errors"
	"io/fs"
)

// StaticFS embeds the web/static/ directory tree. htmx.min.js is vendored
// by `go generate ./web` (run by `make build`); without it every control
// still works as a plain form post, minus the fade.
//
//go:embed all:static
var StaticFS embed.FS

// RequiredAssets are the files the document shell links to.
var RequiredAssets = []string{"css/site.css", "js/htmx.min.js", "js/site.js"}

// Static returns the asset tree rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(StaticFS, "static")
	if err != nil {
		// Only fails if the embed pattern above changes.
		panic(err)
	}
	return sub
}

// MissingAssets lists the RequiredAssets absent from fsys.
func MissingAssets(fsys fs.FS) []string {
	var missing []string
	for _, name := range RequiredAssets {
		if _, err := fs.Stat(fsys, name); errors.Is(err, fs.ErrNotExist) {
			missing = append(missing, name)
		}
	}
	return missing
}
