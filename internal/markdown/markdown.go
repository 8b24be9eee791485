// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package markdown converts property copy written in Markdown into HTML
// using goldmark. Raw HTML in the source is escaped, not passed through.
package markdown

import (
	"bytes"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// md is the configured goldmark instance, reused across calls.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.Typographer, // smart quotes and dashes
		extension.Linkify,
	),
)

// ToHTML converts Markdown source into HTML.
func ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// MustHTML is ToHTML for copy embedded in the binary, where a conversion
// failure falls back to the raw text wrapped in a paragraph.
func MustHTML(source string) string {
	out, err := ToHTML(source)
	if err != nil {
		return "<p>" + html.EscapeString(source) + "</p>"
	}
	return out
}
