// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPage is returned when a string does not name a site page.
var ErrUnknownPage = errors.New("unknown page")

// PageID identifies one page of the multi-page site.
type PageID string

const (
	PageHome           PageID = "home"
	PageExperience     PageID = "experience"
	PageGallery        PageID = "gallery"
	PageSustainability PageID = "sustainability"
	PageContact        PageID = "contact"
)

// NavLink is one entry of the site navigation.
type NavLink struct {
	ID    PageID
	Label string
}

var navLinks = []NavLink{
	{ID: PageHome, Label: "Home"},
	{ID: PageExperience, Label: "Experiences"},
	{ID: PageGallery, Label: "Gallery"},
	{ID: PageSustainability, Label: "Our Earth"},
	{ID: PageContact, Label: "Contact"},
}

// Pages returns the navigation links in display order.
func Pages() []NavLink {
	out := make([]NavLink, len(navLinks))
	copy(out, navLinks)
	return out
}

// ParsePageID maps a path segment to a PageID.
func ParsePageID(s string) (PageID, error) {
	p := PageID(strings.ToLower(strings.TrimSpace(s)))
	if p.Valid() {
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPage, s)
}

// Valid reports whether p is one of the enumerated pages.
func (p PageID) Valid() bool {
	for _, l := range navLinks {
		if l.ID == p {
			return true
		}
	}
	return false
}

// Label returns the navigation label for p.
func (p PageID) Label() string {
	for _, l := range navLinks {
		if l.ID == p {
			return l.Label
		}
	}
	return string(p)
}

// Path is the canonical URL path of the page.
func (p PageID) Path() string {
	if p == PageHome {
		return "/"
	}
	return "/" + string(p)
}
