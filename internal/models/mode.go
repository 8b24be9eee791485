// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned when a string does not name a property mode.
var ErrUnknownMode = errors.New("unknown mode")

// Mode selects which of the two properties (and its theme) is presented.
type Mode string

const (
	ModeVilla Mode = "VILLA"
	ModeView  Mode = "VIEW"
)

// DefaultMode is the mode every new visitor starts in.
const DefaultMode = ModeVilla

// Modes returns both modes in switcher order.
func Modes() []Mode {
	return []Mode{ModeVilla, ModeView}
}

// ParseMode accepts "VILLA"/"VIEW" in any case.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToUpper(strings.TrimSpace(s))) {
	case ModeVilla:
		return ModeVilla, nil
	case ModeView:
		return ModeView, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Valid reports whether m is one of the enumerated modes.
func (m Mode) Valid() bool {
	return m == ModeVilla || m == ModeView
}

// Label is the human name used in copy and inquiry messages.
func (m Mode) Label() string {
	if m == ModeView {
		return "The View"
	}
	return "The Villa"
}

// Slug is the lowercase form used in URLs ("villa", "view").
func (m Mode) Slug() string {
	return strings.ToLower(string(m))
}
