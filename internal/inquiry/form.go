// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package inquiry turns booking form input into the fixed-template text
// message the concierge team reads on WhatsApp, and builds the deep links
// that open WhatsApp pre-filled with it.
package inquiry

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"coffeebloom/internal/models"
)

// DefaultGuests is the guest count preselected in a fresh form.
const DefaultGuests = "2"

// MaxGuests is the largest guest count offered by the form.
const MaxGuests = 6

// ErrIncomplete is returned when a required form field is empty.
var ErrIncomplete = errors.New("inquiry form incomplete")

// Form is the transient booking inquiry. It exists while the booking
// modal is open and is never persisted.
type Form struct {
	Name     string      `json:"name" form:"name" validate:"required"`
	CheckIn  string      `json:"check_in" form:"check_in" validate:"required"`
	CheckOut string      `json:"check_out" form:"check_out" validate:"required"`
	Guests   string      `json:"guests" form:"guests" validate:"required"`
	Phone    string      `json:"phone" form:"phone" validate:"required"`
	Property models.Mode `json:"property" form:"property" validate:"required,oneof=VILLA VIEW"`
}

// NewForm returns an empty form preselected for the given property.
func NewForm(property models.Mode) Form {
	return Form{Guests: DefaultGuests, Property: property}
}

// GuestOptions lists the selectable guest counts.
func GuestOptions() []string {
	out := make([]string, 0, MaxGuests)
	for i := 1; i <= MaxGuests; i++ {
		out = append(out, fmt.Sprint(i))
	}
	return out
}

// Normalize trims surrounding whitespace so blank input counts as empty,
// and upper-cases the property selection.
func (f Form) Normalize() Form {
	f.Name = strings.TrimSpace(f.Name)
	f.CheckIn = strings.TrimSpace(f.CheckIn)
	f.CheckOut = strings.TrimSpace(f.CheckOut)
	f.Guests = strings.TrimSpace(f.Guests)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Property = models.Mode(strings.ToUpper(strings.TrimSpace(string(f.Property))))
	return f
}

// ValidationError lists the form fields that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", ErrIncomplete, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrIncomplete }

// Has reports whether field failed validation.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f == field {
			return true
		}
	}
	return false
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// formValidator reports field names using the form tag so errors line up
// with the HTML input names.
func formValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
		validate = v
	})
	return validate
}

// Validate checks that every field is present. Dates and phone numbers
// are not format-checked. The returned error wraps ErrIncomplete.
func (f Form) Validate() error {
	err := formValidator().Struct(f.Normalize())
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return fmt.Errorf("validate inquiry: %w", err)
	}
	ve := &ValidationError{}
	for _, fe := range ves {
		ve.Fields = append(ve.Fields, fe.Field())
	}
	return ve
}
