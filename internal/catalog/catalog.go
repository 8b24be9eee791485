// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog holds the static site content: both properties, their
// colour themes, the concierge contact block and the regional copy. The
// content is authored in catalog.yaml, embedded in the binary and parsed
// once at startup. Nothing mutates it afterwards.
package catalog

import (
	_ "embed"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"coffeebloom/internal/models"
)

//go:embed catalog.yaml
var defaultYAML []byte

// Catalog is the immutable content store for the site.
type Catalog struct {
	Contact     models.ContactInfo                 `yaml:"contact"`
	Themes      map[models.Mode]models.ThemeColors `yaml:"themes"`
	Properties  map[models.Mode]*models.Property   `yaml:"properties"`
	Experiences []models.Experience                `yaml:"experiences" validate:"dive"`
	Pillars     []models.Pillar                    `yaml:"pillars" validate:"dive"`
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(defaultYAML)
}

// MustLoad is Load for package-level initialisation and tests.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("catalog decode: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	v := validator.New()

	if err := v.Struct(c); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	// Every mode must have both a property and a theme.
	for _, m := range models.Modes() {
		p, ok := c.Properties[m]
		if !ok || p == nil {
			return fmt.Errorf("catalog: missing property for mode %s", m)
		}
		if err := v.Struct(p); err != nil {
			return fmt.Errorf("catalog: property %s: %w", m, err)
		}
		theme, ok := c.Themes[m]
		if !ok {
			return fmt.Errorf("catalog: missing theme for mode %s", m)
		}
		if err := v.Struct(theme); err != nil {
			return fmt.Errorf("catalog: theme %s: %w", m, err)
		}
	}
	return nil
}

// Property returns the property presented in mode m. Unknown modes fall
// back to the default mode's property.
func (c *Catalog) Property(m models.Mode) *models.Property {
	if p, ok := c.Properties[m]; ok {
		return p
	}
	return c.Properties[models.DefaultMode]
}

// Theme returns the palette for mode m, falling back like Property.
func (c *Catalog) Theme(m models.Mode) models.ThemeColors {
	if t, ok := c.Themes[m]; ok {
		return t
	}
	return c.Themes[models.DefaultMode]
}

// GallerySize is the number of gallery images of the property in mode m.
func (c *Catalog) GallerySize(m models.Mode) int {
	return len(c.Property(m).Gallery)
}
