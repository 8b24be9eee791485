// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Amenity pairs an icon name with a short label.
type Amenity struct {
	Icon  string `yaml:"icon" validate:"required"`
	Label string `yaml:"label" validate:"required"`
}

// RoomType is a count of rooms of one kind, e.g. 3 "Master Suites".
type RoomType struct {
	Count int    `yaml:"count" validate:"gte=1"`
	Name  string `yaml:"name" validate:"required"`
}

// Highlight is a titled image shown on the home page.
type Highlight struct {
	Title string `yaml:"title" validate:"required"`
	Image string `yaml:"image" validate:"required,url"`
}

// Philosophy is the quote block of a property.
type Philosophy struct {
	Title       string `yaml:"title" validate:"required"`
	Quote       string `yaml:"quote" validate:"required"`
	Description string `yaml:"description" validate:"required"`
}

// TravelInfo is one "getting here" line on the contact page.
type TravelInfo struct {
	Icon string `yaml:"icon" validate:"required"`
	Text string `yaml:"text" validate:"required"`
}

// Property describes one rentable estate. Authored once, never mutated.
type Property struct {
	Name              string       `yaml:"name" validate:"required"`
	Location          string       `yaml:"location" validate:"required"`
	Tagline           string       `yaml:"tagline" validate:"required"`
	Price             string       `yaml:"price" validate:"required"`
	ShortDesc         string       `yaml:"short_desc" validate:"required"`
	LongDesc          string       `yaml:"long_desc" validate:"required"`
	HeroImage         string       `yaml:"hero_image" validate:"required,url"`
	Gallery           []string     `yaml:"gallery" validate:"min=5,dive,url"`
	Amenities         []Amenity    `yaml:"amenities" validate:"min=1,dive"`
	RoomTypes         []RoomType   `yaml:"room_types" validate:"dive"`
	RoomFeatures      []string     `yaml:"room_features"`
	Highlights        []Highlight  `yaml:"highlights" validate:"dive"`
	Philosophy        Philosophy   `yaml:"philosophy"`
	Address           string       `yaml:"address" validate:"required"`
	MapLink           string       `yaml:"map_link" validate:"required,url"`
	OnSiteExperiences []string     `yaml:"on_site_experiences"`
	TravelInfo        []TravelInfo `yaml:"travel_info" validate:"dive"`
}

// ShortName is the name without its article ("The Villa" -> "Villa").
func (p *Property) ShortName() string {
	for i := 0; i < len(p.Name); i++ {
		if p.Name[i] == ' ' {
			return p.Name[i+1:]
		}
	}
	return p.Name
}

// GalleryImage returns the gallery image at i, or "" when i is out of range.
func (p *Property) GalleryImage(i int) string {
	if i < 0 || i >= len(p.Gallery) {
		return ""
	}
	return p.Gallery[i]
}

// ThemeColors is the palette applied while a mode is active.
type ThemeColors struct {
	Primary    string `yaml:"primary" validate:"required,hexcolor"`
	Accent     string `yaml:"accent" validate:"required,hexcolor"`
	Background string `yaml:"background" validate:"required,hexcolor"`
	TextDark   string `yaml:"text_dark" validate:"required,hexcolor"`
	TextLight  string `yaml:"text_light" validate:"required,hexcolor"`
	IconAccent string `yaml:"icon_accent" validate:"required,hexcolor"`
}

// ContactInfo is the brand's concierge contact block.
type ContactInfo struct {
	Address   string `yaml:"address" validate:"required"`
	Phone     string `yaml:"phone" validate:"required"`
	Email     string `yaml:"email" validate:"required,email"`
	Instagram string `yaml:"instagram"`
	Youtube   string `yaml:"youtube"`
	WhatsApp  string `yaml:"whatsapp" validate:"required,numeric"`
}

// Experience is a regional activity shown on the experiences page.
type Experience struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description" validate:"required"`
	Image       string `yaml:"image" validate:"required,url"`
	Icon        string `yaml:"icon" validate:"required"`
}

// Pillar is one commitment on the sustainability page.
type Pillar struct {
	Title string `yaml:"title" validate:"required"`
	Desc  string `yaml:"desc" validate:"required"`
	Icon  string `yaml:"icon" validate:"required"`
}
