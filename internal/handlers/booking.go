// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"coffeebloom/internal/inquiry"
	"coffeebloom/internal/metrics"
	"coffeebloom/internal/models"
	"coffeebloom/internal/render"
)

// qrSize is the edge length in pixels of the inquiry QR code.
const qrSize = 256

// inquiryEvent is the HX-Trigger event carrying a booking deep link for
// the client to open.
const inquiryEvent = "openInquiry"

// redirectOpener hands the deep link to the browser through the HTTP
// response itself, so opening always succeeds here.
var redirectOpener = inquiry.OpenerFunc(func(context.Context, string) error { return nil })

// SubmitBooking validates the booking form and redirects the visitor to
// the WhatsApp deep link. An incomplete form re-renders the modal with the
// entered values and 422.
func (s *Site) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	visitor := s.visitor(r)

	f := inquiry.Form{
		Name:     r.PostFormValue("name"),
		CheckIn:  r.PostFormValue("check_in"),
		CheckOut: r.PostFormValue("check_out"),
		Guests:   r.PostFormValue("guests"),
		Phone:    r.PostFormValue("phone"),
		Property: models.Mode(r.PostFormValue("property")),
	}
	if f.Property == "" {
		f.Property = visitor.State.Mode
	}
	if msg := validateLengths(f); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	c := s.controller(visitor.State, nil)
	defer c.Close()

	link, err := c.SubmitBooking(r.Context(), redirectOpener, s.opts.WhatsAppNumber, f)
	visitor.State = c.Snapshot()
	if err := s.save(r.Context(), visitor); err != nil {
		slog.Debug("booking state not saved", "error", err)
	}

	var ve *inquiry.ValidationError
	switch {
	case errors.As(err, &ve):
		metrics.ObserveInquiry(inquiryLabel(f), "incomplete")
		s.render(w, r, visitor.State, http.StatusUnprocessableEntity, ve)
		return
	case err != nil:
		slog.Error("booking submit failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	metrics.ObserveInquiry(inquiryLabel(f), "dispatched")
	if render.IsHTMX(r) {
		// The page stays put with the modal closed; site.js opens the link
		// in a new tab.
		trigger, err := json.Marshal(map[string]map[string]string{
			inquiryEvent: {"link": link},
		})
		if err != nil {
			slog.Error("encode inquiry trigger failed", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("HX-Trigger", string(trigger))
		s.render(w, r, visitor.State, http.StatusOK, nil)
		return
	}
	// Plain form posts target a new tab, so this redirect leaves the
	// site open in the original one.
	http.Redirect(w, r, link, http.StatusSeeOther)
}

// inquiryLabel is the property label for inquiry metrics. Anything other
// than a known mode collapses to "unknown" to keep the series bounded.
func inquiryLabel(f inquiry.Form) string {
	if m := f.Normalize().Property; m.Valid() {
		return string(m)
	}
	return "unknown"
}

// GeneralInquiry redirects to a WhatsApp chat about the visitor's property.
func (s *Site) GeneralInquiry(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, s.generalLink(r), http.StatusFound)
}

// InquiryQR serves the general inquiry link as a PNG QR code.
func (s *Site) InquiryQR(w http.ResponseWriter, r *http.Request) {
	png, err := inquiry.QRCode(s.generalLink(r), qrSize)
	if err != nil {
		slog.Error("inquiry qr failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "private, max-age=300")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func (s *Site) generalLink(r *http.Request) string {
	p := s.catalog.Property(s.visitor(r).State.Mode)
	return inquiry.GeneralLink(s.opts.WhatsAppNumber, p.Name)
}

// stateResponse is the JSON body of GET /api/state.
type stateResponse struct {
	Page        models.PageID `json:"page"`
	Mode        models.Mode   `json:"mode"`
	Property    string        `json:"property"`
	Loaded      bool          `json:"loaded"`
	Lightbox    *int          `json:"lightbox"`
	BookingOpen bool          `json:"booking_open"`
	Form        *inquiry.Form `json:"form,omitempty"`
}

// State returns the visitor's navigation state as JSON.
func (s *Site) State(w http.ResponseWriter, r *http.Request) {
	st := s.visitor(r).State
	resp := stateResponse{
		Page:        st.Page,
		Mode:        st.Mode,
		Property:    s.catalog.Property(st.Mode).Name,
		Loaded:      st.Loaded,
		Lightbox:    st.Lightbox,
		BookingOpen: st.BookingOpen,
		Form:        st.Form,
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Warn("encode state failed", "error", err)
	}
}
