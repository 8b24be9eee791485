// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"coffeebloom/internal/inquiry"
	"coffeebloom/internal/models"
)

func newLinkCmd(flags *rootFlags, opener inquiry.Opener) *cobra.Command {
	f := inquiry.NewForm(models.DefaultMode)
	var property string

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Link carrying a complete booking inquiry",
		Example: `  inquire link --name "Asha Menon" --phone "+91 98470 12345" \
    --check-in 2026-12-20 --check-out 2026-12-24 --guests 4 --property view`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := models.ParseMode(property)
			if err != nil {
				return err
			}
			f.Property = mode

			if err := f.Validate(); err != nil {
				var ve *inquiry.ValidationError
				if errors.As(err, &ve) {
					return fmt.Errorf("missing --%s", strings.ReplaceAll(strings.Join(ve.Fields, ", --"), "_", "-"))
				}
				return err
			}
			return emit(cmd, flags, opener, inquiry.BookingLink(flags.number, f))
		},
	}

	cmd.Flags().StringVar(&f.Name, "name", "", "Guest name")
	cmd.Flags().StringVar(&f.Phone, "phone", "", "Guest contact number")
	cmd.Flags().StringVar(&f.CheckIn, "check-in", "", "Check-in date")
	cmd.Flags().StringVar(&f.CheckOut, "check-out", "", "Check-out date")
	cmd.Flags().StringVar(&f.Guests, "guests", inquiry.DefaultGuests, "Number of guests")
	cmd.Flags().StringVarP(&property, "property", "p", string(models.DefaultMode), "VILLA or VIEW")

	return cmd
}
