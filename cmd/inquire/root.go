// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"coffeebloom/internal/catalog"
	"coffeebloom/internal/inquiry"
	"coffeebloom/internal/models"
)

const defaultNumber = "918921142220"

type rootFlags struct {
	number string
	open   bool
	qr     string
}

func newRootCmd(opener inquiry.Opener) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "inquire",
		Short:         "Build WhatsApp inquiry links for Coffee Bloom Estates",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.number, "number", defaultNumber, "WhatsApp number receiving the inquiry")
	cmd.PersistentFlags().BoolVar(&flags.open, "open", false, "Open the link in the default browser")
	cmd.PersistentFlags().StringVar(&flags.qr, "qr", "", "Also write the link as a PNG QR code to this file")

	cmd.AddCommand(newLinkCmd(flags, opener))
	cmd.AddCommand(newGeneralCmd(flags, opener))

	return cmd
}

// emit prints link and performs the optional QR and browser hand-offs.
func emit(cmd *cobra.Command, flags *rootFlags, opener inquiry.Opener, link string) error {
	fmt.Fprintln(cmd.OutOrStdout(), link)

	if flags.qr != "" {
		png, err := inquiry.QRCode(link, 256)
		if err != nil {
			return err
		}
		if err := os.WriteFile(flags.qr, png, 0o644); err != nil {
			return fmt.Errorf("write qr: %w", err)
		}
	}
	if flags.open {
		return opener.Open(cmd.Context(), link)
	}
	return nil
}

func newGeneralCmd(flags *rootFlags, opener inquiry.Opener) *cobra.Command {
	var property string

	cmd := &cobra.Command{
		Use:   "general",
		Short: "Link for a general question about a property",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := models.ParseMode(property)
			if err != nil {
				return err
			}
			cat, err := catalog.Load()
			if err != nil {
				return err
			}
			return emit(cmd, flags, opener, inquiry.GeneralLink(flags.number, cat.Property(mode).Name))
		},
	}

	cmd.Flags().StringVarP(&property, "property", "p", string(models.DefaultMode), "VILLA or VIEW")
	return cmd
}
