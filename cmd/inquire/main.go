// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Command inquire builds the same WhatsApp inquiry links as the site, for
// the concierge team to share over other channels.
package main

import (
	"fmt"
	"os"

	"coffeebloom/internal/inquiry"
)

func main() {
	if err := newRootCmd(inquiry.BrowserOpener{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
