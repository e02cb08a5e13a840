// SPDX-License-Identifier: Unlicense OR MIT

// Command layoutpreview lays out a box moved by an offset modifier,
// reports its placement and renders a PNG preview.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
