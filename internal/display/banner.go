package display

import (
	"fmt"
	"os"

	"github.com/seqlab/fqsum/internal/term"
)

// PrintBanner prints the ASCII art banner to stderr (stdout carries the
// table); uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stderr, term.Magenta)
	}
	fmt.Fprint(os.Stderr, `  __
 / _| __ _ ___ _   _ _ __ ___
| |_ / _`+"`"+` / __| | | | '_ `+"`"+` _ \
|  _| (_| \__ \ |_| | | | | | |
|_|  \__, |___/\__,_|_| |_| |_|
        |_|
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stderr, term.NC)
	}
}
