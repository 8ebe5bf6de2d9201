// Command calcui is a keypad calculator for the terminal.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "calcui:", err)
		os.Exit(1)
	}
}
