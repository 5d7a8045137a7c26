//go:build !cgo

package main

import (
	"fmt"
	"os"
)

func main() {
	opts, config, logger, closeLog, ok := setup()
	if !ok {
		return
	}
	if !opts.terminal {
		fmt.Fprintln(os.Stderr, "Built without cgo: the window client is unavailable, using the terminal client.")
	}
	err := terminalApp(opts, config, logger).Run()
	closeLog()
	if err != nil {
		fatal(err)
	}
}
