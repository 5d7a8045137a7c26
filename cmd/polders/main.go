//go:build cgo

package main

import (
	"github.com/appengine-ltd/age-of-polders/internal/gui"
)

func main() {
	opts, config, logger, closeLog, ok := setup()
	if !ok {
		return
	}

	var err error
	if opts.terminal {
		err = terminalApp(opts, config, logger).Run()
	} else {
		err = gui.NewApp(gui.AppConfig{
			Version:     version,
			Commit:      commit,
			BuildDate:   date,
			Run:         config,
			SnapshotDir: opts.snapshotDir,
			Logger:      logger,
		}).Run()
	}
	closeLog()
	if err != nil {
		fatal(err)
	}
}
