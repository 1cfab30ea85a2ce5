package app

import (
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/multierr"

	"github.com/kobzarvs/tedit/internal/config"
	"github.com/kobzarvs/tedit/internal/editor"
	"github.com/kobzarvs/tedit/internal/keys"
	"github.com/kobzarvs/tedit/internal/logger"
	"github.com/kobzarvs/tedit/internal/terminal"
)

// App is the top-level runtime for tedit.
type App struct {
	args []string
}

func New(args []string) *App {
	return &App{args: args}
}

// Run owns the terminal for the whole session. The raw-mode guard is restored
// on every return path and its error is merged into the result.
func (a *App) Run() (err error) {
	// A broken config file leaves the defaults in place.
	cfg, cfgErr := config.Load()
	if err := logger.Init(cfg.Log.Debug, cfg.Log.File); err == nil {
		defer logger.Close()
	}
	if cfgErr != nil {
		logger.Warn("config ignored", "error", cfgErr)
	}

	tty := terminal.New(os.Stdin, os.Stdout, terminal.Options{ReadTimeout: cfg.ReadTimeout()})
	raw, err := tty.EnableRawMode()
	if err != nil {
		return fail(tty, err)
	}
	defer func() {
		err = multierr.Append(err, raw.Restore())
	}()

	stop := restoreOnSignal(tty, raw)
	defer stop()

	rows, cols, err := tty.WindowSize()
	if err != nil {
		return fail(tty, err)
	}

	ed := editor.New(cfg, rows, cols)
	if len(a.args) > 0 {
		if err := ed.OpenFile(a.args[0]); err != nil {
			return fail(tty, err)
		}
	}
	logger.Info("editor started", "rows", rows, "cols", cols, "file", ed.Filename(), "lines", ed.LineCount())

	if err := ed.Run(keys.NewDecoder(tty), tty); err != nil {
		return fail(tty, err)
	}
	logger.Info("editor quit")
	return nil
}

func fail(tty *terminal.Terminal, err error) error {
	logger.Error("fatal", "error", err)
	_ = tty.ClearScreen()
	return err
}

// restoreOnSignal puts the terminal back and exits when the process is told
// to terminate while in raw mode.
func restoreOnSignal(tty *terminal.Terminal, raw *terminal.RawMode) (stop func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGHUP)
	done := make(chan struct{})

	go func() {
		select {
		case sig := <-sigCh:
			_ = tty.ClearScreen()
			_ = raw.Restore()
			logger.Warn("terminated by signal", "signal", sig.String())
			// The loop may still be logging; flush without tearing down.
			logger.Sync()
			os.Exit(1)
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(done)
	}
}
