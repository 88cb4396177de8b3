package main

import (
	"bufio"
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/patatoids/internal/config"
	"github.com/tomz197/patatoids/internal/loop"
)

func main() {
	settings, err := config.Load()
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "patatoids",
		Level:           settings.LogLevel,
	})
	if err != nil {
		logger.Warn("invalid settings, using defaults", "error", err)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		logger.Fatal("failed to enable raw mode", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = loop.Run(ctx, bufio.NewReader(os.Stdin), os.Stdout, loop.Options{
		Settings: settings,
		Logger:   logger,
	})
	stop()
	_ = term.Restore(fd, oldState)

	if err != nil && ctx.Err() == nil {
		logger.Error("game error", "error", err)
		os.Exit(1)
	}
}
