package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomz197/bubblepop/internal/config"
	"github.com/tomz197/bubblepop/internal/game"
	"github.com/tomz197/bubblepop/internal/loop"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	// The terminal is the playfield, so logs only go to a file.
	logOut, closeLog, err := config.OpenLogFile()
	if err != nil {
		return err
	}
	defer closeLog()
	logger := config.NewLogger(logOut, "bubbles")

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	params := game.ParamsFromEnv()
	logger.Info("starting local game", "params", fmt.Sprintf("%+v", params))

	sess := loop.NewSession(bufio.NewReader(os.Stdin), os.Stdout, loop.Options{
		Logger: logger,
		Params: params,
	})
	runErr := sess.Run(ctx)
	_ = term.Restore(fd, oldState)
	if runErr != nil {
		return runErr
	}

	if sum := sess.Summary(); sum != nil {
		fmt.Println(sum.String())
	}
	return nil
}
