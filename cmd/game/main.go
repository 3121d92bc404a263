package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"
	"github.com/tomz197/rockfall/internal/config"
	"github.com/tomz197/rockfall/internal/draw"
	"github.com/tomz197/rockfall/internal/loop"
	"golang.org/x/term"
)

func main() {
	if err := config.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logOut, closeLog, err := config.OpenLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	logger := config.NewLogger(logOut, "game")

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	reader := bufio.NewReader(os.Stdin)
	runErr := loop.Run(ctx, reader, os.Stdout, loop.Options{
		TermSizeFunc: draw.DefaultTermSizeFunc,
		Profile:      termenv.EnvColorProfile(),
		Logger:       logger,
		Seed:         config.GetEnvUint64("ROCKFALL_SEED", 0),
	})

	_ = term.Restore(fd, oldState)
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", runErr)
		os.Exit(1)
	}
}
