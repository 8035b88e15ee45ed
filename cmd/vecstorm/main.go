package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/vecstorm/internal/app"
	"github.com/katalvlaran/vecstorm/internal/config"
)

// main is the entrypoint for the vecstorm command.
func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))
	// A missing .env is normal; variables already set win.
	_ = godotenv.Load(".env")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, os.Args[1:], nil); err != nil {
		var exitErr *config.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run holds the command logic; environ replaces the process environment when
// non-nil.
func run(ctx context.Context, outW io.Writer, args []string, environ map[string]string) error {
	cfg, shouldExit, err := config.Parse(args, outW, environ)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	_, err = app.New(outW, cfg).Run(ctx)

	return err
}
