package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/pollbook/cliparse"
	"github.com/danielhkuo/pollbook/db"
	"github.com/danielhkuo/pollbook/logger"
	"github.com/danielhkuo/pollbook/middleware"
	"github.com/danielhkuo/pollbook/pool"
	"github.com/danielhkuo/pollbook/router"
)

const databasePrompt = "Enter the DATABASE_URL value: "

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Logs go to stderr so they don't interleave with the menu
	slog.SetDefault(logger.New(cfg.Env, os.Stderr))

	console := middleware.NewConsole(os.Stdin, os.Stdout)

	// Ask for the connection string only when someone can answer
	if cfg.DatabaseURL == "" && isTerminal(os.Stdin) {
		answer, err := console.Prompt(databasePrompt)
		if err != nil {
			slog.Error("failed to read database URL", "error", err)
			os.Exit(1)
		}
		cfg.DatabaseURL = strings.TrimSpace(answer)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Open the connection pool
	p, err := pool.New(ctx, cfg)
	if err != nil {
		if errors.Is(err, cliparse.ErrInvalidConfig) {
			slog.Error("configuration error", "error", err)
		} else {
			slog.Error("database connection failed", "error", err)
		}
		os.Exit(1)
	}
	defer p.Close()

	// Create schema (tables)
	err = p.WithTx(ctx, func(c db.Conn) error {
		return db.EnsureSchema(ctx, c)
	})
	if err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "dialect", p.Dialect())

	// The menu may be blocked reading stdin, so exit from here
	done := make(chan struct{})
	go onInterrupt(ctx, done, func() {
		slog.Info("Interrupted")
		p.Close()
		os.Exit(130)
	})

	menu := router.NewMenu(p, console, nil)
	err = menu.Run(ctx)
	close(done)
	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("menu stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("Goodbye")
}

// onInterrupt calls exit once ctx is canceled, unless done was closed first.
// stop() cancels ctx on a normal return too, so done is checked again after
// ctx fires.
func onInterrupt(ctx context.Context, done <-chan struct{}, exit func()) {
	select {
	case <-done:
		return
	case <-ctx.Done():
	}

	select {
	case <-done:
		return
	default:
		exit()
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
