//go:build sdl

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"github.com/wvoliveira/bounce/configs"
	"github.com/wvoliveira/bounce/internal/host/sdlhost"
	"github.com/wvoliveira/bounce/internal/loop"
)

// O SDL quer tudo na thread principal.
func init() {
	runtime.LockOSThread()
}

func main() {
	cfg := configs.New()
	if err := cfg.Validate(); err != nil {
		slog.Error("bad config", "error", err)
		os.Exit(1)
	}

	host, err := sdlhost.New(cfg)
	if err != nil {
		slog.Error("error to open window", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	slog.Info("starting", "variant", cfg.Title, "width", cfg.ScreenWidth, "height", cfg.ScreenHeight, "host", "sdl")

	runner := loop.NewRunner(cfg)
	err = loop.Run(ctx, host, runner)
	stop()
	host.Close()

	if err != nil {
		slog.Error("error to run game", "error", err)
		os.Exit(1)
	}
	slog.Info("game finished", "reason", runner.State.Reason, "frames", runner.State.Frames)
}
