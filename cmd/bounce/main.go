package main

import (
	"log/slog"
	"os"

	"github.com/wvoliveira/bounce/configs"
	"github.com/wvoliveira/bounce/internal/host/ebitenhost"
)

func main() {
	cfg := configs.New()
	if err := cfg.Validate(); err != nil {
		slog.Error("bad config", "error", err)
		os.Exit(1)
	}

	slog.Info("starting", "variant", cfg.Title, "width", cfg.ScreenWidth, "height", cfg.ScreenHeight, "host", "ebiten")

	if err := ebitenhost.New(cfg).Run(); err != nil {
		slog.Error("error to run game", "error", err)
		os.Exit(1)
	}
}
