// Package loop amarra entrada, física e desenho, um tick por vez.
package loop

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wvoliveira/bounce/configs"
	"github.com/wvoliveira/bounce/internal/game"
)

// FrameState é o que passa de um tick para o outro além do mundo.
type FrameState struct {
	Running   bool
	Started   bool
	LastTicks uint64
	Prev      game.Controls
	Cur       game.Controls
	Frames    uint64
	Reason    string // por que parou
}

type Runner struct {
	cfg    configs.Config
	World  game.World
	State  FrameState
	events []Event
}

func NewRunner(cfg configs.Config) *Runner {
	return &Runner{
		cfg:    cfg,
		World:  game.NewWorld(cfg),
		State:  FrameState{Running: true},
		events: make([]Event, 0, 16),
	}
}

// Start mostra um primeiro frame na cor de abertura, antes do loop.
func (r *Runner) Start(c Canvas) error {
	c.SetColor(r.cfg.Startup)
	c.Clear()
	if err := c.Present(); err != nil {
		return fmt.Errorf("present startup frame: %w", err)
	}
	return nil
}

// Iterate roda um tick: mede o tempo, lê eventos, amostra teclas, avança a
// física e desenha. Devolve false quando o loop deve parar.
func (r *Runner) Iterate(h Host) (bool, error) {
	if !r.State.Running {
		return false, nil
	}

	now := h.Ticks()
	var dt uint64
	if r.State.Started {
		dt = now - r.State.LastTicks
	}
	r.State.Started = true
	r.State.LastTicks = now

	r.events = h.PollEvents(r.events[:0])
	for _, ev := range r.events {
		switch {
		case ev.Type == EventQuit:
			r.stop("window closed")
		case ev.Type == EventKeyDown && ev.Key == KeyEscape:
			r.stop("escape pressed")
		}
	}
	if !r.State.Running {
		return false, nil
	}

	r.State.Prev = r.State.Cur
	r.State.Cur = h.HeldControls()

	if r.cfg.Physics {
		r.World.Step(float64(dt), r.State.Prev, r.State.Cur)
	}

	if err := Draw(h, &r.World, r.cfg); err != nil {
		return false, fmt.Errorf("draw frame %d: %w", r.State.Frames, err)
	}
	if err := h.Present(); err != nil {
		return false, fmt.Errorf("present frame %d: %w", r.State.Frames, err)
	}
	r.State.Frames++

	return true, nil
}

func (r *Runner) stop(reason string) {
	if r.State.Running {
		r.State.Running = false
		r.State.Reason = reason
		slog.Info("quit requested", "reason", reason, "frames", r.State.Frames)
	}
}

// Run chama Iterate até o pedido de saída, um erro de frame ou ctx cancelado.
// Entre frames cede o controle por cfg.Pace.
func Run(ctx context.Context, h Host, r *Runner) error {
	if err := r.Start(h); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			r.stop("context done")
			return nil
		}

		ok, err := r.Iterate(h)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		h.Yield(r.cfg.Pace)
	}
}
