//go:build sdl

// Package sdlhost roda o loop numa janela SDL2, desenhando ponto a ponto no renderer.
// Build com: go build -tags sdl
package sdlhost

import (
	"fmt"
	"image/color"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/wvoliveira/bounce/configs"
	"github.com/wvoliveira/bounce/internal/game"
	"github.com/wvoliveira/bounce/internal/loop"
)

type Host struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	err      error // primeiro erro de SetDrawColor/Clear, devolvido no Present
}

// New inicializa o SDL e abre a janela centralizada. Qualquer falha aqui é fatal.
func New(cfg configs.Config) (*Host, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("init sdl: %w", err)
	}

	window, err := sdl.CreateWindow(cfg.Title,
		int32(sdl.WINDOWPOS_CENTERED),
		int32(sdl.WINDOWPOS_CENTERED),
		int32(cfg.ScreenWidth), int32(cfg.ScreenHeight),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	return &Host{window: window, renderer: renderer}, nil
}

func (h *Host) Close() {
	h.renderer.Destroy()
	h.window.Destroy()
	sdl.Quit()
}

func (h *Host) SetColor(c color.RGBA) {
	if err := h.renderer.SetDrawColor(c.R, c.G, c.B, c.A); err != nil && h.err == nil {
		h.err = fmt.Errorf("set draw color: %w", err)
	}
}

func (h *Host) Clear() {
	if err := h.renderer.Clear(); err != nil && h.err == nil {
		h.err = fmt.Errorf("clear: %w", err)
	}
}

func (h *Host) Plot(x, y int) error {
	return h.renderer.DrawPoint(int32(x), int32(y))
}

func (h *Host) Present() error {
	if err := h.err; err != nil {
		h.err = nil
		return err
	}
	h.renderer.Present()
	return nil
}

func (h *Host) Ticks() uint64 {
	return uint64(sdl.GetTicks())
}

func (h *Host) PollEvents(dst []loop.Event) []loop.Event {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch e := ev.(type) {
		case *sdl.QuitEvent:
			dst = append(dst, loop.Event{Type: loop.EventQuit})
		case *sdl.KeyboardEvent:
			t := loop.EventKeyUp
			if e.State == sdl.PRESSED {
				t = loop.EventKeyDown
			}
			dst = append(dst, loop.Event{Type: t, Key: keyOf(e.Keysym.Scancode)})
		default:
			dst = append(dst, loop.Event{Type: loop.EventOther})
		}
	}
	return dst
}

func (h *Host) HeldControls() game.Controls {
	state := sdl.GetKeyboardState()
	var c game.Controls
	if state[sdl.SCANCODE_LEFT] != 0 {
		c = c.With(game.ControlLeft)
	}
	if state[sdl.SCANCODE_RIGHT] != 0 {
		c = c.With(game.ControlRight)
	}
	return c
}

func (h *Host) Yield(d time.Duration) {
	time.Sleep(d)
}

func keyOf(sc sdl.Scancode) loop.Key {
	switch sc {
	case sdl.SCANCODE_ESCAPE:
		return loop.KeyEscape
	case sdl.SCANCODE_LEFT:
		return loop.KeyLeft
	case sdl.SCANCODE_RIGHT:
		return loop.KeyRight
	}
	return loop.KeyUnknown
}
