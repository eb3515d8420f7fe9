// Package ebitenhost roda o loop dentro de uma janela do Ebiten.
// O Ebiten chama Update no ritmo de TPS; cada Update é um tick do loop, que
// desenha no framebuffer, e Draw só copia o último frame para a tela.
package ebitenhost

import (
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/wvoliveira/bounce/configs"
	"github.com/wvoliveira/bounce/internal/canvas"
	"github.com/wvoliveira/bounce/internal/game"
	"github.com/wvoliveira/bounce/internal/loop"
)

const helpText = "Left/Right: move paddle  |  Esc: quit"

type Game struct {
	*canvas.Framebuffer

	cfg    configs.Config
	runner *loop.Runner
	start  time.Time
	keys   []ebiten.Key
	face   text.Face
}

func New(cfg configs.Config) *Game {
	return &Game{
		Framebuffer: canvas.New(cfg.ScreenWidth, cfg.ScreenHeight),
		cfg:         cfg,
		runner:      loop.NewRunner(cfg),
		start:       time.Now(),
		face:        text.NewGoXFace(basicfont.Face7x13),
	}
}

// Run abre a janela e bloqueia até o jogador sair.
func (g *Game) Run() error {
	ebiten.SetWindowSize(g.cfg.ScreenWidth, g.cfg.ScreenHeight)
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetTPS(g.cfg.TPS)
	// Fechar a janela vira EventQuit em vez de encerrar direto.
	ebiten.SetWindowClosingHandled(true)

	if err := g.runner.Start(g); err != nil {
		return err
	}

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}

	slog.Info("game finished", "reason", g.runner.State.Reason, "frames", g.runner.State.Frames)
	return nil
}

func (g *Game) Update() error {
	ok, err := g.runner.Iterate(g)
	if err != nil {
		return err
	}
	if !ok {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.WritePixels(g.Pix())

	if g.cfg.ShowHelp {
		op := &text.DrawOptions{}
		op.GeoM.Translate(g.cfg.Margin+6, g.cfg.Margin+6)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, helpText, g.face, op)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}

// Ticks conta ms desde que o jogo foi criado.
func (g *Game) Ticks() uint64 {
	return uint64(time.Since(g.start).Milliseconds())
}

func (g *Game) PollEvents(dst []loop.Event) []loop.Event {
	if ebiten.IsWindowBeingClosed() {
		dst = append(dst, loop.Event{Type: loop.EventQuit})
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		dst = append(dst, loop.Event{Type: loop.EventKeyDown, Key: keyOf(k)})
	}

	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		dst = append(dst, loop.Event{Type: loop.EventKeyUp, Key: keyOf(k)})
	}

	return dst
}

func (g *Game) HeldControls() game.Controls {
	var c game.Controls
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		c = c.With(game.ControlLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		c = c.With(game.ControlRight)
	}
	return c
}

// Yield não faz nada: o Ebiten já segura o ritmo pelo TPS.
func (g *Game) Yield(time.Duration) {}

func keyOf(k ebiten.Key) loop.Key {
	switch k {
	case ebiten.KeyEscape:
		return loop.KeyEscape
	case ebiten.KeyArrowLeft:
		return loop.KeyLeft
	case ebiten.KeyArrowRight:
		return loop.KeyRight
	}
	return loop.KeyUnknown
}
