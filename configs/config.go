package configs

import (
	"errors"
	"fmt"
	"image/color"
	"time"
)

// TPSSyncWithFPS deixa o host atualizar uma vez por frame desenhado.
// Mesmo valor de ebiten.SyncWithFPS, repetido aqui para o pacote não depender do ebiten.
const TPSSyncWithFPS = -1

// Constantes de cada variante. Nada vem de arquivo, flag ou variável de ambiente.
type Config struct {
	Title string

	ScreenWidth  int
	ScreenHeight int
	Margin       float64

	BallRadius float64
	BallStartX float64
	BallStartY float64
	BallSpeed  float64 // unidades por ms

	BoostLaunch float64
	BoostDecay  float64 // por tick, não escala com dt

	PaddleX          float64
	PaddleY          float64
	PaddleHalfWidth  float64
	PaddleHalfHeight float64
	PaddleSpeed      float64 // unidades por ms

	// Physics liga bola/raquete. Sem ela só desenhamos a cena parada.
	Physics    bool
	ShowBorder bool
	ShowHelp   bool

	Pace time.Duration
	TPS  int

	Palette
}

// Cores da cena, RGB 0-255.
type Palette struct {
	Startup    color.RGBA
	Background color.RGBA
	Border     color.RGBA
	Ball       color.RGBA
	Paddle     color.RGBA
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func defaultPalette() Palette {
	return Palette{
		Startup:    rgb(0, 255, 255),
		Background: rgb(24, 24, 24),
		Border:     rgb(0, 200, 0),
		Ball:       rgb(255, 64, 1),
		Paddle:     rgb(1, 64, 255),
	}
}

// New devolve a variante completa: borda, bola caindo e raquete.
func New() Config {
	return Config{
		Title: "bounce",

		ScreenWidth:  800,
		ScreenHeight: 800,
		Margin:       10,

		BallRadius: 20,
		BallStartX: 399,
		BallStartY: 399,
		BallSpeed:  0.5,

		BoostLaunch: 4.0,
		BoostDecay:  0.01,

		PaddleX:          399,
		PaddleY:          749,
		PaddleHalfWidth:  45,
		PaddleHalfHeight: 10,
		PaddleSpeed:      1.0,

		Physics:    true,
		ShowBorder: true,
		ShowHelp:   true,

		Pace: 5 * time.Nanosecond,
		TPS:  TPSSyncWithFPS,

		Palette: defaultPalette(),
	}
}

// NewSketch devolve a variante simples: mesmas formas, sem borda e sem física, a 60 Hz.
func NewSketch() Config {
	cfg := New()
	cfg.Title = "sketch"
	cfg.ScreenHeight = 600
	cfg.BallStartY = 299
	cfg.PaddleY = 549
	cfg.Physics = false
	cfg.ShowBorder = false
	cfg.ShowHelp = false
	cfg.Pace = time.Second / 60
	cfg.TPS = 60
	return cfg
}

var ErrInvalidConfig = errors.New("invalid config")

// Validate recusa valores que deixariam a bola sem espaço dentro da borda.
func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen %dx%d", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	case c.BallRadius <= 0:
		return fmt.Errorf("%w: ball radius %v", ErrInvalidConfig, c.BallRadius)
	case c.Margin < 0:
		return fmt.Errorf("%w: margin %v", ErrInvalidConfig, c.Margin)
	case 2*(c.Margin+c.BallRadius) > float64(c.ScreenHeight):
		return fmt.Errorf("%w: margin %v and radius %v do not fit height %d",
			ErrInvalidConfig, c.Margin, c.BallRadius, c.ScreenHeight)
	case c.PaddleHalfWidth < 0 || c.PaddleHalfHeight < 0:
		return fmt.Errorf("%w: paddle extents %vx%v", ErrInvalidConfig, c.PaddleHalfWidth, c.PaddleHalfHeight)
	}
	return nil
}
