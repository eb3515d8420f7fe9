package game

import "github.com/wvoliveira/bounce/configs"

// Parâmetros fixos da física.
type Tuning struct {
	BallRadius  float64
	PaddleSpeed float64 // por ms
	BoostLaunch float64
	BoostDecay  float64 // por tick
}

// Estado do mundo.
type World struct {
	Ball   Ball
	Paddle Paddle
	Field  Playfield
	Tuning Tuning
}

func NewWorld(cfg configs.Config) World {
	return World{
		Ball: NewBall(cfg.BallStartX, cfg.BallStartY, cfg.BallSpeed),
		Paddle: Paddle{
			CenterX:    cfg.PaddleX,
			CenterY:    cfg.PaddleY,
			HalfWidth:  cfg.PaddleHalfWidth,
			HalfHeight: cfg.PaddleHalfHeight,
		},
		Field: Playfield{
			Width:  float64(cfg.ScreenWidth),
			Height: float64(cfg.ScreenHeight),
			Margin: cfg.Margin,
		},
		Tuning: Tuning{
			BallRadius:  cfg.BallRadius,
			PaddleSpeed: cfg.PaddleSpeed,
			BoostLaunch: cfg.BoostLaunch,
			BoostDecay:  cfg.BoostDecay,
		},
	}
}

// Step avança um tick. dt são os ms desde o tick anterior; prev e cur são as
// duas últimas amostras de teclas seguradas. dt não é validado.
func (w *World) Step(dt float64, prev, cur Controls) {
	w.movePaddle(dt, prev, cur)
	w.collidePaddle()
	w.collideWalls()
	w.integrate(dt)
	w.decayBoost()
}

func (w *World) movePaddle(dt float64, prev, cur Controls) {
	if Sustained(prev, cur, ControlRight) {
		w.Paddle.CenterX += w.Tuning.PaddleSpeed * dt
	}
	if Sustained(prev, cur, ControlLeft) {
		w.Paddle.CenterX -= w.Tuning.PaddleSpeed * dt
	}
}

// collidePaddle roda todo tick, qualquer que seja a direção da bola.
func (w *World) collidePaddle() {
	b := &w.Ball
	r := w.Tuning.BallRadius
	box := w.Paddle.Bounds()

	if b.Position.X >= box.X0 && b.Position.X <= box.X1 && b.Position.Y+r >= box.Y0 {
		b.Position.Y = box.Y0 - r
		b.Direction.Y = -1
		b.Boost = w.Tuning.BoostLaunch
	}
}

// collideWalls prende a bola dentro da margem e inverte o sentido vertical.
func (w *World) collideWalls() {
	b := &w.Ball
	r := w.Tuning.BallRadius

	if b.Position.Y+r >= w.Field.Bottom() {
		b.Position.Y = w.Field.Bottom() - r
		b.Direction.Y = -b.Direction.Y
	} else if b.Position.Y-r <= w.Field.Top() {
		b.Position.Y = w.Field.Top() + r
		b.Direction.Y = -b.Direction.Y
	}
}

func (w *World) integrate(dt float64) {
	b := &w.Ball
	b.Position = b.Position.Add(b.Direction.Scale((b.Speed + b.Boost) * dt))
}

// decayBoost desconta uma parcela fixa por tick; nunca fica negativo.
func (w *World) decayBoost() {
	b := &w.Ball
	if b.Boost > 0 {
		b.Boost -= w.Tuning.BoostDecay
		if b.Boost < 0 {
			b.Boost = 0
		}
	} else {
		b.Boost = 0
	}
}
