package loop

import (
	"github.com/wvoliveira/bounce/configs"
	"github.com/wvoliveira/bounce/internal/game"
	"github.com/wvoliveira/bounce/internal/raster"
)

// Draw pinta um frame inteiro a partir do estado, de trás para frente:
// fundo, borda, bola, raquete. Não muda o estado.
func Draw(c Canvas, w *game.World, cfg configs.Config) error {
	c.SetColor(cfg.Background)
	c.Clear()

	if cfg.ShowBorder {
		c.SetColor(cfg.Border)
		if err := drawBorder(c, w.Field); err != nil {
			return err
		}
	}

	c.SetColor(cfg.Ball)
	center := raster.Point{X: int(w.Ball.Position.X), Y: int(w.Ball.Position.Y)}
	if err := raster.FilledCircle(c, center, int(w.Tuning.BallRadius)); err != nil {
		return err
	}

	c.SetColor(cfg.Paddle)
	box := w.Paddle.Bounds()
	return raster.FilledBox(c,
		raster.Point{X: int(box.X0), Y: int(box.Y0)},
		raster.Point{X: int(box.X1), Y: int(box.Y1)},
	)
}

func drawBorder(c Canvas, f game.Playfield) error {
	left, right := int(f.Left()), int(f.Right())
	top, bottom := int(f.Top()), int(f.Bottom())

	if err := raster.HorizontalSpan(c, left, right, top); err != nil {
		return err
	}
	if err := raster.HorizontalSpan(c, left, right, bottom); err != nil {
		return err
	}
	if err := raster.VerticalSpan(c, left, top, bottom); err != nil {
		return err
	}
	return raster.VerticalSpan(c, right, top, bottom)
}
