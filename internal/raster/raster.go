// Package raster desenha formas usando só o plot de um pixel da superfície.
package raster

import (
	"fmt"
	"math"
)

// Surface é a única capacidade que o rasterizador usa.
type Surface interface {
	Plot(x, y int) error
}

type Point struct {
	X, Y int
}

func plot(s Surface, x, y int) error {
	if err := s.Plot(x, y); err != nil {
		return fmt.Errorf("plot (%d,%d): %w", x, y, err)
	}
	return nil
}

// HorizontalSpan pinta x em [xMin, xMax) na linha y.
func HorizontalSpan(s Surface, xMin, xMax, y int) error {
	for x := xMin; x < xMax; x++ {
		if err := plot(s, x, y); err != nil {
			return err
		}
	}
	return nil
}

// VerticalSpan pinta y em [yMin, yMax) na coluna x.
func VerticalSpan(s Surface, x, yMin, yMax int) error {
	for y := yMin; y < yMax; y++ {
		if err := plot(s, x, y); err != nil {
			return err
		}
	}
	return nil
}

// FilledBox preenche [x0,x1) x [y0,y1) com um span horizontal por linha.
func FilledBox(s Surface, upperLeft, lowerRight Point) error {
	for y := upperLeft.Y; y < lowerRight.Y; y++ {
		if err := HorizontalSpan(s, upperLeft.X, lowerRight.X, y); err != nil {
			return err
		}
	}
	return nil
}

// FilledCircle preenche o disco coluna por coluna.
// Para cada dx em [-r, r) a meia corda é round(sqrt(r²-dx²)), arredondando
// com +0.5 e truncando, e a coluna recebe o span [cy-h, cy+h).
func FilledCircle(s Surface, center Point, radius int) error {
	r2 := radius * radius
	for dx := -radius; dx < radius; dx++ {
		h := HalfChord(r2, dx)
		if err := VerticalSpan(s, center.X+dx, center.Y-h, center.Y+h); err != nil {
			return err
		}
	}
	return nil
}

// HalfChord devolve a altura da meia corda na coluna dx de um círculo de raio² r2.
func HalfChord(r2, dx int) int {
	return int(math.Sqrt(float64(r2-dx*dx)) + 0.5)
}
