// Package canvas guarda o frame em memória, para hosts que só aceitam a imagem pronta.
package canvas

import (
	"image"
	"image/color"
)

// Framebuffer desenha no buffer de trás; Present copia para o da frente.
// Pontos fora da tela são ignorados, como o SDL faz.
type Framebuffer struct {
	back  *image.RGBA
	front *image.RGBA
	color color.RGBA
}

func New(width, height int) *Framebuffer {
	r := image.Rect(0, 0, width, height)
	return &Framebuffer{
		back:  image.NewRGBA(r),
		front: image.NewRGBA(r),
		color: color.RGBA{A: 0xff},
	}
}

func (f *Framebuffer) Bounds() image.Rectangle {
	return f.back.Rect
}

func (f *Framebuffer) SetColor(c color.RGBA) {
	f.color = c
}

func (f *Framebuffer) Clear() {
	pix := f.back.Pix
	if len(pix) == 0 {
		return
	}
	pix[0], pix[1], pix[2], pix[3] = f.color.R, f.color.G, f.color.B, f.color.A
	for n := 4; n < len(pix); n *= 2 {
		copy(pix[n:], pix[:n])
	}
}

func (f *Framebuffer) Plot(x, y int) error {
	if !image.Pt(x, y).In(f.back.Rect) {
		return nil
	}
	f.back.SetRGBA(x, y, f.color)
	return nil
}

func (f *Framebuffer) Present() error {
	copy(f.front.Pix, f.back.Pix)
	return nil
}

// Frame devolve uma cópia do último frame apresentado.
func (f *Framebuffer) Frame() *image.RGBA {
	out := image.NewRGBA(f.front.Rect)
	copy(out.Pix, f.front.Pix)
	return out
}

// Pix são os bytes RGBA do frame da frente, sem cópia. Vale até o próximo Present.
func (f *Framebuffer) Pix() []byte {
	return f.front.Pix
}
