package loop

import (
	"image/color"
	"time"

	"github.com/wvoliveira/bounce/internal/game"
	"github.com/wvoliveira/bounce/internal/raster"
)

// Eventos que o loop entende. O resto chega como EventOther e é ignorado.
type EventType int

const (
	EventOther EventType = iota
	EventQuit
	EventKeyDown
	EventKeyUp
)

type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyLeft
	KeyRight
)

type Event struct {
	Type EventType
	Key  Key
}

// Canvas é a superfície de desenho do host.
type Canvas interface {
	raster.Surface
	SetColor(c color.RGBA)
	Clear()
	Present() error
}

// Host é tudo que o loop precisa da biblioteca de janela.
type Host interface {
	Canvas

	// Ticks é um relógio monotônico em ms.
	Ticks() uint64
	// PollEvents esvazia a fila de eventos pendentes, anexando em dst.
	PollEvents(dst []Event) []Event
	// HeldControls é o conjunto de comandos segurados agora.
	HeldControls() game.Controls
	// Yield é uma dica de ritmo no fim do frame.
	Yield(d time.Duration)
}
