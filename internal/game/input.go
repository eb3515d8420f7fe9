package game

// Control é um comando lógico; o host decide qual tecla vira qual.
type Control uint8

const (
	ControlLeft Control = 1 << iota
	ControlRight
)

// Controls é o conjunto de comandos segurados numa amostra.
type Controls uint8

func (c Controls) Has(k Control) bool {
	return c&Controls(k) != 0
}

func (c Controls) With(k Control) Controls {
	return c | Controls(k)
}

// Sustained só vale quando o comando está segurado na amostra anterior e na atual.
// Um frame só não conta.
func Sustained(prev, cur Controls, k Control) bool {
	return prev.Has(k) && cur.Has(k)
}
