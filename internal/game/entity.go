package game

// Bola. Só o sinal de Direction importa; Boost some com o tempo.
type Ball struct {
	Position  Vec2
	Direction Vec2
	Speed     float64 // por ms, constante
	Boost     float64 // extra depois de bater na raquete
}

// NewBall cria a bola no ponto inicial, descendo.
func NewBall(x, y, speed float64) Ball {
	return Ball{
		Position:  Vec2{x, y},
		Direction: Vec2{0, 1},
		Speed:     speed,
	}
}

// Raquete. Só CenterX muda, e só com tecla segurada.
type Paddle struct {
	CenterX    float64
	CenterY    float64
	HalfWidth  float64
	HalfHeight float64
}

// Box alinhada aos eixos, em coordenadas de tela.
type Box struct {
	X0, Y0, X1, Y1 float64
}

func (p Paddle) Bounds() Box {
	return Box{
		X0: p.CenterX - p.HalfWidth,
		X1: p.CenterX + p.HalfWidth,
		Y0: p.CenterY - p.HalfHeight,
		Y1: p.CenterY + p.HalfHeight,
	}
}

// Playfield é a tela menos a margem; vale para a borda e para as colisões.
type Playfield struct {
	Width  float64
	Height float64
	Margin float64
}

func (f Playfield) Top() float64    { return f.Margin }
func (f Playfield) Bottom() float64 { return f.Height - f.Margin }
func (f Playfield) Left() float64   { return f.Margin }
func (f Playfield) Right() float64  { return f.Width - f.Margin }
