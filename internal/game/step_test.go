package game

import (
	"testing"

	"github.com/wvoliveira/bounce/configs"
)

const radius = 20

func newTestWorld() World {
	return NewWorld(configs.New())
}

func TestNewWorld(t *testing.T) {
	w := newTestWorld()
	if w.Ball.Position != (Vec2{399, 399}) {
		t.Fatalf("ball start = %+v, want (399,399)", w.Ball.Position)
	}
	if w.Ball.Direction != (Vec2{0, 1}) {
		t.Fatalf("ball direction = %+v, want (0,1)", w.Ball.Direction)
	}
	if w.Ball.Speed != 0.5 || w.Ball.Boost != 0 {
		t.Fatalf("ball speed=%v boost=%v, want 0.5 and 0", w.Ball.Speed, w.Ball.Boost)
	}
	box := w.Paddle.Bounds()
	if box != (Box{X0: 354, Y0: 739, X1: 444, Y1: 759}) {
		t.Fatalf("paddle bounds = %+v", box)
	}
}

func TestStepFallsWithSpeed(t *testing.T) {
	w := newTestWorld()
	w.Step(10, 0, 0)
	if w.Ball.Position.Y != 404 {
		t.Fatalf("y after 10ms = %v, want 404", w.Ball.Position.Y)
	}
	if w.Ball.Position.X != 399 {
		t.Fatalf("x after 10ms = %v, want 399", w.Ball.Position.X)
	}
}

func TestStepPaddleCollision(t *testing.T) {
	w := newTestWorld()
	top := w.Paddle.Bounds().Y0
	w.Ball.Position = Vec2{w.Paddle.CenterX, top - radius + 1}
	w.Ball.Direction = Vec2{0, 1}

	w.Step(0, 0, 0)

	if w.Ball.Direction.Y != -1 {
		t.Fatalf("direction.y = %v, want -1", w.Ball.Direction.Y)
	}
	if w.Ball.Position.Y+radius != top {
		t.Fatalf("ball bottom = %v, want paddle top %v", w.Ball.Position.Y+radius, top)
	}
	// dt = 0: o decaimento do tick já descontou uma vez.
	if got, want := w.Ball.Boost, w.Tuning.BoostLaunch-w.Tuning.BoostDecay; got != want {
		t.Fatalf("boost = %v, want %v", got, want)
	}
}

func TestStepPaddleCollisionSetsLaunchBoost(t *testing.T) {
	w := newTestWorld()
	w.Tuning.BoostDecay = 0
	w.Ball.Position = Vec2{w.Paddle.CenterX, w.Paddle.Bounds().Y0 - radius + 1}

	w.Step(0, 0, 0)

	if w.Ball.Boost != 4.0 {
		t.Fatalf("boost = %v, want 4.0", w.Ball.Boost)
	}
}

func TestStepPaddleEdges(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		hit  bool
	}{
		{"left edge", 354, true},
		{"right edge", 444, true},
		{"just left", 353.9, false},
		{"just right", 444.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			w.Ball.Position = Vec2{tt.x, 725}
			w.Step(0, 0, 0)
			if hit := w.Ball.Direction.Y == -1; hit != tt.hit {
				t.Fatalf("hit = %v, want %v", hit, tt.hit)
			}
		})
	}
}

func TestStepPaddleRetriggersWhileOverlapping(t *testing.T) {
	w := newTestWorld()
	w.Ball.Position = Vec2{w.Paddle.CenterX, 730}
	w.Step(0, 0, 0)
	w.Step(0, 0, 0)

	if got, want := w.Ball.Boost, w.Tuning.BoostLaunch-w.Tuning.BoostDecay; got != want {
		t.Fatalf("boost after overlap = %v, want %v", got, want)
	}
}

func TestStepBottomWall(t *testing.T) {
	w := newTestWorld()
	w.Paddle.CenterX = -1000
	w.Ball.Position = Vec2{399, 785}

	w.Step(0, 0, 0)

	if w.Ball.Direction.Y != -1 {
		t.Fatalf("direction.y = %v, want -1", w.Ball.Direction.Y)
	}
	if want := 800.0 - 10 - radius; w.Ball.Position.Y != want {
		t.Fatalf("y = %v, want %v", w.Ball.Position.Y, want)
	}
}

func TestStepTopWall(t *testing.T) {
	w := newTestWorld()
	w.Ball.Position = Vec2{399, 12}
	w.Ball.Direction = Vec2{0, -1}

	w.Step(0, 0, 0)

	if w.Ball.Direction.Y != 1 {
		t.Fatalf("direction.y = %v, want 1", w.Ball.Direction.Y)
	}
	if want := 10.0 + radius; w.Ball.Position.Y != want {
		t.Fatalf("y = %v, want %v", w.Ball.Position.Y, want)
	}
}

func TestStepStaysInsideWalls(t *testing.T) {
	w := newTestWorld()
	w.Paddle.CenterX = -1000
	for i := 0; i < 2000; i++ {
		w.Step(16, 0, 0)
		y := w.Ball.Position.Y
		// A integração acontece depois da colisão: no máximo um passo fora.
		step := (w.Ball.Speed + w.Ball.Boost) * 16
		if y-radius < 10-step || y+radius > 790+step {
			t.Fatalf("tick %d: y = %v escaped the playfield", i, y)
		}
	}
}

func TestPaddleDebounce(t *testing.T) {
	right := Controls(0).With(ControlRight)
	left := Controls(0).With(ControlLeft)

	tests := []struct {
		name      string
		prev, cur Controls
		want      float64
	}{
		{"no keys", 0, 0, 399},
		{"single frame right", 0, right, 399},
		{"released right", right, 0, 399},
		{"held right", right, right, 409},
		{"held left", left, left, 389},
		{"held both", right.With(ControlLeft), right.With(ControlLeft), 399},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			w.Step(10, tt.prev, tt.cur)
			if w.Paddle.CenterX != tt.want {
				t.Fatalf("paddle x = %v, want %v", w.Paddle.CenterX, tt.want)
			}
			if w.Paddle.CenterY != 749 {
				t.Fatalf("paddle y moved to %v", w.Paddle.CenterY)
			}
		})
	}
}

func TestPaddleIsNotClamped(t *testing.T) {
	w := newTestWorld()
	right := Controls(0).With(ControlRight)
	for i := 0; i < 100; i++ {
		w.Step(16, right, right)
	}
	if w.Paddle.CenterX <= float64(800) {
		t.Fatalf("paddle x = %v, want past the right edge", w.Paddle.CenterX)
	}
}

func TestBoostDecay(t *testing.T) {
	w := newTestWorld()
	w.Ball.Position = Vec2{399, 399}
	w.Ball.Boost = 4.0

	prev := w.Ball.Boost
	for i := 0; i < 410; i++ {
		w.Step(0, 0, 0)
		if w.Ball.Boost < 0 {
			t.Fatalf("tick %d: boost = %v, went negative", i, w.Ball.Boost)
		}
		if w.Ball.Boost > prev {
			t.Fatalf("tick %d: boost grew from %v to %v", i, prev, w.Ball.Boost)
		}
		prev = w.Ball.Boost
	}
	if w.Ball.Boost != 0 {
		t.Fatalf("boost after 410 ticks = %v, want 0", w.Ball.Boost)
	}
}

func TestBoostDecayIgnoresDt(t *testing.T) {
	a, b := newTestWorld(), newTestWorld()
	a.Ball.Boost, b.Ball.Boost = 2, 2
	a.Paddle.CenterX, b.Paddle.CenterX = -1000, -1000

	a.Step(1, 0, 0)
	b.Step(50, 0, 0)

	if a.Ball.Boost != b.Ball.Boost {
		t.Fatalf("boost depends on dt: %v vs %v", a.Ball.Boost, b.Ball.Boost)
	}
}
