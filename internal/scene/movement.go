package scene

import (
	"github.com/plus3/ballgame/ecs"
	"github.com/plus3/ballgame/internal/input"
)

type binding struct {
	keys [2]input.Key
	dir  Vec2
}

// Arrow keys and WASD, world y pointing up.
var bindings = []binding{
	{keys: [2]input.Key{input.KeyLeft, input.KeyA}, dir: Vec2{X: -1}},
	{keys: [2]input.Key{input.KeyRight, input.KeyD}, dir: Vec2{X: 1}},
	{keys: [2]input.Key{input.KeyUp, input.KeyW}, dir: Vec2{Y: 1}},
	{keys: [2]input.Key{input.KeyDown, input.KeyS}, dir: Vec2{Y: -1}},
}

// Direction sums the unit vectors of every held binding and normalises the
// result. Opposite keys cancel; holding both keys of one binding counts once.
func Direction(kb *input.Keyboard) Vec2 {
	var dir Vec2
	for _, b := range bindings {
		if kb.AnyPressed(b.keys[:]...) {
			dir.X += b.dir.X
			dir.Y += b.dir.Y
		}
	}
	return dir.Normalize()
}

// Displacement is how far a body moving along dir at speed travels in dt
// seconds.
func Displacement(dir Vec2, speed float32, dt float64) Vec2 {
	return dir.Scale(speed * float32(dt))
}

// PlayerMovementSystem moves the player according to the keyboard.
type PlayerMovementSystem struct {
	Keyboard ecs.Singleton[input.Keyboard]
	Player   ecs.Query[struct {
		*Transform
		*Player
	}]
}

func (s *PlayerMovementSystem) Execute(frame *ecs.UpdateFrame) {
	player := s.Player.MustSingle()
	delta := Displacement(Direction(s.Keyboard.MustGet()), PlayerSpeed, frame.DeltaTime)
	player.Translation.X += delta.X
	player.Translation.Y += delta.Y
}
