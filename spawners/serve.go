package spawners

import (
	"math"
	"math/rand/v2"

	"ebiten-pong/config"
	"ebiten-pong/geom"
)

// Rand is the random source used for serves
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded generator; equal seeds give equal serve sequences
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// ServeVelocity picks a launch velocity at a shallow angle in
// [AngleMin, AngleMax] from the horizontal. One draw over four equal
// sub-ranges selects the horizontal side, the vertical half and the angle.
func ServeVelocity(rng Rand, cfg config.BallConfig) geom.Vec2 {
	angleRange := cfg.AngleMax - cfg.AngleMin
	r := rng.Float64() * angleRange * 4

	// Float rounding can put r/angleRange exactly on 4
	quarter := min(math.Floor(r/angleRange), 3)
	// -1 shoots left, +1 shoots right
	horizontal := math.Floor(quarter/2)*2 - 1
	// -1 shoots down, +1 shoots up
	vertical := math.Mod(quarter, 2)*2 - 1

	angle := cfg.AngleMin + r - quarter*angleRange
	sin, cos := math.Sincos(angle)
	direction := geom.V(cos*horizontal, sin*vertical)
	return direction.Scale(cfg.Speed)
}
