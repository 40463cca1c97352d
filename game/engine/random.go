package engine

import "math/rand/v2"

// NumberPicker draws uniform integers from a closed range
type NumberPicker interface {
	PickNumberInRange(min, max int) int
}

// RandomPicker is the default NumberPicker
type RandomPicker struct {
	rand *rand.Rand
}

// NewRandomPicker creates a picker seeded with seed. A zero seed uses the
// runtime's randomly seeded source, so every run differs.
func NewRandomPicker(seed uint64) *RandomPicker {
	if seed == 0 {
		return &RandomPicker{}
	}
	return &RandomPicker{rand: rand.New(rand.NewPCG(seed, seed))}
}

// PickNumberInRange returns a number in [min, max]
func (p *RandomPicker) PickNumberInRange(min, max int) int {
	if max <= min {
		return min
	}
	if p.rand == nil {
		return min + rand.IntN(max-min+1)
	}
	return min + p.rand.IntN(max-min+1)
}
