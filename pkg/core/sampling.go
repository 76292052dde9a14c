package core

import (
	"math"
	"math/rand/v2"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own PCG stream.
// Samplers with the same seed and stream produce the same sequence.
func NewSeededSampler(seed, stream uint64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewPCG(seed, stream)))
}

// NewPixelSampler creates the random stream for one pixel of a frame
func NewPixelSampler(seed uint64, pixelIndex int) *RandomSampler {
	// the odd constant spreads neighbouring pixels across the stream space
	return NewSeededSampler(seed, uint64(pixelIndex)*0x9E3779B97F4A7C15+1)
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// IntN returns a random int in [0, n)
func (r *RandomSampler) IntN(n int) int {
	return r.random.IntN(n)
}

// SampleUniformHemisphere returns a unit direction uniformly distributed over
// the hemisphere around normal (pdf 1/2π). A direction is drawn on the full
// sphere and mirrored into the normal's hemisphere.
func SampleUniformHemisphere(normal Vec3, sample Vec2) Vec3 {
	direction := SampleOnUnitSphere(sample)
	if direction.Dot(normal) < 0 {
		direction = direction.Negate()
	}
	return direction.Normalize()
}

// SampleOnUnitSphere generates a uniform random direction on the unit sphere
func SampleOnUnitSphere(sample Vec2) Vec3 {
	z := 1.0 - 2.0*sample.X // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	x := r * math.Cos(phi)
	y := r * math.Sin(phi)
	return NewVec3(x, y, z)
}

// SampleTriangleBarycentric maps a uniform square sample to uniform
// barycentric weights (b1, b2) over a triangle by folding the upper half.
func SampleTriangleBarycentric(sample Vec2) (float64, float64) {
	b1, b2 := sample.X, sample.Y
	if b1+b2 > 1 {
		b1 = 1 - b1
		b2 = 1 - b2
	}
	return b1, b2
}
