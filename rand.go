package cubedojo

// Rand is the source of randomness used by scramble and problem
// generators. *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}
