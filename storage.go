package xsdf

import (
	"github.com/chewxy/math32"
	"github.com/x448/float16"
)

// Storage is the backing store for the distances of a field. It is
// parameterized over itself so that a zero value can allocate new
// instances of its own type:
//
//	var zero S
//	s := zero.Make(n)
type Storage[S any] interface {
	// Make returns a new storage with n slots that all hold positive
	// infinity.
	Make(n int) S

	// Len returns the number of slots.
	Len() int

	// At returns the distance in slot i.
	At(i int) float32

	// Set stores d in slot i, possibly with reduced precision.
	Set(i int, d float32)
}

// F32 stores distances with full 32-bit precision. It needs twice the
// memory of F16 but avoids conversions, making computation faster.
type F32 []float32

func (F32) Make(n int) F32 {
	s := make(F32, n)
	inf := math32.Inf(1)
	for i := range s {
		s[i] = inf
	}
	return s
}

func (s F32) Len() int             { return len(s) }
func (s F32) At(i int) float32     { return s[i] }
func (s F32) Set(i int, d float32) { s[i] = d }

// F16 stores distances as IEEE 754 half-precision floats. It needs
// half the memory of F32 and is precise enough for display purposes,
// but every access converts to or from float32.
//
// Finite distances with a magnitude above 65504, the largest finite
// half-precision value, are stored as ±65504 rather than overflowing
// to infinity. This only happens in images wider or taller than that.
type F16 []float16.Float16

// maxF16 is the largest finite half-precision value.
var maxF16 = float16.Frombits(0x7bff).Float32()

func (F16) Make(n int) F16 {
	s := make(F16, n)
	inf := float16.Inf(1)
	for i := range s {
		s[i] = inf
	}
	return s
}

func (s F16) Len() int         { return len(s) }
func (s F16) At(i int) float32 { return s[i].Float32() }

func (s F16) Set(i int, d float32) {
	if !math32.IsInf(d, 0) {
		d = clamp(d, -maxF16, maxF16)
	}
	s[i] = float16.Fromfloat32(d)
}
