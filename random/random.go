// SPDX-License-Identifier: GPL-2.0-or-later

// Package random reimplements the seeded PRNG of the Unity engine, an
// xorshift128 core with the sampling routines the engine builds on it.
// For a given seed a Generator yields the same values the engine would,
// so replays, test harnesses and procedural content can be reproduced
// without the engine.
//
// The generator is not a cryptographically secure source of randomness.
//
// A Generator is an owned value and there is no package level instance.
// Every sampling call advances the state, so a single instance must not be
// shared between goroutines without external locking; use one generator
// per stream of randomness instead.
package random

import (
	gmath "math"
	"math/bits"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidRange is returned by Range and RangeInt when min > max.
var ErrInvalidRange = errors.New("min is greater than max")

// floatMask keeps the low 23 bits of a raw word, the mantissa width the
// engine uses to build a float in [0,1].
const floatMask = 0x7FFFFF

// Generator is a single instance of the engine PRNG. Instances are fully
// independent of each other; the sequence is determined by State alone.
type Generator struct {
	// State may be read and written freely to snapshot and restore the
	// exact position in the sequence.
	State State
}

// New returns a generator seeded from the current time, like the engine
// does at startup.
func New() *Generator {
	return NewSeeded(int32(time.Now().Unix()))
}

// NewSeeded returns a generator with InitState(seed) already applied.
func NewSeeded(seed int32) *Generator {
	g := &Generator{}
	g.InitState(seed)
	return g
}

// InitState (re)initializes the generator. The same seed always reproduces
// the same sequence, and every seed, zero and negative included, yields a
// valid non-zero state.
func (g *Generator) InitState(seed int32) {
	g.State = seedState(uint32(seed))
}

func (g *Generator) nextUint32() uint32 {
	return g.State.next()
}

// nextFloat converts one raw word into [0,1], both ends inclusive.
func (g *Generator) nextFloat() float32 {
	return float32(g.nextUint32()&floatMask) / float32(floatMask)
}

// rangeFloat maps one raw word into [min,max]. The engine interpolates
// from max down to min; keeping that direction is required for value
// parity.
func (g *Generator) rangeFloat(min, max float32) float32 {
	t := g.nextFloat()
	return (1-t)*max + t*min
}

// Value returns a random float in [0,1], both ends inclusive.
func (g *Generator) Value() float32 {
	return precision(g.nextFloat(), 7)
}

// Range returns a random float in [min,max], both ends inclusive.
// min == max is valid and returns that value. It returns ErrInvalidRange
// if min > max.
func (g *Generator) Range(min, max float32) (float32, error) {
	if min > max {
		return 0, errors.Wrapf(ErrInvalidRange, "range [%v,%v]", min, max)
	}
	return precision(g.rangeFloat(min, max), 7), nil
}

// RangeInt returns a random int in [min,max), the maximum is exclusive.
// The raw word is masked to the smallest covering power of two and redrawn
// while the masked value falls outside the range, so no value is favored
// by a modulo. min == max returns min without advancing the state. It
// returns ErrInvalidRange if min > max.
func (g *Generator) RangeInt(min, max int32) (int32, error) {
	if min > max {
		return 0, errors.Wrapf(ErrInvalidRange, "range [%d,%d)", min, max)
	}
	diff := uint32(max) - uint32(min)
	if diff == 0 {
		return min, nil
	}
	mask := uint32(1)<<bits.Len32(diff-1) - 1
	for {
		v := g.nextUint32() & mask
		if v < diff {
			return int32(uint32(min) + v), nil
		}
	}
}

// precision rounds x to the given number of significant digits, matching
// the output the engine runtime prints back. The shift runs in float64; a
// float32 shift garbles its own digits (rounding 12300 to two digits comes
// back as 11999.999).
func precision(x float32, digits int32) float32 {
	if x == 0 || digits == 0 {
		return 0
	}
	shift := digits - int32(gmath.Ceil(gmath.Log10(gmath.Abs(float64(x)))))
	factor := gmath.Pow10(int(shift))
	return float32(gmath.Round(float64(x)*factor) / factor)
}
