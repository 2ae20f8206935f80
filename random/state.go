// SPDX-License-Identifier: GPL-2.0-or-later

package random

// State is the full internal state of the generator, the four 32-bit words
// of the xorshift128 sequence. It is a plain comparable value: copying it
// snapshots the exact position in the sequence and assigning the copy back
// restores it.
type State struct {
	S0, S1, S2, S3 uint32
}

// seedMix is the multiplier of the MT19937 seed initializer, which the
// engine reuses to spread one seed over the four state words.
const seedMix = 0x6C078965

// seedState derives the state from seed. Each word depends on the previous
// one and the +1 keeps the chain from sticking at zero, so every seed,
// 0 included, yields a state the advance can work with. The all-zero fixed
// point of xorshift128 is unreachable this way.
func seedState(seed uint32) State {
	s0 := seed
	s1 := s0*seedMix + 1
	s2 := s1*seedMix + 1
	s3 := s2*seedMix + 1
	return State{S0: s0, S1: s1, S2: s2, S3: s3}
}

// next advances the state by one xorshift128 step, shift constants 11, 8
// and 19, and returns the fresh output word, which is also the new s3.
// Draws are strictly sequential; every sampler depends on the exact order.
func (s *State) next() uint32 {
	t := s.S0 ^ (s.S0 << 11)
	u := s.S3 ^ (s.S3 >> 19)
	s.S0 = s.S1
	s.S1 = s.S2
	s.S2 = s.S3
	s.S3 = u ^ (t ^ (t >> 8))
	return s.S3
}
