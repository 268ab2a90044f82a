package bigint

import (
	crand "crypto/rand"
	"encoding/binary"

	"golang.org/x/xerrors"
)

// RandSource yields uniformly random words for Rand and IsProbablyPrime.
// math/rand's *Rand satisfies it; use CryptoSource when the draw has to be
// unpredictable.
type RandSource interface {
	Uint64() uint64
}

// CryptoSource is a RandSource over the operating system's entropy pool.
// A read failure panics rather than returning zeroed or biased words.
type CryptoSource struct{}

func (CryptoSource) Uint64() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic(xerrors.Errorf("bigint: entropy source failed: %w", err))
	}
	return binary.LittleEndian.Uint64(b[:])
}

// Rand returns a uniformly random Uint of the given width drawn from
// source. sizeMax bounds the result's bit length; 0 (or anything at or
// beyond the width) means randomize the full width.
func Rand(source RandSource, bitWidth, sizeMax uint) Uint {
	u := New(bitWidth)
	if sizeMax == 0 || sizeMax > bitWidth {
		sizeMax = bitWidth
	}

	n := int((sizeMax + wordBits - 1) / wordBits)
	var buf uint64
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			buf = source.Uint64()
		}
		u.words[i] = uint32(buf)
		buf >>= 32
	}
	if rem := sizeMax % wordBits; rem != 0 {
		u.words[n-1] &= 1<<rem - 1
	}
	return u
}

// Difference subtracts the smaller of a and b from the larger.
func Difference(a, b Uint) Uint {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func Larger(a, b Uint) Uint {
	if a.Cmp(b) >= 0 {
		return a.Copy()
	}
	return b.Copy()
}

func Smaller(a, b Uint) Uint {
	if a.Cmp(b) <= 0 {
		return a.Copy()
	}
	return b.Copy()
}
