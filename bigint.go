package bigint

import (
	"encoding/binary"
	"math/big"
	"math/bits"
)

// Uint is a fixed-width unsigned integer. The width is fixed when the value
// is constructed and every operation wraps modulo 2^bits, like Go's native
// unsigned types but at an arbitrary multiple-of-32 width.
//
// Uint is a value type; operations never modify their operands. The zero
// Uint has width 0 and is not usable as an operand; use one of the
// constructors.
type Uint struct {
	bits  uint
	words []uint32 // little-endian
}

func wordCount(bitWidth uint) int {
	if bitWidth == 0 || bitWidth%wordBits != 0 {
		panic(ErrInvalidWidth)
	}
	return int(bitWidth / wordBits)
}

// New returns the zero value of the given width. The width must be a
// positive multiple of 32 or New panics with ErrInvalidWidth.
func New(bitWidth uint) Uint {
	return Uint{bits: bitWidth, words: make([]uint32, wordCount(bitWidth))}
}

// From64 returns a Uint of the given width holding v. If the width is 32,
// the upper half of v is discarded.
func From64(bitWidth uint, v uint64) Uint {
	u := New(bitWidth)
	u.words[0] = uint32(v)
	if len(u.words) > 1 {
		u.words[1] = uint32(v >> 32)
	}
	return u
}

// Max returns the largest value representable in the given width.
func Max(bitWidth uint) Uint {
	u := New(bitWidth)
	for i := range u.words {
		u.words[i] = ^uint32(0)
	}
	return u
}

// FromBigInt returns a Uint of the given width holding b. Negative values
// yield zero. If b does not fit the width, out holds the low bits of b and
// accurate is false.
func FromBigInt(bitWidth uint, b *big.Int) (out Uint, accurate bool) {
	out = New(bitWidth)
	if b.Sign() < 0 {
		return out, false
	}
	for i := range out.words {
		out.words[i] = bigWord32(b, i)
	}
	return out, uint(b.BitLen()) <= bitWidth
}

// bigWord32 extracts the i'th 32-bit limb of the absolute value of b.
func bigWord32(b *big.Int, i int) uint32 {
	words := b.Bits()
	switch intSize {
	case 64:
		if i/2 >= len(words) {
			return 0
		}
		if i%2 == 0 {
			return uint32(words[i/2])
		}
		return uint32(uint64(words[i/2]) >> 32)
	case 32:
		if i >= len(words) {
			return 0
		}
		return uint32(words[i])
	default:
		panic("bigint: unsupported big.Word size")
	}
}

// Copy returns an independent duplicate of u.
func (u Uint) Copy() Uint {
	v := Uint{bits: u.bits, words: make([]uint32, len(u.words))}
	copy(v.words, u.words)
	return v
}

// Bits returns the width u was constructed with, in bits.
func (u Uint) Bits() uint { return u.bits }

func (u Uint) mustMatch(v Uint) {
	if u.bits != v.bits {
		panic(ErrWidthMismatch)
	}
}

func (u Uint) IsZero() bool {
	for _, w := range u.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// IsEven reports whether the lowest bit of u is clear.
func (u Uint) IsEven() bool { return u.words[0]&1 == 0 }

// IsOdd reports whether the lowest bit of u is set.
func (u Uint) IsOdd() bool { return u.words[0]&1 == 1 }

// Equal reports whether u and v hold the same value. Equal panics with
// ErrWidthMismatch if the operands have different widths; so do all other
// binary operations on Uint.
func (u Uint) Equal(v Uint) bool {
	u.mustMatch(v)
	for i, w := range u.words {
		if w != v.words[i] {
			return false
		}
	}
	return true
}

// Cmp returns -1 if u < v, 0 if u == v, and 1 if u > v.
func (u Uint) Cmp(v Uint) int {
	u.mustMatch(v)
	for i := len(u.words) - 1; i >= 0; i-- {
		if u.words[i] != v.words[i] {
			if u.words[i] < v.words[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (u Uint) LessThan(v Uint) bool         { return u.Cmp(v) < 0 }
func (u Uint) LessOrEqualTo(v Uint) bool    { return u.Cmp(v) <= 0 }
func (u Uint) GreaterThan(v Uint) bool      { return u.Cmp(v) > 0 }
func (u Uint) GreaterOrEqualTo(v Uint) bool { return u.Cmp(v) >= 0 }

// BitLen returns the index of the highest set bit plus one, or 0 if u is
// zero.
func (u Uint) BitLen() uint {
	for i := len(u.words) - 1; i >= 0; i-- {
		if u.words[i] != 0 {
			return uint(i*wordBits) + uint(bits.Len32(u.words[i]))
		}
	}
	return 0
}

func (u Uint) LeadingZeros() uint { return u.bits - u.BitLen() }

func (u Uint) TrailingZeros() uint {
	for i, w := range u.words {
		if w != 0 {
			return uint(i*wordBits) + uint(bits.TrailingZeros32(w))
		}
	}
	return u.bits
}

// IsUint64 reports whether u can be represented as a uint64.
func (u Uint) IsUint64() bool {
	for _, w := range u.words[min(2, len(u.words)):] {
		if w != 0 {
			return false
		}
	}
	return true
}

// AsUint64 truncates u to fit in a uint64. See IsUint64 if you want to
// check before you convert.
func (u Uint) AsUint64() uint64 {
	v := uint64(u.words[0])
	if len(u.words) > 1 {
		v |= uint64(u.words[1]) << 32
	}
	return v
}

// IntoBigInt sets b to the value of u.
func (u Uint) IntoBigInt(b *big.Int) {
	buf := make([]byte, len(u.words)*4)
	for i, w := range u.words {
		binary.BigEndian.PutUint32(buf[(len(u.words)-1-i)*4:], w)
	}
	b.SetBytes(buf)
}

// AsBigInt returns the value of u as a big.Int.
func (u Uint) AsBigInt() *big.Int {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}
