package bigint

import (
	"math/bits"
)

// Add returns u + v mod 2^bits. Carry out of the top word is discarded;
// callers needing headroom must size the width generously beforehand.
func (u Uint) Add(v Uint) Uint {
	u.mustMatch(v)
	out := New(u.bits)
	var carry uint32
	for i := range u.words {
		out.words[i], carry = bits.Add32(u.words[i], v.words[i], carry)
	}
	return out
}

// Sub returns u - v mod 2^bits. Subtracting a larger value from a smaller
// one wraps; it never fails.
func (u Uint) Sub(v Uint) Uint {
	u.mustMatch(v)
	out := New(u.bits)
	var borrow uint32
	for i := range u.words {
		out.words[i], borrow = bits.Sub32(u.words[i], v.words[i], borrow)
	}
	return out
}

// Inc returns u + 1 mod 2^bits.
func (u Uint) Inc() Uint {
	out := New(u.bits)
	carry := uint32(1)
	for i, w := range u.words {
		out.words[i], carry = bits.Add32(w, 0, carry)
	}
	return out
}

// Dec returns u - 1 mod 2^bits.
func (u Uint) Dec() Uint {
	out := New(u.bits)
	borrow := uint32(1)
	for i, w := range u.words {
		out.words[i], borrow = bits.Sub32(w, 0, borrow)
	}
	return out
}

// Mul returns u * v mod 2^bits, by schoolbook multiplication. Product words
// beyond the width are discarded, so the result is the low bits of the true
// product; size the width to at least the sum of the operand bit lengths if
// you need all of it.
func (u Uint) Mul(v Uint) Uint {
	u.mustMatch(v)
	out := New(u.bits)
	n := len(u.words)
	for i, uw := range u.words {
		if uw == 0 {
			continue
		}
		var carry uint64
		for j := 0; i+j < n; j++ {
			t := uint64(out.words[i+j]) + uint64(uw)*uint64(v.words[j]) + carry
			out.words[i+j] = uint32(t)
			carry = t >> 32
		}
	}
	return out
}

// Lsh returns u << n. Bits shifted past the width are discarded; a shift of
// the width or more yields zero.
func (u Uint) Lsh(n uint) Uint {
	out := New(u.bits)
	if n >= u.bits {
		return out
	}
	ws, bs := int(n/wordBits), n%wordBits
	if bs == 0 {
		copy(out.words[ws:], u.words)
	} else {
		for i := len(out.words) - 1; i > ws; i-- {
			out.words[i] = u.words[i-ws]<<bs | u.words[i-ws-1]>>(wordBits-bs)
		}
		out.words[ws] = u.words[0] << bs
	}
	return out
}

// Rsh returns u >> n. The shift is logical; a shift of the width or more
// yields zero.
func (u Uint) Rsh(n uint) Uint {
	out := New(u.bits)
	if n >= u.bits {
		return out
	}
	ws, bs := int(n/wordBits), n%wordBits
	last := len(u.words) - ws - 1
	if bs == 0 {
		copy(out.words, u.words[ws:])
	} else {
		for i := 0; i < last; i++ {
			out.words[i] = u.words[i+ws]>>bs | u.words[i+ws+1]<<(wordBits-bs)
		}
		out.words[last] = u.words[len(u.words)-1] >> bs
	}
	return out
}

func (u Uint) And(v Uint) Uint {
	u.mustMatch(v)
	out := New(u.bits)
	for i := range u.words {
		out.words[i] = u.words[i] & v.words[i]
	}
	return out
}

func (u Uint) Or(v Uint) Uint {
	u.mustMatch(v)
	out := New(u.bits)
	for i := range u.words {
		out.words[i] = u.words[i] | v.words[i]
	}
	return out
}

func (u Uint) Xor(v Uint) Uint {
	u.mustMatch(v)
	out := New(u.bits)
	for i := range u.words {
		out.words[i] = u.words[i] ^ v.words[i]
	}
	return out
}

// Quo returns the quotient u/v for v != 0. If v == 0, Quo panics with
// ErrDivisionByZero.
func (u Uint) Quo(v Uint) Uint {
	q, _ := u.QuoRem(v)
	return q
}

// Rem returns the remainder of u%v for v != 0. If v == 0, Rem panics with
// ErrDivisionByZero.
func (u Uint) Rem(v Uint) Uint {
	_, r := u.QuoRem(v)
	return r
}

// QuoRem returns the quotient q and remainder r of u/v for v != 0, so that
// q*v + r == u. If v == 0, QuoRem panics with ErrDivisionByZero.
//
// Division and modulo share this one engine; Quo and Rem are thin wrappers.
func (u Uint) QuoRem(by Uint) (q, r Uint) {
	u.mustMatch(by)
	if by.IsZero() {
		panic(ErrDivisionByZero)
	}

	if u.IsUint64() && by.IsUint64() {
		un, byn := u.AsUint64(), by.AsUint64()
		return From64(u.bits, un/byn), From64(u.bits, un%byn)
	}

	byLen := by.BitLen()
	if tz := by.TrailingZeros(); tz == byLen-1 {
		// divisor is a power of two
		return u.Rsh(tz), u.And(by.Dec())
	}

	switch u.Cmp(by) {
	case -1:
		return New(u.bits), u.Copy() // it's 100% remainder
	case 0:
		return From64(u.bits, 1), New(u.bits)
	}

	return quoremBin(u, by)
}

// quoremBin performs binary long division by shift-and-subtract: the
// divisor is aligned with the dividend's highest bit, then walked back down
// one bit position at a time, committing a subtraction (and a quotient bit)
// whenever the shifted divisor still fits under the running remainder.
//
// Only called with u > by and by not a power of two; rem, c and q are owned
// here, so the word-slice helpers may mutate them in place.
func quoremBin(u, by Uint) (q, r Uint) {
	shift := int(u.BitLen() - by.BitLen())

	rem := u.Copy()
	c := by.Lsh(uint(shift))
	q = New(u.bits)

	for {
		lsh1(q.words)
		if rem.Cmp(c) >= 0 {
			subSelf(rem.words, c.words)
			q.words[0] |= 1
		}
		if shift <= 0 {
			break
		}
		shift--
		rsh1(c.words)
	}

	return q, rem
}

func lsh1(w []uint32) {
	for i := len(w) - 1; i > 0; i-- {
		w[i] = w[i]<<1 | w[i-1]>>31
	}
	w[0] <<= 1
}

func rsh1(w []uint32) {
	for i := 0; i < len(w)-1; i++ {
		w[i] = w[i]>>1 | w[i+1]<<31
	}
	w[len(w)-1] >>= 1
}

func subSelf(a, b []uint32) {
	var borrow uint32
	for i := range a {
		a[i], borrow = bits.Sub32(a[i], b[i], borrow)
	}
}
