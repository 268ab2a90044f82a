package bigint

import (
	"golang.org/x/xerrors"
)

// GCD returns the greatest common divisor of u and v by the iterative
// Euclidean algorithm. GCD(u, 0) == u.
func (u Uint) GCD(v Uint) Uint {
	u.mustMatch(v)
	a, b := u, v
	for !b.IsZero() {
		a, b = b, a.Rem(b)
	}
	return a.Copy()
}

// ExpMod returns u^exp mod m by square-and-multiply, consuming the exponent
// from its lowest bit upward. The base is reduced mod m first. A zero
// modulus panics with ErrDivisionByZero.
//
// The intermediate products are computed at u's width and wrap like any
// other multiplication, so the width must hold m^2 for the result to be
// exact.
func (u Uint) ExpMod(exp, m Uint) Uint {
	u.mustMatch(exp)
	u.mustMatch(m)

	base := u.Rem(m)
	out := From64(u.bits, 1)
	for e := exp; !e.IsZero(); e = e.Rsh(1) {
		if e.IsOdd() {
			out = out.Mul(base).Rem(m)
		}
		base = base.Mul(base).Rem(m)
	}
	return out
}

// ModInverse returns x such that u*x ≡ 1 (mod m), computed by the extended
// Euclidean algorithm. If u and m are not coprime no inverse exists and
// ModInverse returns ErrNoInverse.
//
// The Bézout coefficients are mathematically signed; they are tracked here
// as an unsigned magnitude plus a sign flag, and the final sign decides
// whether the result is the raw magnitude or its complement to m.
func (u Uint) ModInverse(m Uint) (Uint, error) {
	u.mustMatch(m)

	one := From64(u.bits, 1)
	if !u.GCD(m).Equal(one) {
		return Uint{}, xerrors.Errorf("bigint: %v mod %v: %w", u, m, ErrNoInverse)
	}

	a, b := u, m
	x0, x1 := New(u.bits), one
	x0neg, x1neg := false, false

	for a.GreaterThan(one) {
		q := a.Quo(b)
		a, b = b, a.Rem(b)

		qx0 := q.Mul(x0)
		t, tneg := x0, x0neg
		if x0neg != x1neg {
			x0, x0neg = x1.Add(qx0), x1neg
		} else if x1.GreaterThan(qx0) {
			x0, x0neg = x1.Sub(qx0), x1neg
		} else {
			x0, x0neg = qx0.Sub(x1), !x0neg
		}
		x1, x1neg = t, tneg
	}

	if x1neg {
		return m.Sub(x1), nil
	}
	return x1.Copy(), nil
}

// IsProbablyPrime applies a Fermat primality test with 100 random bases
// drawn from source. A false result is always correct; a true result is
// wrong only with negligible probability (Carmichael numbers excepted,
// which fool any Fermat test).
//
// The width must hold (u-1)^2 or the modular exponentiation inside the test
// truncates; size candidates at no more than half the width.
func (u Uint) IsProbablyPrime(source RandSource) bool {
	one := From64(u.bits, 1)
	two := From64(u.bits, 2)
	three := From64(u.bits, 3)

	if u.LessOrEqualTo(one) {
		return false
	}
	if u.LessOrEqualTo(three) {
		return true // 2 and 3
	}
	if u.IsEven() {
		return false
	}

	high := u.Dec()
	sizeMax := high.BitLen()
	for k := 0; k < fermatTrials; k++ {
		a := Rand(source, u.bits, sizeMax).Rem(u)
		for a.LessThan(two) {
			a = Rand(source, u.bits, sizeMax).Rem(u)
		}
		if !u.GCD(a).Equal(one) {
			return false
		}
		if !a.ExpMod(high, u).Equal(one) {
			return false
		}
	}
	return true
}
