package bigint

import (
	"errors"
)

const (
	// wordBits is the size of one storage word. The internal representation
	// is a little-endian sequence of 32-bit words, so a width must be a
	// positive multiple of 32.
	wordBits = 32

	// fermatTrials is the number of independent rounds performed by
	// IsProbablyPrime. With 100 rounds the odds of a composite surviving
	// every trial are negligible for anything but Carmichael-style inputs.
	fermatTrials = 100

	intSize = 32 << (^uint(0) >> 63)
)

var (
	// ErrInvalidWidth is the panic value raised by constructors when the
	// requested width is zero or not a multiple of 32.
	ErrInvalidWidth = errors.New("bigint: width must be a positive multiple of 32")

	// ErrWidthMismatch is the panic value raised when the operands of a
	// binary operation were constructed with different widths.
	ErrWidthMismatch = errors.New("bigint: operand width mismatch")

	// ErrDivisionByZero is the panic value raised by Quo, Rem, QuoRem and
	// ExpMod when the divisor or modulus is zero.
	ErrDivisionByZero = errors.New("bigint: division by zero")

	// ErrInvalidFormat is returned, wrapped, by FromHex when the input
	// contains a character outside [0-9a-fA-F].
	ErrInvalidFormat = errors.New("bigint: non-hexadecimal character in input")

	// ErrOverflow is returned, wrapped, by FromHex when the input carries
	// more significant digits than the width can hold.
	ErrOverflow = errors.New("bigint: hexadecimal input exceeds width")

	// ErrNoInverse is returned, wrapped, by ModInverse when the operands
	// are not coprime.
	ErrNoInverse = errors.New("bigint: no modular inverse")
)
