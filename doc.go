/*
Package bigint provides Uint, a fixed-width unsigned integer with the
arithmetic and number-theoretic operations needed for public-key style
cryptographic computation: wrapping add/sub/mul, shift-and-subtract
division, bit shifts, GCD, modular exponentiation, modular inverse and a
Fermat probabilistic primality test.

Uint is a value type; all operations return new values. The width is chosen
at construction time as a positive multiple of 32 bits and never changes;
every result is reduced modulo 2^bits, so overflow wraps rather than
growing or saturating. Operands of a binary operation must share a width.

Simple example:

	p := bigint.From64(128, 61)
	q := bigint.From64(128, 53)
	n := p.Mul(q)
	fmt.Println(n)
	// Output: ca1

Uint can be created from a variety of sources:

	New(bitWidth uint) Uint
	From64(bitWidth uint, v uint64) Uint
	FromHex(bitWidth uint, s string) (Uint, error)
	FromBigInt(bitWidth uint, b *big.Int) (out Uint, accurate bool)
	Rand(source RandSource, bitWidth, sizeMax uint) Uint

The textual form of a Uint is bare lower-case hexadecimal with no "0x"
prefix and no leading zeros; Uint supports the following formatting and
marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

Timing side channels are not a design goal; none of the arithmetic is
constant-time.
*/
package bigint
