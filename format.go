package bigint

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/xerrors"
)

// FromHex returns a Uint of the given width parsed from a string of bare
// hexadecimal digits: no "0x" prefix, no sign, no whitespace, either letter
// case. Any other character fails with ErrInvalidFormat. More significant
// digits than the width can hold fail with ErrOverflow; redundant leading
// zeros are fine. An empty string parses as zero.
func FromHex(bitWidth uint, s string) (Uint, error) {
	u := New(bitWidth)
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return Uint{}, xerrors.Errorf("bigint: %q: %w", s, ErrInvalidFormat)
		}
	}

	digits := strings.TrimLeft(s, "0")
	if uint(len(digits))*4 > bitWidth {
		return Uint{}, xerrors.Errorf("bigint: %q needs %d bits, have %d: %w",
			s, len(digits)*4, bitWidth, ErrOverflow)
	}

	// consume 8-digit (32-bit) chunks from the least significant end; the
	// leftover partial chunk at the front fills the top word
	for i := 0; len(digits) > 0; i++ {
		start := len(digits) - 8
		if start < 0 {
			start = 0
		}
		w, err := strconv.ParseUint(digits[start:], 16, 32)
		if err != nil {
			return Uint{}, xerrors.Errorf("bigint: %q: %w", s, ErrInvalidFormat)
		}
		u.words[i] = uint32(w)
		digits = digits[:start]
	}
	return u, nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// String renders u as bare lower-case hexadecimal: the first non-zero word
// unpadded, every word below it zero-padded to 8 digits, and a lone "0" for
// the zero value.
func (u Uint) String() string {
	i := len(u.words) - 1
	for i >= 0 && u.words[i] == 0 {
		i--
	}
	if i < 0 {
		return "0"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%x", u.words[i])
	for i--; i >= 0; i-- {
		fmt.Fprintf(&sb, "%08x", u.words[i])
	}
	return sb.String()
}

func (u Uint) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

func (u Uint) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText parses the hexadecimal form produced by MarshalText. A
// receiver that already has a width keeps it; unmarshalling into a zero
// Uint picks the smallest width that holds the digits.
func (u *Uint) UnmarshalText(bts []byte) error {
	width := u.bits
	if width == 0 {
		digits := uint(len(strings.TrimLeft(string(bts), "0")))
		width = (digits*4 + wordBits - 1) / wordBits * wordBits
		if width == 0 {
			width = wordBits
		}
	}
	v, err := FromHex(width, string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u Uint) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *Uint) UnmarshalJSON(bts []byte) error {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return xerrors.Errorf("bigint: invalid JSON %q: %w", string(bts), ErrInvalidFormat)
		}
		bts = bts[1 : ln-1]
	}
	return u.UnmarshalText(bts)
}
