package word

import (
	"fmt"
	"strings"
)

const (
	ByteBits  = 6                    // Bits per MIX byte.
	ByteMask  = 1<<ByteBits - 1      // Mask of a single byte.
	ByteCount = 5                    // Bytes per word, excluding the sign.
	WordBits  = ByteBits * ByteCount // Magnitude bits per word.

	SignBit       = Word(1 << WordBits)   // Sign of a word, set when negative.
	MagnitudeMask = Word(1<<WordBits - 1) // Magnitude bits of a word.
	Max           = Word(1<<(WordBits+1) - 1)
)

// Word is a sign-and-magnitude MIX word.
type Word uint32

// Check converts a raw value to a Word, rejecting anything wider than 31 bits.
func Check(value uint32) (w Word, err error) {
	if value > uint32(Max) {
		err = ErrValue(value)
		return
	}

	w = Word(value)
	return
}

// Make builds a word from an explicit sign and magnitude.
// Magnitude bits above the 30th are discarded.
func Make(negative bool, magnitude uint32) (w Word) {
	w = Word(magnitude) & MagnitudeMask
	if negative {
		w |= SignBit
	}
	return
}

// Bytes builds a word from its sign and five bytes, most significant first.
func Bytes(negative bool, b1, b2, b3, b4, b5 uint8) Word {
	var magnitude uint32
	for _, b := range [ByteCount]uint8{b1, b2, b3, b4, b5} {
		magnitude = (magnitude << ByteBits) | uint32(b&ByteMask)
	}
	return Make(negative, magnitude)
}

// Valid is true when the word fits in 31 bits.
func (w Word) Valid() bool {
	return w <= Max
}

// Negative is true when the sign bit is set, including for -0.
func (w Word) Negative() bool {
	return w&SignBit != 0
}

// Magnitude returns the unsigned value of bytes 1 to 5.
func (w Word) Magnitude() uint32 {
	return uint32(w & MagnitudeMask)
}

// Byte returns byte n (1 to 5, most significant first), or 0 for any other n.
func (w Word) Byte(n int) uint8 {
	if n < 1 || n > ByteCount {
		return 0
	}
	return uint8((w >> (ByteBits * (ByteCount - n))) & ByteMask)
}

// Negate flips the sign bit only.
func (w Word) Negate() Word {
	return w ^ SignBit
}

// Negate flips the sign bit of value only.
func Negate(value Word) Word {
	return value.Negate()
}

// String renders the word as its sign and five bytes, e.g. "+|01|02|03|04|05".
func (w Word) String() string {
	var sb strings.Builder
	if w.Negative() {
		sb.WriteByte('-')
	} else {
		sb.WriteByte('+')
	}
	for n := 1; n <= ByteCount; n++ {
		fmt.Fprintf(&sb, "|%02d", w.Byte(n))
	}
	return sb.String()
}

// ToInt converts a word to a native integer. Both +0 and -0 map to 0.
func ToInt(w Word) int64 {
	value := int64(w.Magnitude())
	if w.Negative() {
		value = -value
	}
	return value
}

// FromInt converts a native integer to a word, keeping only the low 30 bits
// of its magnitude. A zero value is always +0; use Make for -0.
func FromInt(value int64) Word {
	negative := value < 0
	if negative {
		value = -value
	}
	return Make(negative, uint32(value&int64(MagnitudeMask)))
}
