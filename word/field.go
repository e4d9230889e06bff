package word

import (
	"fmt"
)

// Field is a partial word specification (L:R), encoded as 8*L+R.
type Field uint8

// FieldWhole is (0:5), the entire word including the sign.
const FieldWhole = Field(5)

// NewField encodes (l:r). It does not validate.
func NewField(l, r uint8) Field {
	return Field(8*l + r)
}

// Split returns L and R.
func (fs Field) Split() (l, r uint8) {
	return uint8(fs) / 8, uint8(fs) % 8
}

// Validate checks 0 <= L <= R <= 5.
func (fs Field) Validate() error {
	l, r := fs.Split()
	if r > ByteCount || l > r {
		return ErrField(fs)
	}
	return nil
}

func (fs Field) String() string {
	l, r := fs.Split()
	return fmt.Sprintf("(%d:%d)", l, r)
}

// span returns the bytes selected by a valid field, and whether the sign is
// part of it. When last < first, only the sign is selected.
func (fs Field) span() (first, last uint8, sign bool) {
	l, r := fs.Split()
	sign = l == 0
	first = max(l, 1)
	last = r
	return
}

// bits returns the shift and mask of the selected bytes, in place.
func (fs Field) bits() (shift uint, mask Word) {
	first, last, _ := fs.span()
	if last < first {
		return
	}
	width := uint(ByteBits) * uint(last-first+1)
	shift = uint(ByteBits) * uint(ByteCount-last)
	mask = Word(1<<width-1) << shift
	return
}

// TruncateToField extracts the bytes selected by field from value, right
// justified. The sign is kept when L is 0, otherwise the result is positive.
func TruncateToField(value Word, field Field) (out Word, err error) {
	err = field.Validate()
	if err != nil {
		return
	}

	_, _, sign := field.span()
	if sign {
		out = value & SignBit
	}

	shift, mask := field.bits()
	out |= (value & MagnitudeMask & mask) >> shift

	return
}

// EmbedFromField replaces the bytes of dest selected by field with the
// rightmost bytes of source. The sign of dest is replaced only when L is 0.
func EmbedFromField(source, dest Word, field Field) (out Word, err error) {
	err = field.Validate()
	if err != nil {
		return
	}

	shift, mask := field.bits()
	out = (dest &^ mask) | ((source << shift) & mask)

	_, _, sign := field.span()
	if sign {
		out = (out &^ SignBit) | (source & SignBit)
	}

	return
}
