package word

import (
	"errors"

	"github.com/ezrec/mix/translate"
)

var f = translate.From

var (
	ErrInvalidWordValue  = errors.New(f("invalid word value"))
	ErrInvalidFieldSpec  = errors.New(f("invalid field specification"))
	ErrRegisterNarrowing = errors.New(f("register narrowing"))
)

// ErrValue is a raw value that does not fit in 31 bits.
type ErrValue uint32

func (ev ErrValue) Error() string {
	return f("value %#x exceeds %#x", uint32(ev), uint32(Max))
}

func (ev ErrValue) Unwrap() error {
	return ErrInvalidWordValue
}

// ErrField is a field specification outside 0 <= L <= R <= 5.
type ErrField Field

func (ef ErrField) Error() string {
	l, r := Field(ef).Split()
	return f("field %v (%v:%v) invalid", uint8(ef), l, r)
}

func (ef ErrField) Unwrap() error {
	return ErrInvalidFieldSpec
}

// ErrNarrow is a word whose bytes 1-3 prevent it from fitting in an index
// register.
type ErrNarrow Word

func (en ErrNarrow) Error() string {
	return f("word %v does not fit in an index register", Word(en).String())
}

func (en ErrNarrow) Unwrap() error {
	return ErrRegisterNarrowing
}
