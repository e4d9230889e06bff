package word

const (
	ShortBits          = ByteBits * 2
	ShortSignBit       = Short(1 << ShortBits)
	ShortMagnitudeMask = Short(1<<ShortBits - 1)

	// Bytes 1-3 of a word; they must be clear to fit in a Short.
	narrowMask = MagnitudeMask &^ Word(ShortMagnitudeMask)
)

// Short is the packed content of an index or jump register: a sign bit
// above a two byte magnitude.
type Short uint16

// Negative is true when the sign bit is set.
func (s Short) Negative() bool {
	return s&ShortSignBit != 0
}

// Magnitude returns the unsigned two byte value.
func (s Short) Magnitude() uint32 {
	return uint32(s & ShortMagnitudeMask)
}

// Widen converts a short register value to a full word. It never fails.
func Widen(s Short) Word {
	return Word(s&ShortMagnitudeMask) | Word(s&ShortSignBit)<<(WordBits-ShortBits)
}

// Narrow converts a word to a short register value.
// Bytes 1-3 of the word must be zero.
func Narrow(w Word) (s Short, err error) {
	if !w.Valid() {
		err = ErrValue(w)
		return
	}
	if w&narrowMask != 0 {
		err = ErrNarrow(w)
		return
	}

	s = Short(w&Word(ShortMagnitudeMask)) | Short((w&SignBit)>>(WordBits-ShortBits))
	return
}
