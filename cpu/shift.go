package cpu

import (
	"github.com/ezrec/mix/word"
)

// pairMask covers the ten bytes of the rAX register pair.
const pairMask = uint64(1)<<(2*word.WordBits) - 1

// rotate circulates the ten byte pair left by n bytes, 0 <= n < 10.
func rotate(pair uint64, n int) uint64 {
	bits := uint(n) * word.ByteBits
	return ((pair << bits) | (pair >> (2*word.WordBits - bits))) & pairMask
}

// shift implements SLA, SRA, SLAX, SRAX, SLC and SRC. The signs of rA and
// rX never change.
func (mach *Machine) shift(op Shift) (err error) {
	if op.Mode < SHIFT_SLA || op.Mode > SHIFT_SRC {
		err = word.ErrField(op.Mode)
		return
	}

	distance, err := mach.effective(op.Operand)
	if err != nil {
		return
	}

	a := uint64(mach.rA.Magnitude())
	pair := a<<word.WordBits | uint64(mach.rX.Magnitude())
	bits := uint(distance) * word.ByteBits

	switch op.Mode {
	case SHIFT_SLA:
		a = (a << bits) & uint64(word.MagnitudeMask)
		pair = a<<word.WordBits | pair&uint64(word.MagnitudeMask)
	case SHIFT_SRA:
		a >>= bits
		pair = a<<word.WordBits | pair&uint64(word.MagnitudeMask)
	case SHIFT_SLAX:
		pair = (pair << bits) & pairMask
	case SHIFT_SRAX:
		pair >>= bits
	case SHIFT_SLC, SHIFT_SRC:
		n := distance % (2 * word.ByteCount)
		if op.Mode == SHIFT_SRC {
			n = (2*word.ByteCount - n) % (2 * word.ByteCount)
		}
		pair = rotate(pair, n)
	}

	mach.rA = word.Make(mach.rA.Negative(), uint32(pair>>word.WordBits))
	mach.rX = word.Make(mach.rX.Negative(), uint32(pair&uint64(word.MagnitudeMask)))

	return
}

// move implements MOVE, copying words one at a time in ascending order to
// the address in rI1, then advancing rI1 by the count.
func (mach *Machine) move(op Move) (err error) {
	source, err := mach.effective(op.Operand)
	if err != nil {
		return
	}

	count := int(op.Count)
	if count == 0 {
		return
	}

	destination := int(word.ToInt(word.Widen(mach.rI[REG_I1])))
	switch {
	case destination < 0:
		err = ErrNegativeEffectiveAddress
	case source+count > MEMORY_SIZE:
		err = ErrAddress(source + count - 1)
	case destination+count > MEMORY_SIZE:
		err = ErrAddress(destination + count - 1)
	}
	if err != nil {
		return
	}

	for n := range count {
		mach.memory[destination+n] = mach.memory[source+n]
	}

	mach.rI[REG_I1] = word.Short(destination + count)

	return
}
