package cpu

import (
	"github.com/ezrec/mix/word"
)

// arithmetic implements ADD, SUB, MUL and DIV.
func (mach *Machine) arithmetic(op Arithmetic) (err error) {
	value, err := mach.fetchField(op.Operand, op.Field)
	if err != nil {
		return
	}

	switch op.Op {
	case ARITH_ADD:
		err = mach.addRegister(REG_A, value)
	case ARITH_SUB:
		err = mach.addRegister(REG_A, value.Negate())
	case ARITH_MUL:
		mach.multiply(value)
	case ARITH_DIV:
		err = mach.divide(value)
	default:
		err = ErrOpcode(OP_ADD + uint8(op.Op))
	}

	return
}

// multiply sets rAX to rA times value. Both halves take the sign of the
// product, even when zero.
func (mach *Machine) multiply(value word.Word) {
	product := uint64(mach.rA.Magnitude()) * uint64(value.Magnitude())
	negative := mach.rA.Negative() != value.Negative()

	mach.rA = word.Make(negative, uint32(product>>word.WordBits))
	mach.rX = word.Make(negative, uint32(product&uint64(word.MagnitudeMask)))
}

// divide sets rA to the quotient and rX to the remainder of rAX divided by
// value. A quotient too large for rA sets the overflow toggle and leaves
// rA and rX unchanged.
func (mach *Machine) divide(value word.Word) (err error) {
	divisor := uint64(value.Magnitude())
	if divisor == 0 {
		err = ErrDivisionByZero
		return
	}

	dividend := uint64(mach.rA.Magnitude())<<word.WordBits | uint64(mach.rX.Magnitude())

	quotient := dividend / divisor
	if quotient > uint64(word.MagnitudeMask) {
		mach.overflow = true
		return
	}
	remainder := dividend % divisor

	negative := mach.rA.Negative()
	mach.rA = word.Make(negative != value.Negative(), uint32(quotient))
	mach.rX = word.Make(negative, uint32(remainder))

	return
}
