package cpu

import (
	"github.com/ezrec/mix/word"
)

// Limits of the signed values held by each register width.
const (
	wideLimit   = int64(1) << word.WordBits
	narrowLimit = int64(1) << word.ShortBits
)

// indexed returns the literal address plus the selected index register.
// The result may be negative.
func (mach *Machine) indexed(operand Operand) (address int, err error) {
	address = operand.Address

	switch {
	case operand.Index == 0:
		// pass
	case operand.Index <= uint8(REG_I6):
		address += int(word.ToInt(word.Widen(mach.rI[operand.Index])))
	default:
		err = ErrIndex(operand.Index)
	}

	return
}

// effective returns the indexed address, which must not be negative.
func (mach *Machine) effective(operand Operand) (address int, err error) {
	address, err = mach.indexed(operand)
	if err != nil {
		return
	}

	if address < 0 {
		err = ErrNegativeEffectiveAddress
		return
	}

	return
}

// addRegister adds value to a register. A result too large for A or X sets
// the overflow toggle and keeps the low 30 bits; a result too large for an
// index register or J is an error. A zero result keeps the register's sign.
func (mach *Machine) addRegister(reg Register, value word.Word) (err error) {
	current, err := mach.PeekRegister(reg)
	if err != nil {
		return
	}

	sum := word.ToInt(current) + word.ToInt(value)

	overflow := false
	if reg.Wide() {
		overflow = sum <= -wideLimit || sum >= wideLimit
	} else if sum <= -narrowLimit || sum >= narrowLimit {
		err = ErrOverflow{Register: reg, Value: sum}
		return
	}

	result := word.FromInt(sum)
	if sum == 0 {
		result = word.Make(current.Negative(), 0)
	}

	err = mach.PokeRegister(reg, result)
	if err != nil {
		return
	}

	if overflow {
		mach.overflow = true
	}

	return
}

// addressTransfer implements INC, DEC, ENT and ENN.
func (mach *Machine) addressTransfer(op AddressTransfer) (err error) {
	if op.Field > 3 {
		err = word.ErrField(op.Field)
		return
	}

	address, err := mach.indexed(op.Operand)
	if err != nil {
		return
	}

	value := word.FromInt(int64(address))
	if address == 0 {
		// A zero address takes the sign of the instruction.
		value = word.Make(op.Minus, 0)
	}
	if op.Negate {
		value = value.Negate()
	}

	if op.Increase {
		err = mach.addRegister(op.Register, value)
	} else {
		err = mach.PokeRegister(op.Register, value)
	}

	return
}
