package cpu

import (
	"github.com/ezrec/mix/word"
)

// compare implements CMPr.
func (mach *Machine) compare(op Comparison) (err error) {
	value, err := mach.fetchField(op.Operand, op.Field)
	if err != nil {
		return
	}

	reg, err := mach.PeekRegister(op.Register)
	if err != nil {
		return
	}

	reg, err = word.TruncateToField(reg, op.Field)
	if err != nil {
		return
	}

	mach.comparison = compareInts(word.ToInt(reg), word.ToInt(value))
	return
}

// sign orders a register against zero.
func (mach *Machine) sign(reg Register) (indicator Indicator, err error) {
	value, err := mach.PeekRegister(reg)
	if err != nil {
		return
	}

	switch {
	case value.Magnitude() == 0:
		indicator = CMP_EQUAL
	case value.Negative():
		indicator = CMP_LESS
	default:
		indicator = CMP_GREATER
	}

	return
}

// jump implements JMP, JSJ, JOV, JNOV, the comparison jumps and the
// register jumps. Every jump but JSJ sets rJ, taken or not.
func (mach *Machine) jump(op Jump) (err error) {
	if op.Mode < JUMP_JMP || op.Mode > JUMP_JLE || (op.OnRegister && op.Mode < JUMP_JL) {
		field := int(op.Mode)
		if op.OnRegister {
			field -= int(JUMP_JL)
		}
		err = word.ErrField(field)
		return
	}

	target, err := mach.effective(op.Operand)
	if err != nil {
		return
	}

	indicator := mach.comparison
	if op.OnRegister {
		indicator, err = mach.sign(op.Register)
		if err != nil {
			return
		}
	}

	if op.Mode != JUMP_JSJ {
		mach.rJ = word.Short(mach.programCounter)
	}

	var taken bool
	switch op.Mode {
	case JUMP_JMP, JUMP_JSJ:
		taken = true
	case JUMP_JOV:
		taken = mach.overflow
		mach.overflow = false
	case JUMP_JNOV:
		taken = !mach.overflow
		mach.overflow = false
	case JUMP_JL:
		taken = indicator == CMP_LESS
	case JUMP_JE:
		taken = indicator == CMP_EQUAL
	case JUMP_JG:
		taken = indicator == CMP_GREATER
	case JUMP_JGE:
		taken = indicator != CMP_LESS
	case JUMP_JNE:
		taken = indicator != CMP_EQUAL
	case JUMP_JLE:
		taken = indicator != CMP_GREATER
	}

	if taken {
		mach.programCounter = target
	}

	return
}
