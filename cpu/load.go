package cpu

import (
	"github.com/ezrec/mix/word"
)

// fetchField fetches the field of memory at the effective address.
func (mach *Machine) fetchField(operand Operand, field word.Field) (value word.Word, err error) {
	address, err := mach.effective(operand)
	if err != nil {
		return
	}

	contents, err := mach.PeekMemory(address)
	if err != nil {
		return
	}

	value, err = word.TruncateToField(contents, field)
	return
}

// load implements LDr and LDrN.
func (mach *Machine) load(op Load) (err error) {
	value, err := mach.fetchField(op.Operand, op.Field)
	if err != nil {
		return
	}

	if op.Negative {
		value = value.Negate()
	}

	err = mach.PokeRegister(op.Register, value)
	return
}

// store implements STr and STZ.
func (mach *Machine) store(op Store) (err error) {
	address, err := mach.effective(op.Operand)
	if err != nil {
		return
	}

	contents, err := mach.PeekMemory(address)
	if err != nil {
		return
	}

	var value word.Word
	if !op.Zero {
		value, err = mach.PeekRegister(op.Register)
		if err != nil {
			return
		}
	}

	contents, err = word.EmbedFromField(value, contents, op.Field)
	if err != nil {
		return
	}

	err = mach.PokeMemory(address, contents)
	return
}
