package cpu

import (
	"github.com/ezrec/mix/word"
)

// slot checks that a value fits in a six bit instruction slot.
func slot(value int, fail error) (out uint8, err error) {
	if value < 0 || value > FIELD_MASK {
		err = fail
		return
	}

	out = uint8(value)
	return
}

// EncodeOperation packs an operation back into an instruction word.
// It is the inverse of Decode.
func EncodeOperation(op Operation) (w word.Word, err error) {
	var opcode, field int

	switch op := op.(type) {
	case NoOp:
		opcode, field = int(OP_NOP), int(op.Field)
	case Load:
		opcode, field = int(OP_LD)+int(op.Register), int(op.Field)
		if op.Negative {
			opcode += int(OP_LDN - OP_LD)
		}
		err = checkRegister(op.Register, REG_X)
	case Store:
		opcode, field = int(OP_ST)+int(op.Register), int(op.Field)
		if op.Zero {
			opcode = int(OP_STZ)
		} else {
			err = checkRegister(op.Register, REG_J)
		}
	case Arithmetic:
		opcode, field = int(OP_ADD)+int(op.Op), int(op.Field)
		if op.Op < ARITH_ADD || op.Op > ARITH_DIV {
			err = ErrEncodeOpcode
		}
	case AddressTransfer:
		opcode, field = int(OP_ADDR)+int(op.Register), int(op.Field)
		err = checkRegister(op.Register, REG_X)
	case Comparison:
		opcode, field = int(OP_CMP)+int(op.Register), int(op.Field)
		err = checkRegister(op.Register, REG_X)
	case Jump:
		opcode, field = int(OP_JMP), int(op.Mode)
		if op.OnRegister {
			opcode, field = int(OP_JR)+int(op.Register), int(op.Mode-JUMP_JL)
			err = checkRegister(op.Register, REG_X)
		}
	case Shift:
		opcode, field = int(OP_SHIFT), int(op.Mode)
	case Move:
		opcode, field = int(OP_MOVE), int(op.Count)
	case Unknown:
		opcode, field = int(op.Opcode), int(op.Field)
	default:
		err = ErrUnknownOpcode
	}
	if err != nil {
		return
	}

	code, err := slot(opcode, ErrEncodeOpcode)
	if err != nil {
		return
	}

	spec, err := slot(field, ErrEncodeField)
	if err != nil {
		return
	}

	operand := op.operand()
	magnitude := operand.Address
	if magnitude < 0 {
		magnitude = -magnitude
	}
	if magnitude > ADDRESS_MASK {
		err = ErrEncodeAddress
		return
	}

	negative := operand.Minus || operand.Address < 0
	w, err = Encode(negative, uint16(magnitude), operand.Index, spec, code)
	return
}

// checkRegister rejects registers outside REG_A to last.
func checkRegister(reg Register, last Register) error {
	if reg < REG_A || reg > last {
		return ErrInvalidRegister
	}
	return nil
}

// MustEncodeOperation is EncodeOperation for operations known to be valid.
// It panics on error.
func MustEncodeOperation(op Operation) word.Word {
	w, err := EncodeOperation(op)
	if err != nil {
		panic(err)
	}
	return w
}
