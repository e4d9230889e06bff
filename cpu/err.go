package cpu

import (
	"errors"

	"github.com/ezrec/mix/translate"
	"github.com/ezrec/mix/word"
)

var f = translate.From

var (
	// Machine errors
	ErrInvalidAddress           = errors.New(f("invalid address"))
	ErrInvalidIndexSpec         = errors.New(f("invalid index specification"))
	ErrNegativeEffectiveAddress = errors.New(f("negative effective address"))
	ErrInvalidRegister          = errors.New(f("invalid register"))
	ErrUndefinedOverflow        = errors.New(f("undefined overflow"))
	ErrDivisionByZero           = errors.New(f("division by zero"))

	// Instruction decode errors
	ErrUnknownOpcode  = errors.New(f("unknown opcode"))
	ErrNotImplemented = errors.New(f("not implemented"))

	// Instruction encode errors
	ErrEncodeAddress = errors.New(f("address exceeds 12 bits"))
	ErrEncodeIndex   = errors.New(f("index exceeds 6 bits"))
	ErrEncodeField   = errors.New(f("field exceeds 6 bits"))
	ErrEncodeOpcode  = errors.New(f("opcode exceeds 6 bits"))

	// Word errors raised through the machine
	ErrInvalidWordValue  = word.ErrInvalidWordValue
	ErrInvalidFieldSpec  = word.ErrInvalidFieldSpec
	ErrRegisterNarrowing = word.ErrRegisterNarrowing
)

// ErrAddress is a memory address outside of 0 to MEMORY_SIZE-1.
type ErrAddress int

func (ea ErrAddress) Error() string {
	return f("address %v out of range", int(ea))
}

func (ea ErrAddress) Unwrap() error {
	return ErrInvalidAddress
}

// ErrIndex is an index specification outside of 0 to 6.
type ErrIndex uint8

func (ei ErrIndex) Error() string {
	return f("index %v invalid", uint8(ei))
}

func (ei ErrIndex) Unwrap() error {
	return ErrInvalidIndexSpec
}

// ErrOverflow is an increase or decrease that does not fit in an index
// register.
type ErrOverflow struct {
	Register Register
	Value    int64
}

func (eo ErrOverflow) Error() string {
	return f("r%v overflow to %v", eo.Register.String(), eo.Value)
}

func (eo ErrOverflow) Unwrap() error {
	return ErrUndefinedOverflow
}

// ErrOpcode is an opcode this machine does not execute.
type ErrOpcode uint8

func (eo ErrOpcode) Error() string {
	return f("opcode %v", uint8(eo))
}

func (eo ErrOpcode) Unwrap() []error {
	return []error{ErrUnknownOpcode, ErrNotImplemented}
}

// ErrInstruction locates the instruction that failed.
type ErrInstruction struct {
	Address int
	Word    word.Word
}

func (ei ErrInstruction) Error() string {
	return f("%v: %v %v", ei.Address, ei.Word.String(), Decode(ei.Word).String())
}

func (ei ErrInstruction) Is(err error) (ok bool) {
	_, ok = err.(ErrInstruction)
	return
}
