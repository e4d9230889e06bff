package cpu

import (
	"errors"
	"log"

	"github.com/ezrec/mix/word"
)

// MEMORY_SIZE is the number of words of machine memory.
const MEMORY_SIZE = 4000

// Machine is the simulation context of a single MIX computer.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Ticks int // Instructions executed since reset.

	programCounter int
	overflow       bool
	comparison     Indicator

	rA, rX word.Word
	rI     [7]word.Short // rI[1] to rI[6]; rI[0] is unused.
	rJ     word.Short

	memory [MEMORY_SIZE]word.Word
}

// NewMachine creates a machine with all registers and memory zero.
func NewMachine() (mach *Machine) {
	mach = &Machine{}
	mach.Reset()
	return
}

// Reset the machine state.
// - Clears the registers, memory and overflow toggle.
// - Sets the comparison indicator to CMP_LESS.
// - Sets the program counter to 0.
func (mach *Machine) Reset() {
	if mach.Verbose {
		log.Print(f("cpu: reset"))
	}

	mach.Ticks = 0
	mach.programCounter = 0
	mach.overflow = false
	mach.comparison = CMP_LESS
	mach.rA = 0
	mach.rX = 0
	clear(mach.rI[:])
	mach.rJ = 0
	clear(mach.memory[:])
}

// PokeMemory writes a word to memory.
func (mach *Machine) PokeMemory(address int, value word.Word) (err error) {
	if address < 0 || address >= MEMORY_SIZE {
		err = ErrAddress(address)
		return
	}
	if !value.Valid() {
		err = word.ErrValue(value)
		return
	}

	mach.memory[address] = value
	return
}

// PeekMemory reads a word from memory.
func (mach *Machine) PeekMemory(address int) (value word.Word, err error) {
	if address < 0 || address >= MEMORY_SIZE {
		err = ErrAddress(address)
		return
	}

	value = mach.memory[address]
	return
}

// PokeRegister writes a register. Index registers and J only accept words
// whose bytes 1-3 are zero.
func (mach *Machine) PokeRegister(reg Register, value word.Word) (err error) {
	if !reg.Valid() {
		err = ErrInvalidRegister
		return
	}
	if !value.Valid() {
		err = word.ErrValue(value)
		return
	}

	if reg.Wide() {
		if reg == REG_A {
			mach.rA = value
		} else {
			mach.rX = value
		}
		return
	}

	short, err := word.Narrow(value)
	if err != nil {
		return
	}

	if reg == REG_J {
		mach.rJ = short
	} else {
		mach.rI[reg] = short
	}

	return
}

// PeekRegister reads a register, widened to a full word.
func (mach *Machine) PeekRegister(reg Register) (value word.Word, err error) {
	switch {
	case reg == REG_A:
		value = mach.rA
	case reg == REG_X:
		value = mach.rX
	case reg == REG_J:
		value = word.Widen(mach.rJ)
	case reg >= REG_I1 && reg <= REG_I6:
		value = word.Widen(mach.rI[reg])
	default:
		err = ErrInvalidRegister
	}

	return
}

// PeekOverflowToggle returns the overflow toggle.
func (mach *Machine) PeekOverflowToggle() bool {
	return mach.overflow
}

// PeekComparisonIndicator returns the comparison indicator.
func (mach *Machine) PeekComparisonIndicator() Indicator {
	return mach.comparison
}

// ProgramCounter returns the address of the next instruction.
func (mach *Machine) ProgramCounter() int {
	return mach.programCounter
}

// SetProgramCounter sets the address of the next instruction.
func (mach *Machine) SetProgramCounter(address int) (err error) {
	if address < 0 || address >= MEMORY_SIZE {
		err = ErrAddress(address)
		return
	}

	mach.programCounter = address
	return
}

// Step fetches, decodes and executes a single instruction.
// On error the program counter is left at the failing instruction.
func (mach *Machine) Step() (err error) {
	here := mach.programCounter

	instruction, err := mach.PeekMemory(here)
	if err != nil {
		return
	}

	op := Decode(instruction)
	if mach.Verbose {
		log.Printf("%04d: %v", here, op)
	}

	mach.programCounter = here + 1

	err = mach.Execute(op)
	if err != nil {
		mach.programCounter = here
		err = errors.Join(ErrInstruction{Address: here, Word: instruction}, err)
		return
	}

	mach.Ticks++

	return
}

// Execute executes a single decoded operation against the machine state.
// The program counter should already address the following instruction.
func (mach *Machine) Execute(op Operation) (err error) {
	switch op := op.(type) {
	case NoOp:
		// pass
	case Load:
		err = mach.load(op)
	case Store:
		err = mach.store(op)
	case Arithmetic:
		err = mach.arithmetic(op)
	case AddressTransfer:
		err = mach.addressTransfer(op)
	case Comparison:
		err = mach.compare(op)
	case Jump:
		err = mach.jump(op)
	case Shift:
		err = mach.shift(op)
	case Move:
		err = mach.move(op)
	case Unknown:
		err = ErrOpcode(op.Opcode)
	default:
		err = ErrUnknownOpcode
	}

	return
}
