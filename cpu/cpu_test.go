package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/mix/word"
)

func pos(magnitude uint32) word.Word { return word.Make(false, magnitude) }
func neg(magnitude uint32) word.Word { return word.Make(true, magnitude) }

// load creates a machine with code at address 0 onward.
func load(t *testing.T, code ...word.Word) (mach *Machine) {
	t.Helper()

	mach = NewMachine()
	for n, w := range code {
		require.NoError(t, mach.PokeMemory(n, w))
	}

	return
}

// poke sets registers and memory of a machine under test.
func poke(t *testing.T, mach *Machine, registers map[Register]word.Word, memory map[int]word.Word) {
	t.Helper()

	for reg, value := range registers {
		require.NoError(t, mach.PokeRegister(reg, value), reg.String())
	}
	for address, value := range memory {
		require.NoError(t, mach.PokeMemory(address, value))
	}
}

// peek reads a register of a machine under test.
func peek(t *testing.T, mach *Machine, reg Register) word.Word {
	t.Helper()

	value, err := mach.PeekRegister(reg)
	require.NoError(t, err)
	return value
}

func TestNewMachine(t *testing.T) {
	assert := assert.New(t)

	mach := NewMachine()

	assert.False(mach.Verbose)
	assert.Equal(0, mach.ProgramCounter())
	assert.False(mach.PeekOverflowToggle())
	assert.Equal(CMP_LESS, mach.PeekComparisonIndicator())
	for reg := REG_A; reg <= REG_J; reg++ {
		value, err := mach.PeekRegister(reg)
		assert.NoError(err)
		assert.Equal(word.Word(0), value, reg.String())
	}
	for address := range MEMORY_SIZE {
		value, err := mach.PeekMemory(address)
		assert.NoError(err)
		assert.Equal(word.Word(0), value)
	}
}

func TestMemory(t *testing.T) {
	assert := assert.New(t)

	mach := NewMachine()

	assert.NoError(mach.PokeMemory(0, neg(1)))
	assert.NoError(mach.PokeMemory(MEMORY_SIZE-1, word.Max))
	assert.ErrorIs(mach.PokeMemory(MEMORY_SIZE, pos(1)), ErrInvalidAddress)
	assert.ErrorIs(mach.PokeMemory(-1, pos(1)), ErrInvalidAddress)
	assert.ErrorIs(mach.PokeMemory(10, word.Max+1), ErrInvalidWordValue)

	value, err := mach.PeekMemory(0)
	assert.NoError(err)
	assert.Equal(neg(1), value)

	value, err = mach.PeekMemory(MEMORY_SIZE - 1)
	assert.NoError(err)
	assert.Equal(word.Max, value)

	value, err = mach.PeekMemory(10)
	assert.NoError(err)
	assert.Equal(word.Word(0), value)

	_, err = mach.PeekMemory(MEMORY_SIZE)
	assert.ErrorIs(err, ErrInvalidAddress)
	assert.Equal(ErrAddress(MEMORY_SIZE), err)
}

func TestRegister(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		reg   Register
		value word.Word
		err   error
	}){
		{"a", REG_A, neg(1<<30 - 1), nil},
		{"x", REG_X, neg(0), nil},
		{"i1", REG_I1, neg(4095), nil},
		{"i6", REG_I6, word.Bytes(false, 0, 0, 0, 63, 63), nil},
		{"j", REG_J, pos(4000), nil},
		{"i2_narrow", REG_I2, pos(4096), ErrRegisterNarrowing},
		{"j_narrow", REG_J, word.Bytes(true, 1, 0, 0, 0, 0), ErrRegisterNarrowing},
		{"a_invalid", REG_A, word.Max + 1, ErrInvalidWordValue},
		{"register", Register(9), pos(1), ErrInvalidRegister},
		{"register_negative", Register(-1), pos(1), ErrInvalidRegister},
	}

	for _, entry := range table {
		mach := NewMachine()
		err := mach.PokeRegister(entry.reg, entry.value)
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.name)
			if entry.reg.Valid() {
				assert.Equal(word.Word(0), peek(t, mach, entry.reg), entry.name)
			}
			continue
		}
		assert.NoError(err, entry.name)
		assert.Equal(entry.value, peek(t, mach, entry.reg), entry.name)
	}

	_, err := NewMachine().PeekRegister(Register(9))
	assert.ErrorIs(err, ErrInvalidRegister)
}

func TestReset(t *testing.T) {
	assert := assert.New(t)

	mach := load(t, MustEncode(false, 10, 0, 5, OP_ADD))
	poke(t, mach, map[Register]word.Word{REG_A: pos(1<<30 - 1), REG_I3: neg(7)}, map[int]word.Word{10: pos(1)})

	assert.NoError(mach.Step())
	assert.True(mach.PeekOverflowToggle())
	assert.Equal(1, mach.Ticks)

	mach.Reset()
	assert.Equal(*NewMachine(), *mach)
}

func TestSetProgramCounter(t *testing.T) {
	assert := assert.New(t)

	mach := NewMachine()
	assert.NoError(mach.SetProgramCounter(MEMORY_SIZE - 1))
	assert.Equal(MEMORY_SIZE-1, mach.ProgramCounter())
	assert.ErrorIs(mach.SetProgramCounter(MEMORY_SIZE), ErrInvalidAddress)
	assert.ErrorIs(mach.SetProgramCounter(-1), ErrInvalidAddress)
	assert.Equal(MEMORY_SIZE-1, mach.ProgramCounter())
}

func TestStep(t *testing.T) {
	assert := assert.New(t)

	mach := load(t,
		MustEncode(false, 3, 2, 4, OP_NOP),  // NOP 3,2(0:4)
		MustEncode(false, 2, 0, 2, OP_SPEC), // HLT
	)

	assert.NoError(mach.Step())
	assert.Equal(1, mach.ProgramCounter())
	assert.Equal(1, mach.Ticks)

	before := *mach
	err := mach.Step()
	assert.ErrorIs(err, ErrUnknownOpcode)
	assert.ErrorIs(err, ErrNotImplemented)
	assert.ErrorIs(err, ErrInstruction{})

	var ei ErrInstruction
	assert.True(errors.As(err, &ei))
	assert.Equal(1, ei.Address)
	assert.Equal(MustEncode(false, 2, 0, 2, OP_SPEC), ei.Word)
	assert.Equal(before, *mach)
}

func TestStepFetch(t *testing.T) {
	assert := assert.New(t)

	mach := load(t, MustEncode(false, MEMORY_SIZE, 0, 0, OP_JMP))

	assert.NoError(mach.Step())
	assert.Equal(MEMORY_SIZE, mach.ProgramCounter())

	err := mach.Step()
	assert.ErrorIs(err, ErrInvalidAddress)
	assert.Equal(MEMORY_SIZE, mach.ProgramCounter())
	assert.Equal(1, mach.Ticks)
}

func TestExecute(t *testing.T) {
	assert := assert.New(t)

	mach := NewMachine()
	assert.NoError(mach.Execute(AddressTransfer{
		Operand:  Operand{Address: 25},
		Register: REG_X,
		Field:    2,
	}))
	assert.Equal(pos(25), peek(t, mach, REG_X))
	assert.Equal(0, mach.ProgramCounter())

	assert.ErrorIs(mach.Execute(Unknown{Opcode: OP_IN}), ErrNotImplemented)
	assert.ErrorIs(mach.Execute(nil), ErrUnknownOpcode)
}
