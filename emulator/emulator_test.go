package emulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/mix/cpu"
	"github.com/ezrec/mix/word"
)

// sumProgram adds 5+4+3+2+1 into rA, and halts at address 5.
//
//	ENT1 5
//	ENTA 0
//	INCA 0,1
//	DEC1 1
//	J1P  2
var sumProgram = Program{
	Origin: 0,
	Start:  0,
	Halt:   5,
	Words: []word.Word{
		cpu.MustEncode(false, 5, 0, 2, 49),
		cpu.MustEncode(false, 0, 0, 2, 48),
		cpu.MustEncode(false, 0, 1, 0, 48),
		cpu.MustEncode(false, 1, 0, 1, 49),
		cpu.MustEncode(false, 2, 0, 2, 41),
	},
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Machine)
	assert.NotNil(emu.Program)
	assert.Equal(0, emu.Limit)
	assert.Equal(0, emu.Program.End())
}

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	var names []string
	defines := map[string]string{}
	for name, value := range emu.Defines() {
		names = append(names, name)
		defines[name] = value
	}

	require.NotEmpty(t, names)
	assert.Equal("DEFAULT_LIMIT", names[0])
	assert.Equal("1000000", defines["DEFAULT_LIMIT"])
	assert.Equal("4000", defines["MEMORY_SIZE"])
	assert.Equal("8(5)", defines["LDA"])
}

func TestRun(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	prog := sumProgram
	emu.Program = &prog

	require.NoError(t, emu.Reset())
	assert.Equal(0, emu.ProgramCounter())

	op, err := emu.Operation()
	assert.NoError(err)
	assert.Equal("ENT1 5", op.String())

	err = emu.Run()
	assert.NoError(err)
	assert.Equal(5, emu.ProgramCounter())
	assert.Equal(17, emu.Ticks)

	a, err := emu.PeekRegister(cpu.REG_A)
	assert.NoError(err)
	assert.Equal(int64(15), word.ToInt(a))

	i1, err := emu.PeekRegister(cpu.REG_I1)
	assert.NoError(err)
	assert.Equal(int64(0), word.ToInt(i1))

	// Already at the halt address.
	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(17, emu.Ticks)

	// Reset reloads the image.
	require.NoError(t, emu.Reset())
	assert.Equal(0, emu.Ticks)
	a, err = emu.PeekRegister(cpu.REG_A)
	assert.NoError(err)
	assert.Equal(word.Word(0), a)
}

func TestTick(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	prog := sumProgram
	emu.Program = &prog
	require.NoError(t, emu.Reset())

	ticks := 0
	for {
		done, err := emu.Tick()
		require.NoError(t, err)
		ticks++
		if done {
			break
		}
		assert.Less(emu.ProgramCounter(), prog.Halt)
	}

	assert.Equal(17, ticks)
	assert.Equal(ticks, emu.Ticks)
}

func TestRuntimeError(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Program = &Program{
		Origin: 100,
		Start:  100,
		Halt:   200,
		Words: []word.Word{
			cpu.MustEncode(false, 0, 0, 0, 0),
			cpu.MustEncode(false, 0, 0, 0, 0),
			cpu.MustEncode(false, 0, 0, 2, 5), // HLT
		},
	}
	require.NoError(t, emu.Reset())

	err := emu.Run()
	assert.ErrorIs(err, cpu.ErrUnknownOpcode)
	assert.ErrorIs(err, cpu.ErrNotImplemented)

	var runtime *ErrRuntime
	if assert.ErrorAs(err, &runtime) {
		assert.Equal(102, runtime.Address)
		assert.Equal(2, runtime.Tick)
	}
	assert.Equal(102, emu.ProgramCounter())
}

func TestLimit(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Limit = 10
	emu.Program = &Program{
		Halt:  1,
		Words: []word.Word{cpu.MustEncode(false, 0, 0, 0, 39)}, // JMP 0
	}
	require.NoError(t, emu.Reset())

	err := emu.Run()
	assert.ErrorIs(err, ErrLimit)

	var runtime *ErrRuntime
	if assert.ErrorAs(err, &runtime) {
		assert.Equal(0, runtime.Address)
		assert.Equal(10, runtime.Tick)
	}
}

func TestProgramErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program Program
		err     error
	}){
		{"negative_origin", Program{Origin: -1, Words: []word.Word{0}}, nil},
		{"too_long", Program{Origin: cpu.MEMORY_SIZE - 1, Words: []word.Word{0, 0}}, nil},
		{"bad_word", Program{Words: []word.Word{word.Max + 1}}, cpu.ErrInvalidWordValue},
		{"bad_start", Program{Start: cpu.MEMORY_SIZE}, cpu.ErrInvalidAddress},
	}

	for _, entry := range table {
		emu := NewEmulator()
		emu.Program = &entry.program
		err := emu.Reset()
		assert.ErrorIs(err, ErrProgram, entry.name)
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.name)
		}
	}
}
