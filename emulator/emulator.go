// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"fmt"
	"iter"
	"log"

	"github.com/ezrec/mix/cpu"
	"github.com/ezrec/mix/internal"
	"github.com/ezrec/mix/word"
)

const (
	DEFAULT_LIMIT = 1_000_000 // Default tick budget of Run.
)

var _emulator_defines = map[string]string{
	"DEFAULT_LIMIT": fmt.Sprintf("%v", DEFAULT_LIMIT),
}

// Program is a memory image and its entry and exit points.
type Program struct {
	Origin int         // Address of Words[0].
	Start  int         // Address of the first instruction.
	Halt   int         // The program is done when it reaches this address.
	Words  []word.Word // Memory image.
}

// End returns the address following the memory image.
func (prog *Program) End() int {
	return prog.Origin + len(prog.Words)
}

// Emulator state. A machine running a single program.
type Emulator struct {
	Verbose      bool     // If set, enables verbose logging.
	*cpu.Machine          // Reference to the machine simulation.
	Program      *Program // Reference to the currently loaded program.
	Limit        int      // Tick budget of Run; DEFAULT_LIMIT if not positive.
}

// NewEmulator creates a new emulator with an empty program.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Machine: cpu.NewMachine(),
		Program: &Program{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.Concat2(internal.Sorted2(_emulator_defines),
		emu.Machine.Defines(),
	)
}

// Reset the machine, load the program image, and set the program counter
// to the program start.
func (emu *Emulator) Reset() (err error) {
	emu.Machine.Verbose = emu.Verbose
	emu.Machine.Reset()

	prog := emu.Program
	if prog.Origin < 0 || prog.End() > cpu.MEMORY_SIZE {
		err = ErrProgram
		return
	}

	for n, value := range prog.Words {
		err = emu.Machine.PokeMemory(prog.Origin+n, value)
		if err != nil {
			err = errors.Join(ErrProgram, err)
			return
		}
	}

	err = emu.Machine.SetProgramCounter(prog.Start)
	if err != nil {
		err = errors.Join(ErrProgram, err)
		return
	}

	if emu.Verbose {
		log.Print(f("emulator: loaded %v words at %v, start %v", len(prog.Words), prog.Origin, prog.Start))
	}

	return
}

// Operation returns the decoded instruction at the program counter.
func (emu *Emulator) Operation() (op cpu.Operation, err error) {
	instruction, err := emu.Machine.PeekMemory(emu.Machine.ProgramCounter())
	if err != nil {
		return
	}

	op = cpu.Decode(instruction)
	return
}

// Tick performs a single step of the machine, and reports when the
// program has reached its halt address.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set machine verbosity
	emu.Machine.Verbose = emu.Verbose

	here := emu.Machine.ProgramCounter()
	if here == emu.Program.Halt {
		done = true
		return
	}

	tick := emu.Machine.Ticks
	defer func() {
		if err != nil {
			err = &ErrRuntime{Address: here, Tick: tick, Err: err}
		}
	}()

	err = emu.Machine.Step()
	if err != nil {
		return
	}

	done = emu.Machine.ProgramCounter() == emu.Program.Halt
	if done && emu.Verbose {
		log.Print(f("emulator: halt at %v after %v ticks", emu.Program.Halt, emu.Machine.Ticks))
	}

	return
}

// Run ticks until the program is done, fails, or exhausts the tick limit.
func (emu *Emulator) Run() (err error) {
	limit := emu.Limit
	if limit <= 0 {
		limit = DEFAULT_LIMIT
	}

	for range limit {
		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
	}

	err = &ErrRuntime{Address: emu.Machine.ProgramCounter(), Tick: emu.Machine.Ticks, Err: ErrLimit}
	return
}
