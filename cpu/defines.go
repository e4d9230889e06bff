package cpu

import (
	"fmt"
	"iter"
	"sync"

	"github.com/ezrec/mix/internal"
	"github.com/ezrec/mix/word"
)

// operations lists each operator with its default field.
func operations() (ops []Operation) {
	ops = append(ops, NoOp{})

	for op := ARITH_ADD; op <= ARITH_DIV; op++ {
		ops = append(ops, Arithmetic{Op: op, Field: word.FieldWhole})
	}

	for mode := SHIFT_SLA; mode <= SHIFT_SRC; mode++ {
		ops = append(ops, Shift{Mode: mode})
	}

	ops = append(ops, Move{Count: 1})

	for reg := REG_A; reg <= REG_X; reg++ {
		ops = append(ops,
			Load{Register: reg, Field: word.FieldWhole},
			Load{Register: reg, Field: word.FieldWhole, Negative: true},
			Store{Register: reg, Field: word.FieldWhole},
			Comparison{Register: reg, Field: word.FieldWhole},
		)
		for field := range word.Field(len(addressTransfers)) {
			ops = append(ops, AddressTransfer{
				Register: reg,
				Field:    field,
				Negate:   field&1 != 0,
				Increase: field&2 == 0,
			})
		}
		for mode := JUMP_JL; mode <= JUMP_JLE; mode++ {
			ops = append(ops, Jump{Register: reg, OnRegister: true, Mode: mode})
		}
	}

	ops = append(ops,
		Store{Register: REG_J, Field: word.NewField(0, 2)},
		Store{Field: word.FieldWhole, Zero: true},
	)

	for mode := JUMP_JMP; mode <= JUMP_JLE; mode++ {
		ops = append(ops, Jump{Mode: mode})
	}

	for field := range word.Field(len(conversions)) {
		ops = append(ops, Unknown{Opcode: OP_SPEC, Field: field})
	}
	for opcode := OP_JBUS; opcode <= OP_JRED; opcode++ {
		ops = append(ops, Unknown{Opcode: opcode})
	}

	return
}

var _cpu_defines = sync.OnceValue(func() map[string]string {
	defines := map[string]string{
		"MEMORY_SIZE": fmt.Sprintf("%d", MEMORY_SIZE),
		"BYTE_SIZE":   fmt.Sprintf("%d", word.ByteMask+1),
		"WORD_MAX":    fmt.Sprintf("%d", word.MagnitudeMask),
		"INDEX_MAX":   fmt.Sprintf("%d", word.ShortMagnitudeMask),
	}

	for _, op := range operations() {
		w := MustEncodeOperation(op)
		code := (w >> OPCODE_SHIFT) & OPCODE_MASK
		field := (w >> FIELD_SHIFT) & FIELD_MASK
		defines[op.Mnemonic()] = fmt.Sprintf("%d(%d)", code, field)
	}

	return defines
})

// Defines returns the machine constants and the opcode and default field
// of every operator, as "C(F)", ordered by name.
func (mach *Machine) Defines() iter.Seq2[string, string] {
	return internal.Sorted2(_cpu_defines())
}
