package cpu

import (
	"fmt"
	"strconv"

	"github.com/ezrec/mix/word"
)

// Opcode numbers. Register specific opcodes are a base plus the Register.
const (
	OP_NOP   = uint8(0)
	OP_ADD   = uint8(1)
	OP_SUB   = uint8(2)
	OP_MUL   = uint8(3)
	OP_DIV   = uint8(4)
	OP_SPEC  = uint8(5) // NUM, CHAR, HLT
	OP_SHIFT = uint8(6)
	OP_MOVE  = uint8(7)
	OP_LD    = uint8(8)  // LDA, LD1-LD6, LDX
	OP_LDN   = uint8(16) // LDAN, LD1N-LD6N, LDXN
	OP_ST    = uint8(24) // STA, ST1-ST6, STX, STJ
	OP_STZ   = uint8(33)
	OP_JBUS  = uint8(34)
	OP_IOC   = uint8(35)
	OP_IN    = uint8(36)
	OP_OUT   = uint8(37)
	OP_JRED  = uint8(38)
	OP_JMP   = uint8(39) // JMP, JSJ, JOV, JNOV, JL, JE, JG, JGE, JNE, JLE
	OP_JR    = uint8(40) // JAN..JXNP
	OP_ADDR  = uint8(48) // INCA..ENNX
	OP_CMP   = uint8(56) // CMPA, CMP1-CMP6, CMPX
)

// Instruction word layout.
const (
	OPCODE_SHIFT  = 0
	FIELD_SHIFT   = 6
	INDEX_SHIFT   = 12
	ADDRESS_SHIFT = 18

	OPCODE_MASK  = 1<<6 - 1
	FIELD_MASK   = 1<<6 - 1
	INDEX_MASK   = 1<<6 - 1
	ADDRESS_MASK = 1<<12 - 1
)

// ArithOp is an arithmetic operator, numbered from OP_ADD.
type ArithOp int

//go:generate go tool stringer -linecomment -type=ArithOp,JumpMode,ShiftMode -output=mode_string.go
const (
	ARITH_ADD = ArithOp(0) // ADD
	ARITH_SUB = ArithOp(1) // SUB
	ARITH_MUL = ArithOp(2) // MUL
	ARITH_DIV = ArithOp(3) // DIV
)

// JumpMode is the condition of a jump. OP_JMP uses the field directly,
// register jumps use the field plus 4.
type JumpMode int

const (
	JUMP_JMP  = JumpMode(0) // JMP
	JUMP_JSJ  = JumpMode(1) // JSJ
	JUMP_JOV  = JumpMode(2) // JOV
	JUMP_JNOV = JumpMode(3) // JNOV
	JUMP_JL   = JumpMode(4) // JL
	JUMP_JE   = JumpMode(5) // JE
	JUMP_JG   = JumpMode(6) // JG
	JUMP_JGE  = JumpMode(7) // JGE
	JUMP_JNE  = JumpMode(8) // JNE
	JUMP_JLE  = JumpMode(9) // JLE
)

// registerJumps names the register jump conditions, from JUMP_JL.
var registerJumps = [...]string{"N", "Z", "P", "NN", "NZ", "NP"}

// ShiftMode is the kind of shift, selected by the field.
type ShiftMode int

const (
	SHIFT_SLA  = ShiftMode(0) // SLA
	SHIFT_SRA  = ShiftMode(1) // SRA
	SHIFT_SLAX = ShiftMode(2) // SLAX
	SHIFT_SRAX = ShiftMode(3) // SRAX
	SHIFT_SLC  = ShiftMode(4) // SLC
	SHIFT_SRC  = ShiftMode(5) // SRC
)

// addressTransfers names the address transfer operators by field.
var addressTransfers = [...]string{"INC", "DEC", "ENT", "ENN"}

// conversions names OP_SPEC by field.
var conversions = [...]string{"NUM", "CHAR", "HLT"}

// specials names the unexecuted opcodes. OP_SPEC is named by field.
var specials = map[uint8]string{
	OP_JBUS: "JBUS",
	OP_IOC:  "IOC",
	OP_IN:   "IN",
	OP_OUT:  "OUT",
	OP_JRED: "JRED",
}

// Operand is the address part common to every instruction.
type Operand struct {
	Address int   // Signed literal address.
	Minus   bool  // Sign bit of the address, which matters even for 0.
	Index   uint8 // Index specification: 0 for none, 1-6 for I1-I6.
}

func (op Operand) operand() Operand {
	return op
}

func (op Operand) String() (text string) {
	text = strconv.Itoa(op.Address)
	if op.Minus && op.Address == 0 {
		text = "-0"
	}
	if op.Index != 0 {
		text += "," + strconv.Itoa(int(op.Index))
	}
	return
}

// Operation is a decoded instruction. It is one of NoOp, Load, Store,
// Arithmetic, AddressTransfer, Comparison, Jump, Shift, Move or Unknown.
type Operation interface {
	fmt.Stringer
	// Mnemonic returns the MIX operator name, e.g. LDAN or J3NZ.
	Mnemonic() string
	operand() Operand
}

// NoOp does nothing.
type NoOp struct {
	Operand
	Field word.Field
}

func (op NoOp) Mnemonic() string { return "NOP" }
func (op NoOp) String() string   { return format(op, op.Operand, nil) }

// Load copies a field of memory into a register, optionally negated.
type Load struct {
	Operand
	Register Register
	Field    word.Field
	Negative bool
}

func (op Load) Mnemonic() (name string) {
	name = "LD" + op.Register.mnemonic()
	if op.Negative {
		name += "N"
	}
	return
}

func (op Load) String() string { return format(op, op.Operand, &op.Field) }

// Store copies a register, or zero, into a field of memory.
type Store struct {
	Operand
	Register Register
	Field    word.Field
	Zero     bool
}

func (op Store) Mnemonic() string {
	if op.Zero {
		return "STZ"
	}
	return "ST" + op.Register.mnemonic()
}

func (op Store) String() string { return format(op, op.Operand, &op.Field) }

// Arithmetic combines rA (and rX) with a field of memory.
type Arithmetic struct {
	Operand
	Op    ArithOp
	Field word.Field
}

func (op Arithmetic) Mnemonic() string { return op.Op.String() }
func (op Arithmetic) String() string   { return format(op, op.Operand, &op.Field) }

// AddressTransfer enters or increases a register by the indexed address.
type AddressTransfer struct {
	Operand
	Register Register
	Field    word.Field // 0: INC, 1: DEC, 2: ENT, 3: ENN.
	Negate   bool       // Field bit 0.
	Increase bool       // Field bit 1 clear.
}

func (op AddressTransfer) Mnemonic() string {
	name := "?"
	if int(op.Field) < len(addressTransfers) {
		name = addressTransfers[op.Field]
	}
	return name + op.Register.mnemonic()
}

func (op AddressTransfer) String() string { return format(op, op.Operand, nil) }

// Comparison sets the comparison indicator from a register and memory.
type Comparison struct {
	Operand
	Register Register
	Field    word.Field
}

func (op Comparison) Mnemonic() string { return "CMP" + op.Register.mnemonic() }
func (op Comparison) String() string   { return format(op, op.Operand, &op.Field) }

// Jump conditionally transfers control. When OnRegister is set the
// condition tests the sign of Register instead of the comparison indicator.
type Jump struct {
	Operand
	Register   Register
	OnRegister bool
	Mode       JumpMode
}

func (op Jump) Mnemonic() string {
	if !op.OnRegister {
		return op.Mode.String()
	}
	cond := "?"
	if op.Mode >= JUMP_JL && op.Mode <= JUMP_JLE {
		cond = registerJumps[op.Mode-JUMP_JL]
	}
	return "J" + op.Register.mnemonic() + cond
}

func (op Jump) String() string { return format(op, op.Operand, nil) }

// Shift moves the bytes of rA, or rAX, by the effective address.
type Shift struct {
	Operand
	Mode ShiftMode
}

func (op Shift) Mnemonic() string { return op.Mode.String() }
func (op Shift) String() string   { return format(op, op.Operand, nil) }

// Move copies Count words from the effective address to the address in rI1.
type Move struct {
	Operand
	Count uint8
}

func (op Move) Mnemonic() string { return "MOVE" }

func (op Move) String() string {
	return fmt.Sprintf("%v %v(%v)", op.Mnemonic(), op.Operand, op.Count)
}

// Unknown is an opcode the machine does not execute: the input/output
// operators and NUM, CHAR, HLT.
type Unknown struct {
	Operand
	Opcode uint8
	Field  word.Field
}

func (op Unknown) Mnemonic() string {
	if op.Opcode == OP_SPEC && int(op.Field) < len(conversions) {
		return conversions[op.Field]
	}
	if name, ok := specials[op.Opcode]; ok {
		return name
	}
	return "?" + strconv.Itoa(int(op.Opcode))
}

func (op Unknown) String() string { return format(op, op.Operand, &op.Field) }

// format renders an operation as its mnemonic, operand and optional field.
func format(op Operation, operand Operand, field *word.Field) string {
	if field == nil {
		return fmt.Sprintf("%v %v", op.Mnemonic(), operand)
	}
	return fmt.Sprintf("%v %v%v", op.Mnemonic(), operand, field.String())
}

// Decode splits an instruction word into an Operation.
// Every opcode decodes; those the machine does not execute become Unknown.
func Decode(w word.Word) Operation {
	opcode := uint8((w >> OPCODE_SHIFT) & OPCODE_MASK)
	field := word.Field((w >> FIELD_SHIFT) & FIELD_MASK)
	index := uint8((w >> INDEX_SHIFT) & INDEX_MASK)
	magnitude := int((w >> ADDRESS_SHIFT) & ADDRESS_MASK)

	operand := Operand{Address: magnitude, Minus: w.Negative(), Index: index}
	if operand.Minus {
		operand.Address = -magnitude
	}

	switch {
	case opcode == OP_NOP:
		return NoOp{Operand: operand, Field: field}
	case opcode >= OP_ADD && opcode <= OP_DIV:
		return Arithmetic{Operand: operand, Op: ArithOp(opcode - OP_ADD), Field: field}
	case opcode == OP_SHIFT:
		return Shift{Operand: operand, Mode: ShiftMode(field)}
	case opcode == OP_MOVE:
		return Move{Operand: operand, Count: uint8(field)}
	case opcode >= OP_LD && opcode < OP_LDN:
		return Load{Operand: operand, Register: Register(opcode - OP_LD), Field: field}
	case opcode >= OP_LDN && opcode < OP_ST:
		return Load{Operand: operand, Register: Register(opcode - OP_LDN), Field: field, Negative: true}
	case opcode >= OP_ST && opcode < OP_STZ:
		return Store{Operand: operand, Register: Register(opcode - OP_ST), Field: field}
	case opcode == OP_STZ:
		return Store{Operand: operand, Field: field, Zero: true}
	case opcode == OP_JMP:
		return Jump{Operand: operand, Mode: JumpMode(field)}
	case opcode >= OP_JR && opcode < OP_ADDR:
		return Jump{Operand: operand, Register: Register(opcode - OP_JR), OnRegister: true, Mode: JumpMode(field) + JUMP_JL}
	case opcode >= OP_ADDR && opcode < OP_CMP:
		return AddressTransfer{
			Operand:  operand,
			Register: Register(opcode - OP_ADDR),
			Field:    field,
			Negate:   field&1 != 0,
			Increase: field&2 == 0,
		}
	case opcode >= OP_CMP:
		return Comparison{Operand: operand, Register: Register(opcode - OP_CMP), Field: field}
	}

	return Unknown{Operand: operand, Opcode: opcode, Field: field}
}

// Encode packs the parts of an instruction into a word, rejecting any part
// wider than its slot.
func Encode(negative bool, address uint16, index, field, opcode uint8) (w word.Word, err error) {
	switch {
	case address > ADDRESS_MASK:
		err = ErrEncodeAddress
	case index > INDEX_MASK:
		err = ErrEncodeIndex
	case field > FIELD_MASK:
		err = ErrEncodeField
	case opcode > OPCODE_MASK:
		err = ErrEncodeOpcode
	}
	if err != nil {
		return
	}

	w = word.Word(address)<<ADDRESS_SHIFT |
		word.Word(index)<<INDEX_SHIFT |
		word.Word(field)<<FIELD_SHIFT |
		word.Word(opcode)<<OPCODE_SHIFT
	if negative {
		w |= word.SignBit
	}

	return
}

// MustEncode is Encode for instruction words known to be valid.
// It panics on error.
func MustEncode(negative bool, address uint16, index, field, opcode uint8) word.Word {
	w, err := Encode(negative, address, index, field, opcode)
	if err != nil {
		panic(err)
	}
	return w
}
