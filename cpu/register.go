package cpu

import (
	"strconv"
)

// Register is a MIX register, numbered as in the instruction encoding.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_A  = Register(0) // A
	REG_I1 = Register(1) // I1
	REG_I2 = Register(2) // I2
	REG_I3 = Register(3) // I3
	REG_I4 = Register(4) // I4
	REG_I5 = Register(5) // I5
	REG_I6 = Register(6) // I6
	REG_X  = Register(7) // X
	REG_J  = Register(8) // J
)

// Valid is true for the nine machine registers.
func (reg Register) Valid() bool {
	return reg >= REG_A && reg <= REG_J
}

// Wide is true for the full word registers, A and X.
func (reg Register) Wide() bool {
	return reg == REG_A || reg == REG_X
}

// mnemonic is the register as it appears in an instruction name, e.g. the
// "1" of LD1 or the "A" of LDA.
func (reg Register) mnemonic() string {
	if reg >= REG_I1 && reg <= REG_I6 {
		return strconv.Itoa(int(reg))
	}
	return reg.String()
}

// Indicator is the state of the comparison indicator.
type Indicator int

//go:generate go tool stringer -linecomment -type=Indicator
const (
	CMP_LESS    = Indicator(0) // L
	CMP_EQUAL   = Indicator(1) // E
	CMP_GREATER = Indicator(2) // G
)

// compareInts orders a against b.
func compareInts(a, b int64) Indicator {
	switch {
	case a < b:
		return CMP_LESS
	case a > b:
		return CMP_GREATER
	}
	return CMP_EQUAL
}
