// Package cpu implements the instruction decoder and execution engine of
// Knuth's MIX computer.
//
// The machine consists of two full word registers (A, X), six index
// registers (I1-I6), the jump register (J), 4000 words of memory, an
// overflow toggle and a comparison indicator. Step fetches, decodes and
// executes exactly one instruction.
//
// Instructions are decoded into an Operation, a closed set of variants, one
// per instruction family: NoOp, Load, Store, Arithmetic, AddressTransfer,
// Comparison, Jump, Shift and Move. Input/output and the miscellaneous
// operators (NUM, CHAR, HLT) decode to Unknown and are not executed.
package cpu
