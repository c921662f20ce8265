// Package ppc decodes 64-bit PowerPC instruction words and lifts the integer
// arithmetic, compare, logical, rotate and shift category into HIR.
//
// A Table maps each 32-bit instruction word to an Entry by matching the
// primary opcode and the extended opcode bits of the entry's form. Each
// integer Entry carries a LiftFunc that translates one decoded Instr into a
// sequence of calls against a Builder. Entries from other categories
// (branches, loads and stores, system registers) are recognized so they can
// be disassembled and assembled, but have no LiftFunc.
//
// The package also provides a disassembler and a small line assembler for the
// same instruction set, supporting the usual simplified mnemonics, labels,
// equates and compile-time $() expressions.
package ppc
