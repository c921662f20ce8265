package ppc

import (
	"iter"
)

// Statement is one assembled source line.
type Statement struct {
	LineNo  int      // Source line number.
	Address uint64   // Guest address of the word.
	Words   []string // Source words after substitution.
	Code    uint32   // Encoded instruction word.
	Entry   *Entry   // nil for .long words.

	linkLabel   string  // Branch target still to resolve.
	linkOperand Operand // Operand the target is inserted into.
}

// Program is the output of the assembler.
type Program struct {
	Address    uint64 // Address of the first statement.
	Statements []Statement
}

// Debug returns the statement assembled at address.
func (prog *Program) Debug(address uint64) (stmt *Statement, ok bool) {
	for n := range prog.Statements {
		if prog.Statements[n].Address == address {
			stmt = &prog.Statements[n]
			ok = true
			return
		}
	}

	return
}

// Codes iterates over the instruction words in address order.
func (prog *Program) Codes() iter.Seq2[uint64, uint32] {
	return func(yield func(address uint64, code uint32) bool) {
		for _, stmt := range prog.Statements {
			if !yield(stmt.Address, stmt.Code) {
				return
			}
		}
	}
}

// Block returns the program as a single block of instruction words.
func (prog *Program) Block() (block Block) {
	block.Address = prog.Address
	block.Words = make([]uint32, 0, len(prog.Statements))
	for _, code := range prog.Codes() {
		block.Words = append(block.Words, code)
	}
	return
}
