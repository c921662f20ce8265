package ppc

import (
	"iter"
	"slices"

	"github.com/ezrec/ppclift/internal"
)

// EntryFlag marks the optional suffix bits an entry accepts.
type EntryFlag uint8

const (
	ENTRY_RC = EntryFlag(1 << 0) // Record form, '.' suffix.
	ENTRY_OE = EntryFlag(1 << 1) // Overflow enable, 'o' suffix.
	ENTRY_LK = EntryFlag(1 << 2) // Link, 'l' suffix.
	ENTRY_AA = EntryFlag(1 << 3) // Absolute address, 'a' suffix.
)

// Entry is a dispatch table entry.
type Entry struct {
	Opcode   uint32    // Fixed bits of the encoding.
	Mnemonic Mnemonic  // Base mnemonic.
	Form     Form      // Encoding layout.
	Flags    EntryFlag // Accepted suffix bits.
	Operands []Operand // Assembler operand order.
	Lift     LiftFunc  // nil when recognized but not lifted.
}

// Mask returns the bits of an instruction word compared against Opcode.
func (entry *Entry) Mask() uint32 {
	return entry.Form.Mask()
}

// Match returns true if the instruction word selects this entry.
func (entry *Entry) Match(code uint32) bool {
	return code&entry.Mask() == entry.Opcode
}

// overlaps returns true if some instruction word matches both entries.
func (entry *Entry) overlaps(other *Entry) bool {
	mask := entry.Mask() & other.Mask()
	return entry.Opcode&mask == other.Opcode&mask
}

type maskGroup struct {
	mask  uint32
	codes map[uint32]*Entry
}

// Table is the instruction dispatch table.
//
// A Table is populated by Register, then sealed. A sealed table is
// immutable and safe for concurrent Lookup.
type Table struct {
	entries []*Entry
	primary [64][]*Entry
	groups  [64][]maskGroup
	sealed  bool
}

// Register adds an entry to the table.
func (table *Table) Register(entry *Entry) (err error) {
	if table.sealed {
		err = ErrTableEntry{Entry: entry, Err: ErrTableSealed}
		return
	}

	if entry.Opcode&^entry.Mask() != 0 {
		err = ErrTableEntry{Entry: entry, Err: ErrInvalidOperand}
		return
	}

	primary := entry.Opcode >> 26
	for _, existing := range table.primary[primary] {
		if existing.overlaps(entry) {
			err = ErrTableEntry{Entry: entry, Existing: existing, Err: ErrTableDuplicate}
			return
		}
	}

	table.primary[primary] = append(table.primary[primary], entry)
	table.entries = append(table.entries, entry)

	return
}

// Seal freezes the table and builds the lookup index.
func (table *Table) Seal() {
	if table.sealed {
		return
	}

	for primary, entries := range table.primary {
		for _, entry := range entries {
			mask := entry.Mask()
			index := slices.IndexFunc(table.groups[primary], func(g maskGroup) bool { return g.mask == mask })
			if index < 0 {
				index = len(table.groups[primary])
				table.groups[primary] = append(table.groups[primary], maskGroup{
					mask:  mask,
					codes: map[uint32]*Entry{},
				})
			}
			table.groups[primary][index].codes[entry.Opcode] = entry
		}
	}

	table.sealed = true
}

// Sealed returns true once Seal has been called.
func (table *Table) Sealed() bool {
	return table.sealed
}

// Lookup returns the entry selected by an instruction word, or nil if the
// word is unassigned.
func (table *Table) Lookup(code uint32) *Entry {
	primary := code >> 26

	if !table.sealed {
		for _, entry := range table.primary[primary] {
			if entry.Match(code) {
				return entry
			}
		}
		return nil
	}

	for _, group := range table.groups[primary] {
		entry, ok := group.codes[code&group.mask]
		if ok {
			return entry
		}
	}

	return nil
}

// All iterates over the entries in registration order.
func (table *Table) All() iter.Seq[*Entry] {
	return slices.Values(table.entries)
}

// Lifted iterates over the entries that carry a lifter.
func (table *Table) Lifted() iter.Seq[*Entry] {
	return internal.IterSeqFilter(table.All(), func(entry *Entry) bool { return entry.Lift != nil })
}

// Len returns the number of registered entries.
func (table *Table) Len() int {
	return len(table.entries)
}

// NewTable returns the sealed table of every known instruction.
//
// A registration failure is a programming error and panics.
func NewTable() (table *Table) {
	table = &Table{}
	for n := range opcodes {
		entry := opcodes[n]
		entry.Lift = lifterOf(entry.Mnemonic)
		err := table.Register(&entry)
		if err != nil {
			panic(err)
		}
	}
	table.Seal()
	return
}
