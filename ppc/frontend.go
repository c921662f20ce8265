package ppc

import (
	"context"
	"log"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Frontend lifts guest instructions through a sealed dispatch table.
//
// A Frontend holds no per-lift state; one value may serve any number of
// goroutines as long as each uses its own Builder.
type Frontend struct {
	Verbose bool   // Log every lifted instruction.
	Workers int    // Concurrent blocks in LiftBlocks; 0 means GOMAXPROCS.
	Table   *Table // Sealed dispatch table.
}

// NewFrontend returns a frontend over a freshly built table.
func NewFrontend() *Frontend {
	return &Frontend{
		Table: NewTable(),
	}
}

// Lift translates one instruction into builder calls.
//
// Failures are returned as ErrInstr, which unwraps to ErrUnassigned,
// ErrUnimplemented or ErrInvalidOperand.
func (fe *Frontend) Lift(f Builder, instr Instr) (err error) {
	entry := fe.Table.Lookup(instr.Code)
	if entry == nil {
		err = ErrInstr{Instr: instr, Err: ErrUnassigned}
		return
	}

	if fe.Verbose {
		log.Printf("ppc: %v %v", instr, entry.Disasm(instr))
	}

	if entry.Lift == nil {
		err = ErrInstr{Instr: instr, Entry: entry, Err: ErrUnimplemented}
		return
	}

	err = entry.Lift(f, instr)
	if err != nil {
		err = ErrInstr{Instr: instr, Entry: entry, Err: err}
		return
	}

	return
}

// LiftBlock lifts the instructions of a block in address order, stopping at
// the first failure. Builders that are also a SourceMarker get the address
// of every instruction before its lift.
func (fe *Frontend) LiftBlock(f Builder, block Block) (err error) {
	marker, _ := f.(SourceMarker)

	for instr := range block.Instrs() {
		if marker != nil {
			marker.SourceOffset(instr.Address)
		}
		err = fe.Lift(f, instr)
		if err != nil {
			if fe.Verbose {
				log.Printf("ppc: block 0x%08x: %v", block.Address, err)
			}
			return
		}
	}

	return
}

// LiftBlocks lifts independent blocks concurrently. newBuilder is called
// once per block, from the worker that lifts it.
//
// The first failing block cancels the remaining ones and its error is
// returned.
func (fe *Frontend) LiftBlocks(ctx context.Context, blocks []Block, newBuilder func(index int, block Block) Builder) (err error) {
	workers := fe.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for index, block := range blocks {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fe.LiftBlock(newBuilder(index, block), block)
		})
	}

	err = group.Wait()
	return
}
