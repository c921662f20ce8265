// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/tebeka/atexit"

	"github.com/ezrec/ppclift/hir"
	"github.com/ezrec/ppclift/ppc"
	"github.com/ezrec/ppclift/translate"
)

func fatalf(format string, args ...any) {
	log.Printf(format, args...)
	atexit.Exit(1)
}

func open(path string) (inf io.ReadCloser) {
	if path == "-" {
		return io.NopCloser(os.Stdin)
	}

	inf, err := os.Open(path)
	if err != nil {
		fatalf("%v: %v", path, err)
	}
	atexit.Register(func() { inf.Close() })

	return
}

// readHex reads whitespace separated hexadecimal instruction words.
func readHex(address uint64, input io.Reader) (block ppc.Block, err error) {
	block.Address = address

	scanner := bufio.NewScanner(input)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		word := strings.TrimPrefix(strings.ToLower(scanner.Text()), "0x")
		var code uint64
		code, err = strconv.ParseUint(word, 16, 32)
		if err != nil {
			return
		}
		block.Words = append(block.Words, uint32(code))
	}
	err = scanner.Err()

	return
}

// parseRegisters parses 'r3=10,r4=0x100+8' style initial register settings.
func parseRegisters(asm *ppc.Assembler, ctx *hir.Context, settings string) (err error) {
	for _, item := range strings.Split(settings, ",") {
		item = strings.TrimSpace(item)
		if len(item) == 0 {
			continue
		}
		name, expr, ok := strings.Cut(item, "=")
		if !ok || !strings.HasPrefix(name, "r") {
			return fmt.Errorf("%v: expected rN=value", item)
		}
		var reg uint64
		reg, err = strconv.ParseUint(name[1:], 10, 5)
		if err != nil {
			return fmt.Errorf("%v: %w", item, err)
		}
		var value int64
		value, err = asm.Eval(expr)
		if err != nil {
			return fmt.Errorf("%v: %w", item, err)
		}
		ctx.GPR[reg] = uint64(value)
	}

	return
}

func main() {
	var compile string
	var hexWords string
	var address uint64
	var registers string
	var run bool
	var workers int
	var dump bool
	var verbose bool
	var lang string

	flag.StringVar(&compile, "c", "", ".s file to assemble")
	flag.StringVar(&hexWords, "x", "", "File of hexadecimal instruction words")
	flag.Uint64Var(&address, "a", 0, "Guest base address")
	flag.StringVar(&registers, "r", "", "Initial registers, as r3=10,r4=...")
	flag.BoolVar(&run, "run", false, "Evaluate the lifted functions")
	flag.IntVar(&workers, "j", 0, "Lift workers (0 for GOMAXPROCS)")
	flag.BoolVar(&dump, "dump", false, "Dump the instruction table")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&lang, "lang", "", "Message locale, as a BCP 47 tag")

	flag.Parse()

	if flag.NArg() != 0 {
		fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(lang) != 0 {
		err := translate.Use(lang)
		if err != nil {
			fatalf("-lang: %v", err)
		}
	}

	fe := ppc.NewFrontend()
	fe.Verbose = verbose
	fe.Workers = workers

	if dump {
		for entry := range fe.Table.All() {
			spew.Dump(entry)
		}
	}

	asm := &ppc.Assembler{Verbose: verbose, Address: address, Table: fe.Table}

	var blocks []ppc.Block

	// Assemble a new instruction stream.
	if len(compile) != 0 {
		prog, err := asm.Parse(open(compile))
		if err != nil {
			fatalf("%v: %v", compile, err)
		}
		blocks = append(blocks, prog.Block())
	}

	if len(hexWords) != 0 {
		block, err := readHex(address, open(hexWords))
		if err != nil {
			fatalf("%v: %v", hexWords, err)
		}
		blocks = append(blocks, block)
	}

	builders := make([]*hir.Builder, len(blocks))
	err := fe.LiftBlocks(context.Background(), blocks, func(index int, block ppc.Block) ppc.Builder {
		builders[index] = hir.NewBuilder()
		return builders[index]
	})
	if err != nil {
		fatalf("%v", err)
	}

	for n, b := range builders {
		fn := b.Function(fmt.Sprintf("block_%08x", blocks[n].Address))
		fmt.Print(fn.String())

		if !run {
			continue
		}

		ctx := &hir.Context{}
		err = parseRegisters(asm, ctx, registers)
		if err != nil {
			fatalf("-r: %v", err)
		}
		err = fn.Run(ctx)
		if err != nil {
			fatalf("%v: %v", fn.Name, err)
		}
		fmt.Println(ctx.Table())
	}

	atexit.Exit(0)
}
