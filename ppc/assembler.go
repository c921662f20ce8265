// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package ppc

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
	"sp":     "r1",
	"rtoc":   "r2",
}

// variant is an entry with a set of suffix bits.
type variant struct {
	entry *Entry
	bits  uint32
}

// Assembler is a single pass assembler for the PowerPC integer category.
type Assembler struct {
	Verbose    bool        // If set, verbosely logs the assembler actions.
	Address    uint64      // Address of the first assembled word.
	Table      *Table      // Dispatch table; built on first use if nil.
	Statements []Statement // List of assembled statements.

	predefine map[string]string // Predefines
	Label     map[string]uint64 // Map of labels to addresses.
	Equate    map[string]string // Map of equates.

	mnemonics map[string]variant
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// buildMnemonics maps every spelling of every entry, suffixes included.
func (asm *Assembler) buildMnemonics() {
	if asm.Table == nil {
		asm.Table = NewTable()
	}

	asm.mnemonics = make(map[string]variant, asm.Table.Len()*4)
	for entry := range asm.Table.All() {
		base := entry.Mnemonic.String()
		spellings := map[string]uint32{base: 0}
		add := func(flag EntryFlag, suffix string, bits uint32) {
			if entry.Flags&flag == 0 {
				return
			}
			for name, have := range maps.Clone(spellings) {
				spellings[name+suffix] = have | bits
			}
		}
		add(ENTRY_OE, "o", 1<<10)
		add(ENTRY_RC, ".", 1<<0)
		add(ENTRY_LK, "l", 1<<0)
		add(ENTRY_AA, "a", 1<<1)

		for name, bits := range spellings {
			if _, ok := asm.mnemonics[name]; ok {
				continue
			}
			asm.mnemonics[name] = variant{entry: entry, bits: bits}
		}
	}
}

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value int64, err error) {
	invert := false
	if strings.HasPrefix(word, "~") {
		invert = true
		word = word[1:]
	}

	value, err = strconv.ParseInt(word, 0, 64)
	if err != nil {
		var uvalue uint64
		uvalue, err = strconv.ParseUint(word, 0, 64)
		if err != nil {
			err = ErrParseNumber(word)
			return
		}
		value = int64(uvalue)
	}

	if invert {
		value = ^value
	}

	return
}

// Eval evaluates a starlark integer expression, with the integer equates
// and labels as predeclared names.
func (asm *Assembler) Eval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var v int64
		v, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt64(v)
	}
	for key, address := range asm.Label {
		pred[key] = starlark.MakeUint64(address)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		var uvalue uint64
		uvalue, ok = st_int.Uint64()
		if !ok {
			err = ErrParseExpression(expr)
			return
		}
		value = int64(uvalue)
	}
	return
}

var reParen = regexp.MustCompile(`\$\([^\$]*\)`)

// parseLine parses a single line into words.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	line = reParen.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.Eval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})
	if err != nil {
		return
	}

	// 'd(rA)' and 'a, b' both separate words.
	words = strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ',' || r == '(' || r == ')'
	})

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		asm.Label[label] = asm.currentAddress()
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	return
}

// currentAddress gets the address of the next statement.
func (asm *Assembler) currentAddress() uint64 {
	return asm.Address + uint64(len(asm.Statements))*4
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	if asm.mnemonics == nil {
		asm.buildMnemonics()
	}

	asm.Label = map[string]uint64{}
	asm.Statements = asm.Statements[:0]
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("asm: %v: %v\n", lineno, text)
		}

		if index := strings.IndexAny(text, ";#"); index >= 0 {
			text = text[:index]
		}
		line = strings.TrimSpace(text)

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	// Final linking of branch labels.
	for n := range asm.Statements {
		stmt := &asm.Statements[n]

		if len(stmt.linkLabel) == 0 {
			continue
		}

		lineno = stmt.LineNo
		line = strings.Join(stmt.Words, " ")

		target, ok := asm.Label[stmt.linkLabel]
		if !ok {
			err = ErrLabelMissing(stmt.linkLabel)
			return
		}
		value := int64(target)
		if !bit(stmt.Code, 1) {
			value -= int64(stmt.Address)
		}
		stmt.Code, err = stmt.linkOperand.Insert(stmt.Code, value)
		if err != nil {
			return
		}
		stmt.linkLabel = ""
	}

	prog = &Program{
		Address:    asm.Address,
		Statements: slices.Clone(asm.Statements),
	}

	return
}

// register returns the number of a register word.
func (asm *Assembler) register(word string, prefix string) (reg int64, err error) {
	digits := strings.TrimPrefix(word, prefix)
	reg, err = strconv.ParseInt(digits, 10, 8)
	if err != nil {
		err = ErrRegisterInvalid
		return
	}
	return
}

// operand returns the value of one operand word.
func (asm *Assembler) operand(op Operand, word string) (value int64, err error) {
	switch {
	case op.IsRegister():
		value, err = asm.register(word, "r")
		if err == nil && value > 31 {
			err = ErrRegisterInvalid
		}
		return
	case op == OPERAND_BF && strings.HasPrefix(word, "cr"):
		value, err = asm.register(word, "cr")
		if err == nil && value > 7 {
			err = ErrRegisterInvalid
		}
		return
	}

	value, err = asm.valueOf(word)
	return
}

// simplified rewrites a simplified mnemonic into its base instruction.
func (asm *Assembler) simplified(words []string) (out []string, err error) {
	out = words

	name, dot := strings.CutSuffix(words[0], ".")
	suffix := ""
	if dot {
		suffix = "."
	}
	args := words[1:]

	// Insert the implied cr0 of a compare.
	cmp := func(base string, l string) []string {
		if len(args) == 2 {
			args = append([]string{"cr0"}, args...)
		}
		if len(args) == 0 {
			return []string{base}
		}
		return append([]string{base, args[0], l}, args[1:]...)
	}

	// Shift immediate as an rlwinm.
	rlwinm := func(sh, mb, me func(n int64) int64) (rewritten []string, err error) {
		if len(args) != 3 {
			err = ErrOpcodeMissing
			if len(args) > 3 {
				err = ErrOpcodeExtraArgs
			}
			return
		}
		var n int64
		n, err = asm.valueOf(args[2])
		if err != nil {
			return
		}
		if n < 0 || n > 31 {
			err = ErrOperandRange{Operand: OPERAND_SH, Value: n}
			return
		}
		rewritten = []string{"rlwinm" + suffix, args[0], args[1],
			strconv.FormatInt(sh(n), 10),
			strconv.FormatInt(mb(n), 10),
			strconv.FormatInt(me(n), 10)}
		return
	}
	zero := func(int64) int64 { return 0 }
	ident := func(n int64) int64 { return n }
	last := func(int64) int64 { return 31 }

	// Alternate syntax substitutions
	switch {
	case !dot && name == "nop" && len(args) == 0:
		// nop => ori r0, r0, 0
		out = []string{"ori", "r0", "r0", "0"}
	case !dot && name == "li" && len(args) == 2:
		// li rD, v => addi rD, 0, v
		out = []string{"addi", args[0], "r0", args[1]}
	case !dot && name == "lis" && len(args) == 2:
		// lis rD, v => addis rD, 0, v
		out = []string{"addis", args[0], "r0", args[1]}
	case name == "mr" && len(args) == 2:
		// mr rA, rS => or rA, rS, rS
		out = []string{"or" + suffix, args[0], args[1], args[1]}
	case name == "not" && len(args) == 2:
		// not rA, rS => nor rA, rS, rS
		out = []string{"nor" + suffix, args[0], args[1], args[1]}
	case name == "sub" && len(args) == 3:
		// sub rD, rA, rB => subf rD, rB, rA
		out = []string{"subf" + suffix, args[0], args[2], args[1]}
	case !dot && name == "subi" && len(args) == 3:
		// subi rD, rA, v => addi rD, rA, -v
		var n int64
		n, err = asm.valueOf(args[2])
		if err != nil {
			return
		}
		out = []string{"addi", args[0], args[1], strconv.FormatInt(-n, 10)}
	case !dot && name == "cmpw":
		out = cmp("cmp", "0")
	case !dot && name == "cmpwi":
		out = cmp("cmpi", "0")
	case !dot && name == "cmplw":
		out = cmp("cmpl", "0")
	case !dot && name == "cmplwi":
		out = cmp("cmpli", "0")
	case !dot && name == "cmpd":
		out = cmp("cmp", "1")
	case !dot && name == "cmpdi":
		out = cmp("cmpi", "1")
	case !dot && name == "cmpld":
		out = cmp("cmpl", "1")
	case !dot && name == "cmpldi":
		out = cmp("cmpli", "1")
	case name == "slwi":
		// slwi rA, rS, n => rlwinm rA, rS, n, 0, 31-n
		out, err = rlwinm(ident, zero, func(n int64) int64 { return 31 - n })
	case name == "srwi":
		// srwi rA, rS, n => rlwinm rA, rS, 32-n, n, 31
		out, err = rlwinm(func(n int64) int64 { return (32 - n) & 31 }, ident, last)
	case name == "clrlwi":
		// clrlwi rA, rS, n => rlwinm rA, rS, 0, n, 31
		out, err = rlwinm(zero, ident, last)
	case name == "rotlwi":
		// rotlwi rA, rS, n => rlwinm rA, rS, n, 0, 31
		out, err = rlwinm(ident, zero, last)
	default:
		// unchanged
	}

	return
}

// parseWords assembles the words of a line of assembly text. Branch
// operands are target addresses or labels.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	stmt := Statement{
		LineNo:  lineno,
		Address: asm.currentAddress(),
	}

	if words[0] == ".long" {
		if len(words) < 2 {
			err = ErrOpcodeMissing
			return
		}
		for _, word := range words[1:] {
			var value int64
			value, err = asm.valueOf(word)
			if err != nil {
				return
			}
			stmt.Words = []string{".long", word}
			stmt.Code = uint32(value)
			asm.Statements = append(asm.Statements, stmt)
			stmt.Address += 4
		}
		return
	}

	words, err = asm.simplified(words)
	if err != nil {
		return
	}

	v, ok := asm.mnemonics[words[0]]
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	args := words[1:]
	if len(args) < len(v.entry.Operands) {
		err = ErrOpcodeMissing
		return
	}
	if len(args) > len(v.entry.Operands) {
		err = ErrOpcodeExtraArgs
		return
	}

	stmt.Words = words
	stmt.Entry = v.entry
	stmt.Code = v.entry.Opcode | v.bits

	for n, op := range v.entry.Operands {
		var value int64
		if op == OPERAND_LI || op == OPERAND_BD {
			value, err = asm.valueOf(args[n])
			if err != nil {
				// Resolved once every label is known.
				err = nil
				stmt.linkLabel = args[n]
				stmt.linkOperand = op
				continue
			}
			if !bit(stmt.Code, 1) {
				value -= int64(stmt.Address)
			}
		} else {
			value, err = asm.operand(op, args[n])
			if err != nil {
				return
			}
		}
		stmt.Code, err = op.Insert(stmt.Code, value)
		if err != nil {
			return
		}
	}

	asm.Statements = append(asm.Statements, stmt)

	return
}
