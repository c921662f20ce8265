// Package hir implements the typed, single-assignment intermediate
// representation produced by the PowerPC lifters.
//
// A Builder records a linear list of instructions for one translation unit.
// Every instruction defines at most one Value, and a Value is never
// reassigned. Guest register state (GPRs, the condition register and the
// XER carry/overflow flags) is only touched through dedicated load, store and
// update instructions, so the downstream code generator decides where that
// state lives.
//
// Function.Run evaluates a finished function against a Context. It is the
// reference semantics used to check lifters; it is not a guest interpreter.
package hir
