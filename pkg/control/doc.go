// Package control implements the invalidation-driven redraw lifecycle for
// custom on-screen controls.
//
// # Model
//
// A control cycles through three states for its entire lifetime:
//
//	Clean -> Dirty (partial region or whole) -> Rendering -> Clean
//
// Mutation is the only source of dirtiness: setting a property cell,
// resizing, or an input handler calling Invalidate. Dirty regions
// accumulate conservatively by union in an InvalidationTracker until the
// host services a paint turn, renders the control, and consumes the
// tracker. Rendering itself must never create dirtiness; that contract is
// enforced by a purity guard around Paint.
//
// # Property cells
//
// Cell is an equality-gated observable value. Setting a cell to the value
// it already holds has no observable effect, which is what keeps "assign
// the same color twice" from scheduling two repaints. Wire a cell to its
// owning control with RepaintOnChange:
//
//	s := &Swatch{Fill: control.NewCell(graphics.ColorRed)}
//	s.Init(s)
//	control.RepaintOnChange(s, s.Fill)
//
// # Threading
//
// The package assumes a single-threaded cooperative host: one dispatch
// thread drives input, mutation, invalidation, and rendering. Nothing
// here blocks, suspends, or locks.
package control
