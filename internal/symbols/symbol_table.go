// Package symbols tracks bindings visible to the analyzer: name, inferred
// type, const/frozen flags, and — for temporal variables — an ordered
// record of the types each write assigned.
package symbols

import (
	"sort"

	"github.com/flux-lang/fluxc/internal/typesystem"
)

// TimelineEntry is one (timestamp, type) recording in a temporal
// variable's history.
type TimelineEntry struct {
	Timestamp float64
	Type      typesystem.Type
}

// Variable is one symbol-table entry.
type Variable struct {
	Name       string
	Type       typesystem.Type
	IsConst    bool
	IsTemporal bool
	IsFrozen   bool
	Timeline   []TimelineEntry
}

// Record appends a timeline entry, keeping entries in non-decreasing
// timestamp order.
func (v *Variable) Record(ts float64, t typesystem.Type) {
	v.Timeline = append(v.Timeline, TimelineEntry{Timestamp: ts, Type: t})
}

// SymbolTable is a single flat scope with no nested lexical scoping:
// function names, their parameters and the bindings declared in their
// bodies all go into the same table as module-level bindings.
type SymbolTable struct {
	vars map[string]*Variable
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{vars: make(map[string]*Variable)}
}

// Declare adds a new binding. Callers must check Lookup first: Declare
// itself does not enforce the redeclaration rule (that is the analyzer's
// job, since it is what produces the diagnostic).
func (st *SymbolTable) Declare(v *Variable) {
	st.vars[v.Name] = v
}

func (st *SymbolTable) Lookup(name string) (*Variable, bool) {
	v, ok := st.vars[name]
	return v, ok
}

// Names returns declared variable names in insertion-independent, sorted
// order, useful for deterministic debug dumps.
func (st *SymbolTable) Names() []string {
	names := make([]string, 0, len(st.vars))
	for name := range st.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
