// Package typesystem is an advisory, 7-member type lattice: Number,
// String, Boolean, Function(params→ret), Object(field→type),
// Temporal(inner), Any. There is no unification and no subtyping beyond
// Any absorbing unknowns; codegen treats every scalar as double regardless
// of what this package infers.
package typesystem

import (
	"fmt"
	"strings"
)

// Type is the common interface of every lattice member.
type Type interface {
	String() string
}

type numberType struct{}

func (numberType) String() string { return "Number" }

type stringType struct{}

func (stringType) String() string { return "String" }

type booleanType struct{}

func (booleanType) String() string { return "Boolean" }

type anyType struct{}

func (anyType) String() string { return "Any" }

// Singletons for the scalar and top members.
var (
	Number  Type = numberType{}
	String  Type = stringType{}
	Boolean Type = booleanType{}
	Any     Type = anyType{}
)

// Function is params→ret.
type Function struct {
	Params []Type
	Return Type
}

func (f Function) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	ret := "Any"
	if f.Return != nil {
		ret = f.Return.String()
	}
	return fmt.Sprintf("Function(%s)->%s", strings.Join(parts, ", "), ret)
}

// Object is field→type; the analyzer gives a declared class name this
// type (with no fields). Member access itself infers Any.
type Object struct {
	Fields map[string]Type
}

func (o Object) String() string {
	return fmt.Sprintf("Object(%d fields)", len(o.Fields))
}

// Temporal wraps the type of a temporal variable's values.
type Temporal struct {
	Inner Type
}

func (t Temporal) String() string {
	inner := "Any"
	if t.Inner != nil {
		inner = t.Inner.String()
	}
	return fmt.Sprintf("Temporal(%s)", inner)
}
