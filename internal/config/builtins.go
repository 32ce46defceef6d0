package config

// Built-ins configuration — single source of truth for the built-in
// function table, visible to semantic analysis and codegen alike.

// Arity describes how many arguments a built-in accepts.
type Arity struct {
	Min      int  // minimum argument count
	Variadic bool // true if more than Min is allowed
}

// BuiltinInfo documents one built-in function.
type BuiltinInfo struct {
	Name        string
	Arity       Arity
	ReturnType  string // advisory, matches internal/typesystem's lattice names
	Description string
}

// Builtins is the fixed table of recognized built-ins. Variadic built-ins
// (max, min) require at least one argument.
var Builtins = []BuiltinInfo{
	{Name: PrintFuncName, Arity: Arity{Min: 1, Variadic: true}, ReturnType: "Boolean", Description: "prints its arguments"},
	{Name: LenFuncName, Arity: Arity{Min: 1}, ReturnType: "Number", Description: "length of a string or object"},
	{Name: AbsFuncName, Arity: Arity{Min: 1}, ReturnType: "Number", Description: "absolute value"},
	{Name: MaxFuncName, Arity: Arity{Min: 1, Variadic: true}, ReturnType: "Number", Description: "maximum of its arguments"},
	{Name: MinFuncName, Arity: Arity{Min: 1, Variadic: true}, ReturnType: "Number", Description: "minimum of its arguments"},
	{Name: SqrtFuncName, Arity: Arity{Min: 1}, ReturnType: "Number", Description: "square root, argument must be >= 0"},
}

// Lookup returns built-in metadata by name, or nil if name is not a built-in.
func Lookup(name string) *BuiltinInfo {
	for i := range Builtins {
		if Builtins[i].Name == name {
			return &Builtins[i]
		}
	}
	return nil
}

// IsBuiltin reports whether name is one of the fixed built-in functions.
func IsBuiltin(name string) bool {
	return Lookup(name) != nil
}
