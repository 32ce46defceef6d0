package config

// SourceFileExt is the canonical Flux source extension, used by
// flux.CompileFile and internal/utils for naming the compilation unit.
const SourceFileExt = ".flux"

// Built-in function names.
const (
	PrintFuncName = "print"
	LenFuncName   = "len"
	AbsFuncName   = "abs"
	MaxFuncName   = "max"
	MinFuncName   = "min"
	SqrtFuncName  = "sqrt"
)

// Names recognized specially by the analyzer though they parse as ordinary
// calls.
const (
	FreezeFuncName   = "freeze"
	ThawFuncName     = "thaw"
	TimelineFuncName = "timeline"
)

// DefaultPatternName is the identifier match lowering treats as "always true".
const DefaultPatternName = "default"
