package amarantine

// CompileFlag modifies compilation, per spec.md §6. Only the zero value is
// currently meaningful: every non-zero flag is accepted for API
// compatibility but has no effect on matching, matching the reference
// engine's own unimplemented flag handling. Wiring real case-folding or
// multiline behavior is an Open Question this module leaves unresolved
// (see DESIGN.md).
type CompileFlag int

const (
	FlagNone            CompileFlag = 0
	FlagCaseInsensitive CompileFlag = 1 << 0
	FlagMultiline       CompileFlag = 1 << 1
	FlagDotAll          CompileFlag = 1 << 2
	FlagExtended        CompileFlag = 1 << 3
)
