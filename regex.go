package amarantine

// Regexp is a compiled pattern, safe for concurrent read-only use: Search,
// SearchAll and Match never mutate shared state (per spec.md §5, the VM
// allocates a fresh capture vector and backtrack stack per call).
type Regexp struct {
	pattern  string
	prog     *Prog
	numCap   int
	names    map[string]int // capture name -> index, for (?P<name>...) groups
	flags    CompileFlag
}

// Compile parses and compiles pattern with no flags set.
func Compile(pattern string) (*Regexp, error) {
	return CompileFlags(pattern, FlagNone)
}

// CompileFlags parses and compiles pattern under flags. Flags are accepted
// but do not currently change matching behavior (see flags.go).
func CompileFlags(pattern string, flags CompileFlag) (*Regexp, error) {
	p := NewParser([]byte(pattern))
	root, err := p.Parse()
	if err != nil {
		return nil, err
	}
	prog := compileProgram(root, p.captures)
	return &Regexp{
		pattern: pattern,
		prog:    prog,
		numCap:  p.captures,
		names:   p.names,
		flags:   flags,
	}, nil
}

// MustCompile is like Compile but panics on error, for use with
// package-level pattern constants.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// Pattern returns the original source pattern.
func (re *Regexp) Pattern() string {
	return re.pattern
}

// String returns the original source pattern, satisfying fmt.Stringer.
func (re *Regexp) String() string {
	return re.pattern
}

// NumSubexp returns the number of capturing groups in the pattern, not
// counting the implicit whole-match group.
func (re *Regexp) NumSubexp() int {
	return re.numCap
}

// SubexpNames returns a slice of length NumSubexp()+1; index 0 is always
// empty (the whole match has no name), and index i holds the name given to
// group i via (?P<name>...), or "" if it was unnamed.
func (re *Regexp) SubexpNames() []string {
	names := make([]string, re.numCap+1)
	for name, idx := range re.names {
		if idx >= 0 && idx < len(names) {
			names[idx] = name
		}
	}
	return names
}

// SubexpIndex returns the index of the first group named name, or -1 if no
// group has that name.
func (re *Regexp) SubexpIndex(name string) int {
	if idx, ok := re.names[name]; ok {
		return idx
	}
	return -1
}

// Clone returns an independent handle to the same compiled program. Since
// Regexp already carries no mutable per-call state, Clone exists for
// callers that want a distinct value to hold flags or metadata alongside;
// the underlying Prog is shared.
func (re *Regexp) Clone() *Regexp {
	dup := *re
	return &dup
}

// Match reports whether text matches the pattern anchored exactly at
// start — it runs executeAt(text, start) once and never scans forward, per
// spec.md §4.5 (`match(text[, start])`). This is deliberately distinct from
// Search: `cat|dog|bird` does not Match "I have a cat" at start 0, even
// though Search finds it further in (spec.md §8).
func (re *Regexp) Match(text []byte, start int) (bool, MatchResult) {
	vm := NewVM(re.prog, text)
	caps, ok := vm.Run(start)
	if !ok {
		return false, MatchResult{}
	}
	return true, re.buildResult(caps)
}

// MatchString is the string convenience form of Match.
func (re *Regexp) MatchString(s string, start int) (bool, MatchResult) {
	return re.Match([]byte(s), start)
}

// Search returns the leftmost match at or after start, or ok==false if the
// pattern does not match anywhere in text from start onward (spec.md §4.5,
// `search(text[, start=0])`).
func (re *Regexp) Search(text []byte, start int) (MatchResult, bool) {
	vm := NewVM(re.prog, text)
	for pos := start; pos <= len(text); pos++ {
		caps, ok := vm.Run(pos)
		if ok {
			return re.buildResult(caps), true
		}
	}
	return MatchResult{}, false
}

// SearchString is the string convenience form of Search.
func (re *Regexp) SearchString(s string, start int) (MatchResult, bool) {
	return re.Search([]byte(s), start)
}

// SearchAll returns every non-overlapping leftmost match in text, in
// order. A zero-width match is recorded like any other; since the next
// search position would otherwise be the same position again, the
// position is forced forward by one byte after every zero-width match so
// the scan always terminates (spec.md §4.5 / §8).
func (re *Regexp) SearchAll(text []byte) []MatchResult {
	var results []MatchResult
	vm := NewVM(re.prog, text)
	pos := 0
	for pos <= len(text) {
		found := false
		for start := pos; start <= len(text); start++ {
			caps, ok := vm.Run(start)
			if ok {
				results = append(results, re.buildResult(caps))
				matchLen := caps[1] - caps[0]
				if matchLen > 0 {
					pos = caps[1]
				} else {
					pos = caps[1] + 1
				}
				found = true
				break
			}
		}
		if !found {
			break
		}
	}
	return results
}

// SearchAllString is the string convenience form of SearchAll.
func (re *Regexp) SearchAllString(s string) []MatchResult {
	return re.SearchAll([]byte(s))
}

// IsCompiled reports whether re holds a successfully compiled program.
// Every *Regexp returned by Compile/CompileFlags/MustCompile is already
// compiled; this exists for callers holding a zero-value Regexp{}.
func (re *Regexp) IsCompiled() bool {
	return re != nil && re.prog != nil
}

func (re *Regexp) buildResult(caps []int) MatchResult {
	return MatchResult{
		Start:    caps[0],
		End:      caps[1],
		Captures: buildCaptures(caps, re.numCap),
	}
}

// LiteralPrefix returns the longest literal byte prefix every match of the
// pattern must begin with, and whether that prefix is in fact the entire
// pattern. It is a best-effort optimization hint, not a correctness
// requirement: an empty prefix is always a valid (if useless) answer.
func (re *Regexp) LiteralPrefix() (prefix string, complete bool) {
	var b []byte
	for _, inst := range re.prog.Insts {
		switch inst.Op {
		case OpSave:
			continue
		case OpChar:
			b = append(b, inst.Ch)
			continue
		case OpMatch:
			return string(b), true
		}
		return string(b), false
	}
	return string(b), false
}
