package amarantine

// Node is an AST node. Each node owns its children exclusively; the tree is
// transient and discarded once the compiler has lowered it to bytecode.
type Node interface {
	astNode()
}

// Literal matches a single byte exactly.
type Literal struct {
	Ch byte
}

// Dot matches any single byte, including newline (§6: "any byte").
type Dot struct{}

// Concat matches its children in sequence.
type Concat struct {
	Children []Node
}

// Alternate matches Left, or Right if Left fails. Ties resolve to Left.
type Alternate struct {
	Left, Right Node
}

// Repeat matches Child between Min and Max times (Max < 0 means unbounded,
// as produced by '*' and '+'; a braced '{n,}' is stored with Max == 0, the
// same as '{n,0}'). Greedy is always true in this implementation; the grammar
// accepts a trailing '?' but the engine never produces a lazy quantifier.
//
// Braced marks a '{n,m}' form as opposed to '*' / '+' / '?'. The compiler
// treats the two differently: '*' '+' '?' always compile to their textbook
// SPLIT/JUMP shape, while a braced form with a finite Max > Min truncates
// the optional tail entirely (spec.md §4.3 / §9 — only Min copies of Child
// are ever emitted; the (Max-Min) optional repeats never materialize).
type Repeat struct {
	Child  Node
	Min    int
	Max    int
	Greedy bool
	Braced bool
}

// Class matches a byte that is a member of the set: either an explicit
// bit-set (Lo/Hi) or, when HasPred is true, the Named class (one of
// \d \w \s) evaluated by predicate rather than bit-set.
type Class struct {
	Lo, Hi uint64
	Named  namedKind
	HasPred bool
}

// NotClass matches a byte that is NOT a member of the positive set it
// carries (the set itself, like Class, stores the positive membership;
// negation is applied at match time).
type NotClass struct {
	Lo, Hi uint64
	Named  namedKind
	HasPred bool
}

// AnchorStart matches the zero-width position at the start of the input.
type AnchorStart struct{}

// AnchorEnd matches the zero-width position at the end of the input.
type AnchorEnd struct{}

// Group wraps Child as capturing group Index (1-based). Non-capturing and
// lookaround parentheses never produce a Group node — their subtree is
// spliced in as if the parentheses were absent (see parser.go).
type Group struct {
	Child Node
	Index int
}

// Backref refers to capture group Index. It always fails at execution time
// (see vm.go); it exists so the parser accepts the syntax faithfully.
type Backref struct {
	Index int
}

func (*Literal) astNode()     {}
func (*Dot) astNode()         {}
func (*Concat) astNode()      {}
func (*Alternate) astNode()   {}
func (*Repeat) astNode()      {}
func (*Class) astNode()       {}
func (*NotClass) astNode()    {}
func (*AnchorStart) astNode() {}
func (*AnchorEnd) astNode()   {}
func (*Group) astNode()       {}
func (*Backref) astNode()     {}
