package amarantine

// Capture is one reported capturing group: Start/End are byte offsets into
// the searched text, or -1/-1 if the group never participated in the
// match. The unset sentinel is {-1, -1}; the zero value {0, 0} is a valid
// empty span.
type Capture struct {
	Start, End int
}

// Valid reports whether the group actually captured a span.
func (c Capture) Valid() bool {
	return c.Start >= 0 && c.End >= c.Start
}

// Slice returns the captured substring of text, or nil if the group is
// unset.
func (c Capture) Slice(text []byte) []byte {
	if !c.Valid() {
		return nil
	}
	return text[c.Start:c.End]
}

// MatchResult describes one successful match: the whole-match span plus
// the capturing groups that survived the containment filter (see
// buildCaptures below).
type MatchResult struct {
	Start, End int
	Captures   []Capture
}

// Slice returns the whole matched substring of text.
func (m MatchResult) Slice(text []byte) []byte {
	return text[m.Start:m.End]
}

// GroupStart returns the start offset of group i, or -1 if i is out of
// range or the group did not participate in the match. i==0 denotes the
// whole match (spec.md §6); i>=1 indexes into the post-containment-filter
// Captures list, i.e. group(i) is Captures[i-1], matching how that list
// is already shifted by buildCaptures.
func (m MatchResult) GroupStart(i int) int {
	if i == 0 {
		return m.Start
	}
	if i < 1 || i > len(m.Captures) {
		return -1
	}
	c := m.Captures[i-1]
	if !c.Valid() {
		return -1
	}
	return c.Start
}

// GroupEnd is the End-offset counterpart to GroupStart.
func (m MatchResult) GroupEnd(i int) int {
	if i == 0 {
		return m.End
	}
	if i < 1 || i > len(m.Captures) {
		return -1
	}
	c := m.Captures[i-1]
	if !c.Valid() {
		return -1
	}
	return c.End
}

// Group returns the captured substring of text for group i, or nil if i is
// out of range or the group did not participate in the match. i==0 denotes
// the whole match.
func (m MatchResult) Group(i int, text []byte) []byte {
	start, end := m.GroupStart(i), m.GroupEnd(i)
	if start < 0 || end < start {
		return nil
	}
	return text[start:end]
}

// buildCaptures turns a raw VM capture vector (slot 0/1 = whole match,
// slot 2i/2i+1 = group i) into the filtered Captures list used by
// MatchResult. A group whose span is strictly contained inside another
// group's span is dropped entirely, shifting the indices of everything
// after it; a group that simply never matched still gets a placeholder
// entry at its (possibly shifted) position. This reproduces the reference
// engine's buildResult containment filter exactly.
func buildCaptures(caps []int, numCap int) []Capture {
	starts := make([]int, numCap+1)
	ends := make([]int, numCap+1)
	for i := 1; i <= numCap; i++ {
		starts[i] = caps[2*i]
		ends[i] = caps[2*i+1]
	}

	contained := make([]bool, numCap+1)
	for i := 1; i <= numCap; i++ {
		for j := 1; j <= numCap; j++ {
			if i == j {
				continue
			}
			if starts[j] <= starts[i] && ends[i] <= ends[j] && (starts[j] < starts[i] || ends[i] < ends[j]) {
				contained[i] = true
				break
			}
		}
	}

	var out []Capture
	for i := 1; i <= numCap; i++ {
		if contained[i] {
			continue
		}
		if starts[i] >= 0 && ends[i] > starts[i] {
			out = append(out, Capture{Start: starts[i], End: ends[i]})
		} else {
			out = append(out, Capture{Start: -1, End: -1})
		}
	}
	return out
}
