package amarantine

// expandReplacement interprets a replacement template against one match's
// captures, per spec.md §4.5. The grammar is deliberately small — single
// digit backreferences only, no ${name} — matching the reference engine's
// own expandReplacement rather than a richer template language:
//
//	\0-\9, $0-$9   whole match (0) or reported capture 1-9, empty if unset
//	\n \r \t       control bytes
//	\<anything>    the literal byte after the backslash
//	$<non-digit>   a literal '$' followed by that byte
func expandReplacement(repl []byte, text []byte, m MatchResult) []byte {
	var out []byte
	for i := 0; i < len(repl); i++ {
		c := repl[i]
		if c != '\\' && c != '$' {
			out = append(out, c)
			continue
		}
		if i+1 >= len(repl) {
			out = append(out, c)
			continue
		}
		next := repl[i+1]

		if c == '$' && (next < '0' || next > '9') {
			out = append(out, '$', next)
			i++
			continue
		}

		switch {
		case next >= '0' && next <= '9':
			out = append(out, groupSlice(text, m, int(next-'0'))...)
			i++
		case c == '\\' && next == 'n':
			out = append(out, '\n')
			i++
		case c == '\\' && next == 'r':
			out = append(out, '\r')
			i++
		case c == '\\' && next == 't':
			out = append(out, '\t')
			i++
		default:
			out = append(out, next)
			i++
		}
	}
	return out
}

// groupSlice returns the text of group n (0 = whole match), or nil if n is
// out of range or the group never captured. For n >= 1 it reads
// m.Captures[n-1], the list left after the containment filter in
// buildCaptures, so $n names the n-th reported capture.
func groupSlice(text []byte, m MatchResult, n int) []byte {
	if n == 0 {
		return text[m.Start:m.End]
	}
	idx := n - 1
	if idx < 0 || idx >= len(m.Captures) {
		return nil
	}
	return m.Captures[idx].Slice(text)
}

// Replace substitutes every non-overlapping match of re in text with repl
// expanded against that match's captures. The VM only ever scans the
// original text, never the output being built, so an inserted replacement
// can never itself be matched again — the reference engine achieves the
// same effect by resuming its scan just past the text it spliced in,
// since it rewrites the buffer it searches in place.
func (re *Regexp) Replace(text, repl []byte) []byte {
	return re.replaceN(text, repl, -1)
}

// ReplaceFirst substitutes only the first match, leaving the rest of text
// untouched.
func (re *Regexp) ReplaceFirst(text, repl []byte) []byte {
	return re.replaceN(text, repl, 1)
}

func (re *Regexp) replaceN(text, repl []byte, limit int) []byte {
	return re.replaceFuncN(text, limit, func(m MatchResult) []byte {
		return expandReplacement(repl, text, m)
	})
}

// ReplaceFunc substitutes each match with the bytes returned by repl, called
// with that match's MatchResult. all selects every non-overlapping match
// (like Replace) versus just the first (like ReplaceFirst); unlike Replace,
// the substitution is computed by caller code rather than a template string,
// per spec.md §4.5 / SPEC_FULL.md §6.
func (re *Regexp) ReplaceFunc(text []byte, repl func(MatchResult) []byte, all bool) []byte {
	limit := 1
	if all {
		limit = -1
	}
	return re.replaceFuncN(text, limit, repl)
}

// replaceFuncN is the shared scan loop behind replaceN and ReplaceFunc: it
// walks text left to right, splicing in repl(m) for each match up to limit
// matches (-1 = unlimited), and forces one byte of progress past a
// zero-width match so the scan always terminates.
func (re *Regexp) replaceFuncN(text []byte, limit int, repl func(MatchResult) []byte) []byte {
	var out []byte
	vm := NewVM(re.prog, text)
	pos := 0
	count := 0

	for pos <= len(text) {
		if limit >= 0 && count >= limit {
			break
		}
		found := false
		for start := pos; start <= len(text); start++ {
			caps, ok := vm.Run(start)
			if !ok {
				continue
			}
			found = true
			m := re.buildResult(caps)

			out = append(out, text[pos:m.Start]...)
			out = append(out, repl(m)...)
			count++

			if m.End > m.Start {
				pos = m.End
			} else {
				// zero-width match: copy the byte at the match position
				// through untouched and force one byte of progress so
				// scanning terminates.
				if m.End < len(text) {
					out = append(out, text[m.End])
				}
				pos = m.End + 1
			}
			break
		}
		if !found {
			break
		}
	}

	if pos < len(text) {
		out = append(out, text[pos:]...)
	}
	return out
}

// ReplaceString and ReplaceFirstString are the string convenience forms.
func (re *Regexp) ReplaceString(s, repl string) string {
	return string(re.Replace([]byte(s), []byte(repl)))
}

func (re *Regexp) ReplaceFirstString(s, repl string) string {
	return string(re.ReplaceFirst([]byte(s), []byte(repl)))
}
