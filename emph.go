// Copyright 2024 The Peeknotes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "unicode/utf8"

// A DelimiterRun is a maximal run of one emphasis delimiter character
// (*, _, ~ or =) in a text.
//
// Left and Right report whether the run is [left-flanking] and
// [right-flanking], that is, whether it can open and close emphasis.
// Range shrinks as matching consumes markers from the run.
//
// [left-flanking]: https://spec.commonmark.org/0.31.2/#left-flanking-delimiter-run
// [right-flanking]: https://spec.commonmark.org/0.31.2/#right-flanking-delimiter-run
type DelimiterRun struct {
	Char  byte
	Range Range
	Left  bool
	Right bool
}

// Count returns the number of markers left in the run.
func (d *DelimiterRun) Count() int {
	return d.Range.End - d.Range.Start
}

// usable reports whether the run may open or close emphasis at all.
// Highlighting needs markers in pairs.
func (d *DelimiterRun) usable() bool {
	return d.Char != '=' || d.Count()%2 == 0
}

// An Emphasis is a matched pair of delimiters found by [ResolveEmphasis].
// Strength is 2 for double markers, like **strong**, and 1 otherwise.
type Emphasis struct {
	Opener   Range
	Closer   Range
	Content  Range
	Char     byte
	Strength int
}

func isDelimiter(c byte) bool {
	return c == '*' || c == '_' || c == '~' || c == '='
}

// DelimiterRuns returns the delimiter runs of text in order,
// with their flanking computed from the characters around them.
func DelimiterRuns(text string) []DelimiterRun {
	var runs []DelimiterRun
	before := rune(-1) // character before the current position, -1 at start of text
	for i := 0; i < len(text); {
		c := text[i]
		if !isDelimiter(c) {
			r, n := utf8.DecodeRuneInString(text[i:])
			before = r
			i += n
			continue
		}
		j := i + 1
		for j < len(text) && text[j] == c {
			j++
		}
		after := rune(-1)
		if j < len(text) {
			after, _ = utf8.DecodeRuneInString(text[j:])
		}
		left, right := flanking(before, after)
		runs = append(runs, DelimiterRun{Char: c, Range: Range{i, j}, Left: left, Right: right})
		before = rune(c)
		i = j
	}
	return runs
}

// flanking reports whether a delimiter run between the characters
// before and after is left-flanking and right-flanking.
// A missing character, at either end of the text, counts as whitespace.
func flanking(before, after rune) (left, right bool) {
	beforeSpace := before < 0 || isUnicodeSpace(before)
	beforePunct := before >= 0 && isUnicodePunct(before)
	afterSpace := after < 0 || isUnicodeSpace(after)
	afterPunct := after >= 0 && isUnicodePunct(after)
	left = !afterSpace && (!afterPunct || beforeSpace || beforePunct)
	right = !beforeSpace && (!beforePunct || afterSpace || afterPunct)
	return left, right
}

// A delimStack is the stack of delimiter runs being matched,
// kept as a doubly linked list threaded through a slice.
type delimStack struct {
	runs []DelimiterRun
	prev []int // index of previous live run, or -1
	next []int // index of next live run, or -1
}

func newDelimStack(runs []DelimiterRun) *delimStack {
	s := &delimStack{runs: runs, prev: make([]int, len(runs)), next: make([]int, len(runs))}
	for i := range runs {
		s.prev[i] = i - 1
		s.next[i] = i + 1
	}
	if len(runs) > 0 {
		s.next[len(runs)-1] = -1
	}
	return s
}

// remove unlinks run i. Its own links stay intact,
// so a scan positioned at i can still move on.
func (s *delimStack) remove(i int) {
	if p := s.prev[i]; p >= 0 {
		s.next[p] = s.next[i]
	}
	if n := s.next[i]; n >= 0 {
		s.prev[n] = s.prev[i]
	}
}

// ResolveEmphasis finds the emphasis in text, following the
// CommonMark [process emphasis] procedure for the delimiters *, _, ~ and =.
// Matches are returned in the order they are made: inner emphasis
// before the emphasis enclosing it.
//
// [process emphasis]: https://spec.commonmark.org/0.31.2/#process-emphasis
func ResolveEmphasis(text string) []Emphasis {
	s := newDelimStack(DelimiterRuns(text))
	if len(s.runs) == 0 {
		return nil
	}

	// Openers for a closer are searched only down to, and not including,
	// bottom[c]: earlier searches for c already failed below that point.
	// This keeps resolution linear.
	var bottom [256]int
	for i := range bottom {
		bottom[i] = -1
	}

	var out []Emphasis
	for cur := 0; cur >= 0; {
		closer := &s.runs[cur]
		if !closer.Right || !closer.usable() {
			cur = s.next[cur]
			continue
		}

		open := -1
		for o := s.prev[cur]; o >= 0 && o != bottom[closer.Char]; o = s.prev[o] {
			if r := &s.runs[o]; r.Char == closer.Char && r.Left && r.usable() {
				open = o
				break
			}
		}
		if open < 0 {
			bottom[closer.Char] = s.prev[cur]
			next := s.next[cur]
			if !closer.Left {
				s.remove(cur)
			}
			cur = next
			continue
		}

		// Delimiters between the pair can no longer match anything.
		for s.next[open] != cur {
			s.remove(s.next[open])
		}

		opener := &s.runs[open]
		strength := 1
		if opener.Count() >= 2 && closer.Count() >= 2 {
			strength = 2
		}
		e := Emphasis{
			Opener:   Range{opener.Range.End - strength, opener.Range.End},
			Closer:   Range{closer.Range.Start, closer.Range.Start + strength},
			Content:  Range{opener.Range.End, closer.Range.Start},
			Char:     closer.Char,
			Strength: strength,
		}
		out = append(out, e)
		opener.Range.End -= strength
		closer.Range.Start += strength

		if opener.Count() == 0 {
			s.remove(open)
		}
		if closer.Count() == 0 {
			next := s.next[cur]
			s.remove(cur)
			cur = next
		}
	}
	return out
}
