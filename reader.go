// Copyright 2024 The Peeknotes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// A reader is a cursor over a token slice.
//
// A reader is a small value: copying it takes a snapshot,
// and assigning the copy back restores it.
// Methods that can fail leave the reader unchanged when they do.
type reader struct {
	toks []Token
	i    int
}

func (r *reader) eof() bool {
	return r.i >= len(r.toks)
}

// peek reports whether the current token has variant v.
func (r *reader) peek(v TokenVariant) bool {
	return r.i < len(r.toks) && r.toks[r.i].TokenVariant == v
}

// current returns the current token, which must exist.
func (r *reader) current() Token {
	return r.toks[r.i]
}

// advance consumes and returns the current token.
func (r *reader) advance() (Token, bool) {
	if r.eof() {
		return Token{}, false
	}
	r.i++
	return r.toks[r.i-1], true
}

// read consumes the current token if it has variant v.
func (r *reader) read(v TokenVariant) bool {
	if !r.peek(v) {
		return false
	}
	r.i++
	return true
}

// readAny consumes the current token if it has any of the variants vs.
func (r *reader) readAny(vs ...TokenVariant) (Token, bool) {
	if r.eof() {
		return Token{}, false
	}
	t := r.toks[r.i]
	for _, v := range vs {
		if t.TokenVariant == v {
			r.i++
			return t, true
		}
	}
	return Token{}, false
}

// readCount consumes a run of tokens with variant v and returns its length.
// If max > 0, at most max tokens are consumed.
func (r *reader) readCount(v TokenVariant, max int) int {
	n := 0
	for (max <= 0 || n < max) && r.read(v) {
		n++
	}
	return n
}

// readUntil consumes tokens up to the first one with any of the variants stop,
// returning the consumed tokens. If inclusive is set, the stop token is
// consumed and returned too. Reaching the end of input succeeds only if eofOK.
func (r *reader) readUntil(inclusive, eofOK bool, stop ...TokenVariant) ([]Token, bool) {
	start := r.i
	for i := start; i < len(r.toks); i++ {
		for _, v := range stop {
			if r.toks[i].TokenVariant == v {
				if inclusive {
					i++
				}
				r.i = i
				return r.toks[start:i], true
			}
		}
	}
	if !eofOK {
		return nil, false
	}
	r.i = len(r.toks)
	return r.toks[start:], true
}

// readBlankLine consumes a line feed followed by a line holding
// nothing but whitespace. The end of input counts as a blank line.
func (r *reader) readBlankLine() bool {
	t := *r
	if !t.read(lineFeed) {
		return false
	}
	if !t.eof() {
		t.readCount(whitespace, 0)
		if !t.eof() && !t.read(lineFeed) {
			return false
		}
	}
	*r = t
	return true
}

// skipBlankLines consumes every whitespace-only line at the cursor,
// including their line feeds.
func (r *reader) skipBlankLines() {
	for {
		t := *r
		t.readCount(whitespace, 0)
		if !t.read(lineFeed) {
			return
		}
		*r = t
	}
}

// attempt runs f on a copy of r and commits the copy only if f succeeds.
func (r *reader) attempt(f func(*reader) bool) bool {
	t := *r
	if !f(&t) {
		return false
	}
	*r = t
	return true
}

// nextLine consumes the rest of the current line and returns it.
// If a blank line follows, it is consumed too, its tokens are not returned,
// and blank is true. Otherwise the line feed ending the line is
// included in the result.
func (r *reader) nextLine() (line []Token, blank bool) {
	start := r.i
	r.readUntil(false, true, lineFeed)
	end := r.i
	if r.readBlankLine() {
		return r.toks[start:end], true
	}
	r.read(lineFeed)
	return r.toks[start:r.i], false
}

// since returns the tokens consumed between the snapshot old and r.
// The snapshot must be strictly behind r.
func (r *reader) since(old reader) ([]Token, bool) {
	if old.i >= r.i || len(old.toks) != len(r.toks) {
		return nil, false
	}
	return r.toks[old.i:r.i], true
}

// trimTokens removes leading and trailing tokens with any of the variants vs from toks.
func trimTokens(toks []Token, vs ...TokenVariant) []Token {
	for len(toks) > 0 && isAny(toks[0], vs) {
		toks = toks[1:]
	}
	for len(toks) > 0 && isAny(toks[len(toks)-1], vs) {
		toks = toks[:len(toks)-1]
	}
	return toks
}

// trimRightTokens removes trailing tokens with variant v from toks.
func trimRightTokens(toks []Token, v TokenVariant) []Token {
	for len(toks) > 0 && toks[len(toks)-1].TokenVariant == v {
		toks = toks[:len(toks)-1]
	}
	return toks
}

func isAny(t Token, vs []TokenVariant) bool {
	for _, v := range vs {
		if t.TokenVariant == v {
			return true
		}
	}
	return false
}
