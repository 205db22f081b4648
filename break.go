// Copyright 2024 The Peeknotes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// breakVariants maps the tokens that can draw a thematic break to their variant.
var breakVariants = map[TokenVariant]BreakVariant{
	emphasis(Bold):          Dots,
	emphasis(Strikethrough): Line,
	emphasis(Underline):     ThickLine,
}

// readThematicBreak reads a thematic break: up to three whitespaces,
// three or more copies of one of *, - or _, optional whitespace,
// and the end of the line.
func readThematicBreak(r *reader) (Variant, []Token, bool) {
	if r.readCount(whitespace, 0) > 3 {
		return Variant{}, nil, false
	}
	t, ok := r.advance()
	if !ok {
		return Variant{}, nil, false
	}
	b, ok := breakVariants[t.TokenVariant]
	if !ok || 1+r.readCount(t.TokenVariant, 0) < 3 {
		return Variant{}, nil, false
	}
	r.readCount(whitespace, 0)
	if !r.eof() && !r.read(lineFeed) {
		return Variant{}, nil, false
	}
	return Variant{Kind: KindThematicBreak, Break: b}, nil, true
}
