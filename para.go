// Copyright 2024 The Peeknotes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// readParagraph reads whole lines until a blank line, the end of input,
// or a line starting a block that interrupts paragraphs.
// The whitespace and line feeds around the content belong to the
// paragraph; the rest is parsed as inline children.
func readParagraph(r *reader) (Variant, []Token, bool) {
	start := r.i
	end := r.i
	for !r.eof() {
		lineStart := r.i
		line, blank := r.nextLine()
		end = lineStart + len(line)
		if blank || interrupts(*r) {
			break
		}
	}
	content := trimTokens(r.toks[start:end], whitespace, lineFeed)
	if len(content) == 0 {
		return Variant{}, nil, false
	}
	return Variant{Kind: KindParagraph}, content, true
}

// interrupts reports whether the line at r starts a block
// that ends a paragraph without an intervening blank line.
func interrupts(r reader) bool {
	if r.eof() {
		return false
	}
	for _, read := range interrupters {
		t := r
		if _, _, ok := read(&t); ok {
			return true
		}
	}
	t := r
	return readContainerMarker(&t, Blockquote) || readContainerMarker(&t, Admonition)
}

var interrupters = []func(*reader) (Variant, []Token, bool){
	readListItemMarker,
	readThematicBreak,
	readHeading,
	readCodeBlock,
}
