// Copyright 2024 The Peeknotes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"strings"
)

// minFence is the length of the shortest code block fence.
const minFence = 3

// readCodeBlock reads a fenced code block: a fence of three or more
// backticks, an info string without backticks ending the line,
// and every following line up to a closing fence at least as long as
// the opening one. Without a closing fence, the block runs to the end of input.
func readCodeBlock(r *reader) (Variant, []Token, bool) {
	r.readCount(whitespace, 0)
	n := r.readCount(backtick, 0)
	if n < minFence {
		return Variant{}, nil, false
	}
	info, _ := r.readUntil(true, true, lineFeed, backtick)
	if k := len(info); k > 0 {
		switch info[k-1].TokenVariant {
		case backtick:
			return Variant{}, nil, false
		case lineFeed:
			info = info[:k-1]
		}
	}
	lang := strings.TrimSpace(tokensMarkdown(info))

	start, end := r.i, len(r.toks)
	for !r.eof() {
		if lineStart := r.i; closesFence(r, n) {
			end = lineStart
			break
		}
		r.readUntil(true, true, lineFeed)
	}
	content := r.toks[start:end]
	if k := len(content); k > 0 && content[k-1].TokenVariant == lineFeed {
		content = content[:k-1]
	}
	return Variant{Kind: KindCodeBlock, Language: lang}, content, true
}

// closesFence reads a line closing a fence of length n:
// at least n backticks with optional whitespace around them.
// If it fails, r is unchanged.
func closesFence(r *reader, n int) bool {
	t := *r
	t.readCount(whitespace, 0)
	if t.readCount(backtick, 0) < n {
		return false
	}
	t.readCount(whitespace, 0)
	if !t.eof() && !t.read(lineFeed) {
		return false
	}
	*r = t
	return true
}

// readCodeSpan reads a code span: a run of backticks, the content,
// and a closing run of exactly the same length. A single whitespace
// just inside each run is not part of the content.
func readCodeSpan(r *reader) (Variant, []Token, bool) {
	n := r.readCount(backtick, 0)
	if n == 0 {
		return Variant{}, nil, false
	}
	r.read(whitespace)
	start := r.i
	for !r.eof() {
		end := r.i
		t := *r
		t.read(whitespace)
		if t.peek(backtick) {
			if t.readCount(backtick, 0) == n {
				*r = t
				return Variant{Kind: KindCodeSpan}, r.toks[start:end], true
			}
			// A run of another length is content.
			*r = t
			continue
		}
		r.advance()
	}
	return Variant{}, nil, false
}

var ticks = "````````````````````````````````````````````````````````````````" // 64 ticks

// fence returns n backticks.
func fence(n int) string {
	if n <= len(ticks) {
		return ticks[:n]
	}
	return strings.Repeat("`", n)
}

// maxRun returns the length of the longest run of b bytes in s.
func maxRun(s string, b byte) int {
	m := 0
	n := 0
	for i := range len(s) {
		if s[i] == b {
			n++
			m = max(m, n)
		} else {
			n = 0
		}
	}
	return m
}

// codeBlockMarkdown renders a code block, choosing a fence
// longer than any backtick run in the content.
// The line feed ending the content is not part of it,
// so one is always written before the closing fence.
func codeBlockMarkdown(lang, text string) string {
	f := fence(max(minFence, maxRun(text, '`')+1))
	return f + lang + "\n" + text + "\n" + f + "\n"
}

// codeSpanMarkdown renders a code span.
func codeSpanMarkdown(text string) string {
	// Use the fewest backticks we can, and add spaces as needed
	// so the content survives the space stripping of the next parse.
	f := fence(maxRun(text, '`') + 1)
	if text == "" || strings.ContainsAny(text[:1], " `") || strings.ContainsAny(text[len(text)-1:], " `") {
		return f + " " + text + " " + f
	}
	return f + text + f
}
