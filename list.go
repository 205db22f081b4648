// Copyright 2024 The Peeknotes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "strings"

// itemIndent is the number of whitespaces starting each continuation line of a list item.
const itemIndent = 2

// readListItemMarker reads a list item marker and the whitespace after it.
// Unordered items start with *, - or +; ordered ones with a number and ) or a period.
func readListItemMarker(r *reader) (Variant, []Token, bool) {
	l := Unordered
	if _, ok := r.readAny(emphasis(Bold), emphasis(Strikethrough), plus); !ok {
		t, ok := r.advance()
		if !ok || t.Kind != TokNumber {
			return Variant{}, nil, false
		}
		if _, ok := r.readAny(closingBracket, period); !ok {
			return Variant{}, nil, false
		}
		l = Ordered
	}
	if !r.read(whitespace) {
		return Variant{}, nil, false
	}
	return Variant{Kind: KindListItem, List: l}, nil, true
}

// readListItem reads a list item: its marker, the rest of its first line,
// and every following line indented by two whitespaces, up to a blank line.
// The indentation of the continuation lines belongs to the item.
func readListItem(r *reader) (Variant, []Token, bool) {
	v, _, ok := readListItemMarker(r)
	if !ok {
		return Variant{}, nil, false
	}
	var content []Token
	for {
		line, blank := r.nextLine()
		content = append(content, line...)
		if blank || r.eof() {
			break
		}
		if !r.attempt(func(t *reader) bool { return t.readCount(whitespace, itemIndent) == itemIndent }) {
			break
		}
	}
	return v, content, true
}

// parseListItem parses a list item whose children are parsed with child.
// On failure r is unchanged.
func parseListItem(r *reader, allowed Restriction, child *Parser) (*Node, bool) {
	start := *r
	v, inner, ok := readListItem(r)
	if !ok || !allowed.Allows(v) {
		*r = start
		return nil, false
	}
	n, ok := newNode(v, start, r, inner, child)
	if !ok {
		*r = start
	}
	return n, ok
}

// parseList parses a list. The first item decides whether the list
// is ordered; the list goes on while items of the same variant follow
// at the same indentation, with any number of blank lines between them.
func parseList(r *reader, allowed Restriction, child *Parser) (*Node, bool) {
	start := *r
	indent := r.readCount(whitespace, 0)
	lead := r.toks[start.i:r.i]
	first, ok := parseListItem(r, allowed, child)
	if !ok {
		*r = start
		return nil, false
	}
	v := Variant{Kind: KindList, List: first.Variant.List}
	if !allowed.Allows(v) {
		*r = start
		return nil, false
	}
	own := append([]Token(nil), lead...)
	items := []*Node{first}
	for {
		t := *r
		t.skipBlankLines()
		if t.readCount(whitespace, 0) != indent {
			break
		}
		gap := t.toks[r.i:t.i]
		item, ok := parseListItem(&t, allowed, child)
		if !ok || item.Variant.List != v.List {
			break
		}
		*r = t
		own = append(own, gap...)
		items = append(items, item)
	}
	return &Node{Variant: v, Tokens: own, Children: items}, true
}

// listItemMarkdown renders a list item from its serialized children.
// The children go on consecutive lines, since a blank line would end the item.
func listItemMarkdown(l ListVariant, children []string) string {
	marker := "* "
	if l == Ordered {
		marker = "1) "
	}
	var parts []string
	for _, c := range children {
		if c = trimNewlines(c); c != "" {
			parts = append(parts, c)
		}
	}
	body := strings.Join(parts, "\n")
	return marker + strings.ReplaceAll(body, "\n", "\n"+strings.Repeat(" ", itemIndent)) + "\n"
}
