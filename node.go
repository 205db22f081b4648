// Copyright 2024 The Peeknotes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// A Kind identifies which construct a [Node] represents.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindHeading
	KindParagraph
	KindContainer
	KindCodeBlock
	KindList
	KindListItem
	KindThematicBreak
	KindText
	KindVerbatimText
	KindCodeSpan
	KindEmphasis
	numKinds
)

var kindNames = [...]string{
	KindInvalid:       "Invalid",
	KindHeading:       "Heading",
	KindParagraph:     "Paragraph",
	KindContainer:     "Container",
	KindCodeBlock:     "CodeBlock",
	KindList:          "List",
	KindListItem:      "ListItem",
	KindThematicBreak: "ThematicBreak",
	KindText:          "Text",
	KindVerbatimText:  "VerbatimText",
	KindCodeSpan:      "CodeSpan",
	KindEmphasis:      "Emphasis",
}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// IsInline reports whether k is an inline kind.
func (k Kind) IsInline() bool {
	switch k {
	case KindText, KindVerbatimText, KindCodeSpan, KindEmphasis:
		return true
	}
	return false
}

// A ContainerVariant says which kind of container a node is.
type ContainerVariant uint8

const (
	Blockquote ContainerVariant = iota + 1 // > quoted text
	Admonition                             // | call-out text
)

// Marker returns the marker character that starts each container line.
func (c ContainerVariant) Marker() byte {
	switch c {
	case Blockquote:
		return '>'
	case Admonition:
		return '|'
	}
	return 0
}

func (c ContainerVariant) String() string {
	switch c {
	case Blockquote:
		return "blockquote"
	case Admonition:
		return "admonition"
	}
	return "ContainerVariant(" + strconv.Itoa(int(c)) + ")"
}

// A ListVariant says whether a list is numbered.
type ListVariant uint8

const (
	Ordered ListVariant = iota + 1
	Unordered
)

func (l ListVariant) String() string {
	switch l {
	case Ordered:
		return "ordered"
	case Unordered:
		return "unordered"
	}
	return "ListVariant(" + strconv.Itoa(int(l)) + ")"
}

// A BreakVariant is the marker style of a thematic break.
type BreakVariant uint8

const (
	Dots      BreakVariant = iota + 1 // ***
	Line                              // ---
	ThickLine                         // ___
)

// Marker returns the character repeated to draw the break.
func (b BreakVariant) Marker() byte {
	switch b {
	case Dots:
		return '*'
	case Line:
		return '-'
	case ThickLine:
		return '_'
	}
	return 0
}

func (b BreakVariant) String() string {
	switch b {
	case Dots:
		return "dots"
	case Line:
		return "line"
	case ThickLine:
		return "thickLine"
	}
	return "BreakVariant(" + strconv.Itoa(int(b)) + ")"
}

// A Variant is the payload of a [Node]: its kind and
// the fields meaningful for that kind. Fields that do not
// apply to the kind are left zero, so two variants are equal
// exactly when they compare equal with ==.
type Variant struct {
	Kind      Kind
	Level     int              // KindHeading: 1 through 6
	Container ContainerVariant // KindContainer
	Language  string           // KindCodeBlock: the info string
	List      ListVariant      // KindList, KindListItem
	Break     BreakVariant     // KindThematicBreak
	Emphasis  EmphasisVariant  // KindEmphasis
	Content   TokenVariant     // KindText, KindVerbatimText
}

func (v Variant) String() string {
	switch v.Kind {
	case KindHeading:
		return fmt.Sprintf("Heading(%d)", v.Level)
	case KindContainer:
		return fmt.Sprintf("Container(%v)", v.Container)
	case KindCodeBlock:
		return fmt.Sprintf("CodeBlock(%q)", v.Language)
	case KindList, KindListItem:
		return fmt.Sprintf("%v(%v)", v.Kind, v.List)
	case KindThematicBreak:
		return fmt.Sprintf("ThematicBreak(%v)", v.Break)
	case KindText, KindVerbatimText:
		return fmt.Sprintf("%v(%q)", v.Kind, v.Content.Markdown())
	case KindEmphasis:
		return fmt.Sprintf("Emphasis(%v)", v.Emphasis)
	}
	return v.Kind.String()
}

// A Range is the half-open byte range [Start, End) of a source text.
type Range struct {
	Start int
	End   int
}

// A Node is an element of a parsed document.
//
// Tokens holds the tokens the node consumed itself, such as markers
// and line feeds, in source order. Tokens consumed by children are
// found in the children, never in the parent.
type Node struct {
	Variant  Variant
	Tokens   []Token
	Children []*Node
}

// Span returns the source range covered by n and all its descendants.
// A node without any tokens has an empty span.
func (n *Node) Span() Range {
	r := Range{Start: -1, End: -1}
	n.span(&r)
	if r.Start < 0 {
		return Range{}
	}
	return r
}

func (n *Node) span(r *Range) {
	for _, t := range n.Tokens {
		if r.Start < 0 || t.Start < r.Start {
			r.Start = t.Start
		}
		if t.End > r.End {
			r.End = t.End
		}
	}
	for _, c := range n.Children {
		c.span(r)
	}
}

// AllTokens returns the tokens of n and its descendants in source order.
func (n *Node) AllTokens() []Token {
	var toks []Token
	n.walkTokens(func(t Token) { toks = append(toks, t) })
	sortTokens(toks)
	return toks
}

func (n *Node) walkTokens(f func(Token)) {
	for _, t := range n.Tokens {
		f(t)
	}
	for _, c := range n.Children {
		c.walkTokens(f)
	}
}

// sortTokens sorts toks by start offset.
func sortTokens(toks []Token) {
	slices.SortFunc(toks, func(a, b Token) int { return cmp.Compare(a.Start, b.Start) })
}

// Dump returns a tab-indented outline of the nodes,
// one variant per line.
func Dump(nodes []*Node) string {
	var b strings.Builder
	for _, n := range nodes {
		dump(&b, n, 0)
	}
	return b.String()
}

func dump(b *strings.Builder, n *Node, depth int) {
	b.WriteString(strings.Repeat("\t", depth))
	b.WriteString(n.Variant.String())
	b.WriteByte('\n')
	for _, c := range n.Children {
		dump(b, c, depth+1)
	}
}
