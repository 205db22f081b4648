// Copyright 2024 The Peeknotes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"github.com/google/uuid"
)

// A Visitor receives the structure of a document from [Walk].
//
// EnterBlock and ExitBlock bracket every block node, in document order.
// InlineContent reports the source range of each run of consecutive
// inline children of the innermost open block.
// Finish is called once, after everything else.
type Visitor interface {
	EnterBlock(n *Node)
	ExitBlock(n *Node)
	InlineContent(r Range)
	Finish()
}

// Walk reports the nodes to v.
func Walk(nodes []*Node, v Visitor) {
	walkNodes(nodes, v)
	v.Finish()
}

func walkNodes(nodes []*Node, v Visitor) {
	for i := 0; i < len(nodes); {
		n := nodes[i]
		if !n.Variant.Kind.IsInline() {
			v.EnterBlock(n)
			walkNodes(n.Children, v)
			v.ExitBlock(n)
			i++
			continue
		}
		r := n.Span()
		for i++; i < len(nodes) && nodes[i].Variant.Kind.IsInline(); i++ {
			r.End = nodes[i].Span().End
		}
		v.InlineContent(r)
	}
}

// A BlockKind says what a [Block] holds.
type BlockKind uint8

const (
	BlockText BlockKind = iota
	BlockHeading
	BlockCode
	BlockThematicBreak
)

// A Block is one displayable block of a document,
// flattened out of any containers around it.
type Block struct {
	ID         uuid.UUID
	Admonition bool // inside an admonition
	Blockquote bool // inside a block quote
	Kind       BlockKind
	Level      int          // BlockHeading
	Language   string       // BlockCode
	Break      BreakVariant // BlockThematicBreak
	Text       string       // BlockText, BlockHeading (may be empty), BlockCode
}

// A BlockAggregator is a [Visitor] that collects the text, heading,
// code and thematic break blocks of a document into a flat list.
// List structure is not kept: each paragraph of a list item
// becomes a text block.
type BlockAggregator struct {
	// Source is the text the walked nodes were parsed from.
	Source string

	// NewID returns the ID of each new block. If nil, uuid.New is used.
	NewID func() uuid.UUID

	// Blocks holds the blocks found so far.
	Blocks []Block

	admonition int
	blockquote int
	heading    int
	inline     Range
	hasInline  bool
}

// Blocks returns the blocks of the nodes parsed from src.
func Blocks(src string, nodes []*Node) []Block {
	a := &BlockAggregator{Source: src}
	Walk(nodes, a)
	return a.Blocks
}

func (a *BlockAggregator) EnterBlock(n *Node) {
	switch n.Variant.Kind {
	case KindContainer:
		switch n.Variant.Container {
		case Admonition:
			a.admonition++
		case Blockquote:
			a.blockquote++
		}
	case KindHeading:
		a.heading++
		a.hasInline = false
	case KindParagraph:
		if a.heading == 0 {
			a.hasInline = false
		}
	case KindCodeBlock:
		a.hasInline = false
	}
}

func (a *BlockAggregator) InlineContent(r Range) {
	if !a.hasInline {
		a.inline, a.hasInline = r, true
		return
	}
	a.inline.End = r.End
}

func (a *BlockAggregator) ExitBlock(n *Node) {
	v := n.Variant
	switch v.Kind {
	case KindContainer:
		switch v.Container {
		case Admonition:
			a.admonition--
		case Blockquote:
			a.blockquote--
		}
	case KindThematicBreak:
		a.add(Block{Kind: BlockThematicBreak, Break: v.Break})
	case KindHeading:
		a.heading--
		a.add(Block{Kind: BlockHeading, Level: v.Level, Text: a.text()})
	case KindParagraph:
		if a.heading == 0 {
			a.add(Block{Kind: BlockText, Text: a.text()})
		}
	case KindCodeBlock:
		a.add(Block{Kind: BlockCode, Language: v.Language, Text: a.text()})
	}
}

func (a *BlockAggregator) Finish() {
	a.hasInline = false
}

// text returns the inline text collected since the current block began.
func (a *BlockAggregator) text() string {
	if !a.hasInline {
		return ""
	}
	a.hasInline = false
	return a.Source[a.inline.Start:a.inline.End]
}

func (a *BlockAggregator) add(b Block) {
	if a.NewID != nil {
		b.ID = a.NewID()
	} else {
		b.ID = uuid.New()
	}
	b.Admonition = a.admonition > 0
	b.Blockquote = a.blockquote > 0
	a.Blocks = append(a.Blocks, b)
}
