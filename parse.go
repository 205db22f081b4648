// Copyright 2024 The Peeknotes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// ErrUnparseable is returned when no node parser accepts the
// tokens at some position of a document.
var ErrUnparseable = errors.New("markdown: unable to parse document")

// A Parser turns tokens into a tree of nodes.
//
// The zero Parser is ready to use: it tries [DefaultParsers] in order,
// allows every node variant, and skips the blank lines between nodes.
type Parser struct {
	// Parsers are the node parsers to try at each top-level position,
	// in priority order. If nil, DefaultParsers is used.
	// The children of a node are always parsed with DefaultParsers.
	Parsers []*NodeParser

	// Restriction limits which variants may appear at the top level.
	// Children are further limited by the restriction of the node
	// parser that produced their parent.
	Restriction Restriction

	// KeepNewlines disables skipping blank lines between nodes.
	// Contexts that must keep their text verbatim, such as
	// code blocks, set it.
	KeepNewlines bool

	// Log, if non-nil, receives a trace of which node parser
	// matched at each position.
	Log *zerolog.Logger
}

var nopLogger = zerolog.Nop()

func (p *Parser) log() *zerolog.Logger {
	if p.Log == nil {
		return &nopLogger
	}
	return p.Log
}

func (p *Parser) parsers() []*NodeParser {
	if p.Parsers != nil {
		return p.Parsers
	}
	return defaultParsers
}

// Parse tokenizes text and parses it with a zero [Parser].
func Parse(text string) ([]*Node, error) {
	var p Parser
	return p.Parse(Tokenize(text))
}

// Parse parses toks into a sequence of top-level nodes.
//
// Blank lines skipped between nodes are recorded in the Tokens of the
// node that follows them, or of the last node if they end the input.
// An input holding nothing but blank lines yields no nodes.
func (p *Parser) Parse(toks []Token) ([]*Node, error) {
	r := reader{toks: toks}
	var nodes []*Node
	var skipped []Token
	for {
		if !p.KeepNewlines {
			start := r.i
			r.skipBlankLines()
			skipped = append(skipped, toks[start:r.i]...)
		}
		if r.eof() {
			break
		}
		n, ok := p.readNode(&r)
		if !ok {
			off := r.current().Start
			p.log().Debug().Int("offset", off).Msg("no node parser matched")
			return nil, fmt.Errorf("%w at offset %d", ErrUnparseable, off)
		}
		if len(skipped) > 0 {
			n.Tokens = append(skipped, n.Tokens...)
			skipped = nil
		}
		nodes = append(nodes, n)
	}
	if len(skipped) > 0 && len(nodes) > 0 {
		last := nodes[len(nodes)-1]
		last.Tokens = append(last.Tokens, skipped...)
	}
	return nodes, nil
}

// readNode reads a single node at r using the first parser that accepts it.
func (p *Parser) readNode(r *reader) (*Node, bool) {
	for _, np := range p.parsers() {
		if !p.Restriction.mayAllow(np.kind) {
			continue
		}
		child := Parser{
			Restriction:  p.Restriction.Intersect(np.children),
			KeepNewlines: np.keepNewlines,
			Log:          p.Log,
		}
		off := r.current().Start
		if n, ok := np.parse(r, p.Restriction, &child); ok {
			p.log().Trace().Stringer("kind", np.kind).Int("offset", off).Msg("matched")
			return n, true
		}
	}
	return nil, false
}

// newNode builds the node with variant v that r consumed since start,
// parsing inner, a subsequence of the consumed tokens, into its children.
// Consumed tokens that no child holds, including inner tokens the child
// parser skipped, belong to the node itself.
func newNode(v Variant, start reader, r *reader, inner []Token, child *Parser) (*Node, bool) {
	consumed, ok := r.since(start)
	if !ok {
		return nil, false
	}
	var kids []*Node
	if len(inner) > 0 {
		var err error
		if kids, err = child.Parse(inner); err != nil {
			return nil, false
		}
	}
	return &Node{Variant: v, Tokens: without(consumed, kids), Children: kids}, true
}

// without returns the tokens of all that are not held by kids or their descendants.
func without(all []Token, kids []*Node) []Token {
	own := make([]Token, 0, len(all))
	if len(kids) == 0 {
		return append(own, all...)
	}
	held := make(map[int]bool)
	for _, k := range kids {
		k.walkTokens(func(t Token) { held[t.Start] = true })
	}
	for _, t := range all {
		if !held[t.Start] {
			own = append(own, t)
		}
	}
	return own
}

// A NodeParser recognizes one kind of node.
// NodeParsers are created by the functions named after their kind,
// such as [HeadingParser], and never change afterward.
type NodeParser struct {
	kind         Kind
	container    ContainerVariant // KindContainer
	emphasis     EmphasisVariant  // KindEmphasis
	children     Restriction      // limits the children of parsed nodes
	keepNewlines bool             // children keep the line feeds between them
}

// Kind returns the kind of node np parses.
func (np *NodeParser) Kind() Kind { return np.kind }

// HeadingParser returns a parser for headings like "## Title".
func HeadingParser() *NodeParser {
	return &NodeParser{kind: KindHeading, children: Whitelist(KindParagraph).Union(Inline())}
}

// ParagraphParser returns a parser for paragraphs of inline text.
func ParagraphParser() *NodeParser {
	return &NodeParser{kind: KindParagraph, children: Inline(), keepNewlines: true}
}

// ContainerParser returns a parser for block quotes or admonitions,
// depending on c. A container cannot hold another container of the same variant.
func ContainerParser(c ContainerVariant) *NodeParser {
	return &NodeParser{kind: KindContainer, container: c, children: notContainer(c)}
}

// CodeBlockParser returns a parser for fenced code blocks.
func CodeBlockParser() *NodeParser {
	return &NodeParser{kind: KindCodeBlock, children: Whitelist(KindVerbatimText), keepNewlines: true}
}

// ListParser returns a parser for lists of items sharing a marker kind.
func ListParser() *NodeParser {
	return &NodeParser{kind: KindList, children: Blacklist(KindCodeBlock, KindThematicBreak)}
}

// ListItemParser returns a parser for a single list item.
// Lists use it for each of their items; it is not in [DefaultParsers].
func ListItemParser() *NodeParser {
	return &NodeParser{kind: KindListItem, children: Blacklist(KindCodeBlock, KindThematicBreak)}
}

// ThematicBreakParser returns a parser for thematic breaks like "***".
func ThematicBreakParser() *NodeParser {
	return &NodeParser{kind: KindThematicBreak, children: DisallowAll()}
}

// CodeSpanParser returns a parser for inline code spans.
func CodeSpanParser() *NodeParser {
	return &NodeParser{kind: KindCodeSpan, children: Whitelist(KindVerbatimText), keepNewlines: true}
}

// EmphasisParser returns a parser for emphasis of style e.
func EmphasisParser(e EmphasisVariant) *NodeParser {
	return &NodeParser{kind: KindEmphasis, emphasis: e, children: Inline(), keepNewlines: true}
}

// TextParser returns a parser taking any single token as text.
func TextParser() *NodeParser {
	return &NodeParser{kind: KindText, children: DisallowAll()}
}

// VerbatimTextParser returns a parser taking any single token as literal text.
func VerbatimTextParser() *NodeParser {
	return &NodeParser{kind: KindVerbatimText, children: DisallowAll()}
}

var defaultParsers = []*NodeParser{
	ContainerParser(Admonition),
	ContainerParser(Blockquote),
	CodeBlockParser(),
	ListParser(),
	ThematicBreakParser(),
	HeadingParser(),
	ParagraphParser(),
	CodeSpanParser(),
	EmphasisParser(Italics),
	EmphasisParser(Bold),
	EmphasisParser(Underline),
	EmphasisParser(Highlight),
	EmphasisParser(Strikethrough),
	EmphasisParser(Subscript),
	EmphasisParser(Superscript),
	TextParser(),
	VerbatimTextParser(),
}

// DefaultParsers returns the standard node parsers in priority order:
// block kinds first, then inline kinds, with verbatim text as the catch-all.
func DefaultParsers() []*NodeParser {
	return append([]*NodeParser(nil), defaultParsers...)
}

// parse reads a node at r whose variant is allowed, parsing its children with child.
// On failure r is unchanged.
func (np *NodeParser) parse(r *reader, allowed Restriction, child *Parser) (*Node, bool) {
	switch np.kind {
	case KindContainer:
		return parseContainer(r, np.container, allowed, child)
	case KindList:
		return parseList(r, allowed, child)
	}
	start := *r
	v, inner, ok := np.read(r)
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

// read reads the markers and content of a node at r,
// returning its variant and the tokens its children are parsed from.
// On failure r may have advanced; callers restore it.
func (np *NodeParser) read(r *reader) (Variant, []Token, bool) {
	switch np.kind {
	case KindHeading:
		return readHeading(r)
	case KindParagraph:
		return readParagraph(r)
	case KindCodeBlock:
		return readCodeBlock(r)
	case KindListItem:
		return readListItem(r)
	case KindThematicBreak:
		return readThematicBreak(r)
	case KindCodeSpan:
		return readCodeSpan(r)
	case KindEmphasis:
		return readEmphasis(r, np.emphasis)
	case KindText:
		return readText(r)
	case KindVerbatimText:
		return readVerbatimText(r)
	}
	return Variant{}, nil, false
}
