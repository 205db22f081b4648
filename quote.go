// Copyright 2024 The Peeknotes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "strings"

var containerMarkers = map[ContainerVariant]TokenVariant{
	Blockquote: greaterThan,
	Admonition: pipe,
}

// readContainerMarker reads the marker starting a line of a container:
// optional whitespace, the marker, and an optional single whitespace.
// If it fails, r is unchanged.
func readContainerMarker(r *reader, c ContainerVariant) bool {
	t := *r
	t.readCount(whitespace, 0)
	if !t.read(containerMarkers[c]) {
		return false
	}
	t.read(whitespace)
	*r = t
	return true
}

// parseContainer parses a block quote or admonition.
//
// Every line must start with the marker, except that a line continuing
// a paragraph may omit it. A blank line ends the container.
func parseContainer(r *reader, c ContainerVariant, allowed Restriction, child *Parser) (*Node, bool) {
	v := Variant{Kind: KindContainer, Container: c}
	if !allowed.Allows(v) {
		return nil, false
	}
	start := *r
	if !readContainerMarker(r, c) {
		return nil, false
	}
	var inner []Token
	lazy, known := false, false
	for {
		line, blank := r.nextLine()
		inner = append(inner, line...)
		if blank || r.eof() {
			break
		}
		if readContainerMarker(r, c) {
			known = false
			continue
		}
		// Lazy continuation line.
		if !hasContent(line) || interrupts(*r) {
			break
		}
		if !known {
			lazy, known = endsInParagraph(inner, child), true
		}
		if !lazy {
			break
		}
	}
	n, ok := newNode(v, start, r, inner, child)
	if !ok {
		*r = start
	}
	return n, ok
}

// hasContent reports whether line holds anything besides whitespace and line feeds.
func hasContent(line []Token) bool {
	for _, t := range line {
		if t.TokenVariant != whitespace && t.TokenVariant != lineFeed {
			return true
		}
	}
	return false
}

// endsInParagraph reports whether toks parse to nodes ending in a paragraph,
// which a lazy continuation line would extend.
func endsInParagraph(toks []Token, p *Parser) bool {
	nodes, err := p.Parse(toks)
	return err == nil && len(nodes) > 0 && nodes[len(nodes)-1].Variant.Kind == KindParagraph
}

// containerMarkdown renders a container from its serialized children,
// prefixing every line with the marker.
func containerMarkdown(c ContainerVariant, children []string) string {
	prefix := string(c.Marker()) + " "
	body := trimNewlines(join(children))
	return prefix + strings.ReplaceAll(body, "\n", "\n"+prefix) + "\n\n"
}
