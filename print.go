// Copyright 2024 The Peeknotes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotSerializable is returned when a node cannot be written as Markdown,
// such as a node with a zero Variant.
var ErrNotSerializable = errors.New("markdown: node cannot be serialized")

// ToMarkdown returns the canonical Markdown text for the nodes.
//
// The output is a fixed point: parsing it and formatting the result
// again yields the same text.
func ToMarkdown(nodes []*Node) (string, error) {
	var b strings.Builder
	for _, n := range nodes {
		s, err := n.Markdown()
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

// Markdown returns the canonical Markdown text for n.
// The text of each child is built first and passed up to its parent.
func (n *Node) Markdown() (string, error) {
	kids := make([]string, len(n.Children))
	for i, c := range n.Children {
		s, err := c.Markdown()
		if err != nil {
			return "", err
		}
		kids[i] = s
	}
	return n.Variant.markdown(kids)
}

// markdown renders a node with variant v around its serialized children.
func (v Variant) markdown(children []string) (string, error) {
	switch v.Kind {
	case KindHeading:
		return headingMarkdown(v.Level, children), nil
	case KindParagraph:
		return join(children) + "\n\n", nil
	case KindContainer:
		if v.Container.Marker() != 0 {
			return containerMarkdown(v.Container, children), nil
		}
	case KindCodeBlock:
		return codeBlockMarkdown(v.Language, join(children)), nil
	case KindList:
		return join(children), nil
	case KindListItem:
		if v.List != 0 {
			return listItemMarkdown(v.List, children), nil
		}
	case KindThematicBreak:
		if m := v.Break.Marker(); m != 0 {
			return strings.Repeat(string(m), 3) + "\n", nil
		}
	case KindText, KindVerbatimText:
		return v.Content.Markdown(), nil
	case KindCodeSpan:
		return codeSpanMarkdown(join(children)), nil
	case KindEmphasis:
		if v.Emphasis.Marker() != 0 {
			return emphasisMarkdown(v.Emphasis, join(children)), nil
		}
	}
	return "", fmt.Errorf("%w: %v", ErrNotSerializable, v)
}

func join(list []string) string {
	return strings.Join(list, "")
}

// trimNewlines removes leading and trailing newlines from s.
func trimNewlines(s string) string {
	return strings.Trim(s, "\n")
}
