// Copyright 2024 The Peeknotes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// An HTMLRenderer converts nodes to HTML.
// The zero HTMLRenderer is ready to use.
type HTMLRenderer struct {
	// HeadingIDs adds an id attribute to every heading,
	// derived from the lower-cased heading text.
	HeadingIDs bool
}

// ToHTML renders the nodes as HTML using a zero [HTMLRenderer].
func ToHTML(nodes []*Node) (string, error) {
	var h HTMLRenderer
	return h.Render(nodes)
}

// Render returns the HTML for the nodes.
func (h *HTMLRenderer) Render(nodes []*Node) (string, error) {
	p := &printer{headingIDs: h.HeadingIDs}
	if h.HeadingIDs {
		p.lower = cases.Lower(language.Und)
	}
	for _, n := range nodes {
		if err := p.block(n); err != nil {
			return "", err
		}
	}
	return p.buf.String(), nil
}

var htmlEscaper = strings.NewReplacer(
	"\"", "&quot;",
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

type printer struct {
	buf        bytes.Buffer
	headingIDs bool
	lower      cases.Caser    // for heading ids
	ids        map[string]int // uses of each heading id
}

func (p *printer) html(list ...string) {
	for _, s := range list {
		p.buf.WriteString(s)
	}
}

func (p *printer) text(list ...string) {
	for _, s := range list {
		htmlEscaper.WriteString(&p.buf, s)
	}
}

var containerTags = map[ContainerVariant][2]string{
	Blockquote: {"<blockquote>\n", "</blockquote>\n"},
	Admonition: {"<aside class=\"admonition\">\n", "</aside>\n"},
}

// block prints a block node and the newline after it.
// Inline nodes at block level print as they would inside a paragraph.
func (p *printer) block(n *Node) error {
	v := n.Variant
	switch v.Kind {
	case KindHeading:
		fmt.Fprintf(&p.buf, "<h%d", max(1, min(maxHeadingLevel, v.Level)))
		if p.headingIDs {
			p.html(` id="`)
			p.text(p.headingID(n))
			p.html(`"`)
		}
		p.html(">")
		if err := p.tight(n.Children); err != nil {
			return err
		}
		fmt.Fprintf(&p.buf, "</h%d>\n", max(1, min(maxHeadingLevel, v.Level)))
	case KindParagraph:
		p.html("<p>")
		if err := p.inlines(n.Children); err != nil {
			return err
		}
		p.html("</p>\n")
	case KindContainer:
		tags, ok := containerTags[v.Container]
		if !ok {
			return fmt.Errorf("%w: %v", ErrNotSerializable, v)
		}
		p.html(tags[0])
		for _, c := range n.Children {
			if err := p.block(c); err != nil {
				return err
			}
		}
		p.html(tags[1])
	case KindCodeBlock:
		p.html("<pre><code")
		if lang, _, _ := strings.Cut(v.Language, " "); lang != "" {
			p.html(` class="language-`)
			p.text(lang)
			p.html(`"`)
		}
		p.html(">")
		var code strings.Builder
		for _, c := range n.Children {
			code.WriteString(c.Variant.Content.Markdown())
		}
		if s := code.String(); s != "" {
			p.text(s, "\n")
		}
		p.html("</code></pre>\n")
	case KindList:
		tag := "ul"
		if v.List == Ordered {
			tag = "ol"
		}
		p.html("<", tag, ">\n")
		for _, c := range n.Children {
			if err := p.block(c); err != nil {
				return err
			}
		}
		p.html("</", tag, ">\n")
	case KindListItem:
		p.html("<li>")
		if err := p.tight(n.Children); err != nil {
			return err
		}
		p.html("</li>\n")
	case KindThematicBreak:
		p.html("<hr />\n")
	default:
		return p.inline(n)
	}
	return nil
}

// tight prints blocks whose paragraphs are not wrapped in <p> tags,
// as in headings and list items.
func (p *printer) tight(nodes []*Node) error {
	for i, n := range nodes {
		var err error
		switch {
		case n.Variant.Kind == KindParagraph:
			err = p.inlines(n.Children)
			if i+1 < len(nodes) {
				p.html("\n")
			}
		case n.Variant.Kind.IsInline():
			err = p.inline(n)
		default:
			if i == 0 {
				p.html("\n")
			}
			err = p.block(n)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) inlines(nodes []*Node) error {
	for _, n := range nodes {
		if err := p.inline(n); err != nil {
			return err
		}
	}
	return nil
}

var emphasisTags = [...]string{
	Italics:       "em",
	Bold:          "strong",
	Underline:     "u",
	Highlight:     "mark",
	Strikethrough: "del",
	Subscript:     "sub",
	Superscript:   "sup",
}

func (p *printer) inline(n *Node) error {
	v := n.Variant
	switch v.Kind {
	case KindText:
		p.text(plainText(v.Content))
	case KindVerbatimText:
		p.text(v.Content.Markdown())
	case KindCodeSpan:
		p.html("<code>")
		for _, c := range n.Children {
			p.text(c.Variant.Content.Markdown())
		}
		p.html("</code>")
	case KindEmphasis:
		if v.Emphasis == 0 || int(v.Emphasis) >= len(emphasisTags) {
			return fmt.Errorf("%w: %v", ErrNotSerializable, v)
		}
		tag := emphasisTags[v.Emphasis]
		p.html("<", tag, ">")
		if err := p.inlines(n.Children); err != nil {
			return err
		}
		p.html("</", tag, ">")
	default:
		return fmt.Errorf("%w: %v", ErrNotSerializable, v)
	}
	return nil
}

// plainText returns the text a token stands for,
// with escapes resolved to the escaped character.
func plainText(v TokenVariant) string {
	if v.Kind == TokEscaped {
		return v.Text
	}
	return v.Markdown()
}

// headingID returns a unique id for the heading n.
func (p *printer) headingID(n *Node) string {
	var b strings.Builder
	collectText(&b, n)
	var id []rune
	dash := false
	for _, r := range p.lower.String(b.String()) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && len(id) > 0 {
				id = append(id, '-')
			}
			id = append(id, r)
			dash = false
		} else {
			dash = true
		}
	}
	s := string(id)
	if p.ids == nil {
		p.ids = make(map[string]int)
	}
	k := p.ids[s]
	p.ids[s]++
	if k > 0 {
		s += "-" + strconv.Itoa(k)
	}
	return s
}

// collectText writes the plain text of n's descendants to b.
func collectText(b *strings.Builder, n *Node) {
	switch n.Variant.Kind {
	case KindText:
		b.WriteString(plainText(n.Variant.Content))
	case KindVerbatimText:
		b.WriteString(n.Variant.Content.Markdown())
	}
	for _, c := range n.Children {
		collectText(b, c)
	}
}
