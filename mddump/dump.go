// Copyright 2024 The Peeknotes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/peeknotes/markdown"
)

type yamlNode struct {
	Kind      string     `yaml:"kind"`
	Level     int        `yaml:"level,omitempty"`
	Container string     `yaml:"container,omitempty"`
	Language  string     `yaml:"language,omitempty"`
	List      string     `yaml:"list,omitempty"`
	Break     string     `yaml:"break,omitempty"`
	Emphasis  string     `yaml:"emphasis,omitempty"`
	Text      string     `yaml:"text,omitempty"`
	Span      [2]int     `yaml:"span,flow"`
	Children  []yamlNode `yaml:"children,omitempty"`
}

func toYAMLNode(n *markdown.Node) yamlNode {
	v := n.Variant
	span := n.Span()
	y := yamlNode{Kind: v.Kind.String(), Level: v.Level, Language: v.Language, Span: [2]int{span.Start, span.End}}
	if v.Container != 0 {
		y.Container = v.Container.String()
	}
	if v.List != 0 {
		y.List = v.List.String()
	}
	if v.Break != 0 {
		y.Break = v.Break.String()
	}
	if v.Emphasis != 0 {
		y.Emphasis = v.Emphasis.String()
	}
	if v.Kind == markdown.KindText || v.Kind == markdown.KindVerbatimText {
		y.Text = v.Content.Markdown()
	}
	for _, c := range n.Children {
		y.Children = append(y.Children, toYAMLNode(c))
	}
	return y
}

type yamlBlock struct {
	ID         string `yaml:"id"`
	Kind       string `yaml:"kind"`
	Admonition bool   `yaml:"admonition,omitempty"`
	Blockquote bool   `yaml:"blockquote,omitempty"`
	Level      int    `yaml:"level,omitempty"`
	Language   string `yaml:"language,omitempty"`
	Break      string `yaml:"break,omitempty"`
	Text       string `yaml:"text,omitempty"`
}

var blockKinds = map[markdown.BlockKind]string{
	markdown.BlockText:          "text",
	markdown.BlockHeading:       "heading",
	markdown.BlockCode:          "code",
	markdown.BlockThematicBreak: "thematicBreak",
}

type yamlEmphasis struct {
	Char     string `yaml:"char"`
	Strength int    `yaml:"strength"`
	Opener   [2]int `yaml:"opener,flow"`
	Closer   [2]int `yaml:"closer,flow"`
	Content  string `yaml:"content"`
}

// dump returns the dump of text in the given format.
func dump(format, text string, p *markdown.Parser) ([]byte, error) {
	toks := markdown.Tokenize(text)
	switch format {
	case "tokens":
		var b strings.Builder
		for _, t := range toks {
			fmt.Fprintln(&b, t)
		}
		return []byte(b.String()), nil
	case "emphasis":
		var list []yamlEmphasis
		for _, e := range markdown.ResolveEmphasis(text) {
			list = append(list, yamlEmphasis{
				Char:     string(e.Char),
				Strength: e.Strength,
				Opener:   [2]int{e.Opener.Start, e.Opener.End},
				Closer:   [2]int{e.Closer.Start, e.Closer.End},
				Content:  text[e.Content.Start:e.Content.End],
			})
		}
		return yaml.Marshal(list)
	}

	nodes, err := p.Parse(toks)
	if err != nil {
		return nil, err
	}
	switch format {
	case "", "tree":
		return []byte(markdown.Dump(nodes)), nil
	case "yaml":
		var list []yamlNode
		for _, n := range nodes {
			list = append(list, toYAMLNode(n))
		}
		return yaml.Marshal(list)
	case "blocks":
		var list []yamlBlock
		for _, b := range markdown.Blocks(text, nodes) {
			y := yamlBlock{
				ID:         b.ID.String(),
				Kind:       blockKinds[b.Kind],
				Admonition: b.Admonition,
				Blockquote: b.Blockquote,
				Level:      b.Level,
				Language:   b.Language,
				Text:       b.Text,
			}
			if b.Break != 0 {
				y.Break = b.Break.String()
			}
			list = append(list, y)
		}
		return yaml.Marshal(list)
	}
	return nil, fmt.Errorf("unknown format %q", format)
}
