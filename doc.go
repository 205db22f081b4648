// Copyright 2024 The Peeknotes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package markdown parses a Markdown dialect into a syntax tree
// and writes the tree back out as canonical Markdown or as HTML.
//
// Parsing happens in two steps. [Tokenize] splits the text into tokens,
// and a [Parser] assembles the tokens into [Node] trees by trying
// each of its node parsers in priority order at every position,
// backtracking when one fails. [Parse] does both with the defaults:
//
//	nodes, err := markdown.Parse(text)
//	...
//	md, err := markdown.ToMarkdown(nodes)
//
// The dialect has headings, paragraphs, block quotes ("> "),
// admonitions ("| "), fenced code blocks, ordered ("1) " or "1. ")
// and unordered ("* ", "- " or "+ ") lists, thematic breaks,
// code spans, and seven emphasis styles, each with its own marker:
//
//	/italics/  *bold*  _underline_  =highlight=
//	-strikethrough-  ~subscript~  ^superscript^
//
// Every token of the input is kept in exactly one node,
// so the source of any node can be recovered from its tokens.
// The exception is input made only of blank lines, which yields no nodes.
//
// [ResolveEmphasis] implements the flanking-aware CommonMark emphasis
// algorithm over raw text, for callers such as live highlighters that
// need emphasis ranges without building a tree.
package markdown
