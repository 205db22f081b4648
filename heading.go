// Copyright 2024 The Peeknotes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// maxHeadingLevel is the deepest heading level, as in "###### Title".
const maxHeadingLevel = 6

// readHeading reads a heading: optional whitespace, one to six #s,
// one whitespace, and the rest of the line as content.
// The line feed ending the heading belongs to the heading itself.
func readHeading(r *reader) (Variant, []Token, bool) {
	r.readCount(whitespace, 0)
	level := r.readCount(hashtag, maxHeadingLevel)
	if level == 0 || !r.read(whitespace) {
		// A seventh # lands here too: it is not whitespace.
		return Variant{}, nil, false
	}
	content, _ := r.readUntil(true, true, lineFeed)
	content = trimRightTokens(content, lineFeed)
	return Variant{Kind: KindHeading, Level: level}, content, true
}

// headingMarkdown renders a heading from its serialized children.
func headingMarkdown(level int, children []string) string {
	level = max(1, min(maxHeadingLevel, level))
	return hashes[:level] + " " + trimNewlines(join(children)) + "\n\n"
}

const hashes = "######"
