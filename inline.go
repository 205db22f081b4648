// Copyright 2024 The Peeknotes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// readEmphasis reads emphasis of style e: its marker, everything up to the
// next copy of the same marker, and that closing marker.
// Flanking is not considered; see [ResolveEmphasis] for that.
func readEmphasis(r *reader, e EmphasisVariant) (Variant, []Token, bool) {
	m := emphasis(e)
	if !r.read(m) {
		return Variant{}, nil, false
	}
	content, ok := r.readUntil(true, false, m)
	if !ok {
		return Variant{}, nil, false
	}
	return Variant{Kind: KindEmphasis, Emphasis: e}, content[:len(content)-1], true
}

// readText reads any single token as text.
func readText(r *reader) (Variant, []Token, bool) {
	t, ok := r.advance()
	if !ok {
		return Variant{}, nil, false
	}
	return Variant{Kind: KindText, Content: t.TokenVariant}, nil, true
}

// readVerbatimText reads any single token as literal text.
// Inside code an escape is not an escape: the backslash
// is kept as part of the text.
func readVerbatimText(r *reader) (Variant, []Token, bool) {
	t, ok := r.advance()
	if !ok {
		return Variant{}, nil, false
	}
	v := t.TokenVariant
	if v.Kind == TokEscaped {
		v = TokenVariant{Kind: TokText, Text: v.Markdown()}
	}
	return Variant{Kind: KindVerbatimText, Content: v}, nil, true
}

// emphasisMarkdown renders emphasis around its serialized children.
func emphasisMarkdown(e EmphasisVariant, text string) string {
	m := string(e.Marker())
	return m + text + m
}
