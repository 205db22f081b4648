// Copyright 2024 The Peeknotes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func text(s string) TokenVariant { return TokenVariant{Kind: TokText, Text: s} }

func number(n uint64) TokenVariant { return TokenVariant{Kind: TokNumber, Num: n} }

func escaped(s string) TokenVariant { return TokenVariant{Kind: TokEscaped, Text: s} }

func variants(toks []Token) []TokenVariant {
	var vs []TokenVariant
	for _, t := range toks {
		vs = append(vs, t.TokenVariant)
	}
	return vs
}

var tokenizeTests = []struct {
	in   string
	want []TokenVariant
}{
	{"", nil},
	{"aaa\n\nbbb", []TokenVariant{text("aaa"), lineFeed, lineFeed, text("bbb")}},
	{"hello `wonderful", []TokenVariant{text("hello"), whitespace, backtick, text("wonderful")}},
	{"a\r\nb", []TokenVariant{text("a"), lineFeed, text("b")}},
	{"a\rb", []TokenVariant{text("a\rb")}},
	{"\t x", []TokenVariant{whitespace, whitespace, text("x")}},
	{`\*a\q`, []TokenVariant{escaped("*"), text(`a\q`)}},
	{`\\`, []TokenVariant{escaped(`\`)}},
	{`x\`, []TokenVariant{text(`x\`)}},
	{"12. 3)", []TokenVariant{number(12), period, whitespace, number(3), closingBracket}},
	{"007", []TokenVariant{number(7)}},
	{"99999999999999999999x", []TokenVariant{text("99999999999999999999x")}},
	{"#>|+", []TokenVariant{hashtag, greaterThan, pipe, plus}},
	{"/*_=-~^", []TokenVariant{
		emphasis(Italics), emphasis(Bold), emphasis(Underline), emphasis(Highlight),
		emphasis(Strikethrough), emphasis(Subscript), emphasis(Superscript),
	}},
	{"héllo wörld", []TokenVariant{text("héllo"), whitespace, text("wörld")}},
	{"a(b)", []TokenVariant{text("a(b"), closingBracket}},
}

func TestTokenize(t *testing.T) {
	for _, tt := range tokenizeTests {
		toks := Tokenize(tt.in)
		if diff := cmp.Diff(tt.want, variants(toks)); diff != "" {
			t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
		// The tokens tile the input.
		end := 0
		for _, tok := range toks {
			if tok.Start != end || tok.End <= tok.Start {
				t.Errorf("Tokenize(%q): token %v does not start at %d", tt.in, tok, end)
			}
			end = tok.End
		}
		if end != len(tt.in) {
			t.Errorf("Tokenize(%q): tokens end at %d, want %d", tt.in, end, len(tt.in))
		}
	}
}

func TestTokenizeOffsets(t *testing.T) {
	want := []Token{
		{TokenVariant: text("aaa"), Start: 0, End: 3},
		{TokenVariant: lineFeed, Start: 3, End: 5},
		{TokenVariant: lineFeed, Start: 5, End: 6},
		{TokenVariant: text("bbb"), Start: 6, End: 9},
	}
	if diff := cmp.Diff(want, Tokenize("aaa\r\n\nbbb")); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenMarkdown(t *testing.T) {
	in := "# a\t*b* 0042) `c` \\_"
	want := "# a *b* 42) `c` \\_"
	if got := tokensMarkdown(Tokenize(in)); got != want {
		t.Errorf("tokensMarkdown(Tokenize(%q)) = %q, want %q", in, got, want)
	}
}

func TestEmphasisFor(t *testing.T) {
	for _, e := range EmphasisVariants {
		if got := emphasisFor(e.Marker()); got != e {
			t.Errorf("emphasisFor(%q) = %v, want %v", e.Marker(), got, e)
		}
	}
	if got := emphasisFor('a'); got != 0 {
		t.Errorf("emphasisFor('a') = %v, want 0", got)
	}
}
