// Copyright 2024 The Peeknotes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func newReader(s string) *reader {
	return &reader{toks: Tokenize(s)}
}

func TestReaderRead(t *testing.T) {
	r := newReader("##  # x")
	require.False(t, r.read(whitespace))
	require.Equal(t, 0, r.i)
	require.Equal(t, 2, r.readCount(hashtag, 0))
	require.Equal(t, 1, r.readCount(whitespace, 1))
	require.True(t, r.peek(whitespace))
	_, ok := r.readAny(hashtag, whitespace)
	require.True(t, ok)
	require.Equal(t, 1, r.readCount(hashtag, 0))
	tok, ok := r.advance()
	require.True(t, ok)
	require.Equal(t, whitespace, tok.TokenVariant)
	tok, ok = r.advance()
	require.True(t, ok)
	require.Equal(t, text("x"), tok.TokenVariant)
	require.True(t, r.eof())
	_, ok = r.advance()
	require.False(t, ok)
	_, ok = r.readAny(hashtag)
	require.False(t, ok)
}

func TestReadUntil(t *testing.T) {
	r := newReader("a b\nc")
	toks, ok := r.readUntil(false, false, lineFeed)
	require.True(t, ok)
	require.Equal(t, []TokenVariant{text("a"), whitespace, text("b")}, variants(toks))
	require.True(t, r.peek(lineFeed))

	r = newReader("a b\nc")
	toks, ok = r.readUntil(true, false, lineFeed)
	require.True(t, ok)
	require.Len(t, toks, 4)
	require.Equal(t, text("c"), r.current().TokenVariant)

	r = newReader("a b")
	_, ok = r.readUntil(true, false, lineFeed)
	require.False(t, ok)
	require.Equal(t, 0, r.i, "failed readUntil moved the reader")

	toks, ok = r.readUntil(true, true, lineFeed)
	require.True(t, ok)
	require.Len(t, toks, 3)
	require.True(t, r.eof())
}

func TestReadBlankLine(t *testing.T) {
	for _, tt := range []struct {
		in   string
		ok   bool
		next int // reader position after the call
	}{
		{"\n\nx", true, 2},
		{"\n \t\nx", true, 4},
		{"\n", true, 1},
		{"\n  ", true, 3},
		{"\nx", false, 0},
		{"\n  x", false, 0},
		{"x", false, 0},
		{"", false, 0},
	} {
		r := newReader(tt.in)
		if ok := r.readBlankLine(); ok != tt.ok || r.i != tt.next {
			t.Errorf("readBlankLine(%q) = %v at %d, want %v at %d", tt.in, ok, r.i, tt.ok, tt.next)
		}
	}
}

func TestSkipBlankLines(t *testing.T) {
	r := newReader("\n  \n\t\n  x\n")
	r.skipBlankLines()
	require.Equal(t, 6, r.i)
	require.True(t, r.peek(whitespace))
}

func TestNextLine(t *testing.T) {
	r := newReader("a\nb c\n  \nd")
	line, blank := r.nextLine()
	require.False(t, blank)
	require.Equal(t, []TokenVariant{text("a"), lineFeed}, variants(line))

	line, blank = r.nextLine()
	require.True(t, blank)
	require.Equal(t, []TokenVariant{text("b"), whitespace, text("c")}, variants(line))
	require.Equal(t, text("d"), r.current().TokenVariant)

	line, blank = r.nextLine()
	require.False(t, blank)
	require.Equal(t, []TokenVariant{text("d")}, variants(line))
	require.True(t, r.eof())

	r = newReader("x\n")
	_, blank = r.nextLine()
	require.True(t, blank, "a final line feed ends a blank line")
	require.True(t, r.eof())
}

func TestAttempt(t *testing.T) {
	r := newReader("  x")
	require.False(t, r.attempt(func(r *reader) bool { return r.readCount(whitespace, 0) == 3 }))
	require.Equal(t, 0, r.i)
	require.True(t, r.attempt(func(r *reader) bool { return r.readCount(whitespace, 0) == 2 }))
	require.Equal(t, 2, r.i)
}

func TestSince(t *testing.T) {
	r := newReader("a b")
	start := *r
	_, ok := r.since(start)
	require.False(t, ok, "empty range")
	r.advance()
	r.advance()
	toks, ok := r.since(start)
	require.True(t, ok)
	require.Equal(t, []TokenVariant{text("a"), whitespace}, variants(toks))
}

func TestTrimTokens(t *testing.T) {
	toks := Tokenize("\n  a b \n")
	got := variants(trimTokens(toks, whitespace, lineFeed))
	if diff := cmp.Diff([]TokenVariant{text("a"), whitespace, text("b")}, got); diff != "" {
		t.Errorf("trimTokens mismatch (-want +got):\n%s", diff)
	}
	got = variants(trimRightTokens(toks, lineFeed))
	require.Len(t, got, 7)
	require.Empty(t, trimTokens(Tokenize(" \n "), whitespace, lineFeed))
}
