// Copyright 2024 The Peeknotes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// isPunct reports whether c is Markdown punctuation.
func isPunct(c byte) bool {
	return '!' <= c && c <= '/' || ':' <= c && c <= '@' || '[' <= c && c <= '`' || '{' <= c && c <= '~'
}

// isDigit reports whether c is an ASCII digit.
func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isUnicodeSpace reports whether r is a Unicode space as defined by Markdown.
// This is not the same as unicode.IsSpace.
// For example, U+0085 does not satisfy isUnicodeSpace
// but does satisfy unicode.IsSpace.
func isUnicodeSpace(r rune) bool {
	if r < 0x80 {
		return r == ' ' || r == '\t' || r == '\f' || r == '\n'
	}
	return unicode.In(r, unicode.Zs)
}

// isUnicodePunct reports whether r is Unicode punctuation as defined by Markdown.
// This is not the same as unicode.Punct; it also includes unicode.Symbol.
func isUnicodePunct(r rune) bool {
	if r < 0x80 {
		return isPunct(byte(r))
	}
	return unicode.In(r, unicode.Punct, unicode.Symbol)
}

// Tokenize splits text into tokens.
// It never fails: any character that starts no other token
// becomes text, and adjacent text is merged into a single token.
func Tokenize(text string) []Token {
	var toks []Token
	for i := 0; i < len(text); {
		v, n := lexToken(text[i:])
		if v.Kind == TokText && len(toks) > 0 {
			if last := &toks[len(toks)-1]; last.Kind == TokText {
				last.End = i + n
				last.Text = text[last.Start:last.End]
				i += n
				continue
			}
		}
		toks = append(toks, Token{TokenVariant: v, Start: i, End: i + n})
		i += n
	}
	return toks
}

// lexToken returns the variant and length of the token at the start of s,
// which must be non-empty.
// The cases are tried in order; the first match wins.
func lexToken(s string) (TokenVariant, int) {
	switch c := s[0]; c {
	case '\r':
		if len(s) > 1 && s[1] == '\n' {
			return lineFeed, 2
		}
	case '\n':
		return lineFeed, 1
	case '\\':
		if len(s) > 1 && isPunct(s[1]) {
			return TokenVariant{Kind: TokEscaped, Text: s[1:2]}, 2
		}
	case ' ', '\t':
		return whitespace, 1
	case '`':
		return backtick, 1
	case '#':
		return hashtag, 1
	case '>':
		return greaterThan, 1
	case '|':
		return pipe, 1
	case '+':
		return plus, 1
	case ')':
		return closingBracket, 1
	case '.':
		return period, 1
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		n := 1
		for n < len(s) && isDigit(s[n]) {
			n++
		}
		if num, err := strconv.ParseUint(s[:n], 10, 64); err == nil {
			return TokenVariant{Kind: TokNumber, Num: num}, n
		}
		// Too large for a number: keep the digits as text.
		return TokenVariant{Kind: TokText, Text: s[:n]}, n
	default:
		if e := emphasisFor(c); e != 0 {
			return emphasis(e), 1
		}
	}
	_, n := utf8.DecodeRuneInString(s)
	return TokenVariant{Kind: TokText, Text: s[:n]}, n
}
