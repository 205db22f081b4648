// Copyright 2024 The Peeknotes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"fmt"
	"strconv"
)

// A TokenKind identifies the lexical class of a [Token].
type TokenKind uint8

const (
	TokLineFeed TokenKind = iota
	TokWhitespace
	TokBacktick
	TokHashtag
	TokGreaterThan
	TokPipe
	TokPlus
	TokClosingBracket
	TokPeriod
	TokNumber
	TokEmphasis
	TokEscaped
	TokText
)

var tokenKindNames = [...]string{
	TokLineFeed:       "lineFeed",
	TokWhitespace:     "whitespace",
	TokBacktick:       "backtick",
	TokHashtag:        "hashtag",
	TokGreaterThan:    "greaterThan",
	TokPipe:           "pipe",
	TokPlus:           "plus",
	TokClosingBracket: "closingBracket",
	TokPeriod:         "period",
	TokNumber:         "number",
	TokEmphasis:       "emphasis",
	TokEscaped:        "escapedText",
	TokText:           "text",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "TokenKind(" + strconv.Itoa(int(k)) + ")"
}

// An EmphasisVariant is one of the seven inline emphasis styles.
// Each style has its own marker character.
type EmphasisVariant uint8

const (
	Italics       EmphasisVariant = iota + 1 // /
	Bold                                     // *
	Underline                                // _
	Highlight                                // =
	Strikethrough                            // -
	Subscript                                // ~
	Superscript                              // ^
)

// EmphasisVariants lists every emphasis style in parsing priority order.
var EmphasisVariants = []EmphasisVariant{Italics, Bold, Underline, Highlight, Strikethrough, Subscript, Superscript}

var emphasisMarkers = [...]byte{
	Italics:       '/',
	Bold:          '*',
	Underline:     '_',
	Highlight:     '=',
	Strikethrough: '-',
	Subscript:     '~',
	Superscript:   '^',
}

var emphasisNames = [...]string{
	Italics:       "italics",
	Bold:          "bold",
	Underline:     "underline",
	Highlight:     "highlight",
	Strikethrough: "strikethrough",
	Subscript:     "subscript",
	Superscript:   "superscript",
}

// Marker returns the marker character for e.
func (e EmphasisVariant) Marker() byte {
	if e == 0 || int(e) >= len(emphasisMarkers) {
		return 0
	}
	return emphasisMarkers[e]
}

func (e EmphasisVariant) String() string {
	if e == 0 || int(e) >= len(emphasisNames) {
		return "EmphasisVariant(" + strconv.Itoa(int(e)) + ")"
	}
	return emphasisNames[e]
}

// emphasisFor returns the emphasis variant using marker c, or 0.
func emphasisFor(c byte) EmphasisVariant {
	for e, m := range emphasisMarkers {
		if m == c && m != 0 {
			return EmphasisVariant(e)
		}
	}
	return 0
}

// A TokenVariant is the payload of a [Token]: its kind plus
// the text of escaped and plain text tokens, the value of numbers,
// and the style of emphasis markers.
// Two variants are equal exactly when they compare equal with ==.
type TokenVariant struct {
	Kind TokenKind
	Text string          // TokText, TokEscaped (the escaped character)
	Num  uint64          // TokNumber
	Emph EmphasisVariant // TokEmphasis
}

// A Token is a lexical unit of a document: a variant
// and the byte range src[Start:End] it was lexed from.
type Token struct {
	TokenVariant
	Start int
	End   int
}

var (
	lineFeed       = TokenVariant{Kind: TokLineFeed}
	whitespace     = TokenVariant{Kind: TokWhitespace}
	backtick       = TokenVariant{Kind: TokBacktick}
	hashtag        = TokenVariant{Kind: TokHashtag}
	greaterThan    = TokenVariant{Kind: TokGreaterThan}
	pipe           = TokenVariant{Kind: TokPipe}
	plus           = TokenVariant{Kind: TokPlus}
	closingBracket = TokenVariant{Kind: TokClosingBracket}
	period         = TokenVariant{Kind: TokPeriod}
)

// emphasis returns the token variant for the marker of e.
func emphasis(e EmphasisVariant) TokenVariant {
	return TokenVariant{Kind: TokEmphasis, Emph: e}
}

// Markdown returns the canonical Markdown text for v.
// Whitespace is always a single space, and numbers lose leading zeros.
func (v TokenVariant) Markdown() string {
	switch v.Kind {
	case TokLineFeed:
		return "\n"
	case TokWhitespace:
		return " "
	case TokBacktick:
		return "`"
	case TokHashtag:
		return "#"
	case TokGreaterThan:
		return ">"
	case TokPipe:
		return "|"
	case TokPlus:
		return "+"
	case TokClosingBracket:
		return ")"
	case TokPeriod:
		return "."
	case TokNumber:
		return strconv.FormatUint(v.Num, 10)
	case TokEmphasis:
		return string(v.Emph.Marker())
	case TokEscaped:
		return `\` + v.Text
	case TokText:
		return v.Text
	}
	return ""
}

func (v TokenVariant) String() string {
	switch v.Kind {
	case TokNumber:
		return fmt.Sprintf("number(%d)", v.Num)
	case TokEmphasis:
		return fmt.Sprintf("emphasis(%v)", v.Emph)
	case TokEscaped, TokText:
		return fmt.Sprintf("%v(%q)", v.Kind, v.Text)
	}
	return v.Kind.String()
}

func (t Token) String() string {
	return fmt.Sprintf("%v@%d:%d", t.TokenVariant, t.Start, t.End)
}

// tokensMarkdown returns the concatenated Markdown text of toks.
func tokensMarkdown(toks []Token) string {
	var b []byte
	for _, t := range toks {
		b = append(b, t.Markdown()...)
	}
	return string(b)
}
