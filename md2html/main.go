// Copyright 2024 The Peeknotes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Md2html converts Markdown to HTML.
//
// Usage:
//
//	md2html [-heading-ids] [file...]
//
// Md2html reads the named files, or else standard input, as Markdown documents
// and then prints the corresponding HTML to standard output.
//
// The -heading-ids flag adds an id attribute to every heading.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/peeknotes/markdown"
	"github.com/peeknotes/markdown/internal/cli"
)

var (
	_ = flag.Bool("heading-ids", false, "add id attributes to headings")
	_ = flag.String("log-level", "", "log level (trace, debug, info, warn, error)")
)

func main() {
	flag.Parse()
	cfg, err := cli.Load(flag.CommandLine)
	if err != nil {
		fmt.Fprintf(os.Stderr, "md2html: %v\n", err)
		os.Exit(2)
	}
	log := cfg.Logger("md2html", os.Stderr)

	args := flag.Args()
	if len(args) == 0 {
		do(cfg, &log, os.Stdin)
	} else {
		for _, arg := range args {
			f, err := os.Open(arg)
			if err != nil {
				log.Fatal().Err(err).Send()
			}
			do(cfg, &log, f)
			f.Close()
		}
	}
}

func do(cfg cli.Config, log *zerolog.Logger, f *os.File) {
	data, err := io.ReadAll(f)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	html, err := toHTML(cfg, log, data)
	if err != nil {
		log.Fatal().Err(err).Str("file", f.Name()).Send()
	}
	os.Stdout.WriteString(html)
}

// toHTML converts Markdown to HTML.
func toHTML(cfg cli.Config, log *zerolog.Logger, md []byte) (string, error) {
	p := markdown.Parser{Log: log}
	nodes, err := p.Parse(markdown.Tokenize(cfg.Input(replaceTabs(md))))
	if err != nil {
		return "", err
	}
	r := markdown.HTMLRenderer{HeadingIDs: cfg.HeadingIDs}
	return r.Render(nodes)
}

// replaceTabs replaces all tabs in text with spaces up to a 4-space tab stop.
//
// A tab is a single whitespace to the parser, so a tab-indented
// continuation line of a list item would otherwise lose its indentation.
//
// This function does not handle multi-codepoint Unicode sequences correctly.
func replaceTabs(text []byte) []byte {
	var buf bytes.Buffer
	col := 0
	for len(text) > 0 {
		r, size := utf8.DecodeRune(text)
		text = text[size:]

		switch r {
		case '\n':
			buf.WriteByte('\n')
			col = 0

		case '\t':
			buf.WriteByte(' ')
			col++
			for col%4 != 0 {
				buf.WriteByte(' ')
				col++
			}

		default:
			buf.WriteRune(r)
			col++
		}
	}
	return buf.Bytes()
}
