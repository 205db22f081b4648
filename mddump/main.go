// Copyright 2024 The Peeknotes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Mddump prints the structure of Markdown documents.
//
// Usage:
//
//	mddump [-format f] [file...]
//
// Mddump reads the named files, or else standard input, and prints
// one of the following, chosen by -format:
//
//	tree      an indented outline of the syntax tree (the default)
//	yaml      the syntax tree as YAML
//	blocks    the flat list of displayable blocks as YAML
//	emphasis  the emphasis found by the delimiter-run algorithm, as YAML
//	tokens    the token stream, one token per line
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/peeknotes/markdown"
	"github.com/peeknotes/markdown/internal/cli"
)

var (
	_ = flag.String("format", "", "output format: tree, yaml, blocks, emphasis, tokens")
	_ = flag.String("log-level", "", "log level (trace, debug, info, warn, error)")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: mddump [-format f] [file...]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	flag.Usage = usage
	flag.Parse()
	cfg, err := cli.Load(flag.CommandLine)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mddump: %v\n", err)
		os.Exit(2)
	}
	log := cfg.Logger("mddump", os.Stderr)

	var inputs [][]byte
	if flag.NArg() == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal().Err(err).Msg("reading standard input")
		}
		inputs = append(inputs, data)
	}
	for _, file := range flag.Args() {
		data, err := os.ReadFile(file)
		if err != nil {
			log.Fatal().Err(err).Send()
		}
		inputs = append(inputs, data)
	}

	for _, data := range inputs {
		p := markdown.Parser{Log: &log}
		out, err := dump(cfg.Format, cfg.Input(data), &p)
		if err != nil {
			log.Fatal().Err(err).Send()
		}
		os.Stdout.Write(out)
	}
}
