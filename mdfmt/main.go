// Copyright 2024 The Peeknotes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Mdfmt reformats Markdown data.
//
// Usage:
//
//	mdfmt [-w] [-l] [file...]
//
// Mdfmt reads the named files, or else standard input, as Markdown documents
// and then reprints the same Markdown documents in canonical form
// to standard output.
//
// The -w flag specifies to rewrite the files in place.
// The -l flag lists the files whose formatting differs from the canonical form.
//
// Settings are also read from markdownkit.yaml and MARKDOWNKIT_* environment
// variables; see the normalize and log_level keys.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/peeknotes/markdown"
	"github.com/peeknotes/markdown/internal/cli"
)

var (
	wflag = flag.Bool("w", false, "write reformatted Markdown to files")
	lflag = flag.Bool("l", false, "list files whose formatting differs")
	_     = flag.String("log-level", "", "log level (trace, debug, info, warn, error)")
	exit  = 0
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: mdfmt [-w] [-l] [file...]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	flag.Usage = usage
	flag.Parse()

	cfg, err := cli.Load(flag.CommandLine)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mdfmt: %v\n", err)
		os.Exit(2)
	}
	log := cfg.Logger("mdfmt", os.Stderr)

	if flag.NArg() == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal().Err(err).Msg("reading standard input")
		}
		convert(os.Stdout, cfg, &log, data, "")
	} else {
		for _, file := range flag.Args() {
			data, err := os.ReadFile(file)
			if err != nil {
				log.Error().Err(err).Send()
				exit = 1
				continue
			}
			convert(os.Stdout, cfg, &log, data, file)
		}
	}
	os.Exit(exit)
}

// convert formats data, read from file or from standard input if file is empty,
// and writes the result or the file name to w as the flags direct.
func convert(w io.Writer, cfg cli.Config, log *zerolog.Logger, data []byte, file string) {
	out, err := format(cfg, log, data)
	if err != nil {
		log.Error().Err(err).Str("file", file).Msg("formatting")
		exit = 1
		return
	}
	switch {
	case *lflag:
		if out != string(data) {
			name := file
			if name == "" {
				name = "<stdin>"
			}
			fmt.Fprintln(w, name)
		}
	case *wflag && file != "":
		if err := os.WriteFile(file, []byte(out), 0666); err != nil {
			log.Error().Err(err).Send()
			exit = 1
		}
	default:
		io.WriteString(w, out)
	}
}

// format returns the canonical Markdown for data.
func format(cfg cli.Config, log *zerolog.Logger, data []byte) (string, error) {
	p := markdown.Parser{Log: log}
	nodes, err := p.Parse(markdown.Tokenize(cfg.Input(data)))
	if err != nil {
		return "", err
	}
	return markdown.ToMarkdown(nodes)
}
