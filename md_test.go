// Copyright 2024 The Peeknotes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"bytes"
	"flag"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	ghtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/tools/txtar"
)

var goldmarkFlag = flag.Bool("goldmark", false, "compare HTML with goldmark where the archive allows it")

// A goldenCase is one document in a testdata archive,
// with the outputs it is expected to produce.
// Missing outputs are not checked.
type goldenCase struct {
	name string
	md   string
	want map[string]string // by extension: tree, fmt, html
}

// options are the per-archive settings read from the archive comment.
type options struct {
	HeadingIDs bool
	Goldmark   bool
}

func Test(t *testing.T) {
	files, err := filepath.Glob("testdata/*.txt")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no testdata")
	}
	for _, file := range files {
		t.Run(strings.TrimSuffix(filepath.Base(file), ".txt"), func(t *testing.T) {
			a, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatal(err)
			}
			var opt options
			if err := setOptions(&opt, a.Comment); err != nil {
				t.Fatal(err)
			}
			cases, err := goldenCases(a)
			if err != nil {
				t.Fatal(err)
			}
			for _, c := range cases {
				t.Run(c.name, func(t *testing.T) {
					testGolden(t, &opt, c)
				})
				if *goldmarkFlag && opt.Goldmark && c.want["html"] != "" {
					t.Run("goldmark/"+c.name, func(t *testing.T) {
						testGoldmark(t, c)
					})
				}
			}
		})
	}
}

// goldenCases groups the archive files by base name.
// Every group must start with its .md file.
func goldenCases(a *txtar.Archive) ([]*goldenCase, error) {
	var cases []*goldenCase
	for _, f := range a.Files {
		name, ext, ok := strings.Cut(f.Name, ".")
		if !ok {
			return nil, fmt.Errorf("file %s has no extension", f.Name)
		}
		if ext == "md" {
			cases = append(cases, &goldenCase{name: name, md: decode(string(f.Data)), want: make(map[string]string)})
			continue
		}
		if len(cases) == 0 || cases[len(cases)-1].name != name {
			return nil, fmt.Errorf("file %s does not follow %s.md", f.Name, name)
		}
		switch ext {
		case "tree", "fmt", "html":
		default:
			return nil, fmt.Errorf("file %s has unknown extension", f.Name)
		}
		cases[len(cases)-1].want[ext] = string(f.Data)
	}
	return cases, nil
}

func testGolden(t *testing.T, opt *options, c *goldenCase) {
	nodes, err := Parse(c.md)
	if err != nil {
		t.Fatalf("Parse(%q): %v", c.md, err)
	}
	tree := Dump(nodes)
	if want, ok := c.want["tree"]; ok && tree != want {
		t.Errorf("input %q\nhave tree:\n%s\nwant tree:\n%s", c.md, tree, want)
	}
	if want, ok := c.want["fmt"]; ok {
		md, err := ToMarkdown(nodes)
		if err != nil {
			t.Fatalf("ToMarkdown: %v", err)
		}
		if have := encode(md); have != want {
			t.Errorf("input %q\nparse:\n%s\nhave markdown %q\nwant markdown %q", c.md, tree, have, want)
		}
		// The formatted text must parse back to the same tree.
		again, err := Parse(md)
		if err != nil {
			t.Fatalf("Parse(%q): %v", md, err)
		}
		if have := Dump(again); have != tree {
			t.Errorf("reparse of %q\nhave:\n%s\nwant:\n%s", md, have, tree)
		}
	}
	if want, ok := c.want["html"]; ok {
		r := HTMLRenderer{HeadingIDs: opt.HeadingIDs}
		h, err := r.Render(nodes)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		if have := encode(h); have != want {
			t.Errorf("input %q\nparse:\n%s\nhave html %q\nwant html %q", c.md, tree, have, want)
		}
	}
}

func testGoldmark(t *testing.T, c *goldenCase) {
	gm := goldmark.New(goldmark.WithRendererOptions(ghtml.WithUnsafe()))
	var buf bytes.Buffer
	if err := gm.Convert([]byte(c.md), &buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() > 0 && buf.Bytes()[buf.Len()-1] != '\n' {
		buf.WriteByte('\n')
	}
	want := strings.ReplaceAll(c.want["html"], " />", ">")
	out := strings.ReplaceAll(encode(buf.String()), " />", ">")
	if out != want {
		t.Fatalf("\n    - input: ``%q``\n    - output: ``%q``\n    - golden: ``%q``", c.md, out, want)
	}
}

func decode(s string) string {
	s = strings.ReplaceAll(s, "^J\n", "\n")
	s = strings.ReplaceAll(s, "^M", "\r")
	s = strings.ReplaceAll(s, "^D\n", "")
	s = strings.ReplaceAll(s, "^@", "\x00")
	return s
}

func encode(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "^M\n")
	s = strings.ReplaceAll(s, "\r", "^M^D\n")
	s = strings.ReplaceAll(s, " \n", " ^J\n")
	s = strings.ReplaceAll(s, "\t\n", "\t^J\n")
	s = strings.ReplaceAll(s, "\x00", "^@")
	if s != "" && !strings.HasSuffix(s, "\n") {
		s += "^D\n"
	}
	return s
}

// setOptions extracts lines of the form
//
//	key: value
//
// from data and sets the corresponding options.
func setOptions(opt *options, data []byte) error {
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "//") {
			continue
		}
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("option %s: %v", key, err)
		}
		switch key {
		case "HeadingIDs":
			opt.HeadingIDs = b
		case "Goldmark":
			opt.Goldmark = b
		default:
			return fmt.Errorf("unknown option: %q", key)
		}
	}
	return nil
}
