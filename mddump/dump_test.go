// Copyright 2024 The Peeknotes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/peeknotes/markdown"
)

func TestDumpTree(t *testing.T) {
	out, err := dump("tree", "# a", &markdown.Parser{})
	require.NoError(t, err)
	require.Equal(t, "Heading(1)\n\tParagraph\n\t\tText(\"a\")\n", string(out))
}

func TestDumpYAML(t *testing.T) {
	out, err := dump("yaml", "> *b*\n", &markdown.Parser{})
	require.NoError(t, err)
	var got []yamlNode
	require.NoError(t, yaml.Unmarshal(out, &got))
	want := []yamlNode{{
		Kind:      "Container",
		Container: "blockquote",
		Span:      [2]int{0, 6},
		Children: []yamlNode{{
			Kind: "Paragraph",
			Span: [2]int{2, 5},
			Children: []yamlNode{{
				Kind:     "Emphasis",
				Emphasis: "bold",
				Span:     [2]int{2, 5},
				Children: []yamlNode{{Kind: "Text", Text: "b", Span: [2]int{3, 4}}},
			}},
		}},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("yaml mismatch (-want +got):\n%s", diff)
	}
}

func TestDumpBlocks(t *testing.T) {
	out, err := dump("blocks", "## T\n\n---\n", &markdown.Parser{})
	require.NoError(t, err)
	var got []yamlBlock
	require.NoError(t, yaml.Unmarshal(out, &got))
	require.Len(t, got, 2)
	require.NotEqual(t, got[0].ID, got[1].ID)
	for i := range got {
		got[i].ID = ""
	}
	require.Equal(t, []yamlBlock{
		{Kind: "heading", Level: 2, Text: "T"},
		{Kind: "thematicBreak", Break: "line"},
	}, got)
}

func TestDumpEmphasis(t *testing.T) {
	out, err := dump("emphasis", "a *b* c", nil)
	require.NoError(t, err)
	var got []yamlEmphasis
	require.NoError(t, yaml.Unmarshal(out, &got))
	require.Equal(t, []yamlEmphasis{{Char: "*", Strength: 1, Opener: [2]int{2, 3}, Closer: [2]int{4, 5}, Content: "b"}}, got)
}

func TestDumpTokens(t *testing.T) {
	out, err := dump("tokens", "# a\n", nil)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(out), "\n"), "\n")
	require.Equal(t, []string{"hashtag@0:1", "whitespace@1:2", `text("a")@2:3`, "lineFeed@3:4"}, lines)
}

func TestDumpUnknownFormat(t *testing.T) {
	_, err := dump("xml", "a", &markdown.Parser{})
	require.ErrorContains(t, err, "unknown format")
}
