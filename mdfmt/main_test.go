// Copyright 2024 The Peeknotes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/peeknotes/markdown/internal/cli"
)

func TestFormat(t *testing.T) {
	log := zerolog.Nop()
	cfg := cli.Config{Normalize: true}
	for _, tt := range []struct{ in, want string }{
		{"#   Title\nText\n", "# Title\n\nText\n\n"},
		{"- a\n- b\n\n\n\n+ c", "* a\n* b\n* c\n"},
		{"> a\nb", "> a\n> b\n\n"},
		{"Cafe\u0301", "Caf\u00e9\n\n"},
	} {
		out, err := format(cfg, &log, []byte(tt.in))
		require.NoError(t, err)
		require.Equal(t, tt.want, out, "format(%q)", tt.in)
	}
}

func TestConvertList(t *testing.T) {
	defer func(l bool) { *lflag = l }(*lflag)
	*lflag = true
	log := zerolog.Nop()
	for _, tt := range []struct{ in, file, want string }{
		{"#  a", "", "<stdin>\n"},
		{"#  a", "a.md", "a.md\n"},
		{"# a\n\n", "a.md", ""},
	} {
		var buf bytes.Buffer
		convert(&buf, cli.Config{}, &log, []byte(tt.in), tt.file)
		require.Equal(t, tt.want, buf.String(), "convert(%q, %q)", tt.in, tt.file)
	}
}
