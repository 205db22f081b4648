// Copyright 2024 The Peeknotes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var delimiterRunTests = []struct {
	in   string
	want []DelimiterRun
}{
	{"a*b", []DelimiterRun{{'*', Range{1, 2}, true, true}}},
	{"c***", []DelimiterRun{{'*', Range{1, 4}, false, true}}},
	{"**a", []DelimiterRun{{'*', Range{0, 2}, true, false}}},
	{"a * b", []DelimiterRun{{'*', Range{2, 3}, false, false}}},
	{"\"_a", []DelimiterRun{{'_', Range{1, 2}, true, false}}},
	{"a_\"", []DelimiterRun{{'_', Range{1, 2}, false, true}}},
	{"a_.b", []DelimiterRun{{'_', Range{1, 2}, false, true}}},
	{"*_", []DelimiterRun{{'*', Range{0, 1}, true, false}, {'_', Range{1, 2}, false, true}}},
	{"~~x~~", []DelimiterRun{{'~', Range{0, 2}, true, false}, {'~', Range{3, 5}, false, true}}},
	{"é*ü", []DelimiterRun{{'*', Range{2, 3}, true, true}}},
	{"no delimiters here", nil},
}

func TestDelimiterRuns(t *testing.T) {
	for _, tt := range delimiterRunTests {
		if diff := cmp.Diff(tt.want, DelimiterRuns(tt.in)); diff != "" {
			t.Errorf("DelimiterRuns(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

var resolveTests = []struct {
	in   string
	want []Emphasis
}{
	{"a*b *c* d", []Emphasis{{Range{4, 5}, Range{6, 7}, Range{5, 6}, '*', 1}}},
	{"c***", nil},
	{"**a**", []Emphasis{{Range{0, 2}, Range{3, 5}, Range{2, 3}, '*', 2}}},
	{"***a***", []Emphasis{
		{Range{1, 3}, Range{4, 6}, Range{3, 4}, '*', 2},
		{Range{0, 1}, Range{6, 7}, Range{1, 6}, '*', 1},
	}},
	{"==a==", []Emphasis{{Range{0, 2}, Range{3, 5}, Range{2, 3}, '=', 2}}},
	{"=a=", nil},
	{"===a===", nil},
	{"_a *b_ c*", []Emphasis{{Range{0, 1}, Range{5, 6}, Range{1, 5}, '_', 1}}},
	{"*a _b* c_", []Emphasis{{Range{0, 1}, Range{5, 6}, Range{1, 5}, '*', 1}}},
	{"~a~ ~~b~~", []Emphasis{
		{Range{0, 1}, Range{2, 3}, Range{1, 2}, '~', 1},
		{Range{4, 6}, Range{7, 9}, Range{6, 7}, '~', 2},
	}},
	{"*a **b** c*", []Emphasis{
		{Range{3, 5}, Range{6, 8}, Range{5, 6}, '*', 2},
		{Range{0, 1}, Range{10, 11}, Range{1, 10}, '*', 1},
	}},
	{"a * b *", nil},
	{"", nil},
}

func TestResolveEmphasis(t *testing.T) {
	for _, tt := range resolveTests {
		if diff := cmp.Diff(tt.want, ResolveEmphasis(tt.in)); diff != "" {
			t.Errorf("ResolveEmphasis(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}
