// Copyright © 2020 The Pea Authors under an MIT-style license.

package loc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFilesLoc(t *testing.T) {
	var fs Files
	fs.Add("a.py", "abc\ndef\n")
	fs.Add("b.py", "x\nyz")
	tests := []struct {
		name string
		r    Range
		want *Loc
	}{
		{name: "start", r: Range{0, 0}, want: &Loc{Path: "a.py", Line: [2]int{1, 1}, Col: [2]int{1, 1}}},
		{name: "first line", r: Range{1, 3}, want: &Loc{Path: "a.py", Line: [2]int{1, 1}, Col: [2]int{2, 4}}},
		{name: "second line", r: Range{4, 7}, want: &Loc{Path: "a.py", Line: [2]int{2, 2}, Col: [2]int{1, 4}}},
		{name: "multi-line", r: Range{2, 5}, want: &Loc{Path: "a.py", Line: [2]int{1, 2}, Col: [2]int{3, 2}}},
		{name: "second file", r: Range{10, 12}, want: &Loc{Path: "b.py", Line: [2]int{2, 2}, Col: [2]int{1, 3}}},
		{name: "out of bounds", r: Range{10, 13}, want: nil},
		{name: "negative", r: Range{-1, 2}, want: nil},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			got := fs.Loc(test.r)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Loc(%v) mismatch (-want +got):\n%s", test.r, diff)
			}
		})
	}
}

func TestLocString(t *testing.T) {
	tests := []struct {
		loc  Loc
		want string
	}{
		{Loc{Path: "a.py", Line: [2]int{1, 1}, Col: [2]int{2, 2}}, "a.py:1.2"},
		{Loc{Path: "a.py", Line: [2]int{1, 2}, Col: [2]int{2, 5}}, "a.py:1.2-2.5"},
	}
	for _, test := range tests {
		if got := test.loc.String(); got != test.want {
			t.Errorf("got %q, want %q", got, test.want)
		}
	}
}

func TestRangeJoinText(t *testing.T) {
	r := Range{3, 5}.Join(Range{1, 4})
	if r != (Range{1, 5}) {
		t.Errorf("Join=%v, want [1 5]", r)
	}
	if got := r.Text("abcdef"); got != "bcde" {
		t.Errorf("Text=%q, want bcde", got)
	}
	if got := (Range{4, 9}).Text("abc"); got != "" {
		t.Errorf("out of range Text=%q, want empty", got)
	}
}
