// Copyright © 2020 The Pea Authors under an MIT-style license.

package diag

import (
	"testing"

	"github.com/eaburns/pycheck/loc"
	"github.com/google/go-cmp/cmp"
)

func TestKindsAreNamed(t *testing.T) {
	seen := make(map[string]Kind)
	for _, k := range Kinds() {
		name := k.String()
		if prev, ok := seen[name]; ok {
			t.Errorf("kinds %d and %d are both named %s", prev, k, name)
		}
		seen[name] = k
		_ = k.Severity()
	}
}

func TestSeverity(t *testing.T) {
	for _, k := range Kinds() {
		want := Error
		if k == RevealType {
			want = Info
		}
		if got := k.Severity(); got != want {
			t.Errorf("%s.Severity()=%s, want %s", k, got, want)
		}
	}
}

func TestCollectorOrder(t *testing.T) {
	var c Collector
	c.Report(Diagnostic{Kind: RevealType, Msg: "revealed type: int"})
	c.Report(Diagnostic{Kind: UnexpectedKeyword, Msg: "second"})
	c.Report(Diagnostic{Kind: RevealType, Msg: "revealed type: int"})
	want := []Kind{RevealType, UnexpectedKeyword, RevealType}
	if diff := cmp.Diff(want, c.Kinds()); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
	if c.Len() != 3 {
		t.Errorf("Len()=%d, want 3", c.Len())
	}
}

func TestErrors(t *testing.T) {
	var files loc.Files
	files.Add("test.py", "reveal_type(x, y=1)\n")
	var c Collector
	c.Report(Diagnostic{Kind: RevealType, Msg: "revealed type: int", Range: loc.Range{0, 19}})
	d := Diagnostic{Kind: UnexpectedKeyword, Msg: "`reveal_type` got an unexpected keyword argument `y`", Range: loc.Range{0, 19}}
	d.Note("reveal_type takes no keyword arguments")
	c.Report(d)

	errs := c.Errors(files)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	want := "test.py:1.1-1.20: error: `reveal_type` got an unexpected keyword argument `y` [unexpected-keyword]\n" +
		"\treveal_type takes no keyword arguments"
	if got := errs[0].Error(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestFormatNoLoc(t *testing.T) {
	got := Format(Diagnostic{Kind: RevealType, Msg: "revealed type: None"}, nil)
	if want := "info: revealed type: None [reveal-type]"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
