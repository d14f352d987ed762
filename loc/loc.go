// Copyright © 2020 The Pea Authors under an MIT-style license.

// Package loc tracks source locations of call-site syntax.
package loc

import (
	"fmt"
	"sort"
)

// A Range is a half-open [start, end) byte offset range.
type Range [2]int

// GetRange returns itself.
// Embedding a Range in a struct makes the struct
// implement interface{ GetRange() Range }.
func (r Range) GetRange() Range { return r }

// Join returns the smallest Range covering both r and o.
func (r Range) Join(o Range) Range {
	if o[0] < r[0] {
		r[0] = o[0]
	}
	if o[1] > r[1] {
		r[1] = o[1]
	}
	return r
}

// Text returns the text covered by r in src,
// or "" if r is out of bounds.
func (r Range) Text(src string) string {
	if r[0] < 0 || r[1] > len(src) || r[0] > r[1] {
		return ""
	}
	return src[r[0]:r[1]]
}

// A Loc is a human-readable file location.
type Loc struct {
	Path string
	Line [2]int
	Col  [2]int
}

func (l Loc) String() string {
	if l.Line[0] == l.Line[1] && l.Col[0] == l.Col[1] {
		return fmt.Sprintf("%s:%d.%d", l.Path, l.Line[0], l.Col[0])
	}
	return fmt.Sprintf("%s:%d.%d-%d.%d", l.Path, l.Line[0], l.Col[0], l.Line[1], l.Col[1])
}

// Files maps offsets within a concatenation of files to Locs.
// Offsets of each file start where the previous file ends.
type Files []File

// A File is a single file in a Files.
type File struct {
	Path string
	Offs int
	Len  int
	// Lines holds the offsets of the newlines in the file.
	Lines []int
}

// Len returns the total length of all files.
func (fs Files) Len() int {
	if len(fs) == 0 {
		return 0
	}
	last := fs[len(fs)-1]
	return last.Offs + last.Len
}

// Add appends a file given its path and text,
// and returns the offset at which the file begins.
func (fs *Files) Add(path, text string) int {
	offs := fs.Len()
	var lines []int
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, offs+i)
		}
	}
	*fs = append(*fs, File{Path: path, Offs: offs, Len: len(text), Lines: lines})
	return offs
}

// Loc returns the Loc of a Range.
// It returns nil if the Range is not within the Files.
func (fs Files) Loc(r Range) *Loc {
	if len(fs) == 0 || r[0] < 0 || r[1] > fs.Len() || r[0] > r[1] {
		return nil
	}
	f := fs.file(r[0])
	var l Loc
	l.Path = f.Path
	l.Line[0], l.Col[0] = f.lineCol(r[0])
	l.Line[1], l.Col[1] = f.lineCol(r[1])
	return &l
}

func (fs Files) file(p int) *File {
	i := sort.Search(len(fs), func(i int) bool { return fs[i].Offs > p })
	if i == 0 {
		panic("impossible")
	}
	return &fs[i-1]
}

// lineCol returns the 1-based line and column of offset p.
func (f *File) lineCol(p int) (int, int) {
	n := sort.SearchInts(f.Lines, p)
	start := f.Offs
	if n > 0 {
		start = f.Lines[n-1] + 1
	}
	return n + 1, p - start + 1
}
