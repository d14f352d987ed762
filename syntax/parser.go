// Copyright © 2020 The Pea Authors under an MIT-style license.

package syntax

import (
	"errors"
	"io"
	"io/ioutil"

	"github.com/eaburns/peggy/peg"
)

// Parse parses a *File from an io.Reader.
// The first argument is the file path or "" if unspecified.
func Parse(path string, r io.Reader) (*File, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseString(path, string(data))
}

// ParseString parses a *File from a string.
func ParseString(path, text string) (*File, error) {
	_p := _NewParser(text)
	if pos, perr := _FileAccepts(_p, 0); pos < 0 {
		_, t := _FileFail(_p, 0, perr)
		return nil, &parseError{path: path, loc: perr, text: _p.text, fail: t}
	}
	_, file := _FileAction(_p, 0)
	file.Path = path
	file.Text = text
	return file, nil
}

// ParseExpr parses a single expression.
func ParseExpr(text string) (Expr, error) {
	_p := _NewParser(text)
	if pos, perr := _ExpressionAccepts(_p, 0); pos < 0 {
		_, t := _ExpressionFail(_p, 0, perr)
		return nil, &parseError{loc: perr, text: _p.text, fail: t}
	}
	_, e := _ExpressionAction(_p, 0)
	return *e, nil
}

// IsIncomplete returns whether err is a parse error
// caused by the input ending inside of brackets or parentheses.
func IsIncomplete(err error) bool {
	var pe *parseError
	return errors.As(err, &pe) && open(pe.fail, len(pe.text), false)
}

// open returns whether a leaf failing at end
// is beneath a bracketed rule that began before end.
func open(f *peg.Fail, end int, in bool) bool {
	switch f.Name {
	case "Call", "Index", "List", "Paren":
		in = in || f.Pos < end
	}
	if len(f.Kids) == 0 {
		return in && f.Pos == end
	}
	for _, k := range f.Kids {
		if open(k, end, in) {
			return true
		}
	}
	return false
}

type parseError struct {
	path string
	loc  int
	text string
	fail *peg.Fail
}

// Tree returns the failure tree of the parse error.
func (err *parseError) Tree() *peg.Fail { return err.fail }

func (err *parseError) Error() string {
	e := peg.SimpleError(err.text, err.fail)
	e.FilePath = err.path
	return e.Error()
}
