// Copyright © 2020 The Pea Authors under an MIT-style license.

// Pycheck evaluates files of call expressions,
// reporting the diagnostics of the assert_type, reveal_type,
// and cast intrinsics.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/eaburns/peggy/peg"
	"github.com/eaburns/pretty"
	"github.com/eaburns/pycheck/check"
	"github.com/eaburns/pycheck/diag"
	"github.com/eaburns/pycheck/infer"
	"github.com/eaburns/pycheck/syntax"
	"github.com/mattn/go-isatty"
)

var (
	envPath = flag.String("env", "", "YAML file describing the inference environment")
	trace   = flag.Bool("trace", false, "trace intrinsic calls")
	interp  = flag.Bool("i", false, "read statements interactively")
	dump    = flag.Bool("dump", false, "print the syntax tree of each statement")
	noColor = flag.Bool("nocolor", false, "disable colored output")
)

func main() {
	flag.Usage = usage
	flag.Parse()
	pretty.Indent = "    "

	env := loadEnv()
	c := check.New(env, check.Config{Trace: *trace})
	color := useColor()

	if *interp {
		if err := repl(c, color); err != nil {
			die("", err)
		}
		return
	}

	var failed bool
	if len(flag.Args()) == 0 {
		f, err := syntax.Parse("", os.Stdin)
		if err != nil {
			die("", err)
		}
		failed = checkFile(c, f, color)
	}
	for _, path := range flag.Args() {
		r, err := os.Open(path)
		if err != nil {
			die("failed to open source", err)
		}
		f, err := syntax.Parse(path, r)
		r.Close()
		if err != nil {
			die("", err)
		}
		if checkFile(c, f, color) {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func loadEnv() *infer.Env {
	if *envPath == "" {
		return infer.NewEnv()
	}
	f, err := os.Open(*envPath)
	if err != nil {
		die("failed to open environment", err)
	}
	defer f.Close()
	env, err := infer.LoadEnv(f)
	if err != nil {
		die("failed to load environment "+*envPath, err)
	}
	return env
}

// checkFile prints the diagnostics of a file
// and returns whether any were errors.
func checkFile(c *check.Checker, f *syntax.File, color bool) bool {
	if *dump {
		for _, stmt := range f.Stmts {
			pretty.Print(stmt)
			fmt.Println("")
		}
	}
	run := c.File(f)
	for _, d := range run.Diags.Diags {
		fmt.Println(format(d, run, color))
	}
	return len(run.Errors()) > 0
}

func repl(c *check.Checker, color bool) error {
	rl, err := readline.New(">>> ")
	if err != nil {
		return err
	}
	defer rl.Close()
	var buf strings.Builder
	for {
		line, err := rl.Readline()
		switch {
		case err == readline.ErrInterrupt:
			if buf.Len() > 0 {
				rl.SetPrompt(">>> ")
				buf.Reset()
				fmt.Fprintln(os.Stderr, "Press ctrl-c again to quit.")
				continue
			}
			return nil
		case err == io.EOF:
			return nil
		case err != nil:
			return err
		}
		buf.WriteString(line)
		buf.WriteRune('\n')

		f, err := syntax.ParseString("<stdin>", buf.String())
		if syntax.IsIncomplete(err) {
			rl.SetPrompt("... ")
			continue
		}
		rl.SetPrompt(">>> ")
		buf.Reset()
		if err != nil {
			if *dump {
				if pe, ok := err.(interface{ Tree() *peg.Fail }); ok {
					peg.PrettyWrite(os.Stderr, pe.Tree())
					fmt.Fprintln(os.Stderr, "")
				}
			}
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if *dump {
			for _, stmt := range f.Stmts {
				pretty.Print(stmt)
				fmt.Println("")
			}
		}
		run := c.File(f)
		for _, d := range run.Diags.Diags {
			fmt.Println(format(d, run, color))
		}
		for _, res := range run.Results {
			if !res.Intrinsic {
				fmt.Println(c.Engine().ForDisplay(res.Type))
			}
		}
	}
}

func format(d diag.Diagnostic, run *check.Run, color bool) string {
	s := diag.Format(d, run.Loc(d.Range))
	if !color {
		return s
	}
	switch d.Kind.Severity() {
	case diag.Error:
		return "\x1b[31m" + s + "\x1b[0m"
	case diag.Info:
		return "\x1b[36m" + s + "\x1b[0m"
	default:
		return s
	}
}

func useColor() bool {
	if *noColor {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: %s [flags] [source files]\n", os.Args[0])
	flag.PrintDefaults()
}

func die(s string, err error) {
	if pe, ok := err.(interface{ Tree() *peg.Fail }); ok && *dump {
		peg.PrettyWrite(os.Stderr, pe.Tree())
		fmt.Fprintln(os.Stderr, "")
	}
	if s == "" {
		fmt.Fprintln(flag.CommandLine.Output(), err)
	} else {
		fmt.Fprintf(flag.CommandLine.Output(), "%s: %s\n", s, err)
	}
	os.Exit(1)
}
