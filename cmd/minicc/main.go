// minicc is a simple command-line driver for the semantic analyzer. It is
// mainly intended for quick and dirty testing: dump a file's diagnostics,
// or feed it lines from a REPL.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/minicc/minicc/analyze"
	"github.com/minicc/minicc/lex"
	"github.com/minicc/minicc/parse"
)

func fatal(f string, va ...interface{}) {
	fmt.Fprintf(os.Stderr, "fatal: "+f+"\n", va...)
	os.Exit(1)
}

func perr(f string, va ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+f+"\n", va...)
}

func note(f string, va ...interface{}) {
	fmt.Fprintf(os.Stdout, "[] "+f+"\n", va...)
}

// tap lexes, parses and analyzes one source, driving the analyzer through
// its configuration API rather than calling Work directly: prepare()
// resets the sticky passed flag, set_log/set_error toggle the two
// diagnostic streams, work() runs the pass, has_passed() reports the
// outcome.
func tap(dumptoks, logOn, quiet bool, src []rune, p *parse.Parser) {
	toks, errs := lex.Lex(src)
	if len(errs) > 0 {
		perr("lexing: %s", errs)
		return
	}
	if dumptoks {
		fmt.Println(toks)
	}

	a := analyze.New(p.Fn())
	a.SetLog(logOn)
	a.SetError(!quiet)

	for toks.Len() > 0 {
		parseErr := p.Parse(toks)
		if parseErr != nil {
			for _, e := range p.Errors() {
				fmt.Fprintf(os.Stderr, "error: parse: %s\n", e)
			}
			continue
		}
		nodes := p.Nodes()
		note("%d top-level declarations", len(nodes))

		a.Prepare()
		a.Work(nodes)
		if a.HasPassed() {
			note("analysis passed")
		} else {
			note("analysis failed (%d diagnostics)", len(a.Errors()))
		}
	}
}

func doloop(dumptoks, logOn, quiet bool) {
	r := bufio.NewReader(os.Stdin)
	i := 0
	for {
		fmt.Printf("[%d] >> ", i)
		line, err := r.ReadString('\n')
		if err != nil {
			fmt.Fprintf(os.Stderr, "Bailing...\n")
			os.Exit(0)
		}
		tap(dumptoks, logOn, quiet, []rune(strings.TrimSpace(line)), parse.New())
		i++
	}
}

func main() {
	dumptoks := flag.Bool("dumptoks", false, "dump lexed tokens")
	dofile := flag.String("file", "", "analyze a MiniC source file")
	logOn := flag.Bool("log", false, "enable traversal logging")
	quiet := flag.Bool("quiet", false, "suppress numbered diagnostics")
	flag.Parse()

	if *dofile != "" {
		src, err := ioutil.ReadFile(*dofile)
		if err != nil {
			fatal("cannot open %s: %s", *dofile, err)
		}
		tap(*dumptoks, *logOn, *quiet, bytes.Runes(src), parse.NewFile(*dofile))
	} else {
		doloop(*dumptoks, *logOn, *quiet)
	}
}
