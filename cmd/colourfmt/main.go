/*
Colourfmt is a terminal tool for previewing colour templates. It transforms
each template given on the command line (or stdin, or a readline prompt with
-i) and prints the result.
*/
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/anmitsu/go-shlex"
	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"awesome-dragon.science/go/colourfmt/pkg/ansi"
	"awesome-dragon.science/go/colourfmt/pkg/log"
	"awesome-dragon.science/go/colourfmt/pkg/transformer"
)

var (
	interactive = pflag.BoolP("interactive", "i", false, "read templates from a prompt instead of the command line")
	stripOut    = pflag.BoolP("strip", "s", false, "strip escape sequences from the output instead of rendering them")
	fixedUl     = pflag.BoolP("fixed-underline", "u", false, "use the corrected underline escape instead of the historical one")
	noNewline   = pflag.BoolP("no-newline", "n", false, "do not append a newline to each rendered template")
	listNames   = pflag.Bool("names", false, "list the style vocabulary and exit")
	stats       = pflag.Bool("stats", false, "report template and byte counts on exit")
	verbose     = pflag.BoolP("verbose", "v", false, "enable debug logging")

	logger = log.New(log.FTimestamp, os.Stderr, "colourfmt", log.INFO)
)

type counts struct {
	templates int
	bytes     uint64
}

func main() {
	pflag.Parse()

	if *verbose {
		logger = log.New(log.FTimestamp, os.Stderr, "colourfmt", log.DEBUG)
	}

	if *listNames {
		printNames()
		return
	}

	var vocab map[string]string
	if *fixedUl {
		vocab = ansi.FixedVocabulary()
	}

	trans := transformer.New(vocab)
	seen := &counts{}

	switch {
	case *interactive:
		runREPL(trans, seen)
	case pflag.NArg() > 0:
		for _, tmpl := range pflag.Args() {
			if err := render(trans, seen, tmpl, nil); err != nil {
				logger.Critf("%s", err)
			}
		}
	default:
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if err := render(trans, seen, scanner.Text(), nil); err != nil {
				logger.Critf("%s", err)
			}
		}

		if err := scanner.Err(); err != nil {
			logger.Critf("could not read stdin: %s", err)
		}
	}

	if *stats {
		logger.Infof("rendered %d templates, wrote %s", seen.templates, humanize.Bytes(seen.bytes))
	}
}

func printNames() {
	for _, name := range ansi.Names() {
		escape, _ := ansi.Lookup(name)
		fmt.Printf("%s%s%s\n", escape, name, ansi.Reset)
	}
}

// render transforms one template, interpolates any value arguments, and
// writes it to stdout per the output flags
func render(trans *transformer.Transformer, seen *counts, tmpl string, args []interface{}) error {
	out, err := trans.Transform(tmpl)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		out = fmt.Sprintf(out, args...)
	}

	if *stripOut {
		out = ansi.Strip(out)
	}

	if !*noNewline {
		out += "\n"
	}

	n, err := os.Stdout.WriteString(out)
	seen.templates++
	seen.bytes += uint64(n)

	return err
}

// runREPL reads lines from a readline prompt until EOF. Each line is split
// shell-style; the first token is the template and the rest are value
// arguments for its format verbs
func runREPL(trans *transformer.Transformer, seen *counts) {
	rl, err := readline.New("> ")
	if err != nil {
		logger.Critf("could not start readline: %s", err)
	}
	defer rl.Close()

	lineChan := make(chan string)
	go func() {
		for {
			line, err := rl.Readline()
			if err != nil {
				close(lineChan)
				return
			}
			lineChan <- line
		}
	}()

	for line := range lineChan {
		tokens, err := shlex.Split(line, true)
		if err != nil {
			logger.Warnf("could not split line: %s", err)
			continue
		}

		if len(tokens) == 0 {
			continue
		}

		args := make([]interface{}, 0, len(tokens)-1)
		for _, tok := range tokens[1:] {
			args = append(args, tok)
		}

		logger.Debugf("template %q with %d argument(s)", tokens[0], len(args))

		// REPL errors are not fatal, fix the line and go again
		if err := render(trans, seen, tokens[0], args); err != nil {
			logger.Warnf("%s", err)
		}
	}
}
