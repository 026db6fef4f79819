// Command nyxlex is a thin front end over the lexer package. It never
// parses or evaluates — it only tokenizes and prints. Two modes:
//
//	nyxlex <file>   tokenize a file, print one line per top-level token
//	nyxlex          interactive REPL: tokenize one line at a time
//
// An Interpol token prints as a one-line summary of its parts; the
// tokens inside its groups are not printed individually (use -dump).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/danvek/nyxlex/lexer"
	"github.com/danvek/nyxlex/token"
)

func main() {
	log.SetFlags(0)

	dump := flag.Bool("dump", false, "render the full Item stream structurally via repr instead of one line per token")
	flag.Parse()

	switch flag.NArg() {
	case 0:
		runRepl(*dump)
	case 1:
		runFile(flag.Arg(0), *dump)
	default:
		log.Fatalf("usage: %s [-dump] [file]", os.Args[0])
	}
}

func runFile(path string, dump bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("reading %s: %v", path, err)
	}

	items := lexer.Tokenize(string(data))
	if dump {
		repr.Println(items)
		return
	}
	for _, it := range items {
		printItem(it)
	}
}

func runRepl(dump bool) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "nyx> ",
		HistoryFile: "/tmp/nyxlex_history",
	})
	if err != nil {
		log.Fatalf("starting REPL: %v", err)
	}
	defer rl.Close()

	fmt.Println("nyxlex REPL — /exit to quit, /dump to toggle structural dumps")

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on Ctrl-D, readline.ErrInterrupt on Ctrl-C
			return
		}

		switch strings.TrimSpace(line) {
		case "":
			continue
		case "/exit":
			return
		case "/dump":
			dump = !dump
			fmt.Printf("dump mode: %v\n", dump)
			continue
		}

		items := lexer.Tokenize(line)
		if dump {
			repr.Println(items)
			continue
		}
		for _, it := range items {
			printItem(it)
		}
	}
}

func printItem(it token.Item) {
	if !it.Ok() {
		color.New(color.FgRed, color.Bold).Printf("error: %v\n", it.Err)
		return
	}

	colorFor(it.Token.Type).Printf("%-12s", it.Token.Type)
	fmt.Printf(" %-28s %s", it.Token.String(), it.Meta.Span.Start)
	if it.Meta.Span.End != nil {
		fmt.Printf("-%s", *it.Meta.Span.End)
	}
	if len(it.Meta.Comments) > 0 {
		fmt.Printf("  # %s", strings.Join(it.Meta.Comments, " "))
	}
	fmt.Println()
}

// colorFor gives each rough token class a distinct REPL color so a
// human skimming a tokenized line can tell keywords, literals, and
// punctuation apart at a glance.
func colorFor(t token.Type) *color.Color {
	switch t {
	case token.Let, token.In, token.With, token.Import, token.Rec:
		return color.New(color.FgMagenta, color.Bold)
	case token.Ident:
		return color.New(color.FgCyan)
	case token.Value, token.Interpol:
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgYellow)
	}
}
