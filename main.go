package main

import (
	"flag"
	"fmt"
	"lispy/repl"
	"os"
	"os/user"
)

func main() {
	strict := flag.Bool("strict", false, "report unbound symbols as errors")
	strictParse := flag.Bool("strict-parse", false, "reject input with more than one expression per line")
	trace := flag.Bool("trace", false, "print parser tracing to stderr")
	flag.Parse()

	opts := repl.Options{Strict: *strict, StrictParse: *strictParse}
	if *trace {
		opts.Trace = os.Stderr
	}

	// ファイルが指定されていれば全ての式を順に評価する
	if flag.NArg() > 0 {
		for _, path := range flag.Args() {
			if err := runFile(path, opts); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %s\n", path, err)
				os.Exit(1)
			}
		}
		return
	}

	name := "there"
	if u, err := user.Current(); err == nil {
		name = u.Username
	}
	fmt.Printf("Hello %s! This is the lispy programming language!\n", name)
	fmt.Printf("Feel free to type in commands\n")
	repl.Start(os.Stdin, os.Stdout, opts)
}

func runFile(path string, opts repl.Options) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return repl.Run(f, os.Stdout, opts)
}
