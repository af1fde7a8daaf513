// Command minforth is the minforth interpreter CLI.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/xyproto/env/v2"
	"nickandperla.net/minforth/pkg/minforth"
)

func main() {
	var (
		evalStr   = flag.String("e", "", "Evaluate one line and exit")
		file      = flag.String("f", "", "Execute a script file")
		dbPath    = flag.String("db", env.Str("MINFORTH_DB", "minforth.db"), "SQLite history database path")
		stackCap  = flag.Int("stack", env.Int("MINFORTH_STACK", 128), "Value stack capacity")
		rlimit    = flag.Int("rlimit", env.Int("MINFORTH_RLIMIT", 64), "User-word recursion limit")
		noHistory = flag.Bool("no-history", false, "Disable the session history database")
		noPrelude = flag.Bool("no-prelude", false, "Disable the standard prelude")
		last      = flag.Int("last", 0, "Print the N most recent history entries and exit")
	)

	flag.Parse()

	opts := []minforth.Option{
		minforth.WithStackCapacity(*stackCap),
		minforth.WithRecursionLimit(*rlimit),
	}
	if !*noHistory {
		opts = append(opts, minforth.WithSQLiteHistory(*dbPath))
	}
	if *noPrelude {
		opts = append(opts, minforth.WithNoPrelude())
	}

	runtime := minforth.New(opts...)
	defer runtime.Close()

	switch {
	case *last > 0:
		entries, err := runtime.History(*last)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		// Recent is newest first; replay oldest first.
		for i := len(entries) - 1; i >= 0; i-- {
			e := entries[i]
			fmt.Printf("%s  %s\n", e.Ts, e.Line)
			if e.Result != "" {
				fmt.Printf("  %s\n", e.Result)
			}
			if e.Err != "" {
				fmt.Printf("  Error: %s\n", e.Err)
			}
		}

	case *evalStr != "":
		result, err := runtime.Eval(*evalStr)
		if result != "" {
			fmt.Println(result)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case *file != "":
		result, err := runtime.EvalFile(*file)
		if result != "" {
			fmt.Println(result)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case !isTerminal(os.Stdin):
		result, err := runtime.EvalReader(os.Stdin)
		if result != "" {
			fmt.Println(result)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	default:
		runREPL(runtime)
	}
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
