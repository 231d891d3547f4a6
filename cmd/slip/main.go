package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	slip "github.com/slip-lang/slip"
	"github.com/slip-lang/slip/internal/store"
)

const appName = "slip"

// how many stored history entries to preload into the line editor
const historyPreload = 500

func main() {
	if len(os.Args) < 2 {
		os.Exit(cmdRepl(nil))
	}

	switch cmd := os.Args[1]; cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "version":
		fmt.Println(slip.Version)
	case "-h", "--help", "help":
		usage()
	default:
		// `slip FILE [args...]` is shorthand for `slip run FILE [args...]`
		if _, err := os.Stat(cmd); err == nil {
			os.Exit(cmdRun(os.Args[1:]))
		}
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`slip %s

Usage:
  %s                       Start the REPL.
  %s repl                  Start the REPL.
  %s run <file> [args...]  Run a script; args are bound to *ARGV*.
  %s version               Print the version.
`, slip.Version, appName, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(args []string) int {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run <file> [args...]\n", appName)
		return 2
	}

	ip := slip.NewInterpreter()
	if err := ip.RunFile(args[0], args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(_ []string) int {
	cfg, err := slip.LoadConfig(slip.DefaultConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: bad rc file: %v\n", appName, err)
	}

	ip := slip.NewInterpreter()
	if cfg.PreludePath != "" {
		if err := ip.LoadPreludeFile(cfg.PreludePath); err != nil {
			fmt.Fprintf(os.Stderr, "%s: prelude: %v\n", appName, err)
		}
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return replPipe(ip)
	}
	return replInteractive(ip, cfg)
}

// replPipe evaluates stdin line by line without a prompt or history.
func replPipe(ip *slip.Interpreter) int {
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		rep(ip, sc.Text())
	}
	return 0
}

func replInteractive(ip *slip.Interpreter, cfg slip.Config) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	var hist *store.Store
	if cfg.HistoryPath != "" {
		var err error
		hist, err = store.Open(cfg.HistoryPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: history unavailable: %v\n", appName, err)
		} else {
			defer hist.Close()
			if cmds, err := hist.Cmds(historyPreload); err == nil {
				for _, c := range cmds {
					ln.AppendHistory(c)
				}
			}
		}
	}

	for {
		line, err := ln.Prompt(cfg.Prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Println()
				return 0
			}
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
			if hist != nil {
				_, _ = hist.AddCmd(line)
			}
		}

		rep(ip, line)
	}
}

// rep runs one read-eval-print round; diagnostics go to stderr.
func rep(ip *slip.Interpreter, line string) {
	out, ok, err := ip.ReadEval(line)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	if ok {
		fmt.Println(slip.PrintReadable(out))
	}
}
