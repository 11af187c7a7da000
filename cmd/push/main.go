package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/peterh/liner"
	"github.com/rs/zerolog"

	"github.com/pushlang/push"
)

const historyFile = ".push_history"

func main() {
	ctx := context.Background()

	var timeout time.Duration
	var trace bool
	var stepLimit, sizeLimit int
	var expr string
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.IntVar(&stepLimit, "steps", 0, "limit the number of execution steps")
	flag.IntVar(&sizeLimit, "size", 0, "limit the total number of stack items")
	flag.StringVar(&expr, "e", "", "run the given program instead of a file or the repl")
	flag.Parse()

	var opts []push.Option
	if trace {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.TraceLevel).
			With().Timestamp().Logger()
		opts = append(opts, push.WithLogf(func(mess string, args ...interface{}) {
			logger.Trace().Msgf(mess, args...)
		}))
	}
	if stepLimit != 0 {
		opts = append(opts, push.WithStepLimit(stepLimit))
	}
	if sizeLimit != 0 {
		opts = append(opts, push.WithSizeLimit(sizeLimit))
	}

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	switch {
	case expr != "":
		os.Exit(runOnce(ctx, expr, opts))
	case flag.NArg() > 0:
		code, err := os.ReadFile(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
			os.Exit(1)
		}
		os.Exit(runOnce(ctx, string(code), opts))
	default:
		os.Exit(repl(ctx, opts))
	}
}

func runOnce(ctx context.Context, code string, opts []push.Option) int {
	state, err := push.RunProgram(ctx, code, opts...)
	if err != nil && !push.IsBudget(err) {
		fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
		return 1
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "halted: %v\n", err)
	}
	if err := state.Dump(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
		return 1
	}
	return 0
}

func repl(ctx context.Context, opts []push.Option) int {
	fmt.Println("push repl; Ctrl+C cancels input, Ctrl+D exits")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	ip := push.New(opts...)

	for {
		code, ok := readBalanced(ln)
		if !ok {
			fmt.Println()
			return 0
		}
		if strings.TrimSpace(code) == "" {
			continue
		}

		if err := ip.Load(code); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			continue
		}
		if err := ip.Run(ctx); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			if !push.IsBudget(err) {
				continue
			}
		}
		if err := ip.State().Dump(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}
}

// readBalanced collects prompt lines until the parentheses balance out, so
// multi-line list literals can be typed naturally.
func readBalanced(ln *liner.State) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt("==> ")
		} else {
			line, err = ln.Prompt("... ")
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if parenDepth(b.String()) <= 0 {
			return b.String(), true
		}
	}
}

func parenDepth(code string) int {
	depth := 0
	for _, tok := range strings.Fields(code) {
		switch tok {
		case "(":
			depth++
		case ")":
			depth--
		}
	}
	return depth
}
