package main

import (
	"context"
	"flag"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	wrapgeninternal "github.com/sublee/wrapgen/internal/wrapgen"
)

var Version = "dev"

var (
	bFlag = flag.String("b", "", "comma-separated build tags")
	tFlag = flag.Bool("t", false, "include tests")
	oFlag = flag.String("o", "wrapgen_gen.go", "output file name")
	cFlag = flag.String("c", "auto", "colorize (auto|always|never)")
	vFlag = flag.Bool("v", false, "verbose logging")
)

func init() {
	wrapgeninternal.Version = Version
}

func main() {
	flag.Parse()

	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	color := false
	switch *cFlag {
	case "auto":
		color = isatty()
	case "always":
		color = true
	case "never":
		color = false
	default:
		fmt.Fprintln(os.Stderr, "invalid -c value:", *cFlag)
		os.Exit(1)
	}

	logger := zap.NewNop()
	if *vFlag {
		logger, err = zap.NewDevelopment()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	defer func() { _ = logger.Sync() }()

	outs, err := wrapgeninternal.Main(context.Background(), logger, wd, os.Environ(), *bFlag, *tFlag, *oFlag, flag.Args())
	if err != nil {
		message := err.Error()
		if color {
			message = colorize(message)
		}
		fmt.Fprintln(os.Stderr, message)
		_ = logger.Sync()
		os.Exit(1)
	}

	for _, out := range slices.Sorted(maps.Keys(outs)) {
		if err := os.WriteFile(out, outs[out], 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if relOut, err := filepath.Rel(wd, out); err == nil {
			out = relOut
		}
		fmt.Println("Generated:", out)
	}
}

// isatty reports whether the program is running in a terminal. If it is true,
// we can use ANSI color codes.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stderr.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

var (
	rePos  = regexp.MustCompile(`(?m)^[^\s:]+:\d+:\d+:`)
	reHint = regexp.MustCompile(`\((did you mean|available:)[^)]*\)`)
)

// colorize adds ANSI color codes to the message. Positions are dimmed and
// hints for unknown names are highlighted.
func colorize(message string) string {
	const (
		yellow = "\033[33m"
		dim    = "\033[2m"
		reset  = "\033[0m"
	)
	m := []byte(message)
	m = rePos.ReplaceAllFunc(m, func(b []byte) []byte {
		return []byte(dim + string(b) + reset)
	})
	m = reHint.ReplaceAllFunc(m, func(b []byte) []byte {
		return []byte(yellow + string(b) + reset)
	})
	return string(m)
}
