// Command gencacheline renders the CacheLineSize constant of the wrapgen
// package from the cache line table, one file per size.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sublee/wrapgen/internal/cacheline"
)

var (
	oFlag   = flag.String("o", ".", "output directory")
	pkgFlag = flag.String("pkg", "wrapgen", "package name")
)

func main() {
	flag.Parse()

	for _, f := range cacheline.Builtin().Files() {
		code, err := cacheline.Render(*pkgFlag, f)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		out := filepath.Join(*oFlag, f.Name)
		if err := os.WriteFile(out, code, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println("Generated:", out)
	}
}
