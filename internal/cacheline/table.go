// Package cacheline holds the static table of cache line sizes per target
// architecture. The table decides the size of wrapgen.CachePad.
package cacheline

import (
	_ "embed"
	"fmt"
	"math/bits"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed table.yaml
var tableYAML []byte

// Table maps architecture families to cache line sizes.
type Table struct {
	Default  int      `yaml:"default"`
	Families []Family `yaml:"families"`
}

// Family is a group of architectures sharing a cache line size.
type Family struct {
	Name   string   `yaml:"name"`
	Size   int      `yaml:"size"`
	GOARCH []string `yaml:"goarch"`
}

// Parse decodes and validates a table.
func Parse(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode cache line table: %w", err)
	}

	if !isPowerOfTwo(t.Default) {
		return nil, fmt.Errorf("default cache line size %d is not a power of two", t.Default)
	}

	seen := make(map[string]string)
	for _, f := range t.Families {
		if !isPowerOfTwo(f.Size) {
			return nil, fmt.Errorf("cache line size %d of %s is not a power of two", f.Size, f.Name)
		}
		for _, arch := range f.GOARCH {
			if prev, ok := seen[arch]; ok {
				return nil, fmt.Errorf("GOARCH %s is listed in both %s and %s", arch, prev, f.Name)
			}
			seen[arch] = f.Name
		}
	}
	return &t, nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && bits.OnesCount(uint(n)) == 1
}

var builtin = sync.OnceValue(func() *Table {
	t, err := Parse(tableYAML)
	if err != nil {
		panic(err) // the embedded table is validated by tests
	}
	return t
})

// Builtin returns the embedded table.
func Builtin() *Table {
	return builtin()
}

// Lookup returns the cache line size of the GOARCH in the embedded table.
func Lookup(goarch string) int {
	return Builtin().Lookup(goarch)
}

// Lookup returns the cache line size of the GOARCH.
func (t *Table) Lookup(goarch string) int {
	for _, f := range t.Families {
		for _, arch := range f.GOARCH {
			if arch == goarch {
				return f.Size
			}
		}
	}
	return t.Default
}
