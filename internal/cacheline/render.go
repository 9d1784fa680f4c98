package cacheline

import (
	"bytes"
	"fmt"
	"go/build/constraint"
	"go/format"
	"slices"
)

// File describes a Go source file declaring CacheLineSize for the
// architectures matching its build constraint.
type File struct {
	Name       string
	Constraint constraint.Expr
	Size       int
}

// Files splits the table into source files, one per distinct size and one for
// the default. Families without GOARCH values produce no file.
func (t *Table) Files() []File {
	var sizes []int
	archs := make(map[int][]string)
	var all []string
	for _, f := range t.Families {
		if len(f.GOARCH) == 0 {
			continue
		}
		if _, ok := archs[f.Size]; !ok {
			sizes = append(sizes, f.Size)
		}
		archs[f.Size] = append(archs[f.Size], f.GOARCH...)
		all = append(all, f.GOARCH...)
	}
	slices.Sort(sizes)

	var files []File
	for _, size := range sizes {
		files = append(files, File{
			Name:       fmt.Sprintf("cacheline_%d.go", size),
			Constraint: anyOf(archs[size]),
			Size:       size,
		})
	}

	def := File{Name: "cacheline_default.go", Size: t.Default}
	if len(all) != 0 {
		def.Constraint = &constraint.NotExpr{X: anyOf(all)}
	}
	files = append(files, def)
	return files
}

func anyOf(archs []string) constraint.Expr {
	var x constraint.Expr
	for _, arch := range archs {
		tag := &constraint.TagExpr{Tag: arch}
		if x == nil {
			x = tag
			continue
		}
		x = &constraint.OrExpr{X: x, Y: tag}
	}
	return x
}

// Render renders the Go source code of the file in the package.
func Render(pkg string, f File) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by internal/cmd/gencacheline. DO NOT EDIT.\n\n")
	if f.Constraint != nil {
		fmt.Fprintf(&buf, "//go:build %s\n\n", f.Constraint)
	}
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "// CacheLineSize is the size of a CPU cache line in bytes assumed for the\n")
	fmt.Fprintf(&buf, "// target architecture.\n")
	fmt.Fprintf(&buf, "const CacheLineSize = %d\n", f.Size)
	return format.Source(buf.Bytes())
}
