package codefmt

import (
	"fmt"
	"go/ast"
	"io"
	"maps"
	"path"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/tools/go/packages"
)

// Writer is a writer for generated code.
type Writer struct {
	w       io.Writer
	pkg     *packages.Package
	fmt     Formatter
	imports map[string]Import
	blank   []Import
	scope   NS
	ns      NS
}

// NewWriter creates a new [Writer]. Import names never shadow names in scope.
// It does not initialize the namespace. To specify a namespace, use
// [Writer.WithNS].
func NewWriter(w io.Writer, pkg *packages.Package, scope NS) *Writer {
	return &Writer{
		w:       w,
		pkg:     pkg,
		fmt:     New(pkg),
		imports: make(map[string]Import),
		scope:   scope,
		ns:      nil,
	}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	return w.w.Write(p)
}

// Pkg implements [Pkger].
func (w *Writer) Pkg() *packages.Package {
	return w.pkg
}

// Printf writes a formatted string to the underlying writer using
// [Formatter.Fprintf].
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return w.fmt.Fprintf(w.w, format, args...)
}

// Sprintf creates a formatted string using [Formatter.Sprintf].
func (w *Writer) Sprintf(format string, args ...any) string {
	return w.fmt.Sprintf(format, args...)
}

// Name returns a unique name in the namespace of the writer.
func (w *Writer) Name(name string) string {
	return w.ns.Name(name)
}

// Reserve marks a name as used in the namespace of the writer.
func (w *Writer) Reserve(name string) bool {
	return w.ns.Reserve(name)
}

// WithBuf copies the writer and sets a new write buffer.
func (w *Writer) WithBuf(buf io.Writer) *Writer {
	c := *w
	c.w = buf
	return &c
}

// WithNS copies the writer and sets a new namespace.
func (w *Writer) WithNS(ns NS) *Writer {
	c := *w
	c.ns = ns
	return &c
}

// Import is an import declaration in the generated code.
type Import struct {
	Path string

	// Name is the explicit name of the import. It is empty if the package is
	// imported by its own name.
	Name string
}

// Spec returns the import spec code, e.g., `yaml "gopkg.in/yaml.v3"`.
func (imp Import) Spec() string {
	if imp.Name == "" {
		return strconv.Quote(imp.Path)
	}
	return imp.Name + " " + strconv.Quote(imp.Path)
}

// Imports returns the collected imports by their names in the code. Blank and
// dot imports are not included. See [Writer.BlankImports].
func (w *Writer) Imports() map[string]Import {
	return w.imports
}

// BlankImports returns the collected blank and dot imports.
func (w *Writer) BlankImports() []Import {
	return w.blank
}

// Require keeps an import spec copied from the source code. The name of the
// import cannot be changed because the source code refers to it. It fails if
// another package is already imported by the same name.
func (w *Writer) Require(spec *ast.ImportSpec) error {
	imp := Import{}
	imp.Path, _ = strconv.Unquote(spec.Path.Value)
	if spec.Name != nil {
		imp.Name = spec.Name.Name
	}

	switch imp.Name {
	case "_", ".":
		for _, prev := range w.blank {
			if prev == imp {
				return nil
			}
		}
		w.blank = append(w.blank, imp)
		return nil
	}

	name := imp.Name
	if name == "" {
		name = AssumedName(imp.Path)
	}

	prev, ok := w.imports[name]
	if !ok {
		w.imports[name] = imp
		return nil
	}
	if prev.Path != imp.Path {
		return fmt.Errorf("import name %s is used for both %q and %q", name, prev.Path, imp.Path)
	}
	if prev.Name == "" && imp.Name != "" {
		w.imports[name] = imp
	}
	return nil
}

// Import adds an import for the package with the given path and name. It
// returns the name of the imported package. The name might be different if it
// has tried to resolve name conflicts.
//
//	// fmtName can be used to refer to the "fmt" package without any name conflict.
//	fmtName := w.Import("fmt", "fmt")
//	w.Printf("%s.Println(\"Hello, World!\")", fmtName)
//
// When calling it, the package to import is recorded. Call [Writer.Imports] to
// retrieve them.
func (w *Writer) Import(path, name string) string {
	for _, alias := range slices.Sorted(maps.Keys(w.imports)) {
		if w.imports[alias].Path == path {
			// Already imported by the source code or a previous call.
			return alias
		}
	}

	if name == "" {
		name = AssumedName(path)
	}
	for alias := range DisambiguateName(name) {
		if _, ok := w.imports[alias]; ok {
			continue
		}
		if w.scope.Has(alias) {
			continue
		}

		imp := Import{Path: path}
		if alias != AssumedName(path) {
			imp.Name = alias
		}
		w.imports[alias] = imp
		return alias
	}

	panic("unreachable")
}

// AssumedName returns the package name assumed from the import path. It is
// only a guess because a package can be named differently from its path.
//
//	"fmt"                       => fmt
//	"gopkg.in/yaml.v3"          => yaml
//	"github.com/mattn/go-isatty" => isatty
//	"example.com/foo/v2"        => foo
func AssumedName(importPath string) string {
	base := path.Base(importPath)
	if strings.HasPrefix(base, "v") {
		if _, err := strconv.Atoi(base[1:]); err == nil {
			if dir := path.Dir(importPath); dir != "." {
				base = path.Base(dir)
			}
		}
	}
	base = strings.TrimPrefix(base, "go-")
	if i := strings.IndexFunc(base, notIdentifier); i >= 0 {
		base = base[:i]
	}
	return base
}

func notIdentifier(r rune) bool {
	return !(r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r))
}
