package wrapgeninternal

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/printer"
	"go/token"
	"maps"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/wrapgen/internal/codefmt"
	"github.com/sublee/wrapgen/internal/wrapgen/emit"
	"github.com/sublee/wrapgen/internal/wrapgen/parse"
)

// Wrapgen generates wrapper code for the target package. Call [Build] and then
// [Generate] to get the generated code. All potential errors are returned by
// [Build]. Once [Build] succeeds, [Generate] never fails.
type Wrapgen struct {
	p   *parse.Parser
	ns  codefmt.NS
	buf *bytes.Buffer
	w   *codefmt.Writer

	wrappers []*emit.Wrapper
	specs    map[*ast.TypeSpec]bool
}

// New creates a new [Wrapgen] for the given package. The package must have its
// Syntax. Types are not required because wrappers are generated from syntax
// alone.
func New(pkg *packages.Package) (*Wrapgen, error) {
	p, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	// Generated names must not shadow any package-level name. The writer
	// shares the namespace so that import names avoid them too.
	ns := codefmt.NewNS(pkg.Syntax...)

	var buf bytes.Buffer
	return &Wrapgen{
		p:     p,
		ns:    ns,
		buf:   &buf,
		w:     codefmt.NewWriter(&buf, pkg, ns),
		specs: make(map[*ast.TypeSpec]bool),
	}, nil
}

// Wrappers returns the built wrappers in declaration order.
func (g *Wrapgen) Wrappers() []*emit.Wrapper {
	return g.wrappers
}

// Build prepares code generation by parsing wrapper declarations and building
// their methods. All potential errors are returned by this method. It must be
// called before [Generate].
func (g *Wrapgen) Build() error {
	decls, errs := g.p.ParseDecls()
	errs = errors.Join(errs, g.p.Validate(decls))

	// Imports in wrapgen files are merged into a single import declaration.
	for _, file := range g.p.WrapgenGoFiles() {
		for _, spec := range file.Imports {
			if err := g.w.Require(spec); err != nil {
				errs = errors.Join(errs, codefmt.Errorf(g.p, spec, "%s", err.Error()))
			}
		}
	}

	if errs != nil {
		return errs
	}
	for name := range g.w.Imports() {
		g.ns.Reserve(name)
	}

	methods := g.p.Methods()
	for _, decl := range decls {
		wr, err := emit.Build(g.p, decl, g.ns, methods[decl.Name()])
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		g.wrappers = append(g.wrappers, wr)
		g.specs[decl.Spec] = true
	}

	return errs
}

// Generate generates wrapper code for the package. It must be called after
// [Build] succeeds. It returns nil if the package has no wrapgen files.
func (g *Wrapgen) Generate() []byte {
	if len(g.p.WrapgenGoFiles()) == 0 {
		return nil
	}
	g.writeWrapperCode()
	g.mergeCode()
	return g.frameCode()
}

// writeWrapperCode writes the wrapper types and their methods in declaration
// order.
func (g *Wrapgen) writeWrapperCode() {
	if len(g.wrappers) == 0 {
		return
	}

	g.w.Printf("// wrapgen: wrappers\n\n")

	wrappers := slices.Clone(g.wrappers)
	slices.SortStableFunc(wrappers, func(a, b *emit.Wrapper) int {
		return int(a.Pos() - b.Pos())
	})
	for _, wr := range wrappers {
		wr.WriteDefineCode(g.w)
	}
}

// mergeCode copies non-wrapper code from the source files that tagged with
// "//go:build wrapgen". Wrapper type specs are replaced by the generated
// structs. Aliases and other declarations are kept as they are.
func (g *Wrapgen) mergeCode() {
	fset := g.p.Pkg().Fset

	for _, file := range g.p.WrapgenGoFiles() {
		name := filepath.Base(fset.File(file.Pos()).Name())
		first := true

		// Comments in erased specs must not be printed.
		var erased []ast.Node

		for _, decl := range file.Decls {
			if gen, ok := decl.(*ast.GenDecl); ok {
				if gen.Tok == token.IMPORT {
					// Skip import declarations in files. They are merged into
					// the import declaration group of the generated file.
					continue
				}
				if gen.Tok == token.TYPE {
					if !gen.Lparen.IsValid() {
						if g.specs[gen.Specs[0].(*ast.TypeSpec)] {
							continue
						}
					} else {
						decl = astutil.Apply(gen, func(c *astutil.Cursor) bool {
							spec, ok := c.Node().(*ast.TypeSpec)
							if !ok {
								return true
							}
							if g.specs[spec] {
								erased = append(erased, spec)
								c.Delete()
							}
							return false
						}, nil).(ast.Decl)

						// Input:  type ( A int; B = int )
						// Output: type ( B = int )
						if len(decl.(*ast.GenDecl).Specs) == 0 {
							continue
						}
					}
				}
			}

			if first {
				fmt.Fprintf(g.buf, "// %s:\n\n", name)
				first = false
			}

			printer.Fprint(g.buf, fset, &printer.CommentedNode{
				Node:     decl,
				Comments: commentsOutside(file.Comments, erased),
			})
			fmt.Fprintf(g.buf, "\n\n")
		}
	}
}

// commentsOutside filters out the comment groups in the range of any node,
// including its doc comment.
func commentsOutside(groups []*ast.CommentGroup, nodes []ast.Node) []*ast.CommentGroup {
	if len(nodes) == 0 {
		return groups
	}
	return slices.DeleteFunc(slices.Clone(groups), func(group *ast.CommentGroup) bool {
		for _, node := range nodes {
			pos := node.Pos()
			if spec, ok := node.(*ast.TypeSpec); ok && spec.Doc != nil {
				pos = spec.Doc.Pos()
			}
			end := node.End()
			if spec, ok := node.(*ast.TypeSpec); ok && spec.Comment != nil {
				end = spec.Comment.End()
			}
			if pos <= group.Pos() && group.End() <= end {
				return true
			}
		}
		return false
	})
}

func (g *Wrapgen) frameCode() []byte {
	// Prepend header code
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "//go:build !%s\n\n", parse.BuildTag)
	fmt.Fprintf(&buf, "// Code generated by %s%s. DO NOT EDIT.\n\n", parse.ImportPath, versionSuffix)
	fmt.Fprintf(&buf, "package %s\n\n", g.p.Pkg().Name)

	imports := g.w.Imports()
	blank := g.w.BlankImports()
	if len(imports) != 0 || len(blank) != 0 {
		// The standard library comes first, then the others.
		var std, others []string
		for _, alias := range slices.Sorted(maps.Keys(imports)) {
			if imp := imports[alias]; isStdlib(imp.Path) {
				std = append(std, imp.Spec())
			} else {
				others = append(others, imp.Spec())
			}
		}
		for _, imp := range blank {
			others = append(others, imp.Spec())
		}

		fmt.Fprintf(&buf, "import (\n")
		for _, spec := range std {
			fmt.Fprintf(&buf, "%s\n", spec)
		}
		if len(std) != 0 && len(others) != 0 {
			fmt.Fprintf(&buf, "\n")
		}
		for _, spec := range others {
			fmt.Fprintf(&buf, "%s\n", spec)
		}
		fmt.Fprintf(&buf, ")\n\n")
	}

	buf.Write(g.buf.Bytes())
	code := pruneImports(buf.Bytes())

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}

// pruneImports deletes imports which the code never refers to. Wrapgen files
// are never compiled, so they may have unused imports. Only imports whose names
// are certain are deleted, that is, explicitly named ones and the standard
// library.
func pruneImports(code []byte) []byte {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "", code, parser.ParseComments)
	if err != nil {
		return code
	}

	used := make(map[string]bool)
	ast.Inspect(file, func(node ast.Node) bool {
		if sel, ok := node.(*ast.SelectorExpr); ok {
			if id, ok := sel.X.(*ast.Ident); ok {
				used[id.Name] = true
			}
		}
		return true
	})

	pruned := false
	for _, spec := range slices.Clone(file.Imports) {
		path, _ := strconv.Unquote(spec.Path.Value)
		switch {
		case spec.Name != nil:
			if name := spec.Name.Name; name != "_" && name != "." && !used[name] {
				pruned = astutil.DeleteNamedImport(fset, file, name, path) || pruned
			}
		case isStdlib(path):
			if !used[codefmt.AssumedName(path)] {
				pruned = astutil.DeleteImport(fset, file, path) || pruned
			}
		}
	}
	if !pruned {
		return code
	}

	var buf bytes.Buffer
	if err := format.Node(&buf, fset, file); err != nil {
		return code
	}
	return buf.Bytes()
}

// isStdlib reports whether the import path belongs to the standard library,
// whose package names always match the last path elements.
func isStdlib(path string) bool {
	first, _, _ := strings.Cut(path, "/")
	return !strings.Contains(first, ".")
}
