package parse

import (
	"errors"
	"fmt"
	"go/ast"
	"go/build/constraint"
	"go/token"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/sublee/wrapgen/internal/codefmt"
)

// BuildTag is the build tag of files declaring wrappers.
const BuildTag = "wrapgen"

// ImportPath is the import path of the wrapgen runtime package.
const ImportPath = "github.com/sublee/wrapgen"

// Parser parses an AST of the underlying package to collect wrapper
// declarations. It never type-checks because the package usually refers to
// methods which are not generated yet.
type Parser struct{ pkg *packages.Package }

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser].
func New(pkg *packages.Package) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.PkgPath == "" {
		return nil, fmt.Errorf("need pkg path")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}
	return &Parser{pkg: pkg}, nil
}

// WrapgenGoFiles returns the Go files that have a "//go:build wrapgen"
// constraint.
func (p *Parser) WrapgenGoFiles() []*ast.File {
	var files []*ast.File
	for _, file := range p.Pkg().Syntax {
		if hasGoBuildWrapgen(file) {
			files = append(files, file)
		}
	}
	return files
}

// hasGoBuildWrapgen checks if the file has a "//go:build wrapgen" constraint.
// The file must be excluded from builds without the tag. Other tags are
// assumed to be satisfied.
func hasGoBuildWrapgen(file *ast.File) bool {
	for _, group := range file.Comments {
		if group.Pos() > file.Package {
			// Build constraints must appear before the package clause.
			break
		}
		for _, comment := range group.List {
			if !constraint.IsGoBuild(comment.Text) {
				continue
			}
			expr, err := constraint.Parse(comment.Text)
			if err != nil {
				continue
			}
			with := expr.Eval(func(string) bool { return true })
			without := expr.Eval(func(tag string) bool { return tag != BuildTag })
			return with && !without
		}
	}
	return false
}

// ParseDecls parses all wrapper declarations in wrapgen files. Every non-alias
// type spec in a wrapgen file is a wrapper declaration. It collects all errors
// instead of stopping at the first error.
func (p *Parser) ParseDecls() ([]*Decl, error) {
	var decls []*Decl
	var errs error

	for _, file := range p.WrapgenGoFiles() {
		for _, d := range file.Decls {
			gen, ok := d.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			for _, spec := range gen.Specs {
				spec := spec.(*ast.TypeSpec)
				doc := DocOf(gen, spec)

				if spec.Assign.IsValid() {
					// Aliases are copied as they are.
					if c := firstDirective(doc); c != nil {
						errs = errors.Join(errs, codefmt.Errorf(p, c, "wrapgen directives cannot be used on alias %s", spec.Name.Name))
					}
					continue
				}

				decl, err := p.parseDecl(spec, doc)
				if err != nil {
					errs = errors.Join(errs, err)
					continue
				}
				decls = append(decls, decl)
			}
		}
	}

	return decls, errs
}

// DocOf returns the doc comment of the type spec. The doc comment of an
// unparenthesized type declaration belongs to its only spec.
func DocOf(gen *ast.GenDecl, spec *ast.TypeSpec) *ast.CommentGroup {
	if spec.Doc != nil {
		return spec.Doc
	}
	if !gen.Lparen.IsValid() {
		return gen.Doc
	}
	return nil
}

func (p *Parser) parseDecl(spec *ast.TypeSpec, doc *ast.CommentGroup) (*Decl, error) {
	decl := &Decl{Spec: spec}

	var errs error
	if err := p.parseDirectives(decl, doc); err != nil {
		errs = errors.Join(errs, err)
	}

	shape, err := p.parseShape(spec)
	if err != nil {
		errs = errors.Join(errs, err)
	}
	decl.Shape = shape

	if errs != nil {
		return nil, errs
	}
	return decl, nil
}

// Methods returns the methods declared in the package by their receiver base
// type names. Both wrapgen files and regular files are scanned.
func (p *Parser) Methods() map[string][]*ast.FuncDecl {
	methods := make(map[string][]*ast.FuncDecl)
	for _, file := range p.Pkg().Syntax {
		for _, d := range file.Decls {
			fn, ok := d.(*ast.FuncDecl)
			if !ok || fn.Recv == nil || len(fn.Recv.List) == 0 {
				continue
			}
			if name, ok := recvBaseName(fn.Recv.List[0].Type); ok {
				methods[name] = append(methods[name], fn)
			}
		}
	}
	return methods
}

// recvBaseName extracts the base type name of a receiver type.
//
//	T, *T, T[P], *T[P, Q] => T
func recvBaseName(expr ast.Expr) (string, bool) {
	expr = ast.Unparen(expr)
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = ast.Unparen(star.X)
	}
	switch x := expr.(type) {
	case *ast.IndexExpr:
		expr = x.X
	case *ast.IndexListExpr:
		expr = x.X
	}
	if id, ok := expr.(*ast.Ident); ok {
		return id.Name, true
	}
	return "", false
}

// IsDirective reports whether the comment is a wrapgen directive.
func IsDirective(c *ast.Comment) bool {
	return strings.HasPrefix(c.Text, directivePrefix)
}

func firstDirective(doc *ast.CommentGroup) *ast.Comment {
	if doc == nil {
		return nil
	}
	for _, c := range doc.List {
		if IsDirective(c) {
			return c
		}
	}
	return nil
}
