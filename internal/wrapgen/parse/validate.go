package parse

import (
	"errors"
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/ast/astutil"

	"github.com/sublee/wrapgen/internal/codefmt"
)

// Validate checks for usages outside expected paths. It collects all errors
// instead of stopping at the first error.
//
// Directives attached to wrapper declarations are checked while parsing them.
// This function reports the remaining directives which are never consumed.
func (p *Parser) Validate(decls []*Decl) error {
	attached := make(map[*ast.Comment]bool)
	for _, decl := range decls {
		for _, req := range decl.Requests {
			attached[req.Comment] = true
		}
	}

	var errs error
	for _, file := range p.Pkg().Syntax {
		tagged := hasGoBuildWrapgen(file)
		for _, group := range file.Comments {
			for _, c := range group.List {
				if !IsDirective(c) || attached[c] || p.isDeclDirective(file, c) {
					continue
				}
				errs = errors.Join(errs, p.validateStray(file, tagged, c))
			}
		}
	}
	return errs
}

// isDeclDirective reports whether the comment is in the doc comment of a type
// spec in a wrapgen file. Such directives are already checked by
// [Parser.ParseDecls].
func (p *Parser) isDeclDirective(file *ast.File, c *ast.Comment) bool {
	if !hasGoBuildWrapgen(file) {
		return false
	}
	for _, d := range file.Decls {
		gen, ok := d.(*ast.GenDecl)
		if !ok {
			continue
		}
		for _, spec := range gen.Specs {
			spec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			if within(DocOf(gen, spec), c) {
				return true
			}
		}
	}
	return false
}

// validateStray explains why a directive is not consumed.
func (p *Parser) validateStray(file *ast.File, tagged bool, c *ast.Comment) error {
	if !tagged {
		return codefmt.Errorf(p, c, `wrapgen directive requires "//go:build wrapgen" constraint in the file`)
	}

	for _, d := range file.Decls {
		switch d := d.(type) {
		case *ast.FuncDecl:
			if within(d.Doc, c) {
				return codefmt.Errorf(p, c, "wrapgen directive cannot be used on function %s", d.Name.Name)
			}
		case *ast.GenDecl:
			if !within(d.Doc, c) {
				continue
			}
			if d.Tok == token.TYPE {
				return codefmt.Errorf(p, c, "wrapgen directive must be attached to each type spec in a parenthesized declaration")
			}
			return codefmt.Errorf(p, c, "wrapgen directive must be attached to a type declaration, not %s", d.Tok)
		}
	}

	var field *ast.Field
	ast.Inspect(file, func(node ast.Node) bool {
		if f, ok := node.(*ast.Field); ok && (within(f.Doc, c) || within(f.Comment, c)) {
			field = f
		}
		return field == nil
	})
	if field != nil && len(field.Names) != 0 {
		return codefmt.Errorf(p, c, "wrapgen directive cannot be used on field %s", field.Names[0].Name)
	}

	path, _ := astutil.PathEnclosingInterval(file, c.Pos(), c.End())
	for _, node := range path {
		switch node := node.(type) {
		case *ast.FuncDecl:
			return codefmt.Errorf(p, c, "wrapgen directive cannot be used in function %s", node.Name.Name)
		case *ast.GenDecl:
			return codefmt.Errorf(p, c, "wrapgen directive must be attached to a type declaration, not %s", node.Tok)
		}
	}
	return codefmt.Errorf(p, c, "wrapgen directive must be attached to a type declaration")
}

func within(group *ast.CommentGroup, c *ast.Comment) bool {
	return group != nil && group.Pos() <= c.Pos() && c.End() <= group.End()
}
