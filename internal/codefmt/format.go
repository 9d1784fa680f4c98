package codefmt

import (
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

// Formatter formats expressions and positions of a package.
type Formatter struct {
	PkgPath string
	Fset    *token.FileSet
}

func New(pkg *packages.Package) Formatter {
	if pkg == nil {
		return Formatter{}
	}
	return Formatter{pkg.PkgPath, pkg.Fset}
}

func newByPkger(pkger Pkger) Formatter {
	if pkger == nil {
		return New(nil)
	}
	return New(pkger.Pkg())
}

// Expr returns a Go source code representation of the given [ast.Expr].
func (f Formatter) Expr(expr ast.Expr) string {
	fset := f.Fset
	if fset == nil {
		fset = token.NewFileSet()
	}

	var b strings.Builder
	if err := format.Node(&b, fset, expr); err != nil {
		panic(err) // should never happen because ast.Expr must be supported by the go/printer
	}
	return b.String()
}

// ExprParen returns a Go source code representation of the given type
// expression. It wraps the string with parentheses if the expression cannot be
// used as a conversion callee as is.
//
// e.g., f.ExprParen([ast.Expr for *bytes.Buffer]) => "(*bytes.Buffer)"
func (f Formatter) ExprParen(expr ast.Expr) string {
	s := f.Expr(expr)
	return ParenType(s)
}

// ParenType wraps a type in parentheses when it starts with an operator or
// keyword that would bind wrongly in a conversion.
func ParenType(s string) string {
	if strings.HasPrefix(s, "*") || strings.HasPrefix(s, "<-") || strings.HasPrefix(s, "func") {
		return fmt.Sprintf("(%s)", s)
	}
	return s
}

// FieldList returns comma-separated "name Type" pairs of the field list. It is
// used for type parameter lists.
//
// e.g., f.FieldList([ast.FieldList for [K comparable, V any]]) => "K comparable, V any"
func (f Formatter) FieldList(list *ast.FieldList) string {
	if list == nil {
		return ""
	}

	var parts []string
	for _, field := range list.List {
		var names []string
		for _, name := range field.Names {
			names = append(names, name.Name)
		}
		if len(names) == 0 {
			parts = append(parts, f.Expr(field.Type))
			continue
		}
		parts = append(parts, strings.Join(names, ", ")+" "+f.Expr(field.Type))
	}
	return strings.Join(parts, ", ")
}

func (f Formatter) Pos(pos token.Pos) string {
	if f.Fset == nil {
		return FormatPosition(token.Position{})
	}
	return FormatPosition(f.Fset.Position(pos))
}

// wd is the cached working directory.
var wd, _ = os.Getwd()

func FormatPosition(pos token.Position) string {
	if !pos.IsValid() {
		return "-:-"
	}

	filename := pos.Filename
	if rel, err := filepath.Rel(wd, filename); err == nil {
		filename = rel
	}

	return fmt.Sprintf("%s:%d:%d", filename, pos.Line, pos.Column)
}
