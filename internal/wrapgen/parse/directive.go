package parse

import (
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"strings"

	"github.com/sublee/wrapgen/internal/codefmt"
	"github.com/sublee/wrapgen/internal/suggest"
)

const directivePrefix = "//wrapgen:"

// directive is a parsed "//wrapgen:verb arg" comment.
type directive struct {
	comment *ast.Comment
	verb    string
	arg     string
}

func (d directive) Pos() token.Pos { return d.comment.Pos() }
func (d directive) End() token.Pos { return d.comment.End() }

// parseDirective splits a wrapgen directive comment. A trailing line comment
// is ignored:
//
//	//wrapgen:impl AsRef[[]byte] // for io.Writer
//	          ^^^^ ^^^^^^^^^^^^^
//	          verb arg
func parseDirective(c *ast.Comment) (directive, bool) {
	if !IsDirective(c) {
		return directive{}, false
	}

	text := strings.TrimPrefix(c.Text, directivePrefix)
	if i := strings.Index(text, "//"); i >= 0 {
		text = text[:i]
	}
	verb, arg, _ := strings.Cut(strings.TrimSpace(text), " ")
	return directive{comment: c, verb: verb, arg: strings.TrimSpace(arg)}, true
}

// grammarErrorf reports a declaration which does not match the wrapgen
// grammar.
func (p *Parser) grammarErrorf(poser codefmt.Poser, format string, args ...any) error {
	return codefmt.Errorf(p, poser, "invalid usage of wrapper declaration: "+format+"; refer to the wrapgen grammar", args...)
}

// parseDirectives peels wrapgen directives off the doc comment:
//
//	//wrapgen:impl Tag[Target]   (repeated)
//	//wrapgen:preset general     (repeated)
//	//wrapgen:repr align(cache)  (optional, after all impls)
//
// Other comment lines are passed through. Since gofmt moves directives to the
// end of a doc comment, they may follow the passthrough lines.
func (p *Parser) parseDirectives(decl *Decl, doc *ast.CommentGroup) error {
	if doc == nil {
		return nil
	}

	var errs error
	var repr *directive

	for _, c := range doc.List {
		d, ok := parseDirective(c)
		if !ok {
			decl.Doc = append(decl.Doc, c)
			continue
		}

		switch d.verb {
		case "impl":
			if repr != nil {
				errs = errors.Join(errs, p.grammarErrorf(d, "//wrapgen:impl must precede //wrapgen:repr at %b", repr.Pos()))
				continue
			}
			req, err := p.parseRequest(d)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			decl.Requests = append(decl.Requests, req)

		case "preset":
			if repr != nil {
				errs = errors.Join(errs, p.grammarErrorf(d, "//wrapgen:preset must precede //wrapgen:repr at %b", repr.Pos()))
				continue
			}
			if d.arg != "general" {
				errs = errors.Join(errs, p.grammarErrorf(d, "unknown preset %q", d.arg))
				continue
			}
			for _, c := range general {
				decl.Requests = append(decl.Requests, Request{Capability: c, Comment: d.comment})
			}

		case "repr":
			if repr != nil {
				errs = errors.Join(errs, p.grammarErrorf(d, "duplicate //wrapgen:repr, previous one at %b", repr.Pos()))
				continue
			}
			if d.arg != "align(cache)" {
				errs = errors.Join(errs, p.grammarErrorf(d, "unsupported representation %q, only align(cache) is supported", d.arg))
				continue
			}
			repr = &d
			decl.CachePad = true

		default:
			errs = errors.Join(errs, p.grammarErrorf(d, "unknown directive %q", directivePrefix+d.verb))
		}
	}

	// Drop blank lines which separated directives from the doc text.
	for len(decl.Doc) != 0 && strings.TrimSpace(decl.Doc[len(decl.Doc)-1].Text) == "//" {
		decl.Doc = decl.Doc[:len(decl.Doc)-1]
	}

	return errs
}

// parseRequest parses the argument of "//wrapgen:impl", e.g., "AsRef" or
// "AsRef[[]byte]".
func (p *Parser) parseRequest(d directive) (Request, error) {
	if d.arg == "" {
		return Request{}, p.grammarErrorf(d, "//wrapgen:impl needs a capability")
	}

	name, target, hasTarget := strings.Cut(d.arg, "[")
	name = strings.TrimSpace(name)

	c, ok := LookupCapability(name)
	if !ok {
		if guess, ok := suggest.Closest(name, CapabilityNames()); ok {
			return Request{}, p.grammarErrorf(d, "unknown capability %q (did you mean %s?)", name, guess)
		}
		return Request{}, p.grammarErrorf(d, "unknown capability %q (available: %s)", name, strings.Join(CapabilityNames(), ", "))
	}

	req := Request{Capability: c, Comment: d.comment}
	if !hasTarget {
		return req, nil
	}

	if !c.Targetable() {
		return Request{}, p.grammarErrorf(d, "%s does not take a target type", c)
	}

	target = strings.TrimSpace(target)
	if !strings.HasSuffix(target, "]") {
		return Request{}, p.grammarErrorf(d, "target type of %s is not closed by ]", c)
	}
	target = strings.TrimSpace(strings.TrimSuffix(target, "]"))
	if target == "" {
		return Request{}, p.grammarErrorf(d, "target type of %s is empty", c)
	}

	expr, src, err := parseTypeExpr(target)
	if err != nil {
		return Request{}, p.grammarErrorf(d, "target type %q of %s is not a type: %s", target, c, err.Error())
	}
	req.Target = expr
	req.TargetSrc = src
	return req, nil
}

// parseTypeExpr parses a type expression out of a comment. It returns the
// expression and its canonical source code.
func parseTypeExpr(src string) (ast.Expr, string, error) {
	fset := token.NewFileSet()
	expr, err := parser.ParseExprFrom(fset, "", src, 0)
	if err != nil {
		return nil, "", err
	}
	if !isTypeExpr(expr) {
		return nil, "", fmt.Errorf("unexpected %T", expr)
	}

	var b strings.Builder
	if err := format.Node(&b, fset, expr); err != nil {
		return nil, "", err
	}
	return expr, b.String(), nil
}

// isTypeExpr reports whether the expression can be a type syntactically.
func isTypeExpr(expr ast.Expr) bool {
	switch x := expr.(type) {
	case *ast.Ident, *ast.ArrayType, *ast.MapType, *ast.ChanType, *ast.FuncType,
		*ast.InterfaceType, *ast.StructType:
		return true
	case *ast.ParenExpr:
		return isTypeExpr(x.X)
	case *ast.StarExpr:
		return isTypeExpr(x.X)
	case *ast.SelectorExpr:
		_, ok := x.X.(*ast.Ident)
		return ok
	case *ast.IndexExpr:
		return isTypeExpr(x.X) && isTypeExpr(x.Index)
	case *ast.IndexListExpr:
		if !isTypeExpr(x.X) {
			return false
		}
		for _, index := range x.Indices {
			if !isTypeExpr(index) {
				return false
			}
		}
		return true
	}
	return false
}
