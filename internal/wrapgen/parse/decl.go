package parse

import (
	"go/ast"
	"go/token"
)

// Decl is a wrapper declaration: a type spec in a wrapgen file with its
// directives.
type Decl struct {
	Spec *ast.TypeSpec

	// Requests are the requested capabilities in the order of directives.
	// Presets are expanded.
	Requests []Request

	// CachePad is set by "//wrapgen:repr align(cache)".
	CachePad bool

	// Doc is the comment lines passed through to the generated type.
	Doc []*ast.Comment

	Shape Shape
}

func (d *Decl) Name() string { return d.Spec.Name.Name }
func (d *Decl) Pos() token.Pos { return d.Spec.Pos() }

// Request is a capability request by "//wrapgen:impl Tag[Target]".
type Request struct {
	Capability Capability

	// Target is the optional target type. It is parsed from the directive
	// comment so that its positions are meaningless. Use TargetSrc to print
	// it.
	Target    ast.Expr
	TargetSrc string

	Comment *ast.Comment
}

func (r Request) Pos() token.Pos { return r.Comment.Pos() }
func (r Request) End() token.Pos { return r.Comment.End() }

// String returns the request in the directive syntax, e.g., "AsRef[[]byte]".
func (r Request) String() string {
	if r.Target == nil {
		return r.Capability.String()
	}
	return r.Capability.String() + "[" + r.TargetSrc + "]"
}

// Shape is the field layout of a wrapper.
type Shape struct {
	// Tuple is true if the wrapper is declared by a non-struct type. Its inner
	// field is named "inner".
	Tuple bool

	Inner  Field
	Extras []Field
}

// Fields returns the inner field followed by the extra fields.
func (s Shape) Fields() []Field {
	return append([]Field{s.Inner}, s.Extras...)
}

// Field is a field of a wrapper.
type Field struct {
	Name *ast.Ident
	Type ast.Expr

	// DefaultSrc is the default value expression of an extra field. It is
	// empty if there's no default value.
	DefaultSrc string

	// Tag is the struct tag literal without the wrapgen key. It is empty if
	// nothing remains.
	Tag string

	Doc     *ast.CommentGroup
	Comment *ast.CommentGroup
}

func (f Field) Pos() token.Pos { return f.Name.Pos() }
func (f Field) IsBlank() bool { return f.Name.Name == "_" }
func (f Field) HasDefault() bool { return f.DefaultSrc != "" }
func (f Field) IsExported() bool { return f.Name.IsExported() }
