// Package emit builds and writes the Go code of wrapper declarations.
package emit

import (
	"errors"
	"go/ast"
	"go/token"
	"maps"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/sublee/wrapgen/internal/codefmt"
	"github.com/sublee/wrapgen/internal/wrapgen/parse"
)

// Wrapper is the generated code of a wrapper declaration. Call [Build] to
// create it, then [Wrapper.WriteDefineCode] to write it. All potential errors
// are returned by [Build].
type Wrapper struct {
	decl *parse.Decl
	fmt  codefmt.Formatter

	typeParams string // [K comparable, V any]
	typeArgs   string // [K, V]

	// Local names in generated functions
	recv  string
	param string
	state string
	verb  string

	ctor     string
	fromFunc string

	// methods holds names occupied on the wrapper type in order. Values are
	// *method.
	methods *linkedhashmap.Map
}

// method is a method to generate or a name already occupied on the wrapper
// type by a field or a declared method.
type method struct {
	name string
	doc  string

	ptr    bool                           // pointer receiver
	anon   bool                           // unnamed receiver
	params func(w *codefmt.Writer) string // "()" if nil
	result string
	body   func(w *codefmt.Writer) string

	// extra writes code following the method.
	extra func(w *codefmt.Writer)

	// origin describes who occupies the name.
	origin string
	pos    token.Pos

	// external is true for fields and declared methods. They are not
	// written.
	external bool
}

// Build builds the code of the wrapper declaration. ns is the package
// namespace to reserve generated function names. It must also hold the import
// names of the generated file. declared is the methods
// already declared on the wrapper type.
func Build(pkger codefmt.Pkger, decl *parse.Decl, ns codefmt.NS, declared []*ast.FuncDecl) (*Wrapper, error) {
	wr := &Wrapper{
		decl:    decl,
		fmt:     codefmt.New(pkger.Pkg()),
		methods: linkedhashmap.New(),
	}

	// Local names must not hide package-level names or import names which
	// generated bodies refer to.
	local := make(codefmt.NS)
	maps.Copy(local, ns)
	if tparams := decl.Spec.TypeParams; tparams != nil && len(tparams.List) != 0 {
		var args []string
		for _, field := range tparams.List {
			for _, name := range field.Names {
				args = append(args, name.Name)
				local.Reserve(name.Name)
			}
		}
		wr.typeParams = "[" + wr.fmt.FieldList(tparams) + "]"
		wr.typeArgs = "[" + strings.Join(args, ", ") + "]"
	}
	wr.recv = local.Name("w")
	wr.param = local.Name("inner")
	wr.state = local.Name("f")
	wr.verb = local.Name("verb")

	// Fields and declared methods occupy names on the type.
	for _, field := range decl.Shape.Fields() {
		if field.IsBlank() {
			continue
		}
		wr.methods.Put(field.Name.Name, &method{
			name:     field.Name.Name,
			origin:   "field " + field.Name.Name,
			pos:      field.Pos(),
			external: true,
		})
	}
	for _, fn := range declared {
		wr.methods.Put(fn.Name.Name, &method{
			name:     fn.Name.Name,
			origin:   "declared method",
			pos:      fn.Name.Pos(),
			external: true,
		})
	}

	var errs error

	if wr.Constructible() {
		name := "new"
		if decl.Shape.Inner.IsExported() {
			name = "New"
		}
		name += codefmt.UpperFirst(decl.Name())

		if ns.Reserve(name) {
			wr.ctor = name
		} else {
			errs = errors.Join(errs, codefmt.Errorf(pkger, decl.Spec.Name, "cannot generate constructor %s for %s: %s is already declared", name, decl.Name(), name))
		}
	}

	for _, req := range decl.Requests {
		errs = errors.Join(errs, wr.request(pkger, req, ns))
	}

	if errs != nil {
		return nil, errs
	}
	return wr, nil
}

// Pos returns the position of the wrapper declaration.
func (wr *Wrapper) Pos() token.Pos {
	return wr.decl.Pos()
}

// Name returns the name of the wrapper type.
func (wr *Wrapper) Name() string {
	return wr.decl.Name()
}

// Constructor returns the name of the generated constructor. It is empty if
// the wrapper has an extra field without a default value.
func (wr *Wrapper) Constructor() string {
	return wr.ctor
}

// FromFunc returns the name of the generated function for From. It is empty
// if From is not requested.
func (wr *Wrapper) FromFunc() string {
	return wr.fromFunc
}

// Constructible reports whether every non-blank extra field has a default
// value so that the wrapper can be created from its inner value alone.
func (wr *Wrapper) Constructible() bool {
	_, ok := wr.undefaulted()
	return !ok
}

// undefaulted returns the first non-blank extra field without a default value.
func (wr *Wrapper) undefaulted() (parse.Field, bool) {
	for _, field := range wr.decl.Shape.Extras {
		if !field.IsBlank() && !field.HasDefault() {
			return field, true
		}
	}
	return parse.Field{}, false
}

// Methods returns the names of the methods to generate in order.
func (wr *Wrapper) Methods() []string {
	var names []string
	for _, v := range wr.methods.Values() {
		if m := v.(*method); !m.external {
			names = append(names, m.name)
		}
	}
	return names
}

// typ returns the wrapper type with its type arguments, e.g., "Map[K, V]".
func (wr *Wrapper) typ() string {
	return wr.decl.Name() + wr.typeArgs
}

// inner returns the code of the inner type.
func (wr *Wrapper) inner() string {
	return wr.fmt.Expr(wr.decl.Shape.Inner.Type)
}

// innerField returns the code to access the inner field by the receiver.
func (wr *Wrapper) innerField() string {
	return wr.recv + "." + wr.decl.Shape.Inner.Name.Name
}

// WriteDefineCode writes the struct, the constructor, and the capability
// methods.
func (wr *Wrapper) WriteDefineCode(w *codefmt.Writer) {
	wr.writeStruct(w)
	if wr.ctor != "" {
		wr.writeConstructor(w)
	}
	for _, v := range wr.methods.Values() {
		m := v.(*method)
		if m.external {
			continue
		}
		wr.writeMethod(w, m)
	}
}

func (wr *Wrapper) writeMethod(w *codefmt.Writer, m *method) {
	recv := wr.typ()
	if m.ptr {
		recv = "*" + recv
	}
	if !m.anon {
		recv = wr.recv + " " + recv
	}

	result := ""
	if m.result != "" {
		result = " " + m.result
	}

	params := "()"
	if m.params != nil {
		params = m.params(w)
	}

	w.Printf("// %s\n", m.doc)
	w.Printf("func (%s) %s%s%s {\n", recv, m.name, params, result)
	w.Printf("%s\n", m.body(w))
	w.Printf("}\n\n")

	if m.extra != nil {
		m.extra(w)
	}
}
