package emit

import (
	"github.com/sublee/wrapgen/internal/codefmt"
	"github.com/sublee/wrapgen/internal/wrapgen/parse"
)

// writeStruct writes the wrapper type. The fields keep the declared order,
// types, struct tags and comments. Default values are consumed by the
// constructor.
//
//	// Doc comment passed through.
//	type Name[TypeParams] struct {
//		_ wrapgen.CachePad // align(cache) only
//
//		inner T
//		extra X `json:"extra"`
//	}
func (wr *Wrapper) writeStruct(w *codefmt.Writer) {
	for _, c := range wr.decl.Doc {
		w.Printf("%s\n", c.Text)
	}

	w.Printf("type %s%s struct {\n", wr.decl.Name(), wr.typeParams)
	if wr.decl.CachePad {
		wr.writeCachePad(w)
		w.Printf("\n")
	}
	fields := wr.decl.Shape.Fields()
	for len(fields) != 0 {
		// Names declared by one field spec share its type, tag and comments.
		n := 1
		for n < len(fields) && fields[n].Type == fields[0].Type {
			n++
		}
		wr.writeField(w, fields[:n])
		fields = fields[n:]
	}
	if wr.decl.CachePad {
		w.Printf("\n")
		wr.writeCachePad(w)
	}
	w.Printf("}\n\n")
}

func (wr *Wrapper) writeField(w *codefmt.Writer, names []parse.Field) {
	field := names[0]
	if field.Doc != nil {
		for _, c := range field.Doc.List {
			w.Printf("%s\n", c.Text)
		}
	}

	for i, name := range names {
		if i != 0 {
			w.Printf(", ")
		}
		w.Printf("%s", name.Name.Name)
	}
	w.Printf(" %c", field.Type)
	if field.Tag != "" {
		w.Printf(" %s", field.Tag)
	}
	if field.Comment != nil {
		for _, c := range field.Comment.List {
			w.Printf(" %s", c.Text)
		}
	}
	w.Printf("\n")
}

// writeConstructor writes the constructor which creates the wrapper from its
// inner value. Extra fields are initialized by their default values. Blank
// fields are left zero.
//
//	func newName[TypeParams](inner T) Name[TypeArgs] {
//		return Name[TypeArgs]{inner: inner, extra: DEFAULT}
//	}
func (wr *Wrapper) writeConstructor(w *codefmt.Writer) {
	inner := wr.decl.Shape.Inner

	w.Printf("// %s creates a %s wrapping the inner value.\n", wr.ctor, wr.decl.Name())
	w.Printf("func %s%s(%s %c) %s {\n", wr.ctor, wr.typeParams, wr.param, inner.Type, wr.typ())

	if len(wr.decl.Shape.Extras) == 0 {
		w.Printf("return %s{%s: %s}\n", wr.typ(), inner.Name.Name, wr.param)
		w.Printf("}\n\n")
		return
	}

	w.Printf("return %s{\n", wr.typ())
	w.Printf("%s: %s,\n", inner.Name.Name, wr.param)
	for _, field := range wr.decl.Shape.Extras {
		if field.IsBlank() {
			continue
		}
		w.Printf("%s: %s,\n", field.Name.Name, field.DefaultSrc)
	}
	w.Printf("}\n")
	w.Printf("}\n\n")
}
