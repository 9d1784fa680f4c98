package emit

import (
	"fmt"
	"strconv"

	"github.com/sublee/wrapgen/internal/codefmt"
	"github.com/sublee/wrapgen/internal/wrapgen/parse"
)

// request adds the methods of the requested capability. Companion
// capabilities are added first: BorrowMut also adds Borrow, DerefMut also adds
// Deref.
func (wr *Wrapper) request(pkger codefmt.Pkger, req parse.Request, ns codefmt.NS) error {
	switch req.Capability {
	case parse.AsRef:
		if req.Target == nil {
			return wr.add(pkger, req,
				wr.getter("AsRef", "returns the inner value."),
				wr.getter("AsInner", "returns the inner value."),
			)
		}
		return wr.add(pkger, req, wr.convGetter(req, suffixed("AsRef", req), "returns the inner value as %s."))

	case parse.AsMut, parse.ConstAsMut:
		// Go has no const methods. ConstAsMut is equivalent to AsMut.
		if req.Target == nil {
			return wr.add(pkger, req,
				wr.mutGetter("AsMut", "returns a pointer to the inner value."),
				wr.mutGetter("AsInnerMut", "returns a pointer to the inner value."),
			)
		}
		return wr.add(pkger, req, wr.convMutGetter(req, suffixed("AsMut", req), "returns a pointer to the inner value as %s."))

	case parse.Borrow:
		return wr.add(pkger, req, wr.borrow(req))

	case parse.BorrowMut:
		if req.Target == nil {
			return wr.add(pkger, req, wr.borrow(req), wr.mutGetter("BorrowMut", "mutably borrows the inner value."))
		}
		return wr.add(pkger, req, wr.borrow(req), wr.convMutGetter(req, suffixed("BorrowMut", req), "mutably borrows the inner value as %s."))

	case parse.Deref:
		return wr.add(pkger, req, wr.deref(req))

	case parse.DerefMut:
		m := wr.mutGetter("DerefMut", "dereferences the wrapper to a pointer to the inner value.")
		if req.Target != nil {
			m = wr.convMutGetter(req, "DerefMut", "dereferences the wrapper to %s.")
		}
		return wr.add(pkger, req, wr.deref(req), m)

	case parse.From:
		return wr.from(pkger, req, ns)

	case parse.Debug:
		return wr.add(pkger, req, &method{
			name:   "Format",
			doc:    "Format formats the inner value as if it were not wrapped.",
			params: func(w *codefmt.Writer) string {
				return fmt.Sprintf("(%s %s.State, %s rune)", wr.state, w.Import("fmt", "fmt"), wr.verb)
			},
			body: func(w *codefmt.Writer) string {
				pkg := w.Import("fmt", "fmt")
				return fmt.Sprintf("%s.Fprintf(%s, %s.FormatString(%s, %s), %s)", pkg, wr.state, pkg, wr.state, wr.verb, wr.innerField())
			},
		})

	case parse.DebugName:
		return wr.add(pkger, req, &method{
			name:   "Format",
			doc:    fmt.Sprintf("Format prints the type name %s only.", wr.decl.Name()),
			anon:   true,
			params: func(w *codefmt.Writer) string {
				return fmt.Sprintf("(%s %s.State, _ rune)", wr.state, w.Import("fmt", "fmt"))
			},
			body: func(w *codefmt.Writer) string {
				pkg := w.Import("fmt", "fmt")
				return fmt.Sprintf("%s.Fprint(%s, %s)", pkg, wr.state, strconv.Quote(wr.decl.Name()))
			},
		})
	}

	panic(fmt.Sprintf("unknown capability: %s", req.Capability))
}

// add registers the methods on the wrapper type. A name can be occupied only
// once.
func (wr *Wrapper) add(pkger codefmt.Pkger, req parse.Request, methods ...*method) error {
	for _, m := range methods {
		m.origin = req.String()
		m.pos = req.Pos()

		v, ok := wr.methods.Get(m.name)
		if !ok {
			wr.methods.Put(m.name, m)
			continue
		}

		prev := v.(*method)
		if prev.external {
			return codefmt.Errorf(pkger, req, "cannot generate method %s.%s for %s: conflicts with %s at %b", wr.decl.Name(), m.name, m.origin, prev.origin, prev.pos)
		}
		return codefmt.Errorf(pkger, req, "duplicate method %s.%s generated for %s and %s at %b", wr.decl.Name(), m.name, prev.origin, m.origin, prev.pos)
	}
	return nil
}

// getter returns the inner value.
//
//	func (w Name) AsRef() T { return w.inner }
func (wr *Wrapper) getter(name, doc string) *method {
	return &method{
		name:   name,
		doc:    name + " " + doc,
		result: wr.inner(),
		body: func(*codefmt.Writer) string {
			return "return " + wr.innerField()
		},
	}
}

// mutGetter returns a pointer to the inner value.
//
//	func (w *Name) AsMut() *T { return &w.inner }
func (wr *Wrapper) mutGetter(name, doc string) *method {
	return &method{
		name:   name,
		doc:    name + " " + doc,
		ptr:    true,
		result: "*" + wr.inner(),
		body: func(*codefmt.Writer) string {
			return "return &" + wr.innerField()
		},
	}
}

// suffixed names a method for the target type, e.g., AsRefBytes for
// AsRef[[]byte].
func suffixed(prefix string, req parse.Request) string {
	return prefix + codefmt.TypeSuffix(req.Target)
}

// convGetter converts the inner value to the target type.
//
//	func (w Name) AsRefBytes() []byte { return []byte(w.inner) }
func (wr *Wrapper) convGetter(req parse.Request, name, doc string) *method {
	return &method{
		name:   name,
		doc:    name + " " + fmt.Sprintf(doc, req.TargetSrc),
		result: req.TargetSrc,
		body: func(*codefmt.Writer) string {
			return fmt.Sprintf("return %s(%s)", codefmt.ParenType(req.TargetSrc), wr.innerField())
		},
	}
}

// convMutGetter converts a pointer to the inner value to a pointer to the
// target type. The underlying types of them must be identical.
//
//	func (w *Name) AsMutBytes() *[]byte { return (*[]byte)(&w.inner) }
func (wr *Wrapper) convMutGetter(req parse.Request, name, doc string) *method {
	ptr := "*" + req.TargetSrc
	return &method{
		name:   name,
		doc:    name + " " + fmt.Sprintf(doc, ptr),
		ptr:    true,
		result: ptr,
		body: func(*codefmt.Writer) string {
			return fmt.Sprintf("return (%s)(&%s)", ptr, wr.innerField())
		},
	}
}

func (wr *Wrapper) borrow(req parse.Request) *method {
	if req.Target == nil {
		return wr.getter("Borrow", "borrows the inner value.")
	}
	return wr.convGetter(req, suffixed("Borrow", req), "borrows the inner value as %s.")
}

// deref is not suffixed by the target type because a wrapper dereferences to
// only one type.
func (wr *Wrapper) deref(req parse.Request) *method {
	if req.Target == nil {
		return wr.getter("Deref", "dereferences the wrapper to the inner value.")
	}
	return wr.convGetter(req, "Deref", "dereferences the wrapper to %s.")
}

// from adds the From method and the NameFrom function. Both delegate to the
// constructor. A record without default values cannot implement From.
//
//	func (Name) From(inner T) Name { return newName(inner) }
//	func NameFrom(inner T) Name { return newName(inner) }
func (wr *Wrapper) from(pkger codefmt.Pkger, req parse.Request, ns codefmt.NS) error {
	if field, ok := wr.undefaulted(); ok {
		return codefmt.Errorf(pkger, req, "cannot implement From for %s: it has multiple fields but no default value for %s", wr.decl.Name(), field.Name.Name)
	}

	call := func(*codefmt.Writer) string {
		return fmt.Sprintf("return %s%s(%s)", wr.ctor, wr.typeArgs, wr.param)
	}

	fromFunc := wr.decl.Name() + "From"
	err := wr.add(pkger, req, &method{
		name:   "From",
		doc:    fmt.Sprintf("From creates a %s from the inner value. The receiver is ignored.", wr.decl.Name()),
		anon:   true,
		params: func(*codefmt.Writer) string {
			return fmt.Sprintf("(%s %s)", wr.param, wr.inner())
		},
		result: wr.typ(),
		body:   call,
		extra: func(w *codefmt.Writer) {
			w.Printf("// %s creates a %s from the inner value.\n", fromFunc, wr.decl.Name())
			w.Printf("func %s%s(%s %s) %s {\n", fromFunc, wr.typeParams, wr.param, wr.inner(), wr.typ())
			w.Printf("%s\n", call(w))
			w.Printf("}\n\n")
		},
	})
	if err != nil {
		return err
	}

	if !ns.Reserve(fromFunc) {
		return codefmt.Errorf(pkger, req, "cannot generate function %s for From: %s is already declared", fromFunc, fromFunc)
	}
	wr.fromFunc = fromFunc
	return nil
}
