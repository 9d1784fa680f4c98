package emit

import (
	"github.com/sublee/wrapgen/internal/codefmt"
	"github.com/sublee/wrapgen/internal/wrapgen/parse"
)

// writeCachePad writes a padding field for "//wrapgen:repr align(cache)". It
// is written both before and after the fields.
//
// Go cannot raise the alignment of a struct. Instead, a whole cache line on
// each side keeps the fields of the wrapper off the cache lines of whatever
// precedes and follows it in memory. The size of wrapgen.CachePad is chosen
// per GOARCH.
func (wr *Wrapper) writeCachePad(w *codefmt.Writer) {
	pkg := w.Import(parse.ImportPath, "wrapgen")
	w.Printf("_ %s.CachePad\n", pkg)
}
