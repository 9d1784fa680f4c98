// Package wrapgenanalysis reports invalid wrapper declarations as analysis
// diagnostics.
package wrapgenanalysis

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/wrapgen/internal/codefmt"
	wrapgeninternal "github.com/sublee/wrapgen/internal/wrapgen"
)

// Analyzer validates wrapper declarations in the package. Files must be loaded
// with the "wrapgen" build tag to be checked.
var Analyzer = &analysis.Analyzer{
	Name: "wrapgen",
	Doc:  "linter for wrapgen declarations",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:    pass.Pkg.Name(),
		PkgPath: pass.Pkg.Path(),
		Fset:    pass.Fset,
		Syntax:  pass.Files,
	}

	g, err := wrapgeninternal.New(pkg)
	if err != nil {
		return nil, err
	}

	err = g.Build()
	for _, codeErr := range codeErrors(err) {
		pass.Report(analysis.Diagnostic{
			Pos:     codeErr.Pos(),
			End:     codeErr.End(),
			Message: codeErr.Message(),
		})
	}
	return nil, nil
}

// codeErrors unrolls joined errors into code errors. Other errors are
// dropped because they have no position to report.
func codeErrors(err error) []*codefmt.CodeError {
	var list []*codefmt.CodeError
	errs := []error{err}
	for len(errs) != 0 {
		err := errs[0]
		errs = errs[1:]

		switch err := err.(type) {
		case *codefmt.CodeError:
			list = append(list, err)
		case interface{ Unwrap() []error }:
			errs = append(errs, err.Unwrap()...)
		}
	}
	return list
}
