// golangcilintwrapgen package provides a plugin for golangci-lint to integrate
// the Wrapgen analyzer. To build a custom golangci-lint binary with this
// plugin, use the following command at this package's directory:
//
//	golangci-lint custom
//
// Run the binary with the "wrapgen" build tag, otherwise wrapgen files are
// not loaded.
package golangcilintwrapgen

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/sublee/wrapgen/pkg/wrapgenanalysis"
)

func init() {
	register.Plugin("wrapgen", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return WrapgenLinter{}, nil
}

type WrapgenLinter struct{}

func (WrapgenLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{wrapgenanalysis.Analyzer}, nil
}

func (WrapgenLinter) GetLoadMode() string {
	return register.LoadModeSyntax
}
