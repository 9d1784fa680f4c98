package wrapgeninternal

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/wrapgen/internal/wrapgen/parse"
)

var Version string

// Main is the main entry point for Wrapgen. It is used by the command-line tool
// directly.
//
// ctx is the context for loading packages. If the loading is too slow, ctx can
// cancel the operation. logger receives progress messages. wd is the path of
// the working directory. env is the environment variables to use when running
// the tool. tags is the build tags to use when loading packages. tests
// indicates whether to include test files. outFile is the name of the output
// file to generate in each package. And patterns are the package patterns to
// process.
//
// It returns a map of output file paths to their contents. If any error occurs,
// it returns a non-nil error.
func Main(ctx context.Context, logger *zap.Logger, wd string, env []string, tags string, tests bool, outFile string, patterns []string) (map[string][]byte, error) {
	pkgs, err := load(ctx, wd, env, tags, tests, patterns)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded packages", zap.Strings("patterns", patterns), zap.Int("count", len(pkgs)))

	outs := make(map[string][]byte)
	var errs error

	for _, pkg := range pkgs {
		log := logger.With(zap.String("pkg", pkg.PkgPath))

		if len(pkg.Errors) != 0 {
			err := fmt.Errorf("pkg %q has errors", pkg.Name)
			errs = errors.Join(errs, err)
			continue
		}

		g, err := New(pkg)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		if err := g.Build(); err != nil {
			log.Debug("failed to build wrappers", zap.Error(err))
			errs = errors.Join(errs, err)
			continue
		}

		code := g.Generate()
		if len(code) == 0 {
			log.Debug("no wrapgen files")
			continue
		}

		outDir := filepath.Dir(pkg.GoFiles[0])
		if rel, err := filepath.Rel(wd, outDir); err == nil {
			outDir = rel
		}
		out := filepath.Join(outDir, outFile)
		outs[out] = code

		for _, wr := range g.Wrappers() {
			log.Debug("generated wrapper",
				zap.String("type", wr.Name()),
				zap.String("constructor", wr.Constructor()),
				zap.Strings("methods", wr.Methods()),
			)
		}
		log.Debug("generated", zap.String("file", out), zap.Int("wrappers", len(g.Wrappers())))
	}
	if errs != nil {
		// errs already contains comprehensive error messages. So we don't need
		// to attach another error message.
		return nil, reorderErrors(errs)
	}

	return outs, nil
}

// load loads packages. Only syntax is loaded because wrappers are generated
// without type checking.
func load(ctx context.Context, wd string, env []string, tags string, tests bool, patterns []string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode:       packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles | packages.NeedSyntax,
		Context:    ctx,
		Dir:        wd,
		Env:        env,
		BuildFlags: []string{"-tags=" + parse.BuildTag},
		Tests:      tests,
	}
	if tags != "" {
		cfg.BuildFlags[0] += "," + tags
	}

	// Load the packages based on the provided patterns.
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found: %v", patterns)
	}

	// Check for errors in the loaded packages.
	var errs error
	for _, pkg := range pkgs {
		for _, err := range pkg.Errors {
			if err.Pos == "" {
				errs = errors.Join(errs, errors.New(err.Msg))
				continue
			}

			path, rowcol, _ := strings.Cut(err.Pos, ":")
			if rel, relErr := filepath.Rel(wd, path); relErr == nil {
				err.Pos = rel + ":" + rowcol
			}
			errs = errors.Join(errs, err)
		}
	}
	if errs != nil {
		return nil, errs
	}

	return pkgs, nil
}

// reorderErrors flattens joined errors and sorts them by message. Packages
// are not loaded in a stable order.
func reorderErrors(errs error) error {
	if errs == nil {
		return nil
	}

	var list []error
	var flatten func(error)
	flatten = func(err error) {
		// errors.Join nests when joining joined errors.
		if u, ok := err.(interface{ Unwrap() []error }); ok {
			for _, err := range u.Unwrap() {
				flatten(err)
			}
			return
		}
		list = append(list, err)
	}
	flatten(errs)

	slices.SortStableFunc(list, func(a, b error) int {
		return strings.Compare(a.Error(), b.Error())
	})
	return errors.Join(list...)
}
