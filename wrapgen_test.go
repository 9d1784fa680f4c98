package wrapgen_test

import (
	"bytes"
	"errors"
	"fmt"
	"go/build"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/tools/go/analysis/analysistest"

	"github.com/sublee/wrapgen"
	"github.com/sublee/wrapgen/internal/cacheline"
	wrapgeninternal "github.com/sublee/wrapgen/internal/wrapgen"
	"github.com/sublee/wrapgen/pkg/wrapgenanalysis"
)

// TestAnalysis tests parsing and building errors using the Go analysis
// protocol. In this test, Wrapgen errors will be reported as analysis errors.
// "// want `REGEXP`" comments in the fixture source files are used to check for
// expected analysis errors. A want comment may trail a directive because
// directives ignore trailing comments.
//
// The directory structure of testdata for subtests is as follows:
//
//	testdata/
//	└── analysis/
//	    ├── pkg1/
//	    │   └── *.go // with want comments
//	    └── pkg2/
//	        └── *.go // with want comments
func TestAnalysis(t *testing.T) {
	ents, err := os.ReadDir(filepath.FromSlash("testdata/analysis"))
	require.NoError(t, err)

	t.Setenv("GOFLAGS", "-tags=wrapgen")

	for _, ent := range ents {
		if !ent.IsDir() {
			continue
		}

		t.Run(ent.Name(), func(t *testing.T) {
			defer func() {
				if t.Failed() {
					t.Logf("\n\tReproduce:\tgo run ./cmd/wrapgen ./testdata/analysis/%s", ent.Name())
				}
			}()

			analysistest.Run(t, "", wrapgenanalysis.Analyzer, "./testdata/analysis/"+ent.Name())
		})
	}
}

// TestPrograms tests programs in the testdata directory.
//
// The directory structure of testdata for subtests is as follows:
//
//	testdata/
//	└── program/
//	    ├── program1/
//	    │   ├── main_pkg.txt --- If main_pkg.txt is not present, "main" will be used as the default package name.
//	    │   ├── main/
//	    │   │   └── main.go
//	    │   └── want/
//	    │       └── program_output.txt
//	    └── program2/
//	        ├── main/
//	        │   └── main.go
//	        └── want/
//	            └── wrapgen_error.txt
func TestPrograms(t *testing.T) {
	ents, err := os.ReadDir(filepath.FromSlash("testdata/program"))
	require.NoError(t, err)

	// The wrapgen package is copied into each GOPATH as well.
	root := make(map[string][]byte)
	for _, pattern := range []string{"doc.go", "wrapgen.go", "cachepad.go", "cacheline_*.go"} {
		names, err := filepath.Glob(pattern)
		require.NoError(t, err)
		for _, name := range names {
			root[name], err = os.ReadFile(name)
			require.NoError(t, err)
		}
	}

	var tests []*programTest
	for _, ent := range ents {
		name := ent.Name()
		if !ent.IsDir() || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
			continue
		}

		test, err := newProgramTest(name, root)
		if err != nil {
			t.Error(err)
			continue
		}

		tests = append(tests, test)
	}

	for _, test := range tests {
		t.Run(test.Name(), test.Test())
	}
}

// programTest is a test case for a program. It executes Wrapgen for the
// program and runs the program with generated code to check the output.
type programTest struct {
	name    string
	mainPkg string
	files   map[string][]byte
	want    struct {
		ProgramOutput string
		WrapgenError  string
	}
}

func (test *programTest) Name() string {
	return test.name
}

func (test *programTest) PkgPath() string {
	return fmt.Sprintf("example.com/%s", test.name)
}

func (test *programTest) ProgramPath() string {
	return fmt.Sprintf("%s/%s", test.PkgPath(), test.mainPkg)
}

// newProgramTest creates a new program test case. root is the source files of
// the wrapgen package by their names.
func newProgramTest(name string, root map[string][]byte) (*programTest, error) {
	dir := filepath.Join(filepath.FromSlash("testdata/program"), name)
	test := programTest{
		name:  name,
		files: make(map[string][]byte),
	}

	// mainPkg
	mainPkg, err := os.ReadFile(filepath.Join(dir, "main_pkg.txt"))
	if errors.Is(err, os.ErrNotExist) {
		mainPkg = []byte("main")
	} else if err != nil {
		return nil, fmt.Errorf("load test case %s: %v", name, err)
	}
	test.mainPkg = string(bytes.TrimSpace(mainPkg))

	// want
	programOutput, _ := os.ReadFile(filepath.Join(dir, "want", "program_output.txt"))
	wrapgenError, _ := os.ReadFile(filepath.Join(dir, "want", "wrapgen_error.txt"))
	test.want.ProgramOutput = string(bytes.TrimSpace(programOutput))
	test.want.WrapgenError = string(bytes.TrimSpace(wrapgenError))

	if test.want.ProgramOutput == "" && test.want.WrapgenError == "" {
		return nil, fmt.Errorf("load test case %s: does not want anything", name)
	}

	// files
	if err := filepath.WalkDir(dir, func(path string, ent os.DirEntry, err error) error {
		if err != nil {
			// Bubble up I/O errors
			return err
		}

		if ent.IsDir() || !ent.Type().IsRegular() || filepath.Ext(path) != ".go" {
			return nil
		}

		if ent.Name() == "wrapgen_gen.go" {
			// Skip generated Wrapgen files, they might be existed for debugging
			// purposes.
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		goCode, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		test.files[test.PkgPath()+"/"+filepath.ToSlash(rel)] = goCode
		return nil
	}); err != nil {
		return nil, fmt.Errorf("load test case %s: %v", name, err)
	}

	for name, code := range root {
		test.files["github.com/sublee/wrapgen/"+name] = code
	}
	return &test, nil
}

// materialize copies the program code and the wrapgen package into the given
// GOPATH.
func (test *programTest) materialize(gopath string) error {
	for name, content := range test.files {
		dst := filepath.Join(gopath, "src", filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(dst), 0o777); err != nil {
			return fmt.Errorf("mkdir %s: %w", name, err)
		}
		if err := os.WriteFile(dst, content, 0o666); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}

	// Write go.mod file for github.com/sublee/wrapgen
	wrapgenGomodPath := filepath.Join(gopath, "src", "github.com", "sublee", "wrapgen", "go.mod")
	wrapgenGomod := `
	module github.com/sublee/wrapgen
	go 1.25.0`
	if err := os.WriteFile(wrapgenGomodPath, []byte(wrapgenGomod), 0o666); err != nil {
		return fmt.Errorf("write github.com/sublee/wrapgen/go.mod: %w", err)
	}

	// Write go.mod file for example.com/NAME
	testGomodPath := filepath.Join(gopath, "src", filepath.FromSlash(test.PkgPath()), "go.mod")
	testGomod := fmt.Sprintf(`
	module %s
	go 1.25.0
	require github.com/sublee/wrapgen v0.0.0
	replace github.com/sublee/wrapgen => %s
	`, test.PkgPath(), filepath.Join(gopath, filepath.FromSlash("src/github.com/sublee/wrapgen")))
	if err := os.WriteFile(testGomodPath, []byte(testGomod), 0o666); err != nil {
		return fmt.Errorf("write %s/go.mod: %w", test.PkgPath(), err)
	}

	return nil
}

// Test returns a test function for the program test. It runs Wrapgen for the
// program and then checks its error or output messages.
func (test *programTest) Test() func(*testing.T) {
	return func(t *testing.T) {
		t.Parallel()

		defer func() {
			if t.Failed() {
				t.Logf("\n\tReproduce:\tgo run ./cmd/wrapgen ./testdata/program/%s/%s", test.Name(), test.mainPkg)
			}
		}()

		// Materialize in a temporary directory
		gopath := filepath.Join(os.TempDir(), "wrapgen_test_"+test.Name())
		require.NoError(t, os.RemoveAll(gopath))
		require.NoError(t, test.materialize(gopath), "Materialization failed")

		// Run Wrapgen
		wd := filepath.Join(gopath, "src", filepath.FromSlash(test.PkgPath()))
		env := append(os.Environ(), "GOPATH="+gopath)
		generated, wrapgenErr := wrapgeninternal.Main(t.Context(), zaptest.NewLogger(t), wd, env, "", false, "wrapgen_gen.go", []string{"pattern=./" + test.mainPkg})

		// Check for the Wrapgen error
		if wrapgenErr != nil {
			wrapgenErr = errors.New(relPathInString(wrapgenErr.Error(), wd))
			if test.want.WrapgenError != "" {
				want := normalizeWhitespace(test.want.WrapgenError)
				have := normalizeWhitespace(wrapgenErr.Error())
				assert.Equal(t, want, have)
			} else {
				require.NoError(t, wrapgenErr, "Wrapgen exited with errors unexpectedly")
			}
			return
		}

		if test.want.WrapgenError != "" {
			require.Error(t, wrapgenErr, "Wrapgen should have exited with an error")
		}

		// Write generated files
		for name, content := range generated {
			err := os.WriteFile(filepath.Join(wd, name), content, 0o666)
			require.NoError(t, err, "Failed to write a generated file")
		}

		// Run the program
		goCmd := filepath.Join(build.Default.GOROOT, "bin", "go")
		cmd := exec.Command(goCmd, "run", test.ProgramPath())
		cmd.Dir = wd
		progOut, err := cmd.CombinedOutput()
		require.NoError(t, err, string(progOut))

		// Test
		if test.want.ProgramOutput != "" {
			assert.Equal(t, test.want.ProgramOutput, strings.TrimSpace(string(progOut)))
		}
	}
}

// relPathInString replaces paths in the given string to their relative paths to
// the new working directory.
func relPathInString(s, wd string) string {
	realWD, err := os.Getwd()
	if err != nil {
		return s
	}

	rel, err := filepath.Rel(realWD, wd)
	if err != nil {
		return s
	}

	s = strings.ReplaceAll(s, rel+"/", "")
	s = strings.ReplaceAll(s, rel, "")
	return s
}

// normalizeWhitespace normalizes whitespace in the given string for consistent
// comparison regardless of whitespace style.
func normalizeWhitespace(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "\t", "    ")
	return s
}

// TestCacheLineFiles checks that the cacheline_*.go files are up to date with
// the cache line table. Run "go generate" if it fails.
func TestCacheLineFiles(t *testing.T) {
	for _, f := range cacheline.Builtin().Files() {
		want, err := cacheline.Render("wrapgen", f)
		require.NoError(t, err)

		have, err := os.ReadFile(f.Name)
		require.NoError(t, err, "go generate is required")

		if diff := cmp.Diff(string(want), string(have)); diff != "" {
			t.Errorf("%s is outdated (-want +have):\n%s", f.Name, diff)
		}
	}

	stale, err := filepath.Glob("cacheline_*.go")
	require.NoError(t, err)
	assert.Len(t, stale, len(cacheline.Builtin().Files()), "unexpected cacheline files")
}

func TestCacheLineSize(t *testing.T) {
	assert.Equal(t, cacheline.Lookup(runtime.GOARCH), wrapgen.CacheLineSize)
	assert.EqualValues(t, wrapgen.CacheLineSize, unsafe.Sizeof(wrapgen.CachePad{}))

	// Fields of a padded struct are a whole cache line away from both ends.
	type padded struct {
		_ wrapgen.CachePad
		n int64
		_ wrapgen.CachePad
	}
	var p padded
	assert.GreaterOrEqual(t, unsafe.Offsetof(p.n), uintptr(wrapgen.CacheLineSize))
	assert.GreaterOrEqual(t, unsafe.Sizeof(p)-unsafe.Offsetof(p.n)-unsafe.Sizeof(p.n), uintptr(wrapgen.CacheLineSize))
}

// token mimics a generated wrapper.
type token struct {
	inner string
}

func (w token) AsRef() string         { return w.inner }
func (w token) AsInner() string       { return w.inner }
func (token) From(inner string) token { return token{inner: inner} }

var _ wrapgen.AsRef[string] = token{}
var _ wrapgen.From[string, token] = token{}

func TestIntoInner(t *testing.T) {
	tok := wrapgen.Into[token]("hello")
	assert.Equal(t, token{inner: "hello"}, tok)
	assert.Equal(t, "hello", wrapgen.Inner[string](tok))
}
