package inspect

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"go/types"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/tools/go/packages"
)

// Verdict is the classification of one exported named type.
type Verdict struct {
	Pkg        string
	Name       string
	Capability Capability
	View       bool   // one of the two primitive views
	Iterator   string // iterator type, "" when none exists
}

// FullName returns the package-qualified type name.
func (v Verdict) FullName() string {
	return v.Pkg + "." + v.Name
}

// PackageReport holds the verdicts for one loaded package.
type PackageReport struct {
	Path        string
	Fingerprint string
	Verdicts    []Verdict
}

// Report is the result of one inspection run. RunID identifies the run
// so reports aggregated across CI invocations stay distinguishable.
type Report struct {
	RunID    string
	Packages []*PackageReport
}

// Verdict finds the verdict for a package-qualified type name.
func (r *Report) Verdict(fullName string) (Verdict, bool) {
	for _, pr := range r.Packages {
		for _, v := range pr.Verdicts {
			if v.FullName() == fullName {
				return v, true
			}
		}
	}
	return Verdict{}, false
}

// VerdictStore persists verdicts between runs, keyed by package path,
// type name and package fingerprint. A hit returns the stored verdict
// and skips classification entirely.
type VerdictStore interface {
	Get(pkg, typ, fingerprint string) (Verdict, bool, error)
}

// Inspector loads Go packages and classifies their exported named types
// against the buffer-sequence contracts.
type Inspector struct {
	// Dir is the working directory for package loading; empty means the
	// process working directory.
	Dir string

	// Tests includes test packages in the load.
	Tests bool

	// Store is optional; when set, verdicts are read from it by
	// fingerprint before any classification happens.
	Store VerdictStore
}

// Inspect loads the packages matched by patterns and classifies every
// exported named type in them.
func (ins *Inspector) Inspect(patterns ...string) (*Report, error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	cfg := &packages.Config{
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedCompiledGoFiles |
			packages.NeedTypes |
			packages.NeedTypesInfo |
			packages.NeedImports |
			packages.NeedDeps,
		Dir:   ins.Dir,
		Tests: ins.Tests,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}

	var errs []string
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, fmt.Sprintf("%s: %s", pkg.PkgPath, e.Msg))
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors:\n  %s", strings.Join(errs, "\n  "))
	}

	report := &Report{RunID: uuid.NewString()}
	for _, pkg := range pkgs {
		if pkg.Types == nil {
			continue
		}
		pr := &PackageReport{
			Path:        pkg.PkgPath,
			Fingerprint: fingerprint(pkg),
		}
		scope := pkg.Types.Scope()
		names := scope.Names()
		sort.Strings(names)
		for _, name := range names {
			tn, ok := scope.Lookup(name).(*types.TypeName)
			if !ok || !tn.Exported() || tn.IsAlias() {
				continue
			}
			pr.Verdicts = append(pr.Verdicts, ins.verdictFor(pkg.PkgPath, pr.Fingerprint, tn))
		}
		report.Packages = append(report.Packages, pr)
	}
	return report, nil
}

// verdictFor resolves one type's verdict, consulting the store first.
// A store miss or read failure only costs a re-classification.
func (ins *Inspector) verdictFor(pkgPath, fingerprint string, tn *types.TypeName) Verdict {
	if ins.Store != nil {
		if v, ok, err := ins.Store.Get(pkgPath, tn.Name(), fingerprint); err == nil && ok {
			return v
		}
	}
	return classifyNamed(pkgPath, tn)
}

func classifyNamed(pkgPath string, tn *types.TypeName) Verdict {
	t := tn.Type()
	v := Verdict{
		Pkg:        pkgPath,
		Name:       tn.Name(),
		Capability: Classify(t),
		View:       IsPrimitiveView(t),
	}
	if it, err := IteratorType(t); err == nil {
		v.Iterator = types.TypeString(it, nil)
	}
	return v
}

// fingerprint hashes the package's compiled sources so cached verdicts
// invalidate when any of them change.
func fingerprint(pkg *packages.Package) string {
	h := sha256.New()
	files := pkg.CompiledGoFiles
	if len(files) == 0 {
		files = pkg.GoFiles
	}
	for _, f := range files {
		fmt.Fprintln(h, f)
		data, err := os.ReadFile(f)
		if err != nil {
			continue
		}
		h.Write(data)
	}
	return hex.EncodeToString(h.Sum(nil))
}
