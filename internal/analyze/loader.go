package analyze

import (
	"fmt"
	"go/types"

	"golang.org/x/tools/go/packages"

	"typename-resolver/internal/model"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and converts their types into the model.
type Analyzer struct {
	graph    *TypeGraph
	order    []string
	packages map[string]*model.PackageElement
	elements map[*types.TypeName]*model.TypeElement // Cache to handle recursive types
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph:    NewTypeGraph(),
		packages: make(map[string]*model.PackageElement),
		elements: make(map[*types.TypeName]*model.TypeElement),
	}
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./shop", "example.com/shop").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		if pkg.Types == nil {
			return nil, fmt.Errorf("package %s has no type information", pkg.PkgPath)
		}

		a.AddPackage(pkg.Types)
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// Order returns package paths in the order they were added.
func (a *Analyzer) Order() []string {
	return append([]string(nil), a.order...)
}

// AddPackage records every exported named type declared in pkg.
func (a *Analyzer) AddPackage(pkg *types.Package) *PackageInfo {
	if info, ok := a.graph.Packages[pkg.Path()]; ok {
		return info
	}

	info := &PackageInfo{
		Path:    pkg.Path(),
		Name:    pkg.Name(),
		Element: a.packageElement(pkg),
	}

	scope := pkg.Scope()
	for _, name := range scope.Names() {
		// Only process type names (not variables, constants, functions)
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		if _, ok := typeName.Type().(*types.Named); !ok {
			continue
		}

		elem := a.Element(typeName)
		a.graph.Types[elem.QualifiedName()] = elem
		info.Types = append(info.Types, elem.QualifiedName())
	}

	a.graph.Packages[pkg.Path()] = info
	a.order = append(a.order, pkg.Path())

	return info
}

// Elements returns the elements of all added packages in load order.
func (a *Analyzer) Elements() []*model.TypeElement {
	return a.graph.Elements(a.order)
}

func (a *Analyzer) packageElement(pkg *types.Package) *model.PackageElement {
	if p, ok := a.packages[pkg.Path()]; ok {
		return p
	}

	p := model.NewPackage(pkg.Path())
	a.packages[pkg.Path()] = p

	return p
}
