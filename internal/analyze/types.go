package analyze

import "typename-resolver/internal/model"

// TypeGraph holds the type elements of all analyzed packages.
type TypeGraph struct {
	// Types maps qualified names to elements.
	Types map[string]*model.TypeElement
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[string]*model.TypeElement),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the element with the given qualified name, or nil if not found.
func (g *TypeGraph) GetType(qualifiedName string) *model.TypeElement {
	return g.Types[qualifiedName]
}

// Elements returns the elements of every package in load order, each
// package's types sorted by name.
func (g *TypeGraph) Elements(order []string) []*model.TypeElement {
	var out []*model.TypeElement

	for _, path := range order {
		pkg, ok := g.Packages[path]
		if !ok {
			continue
		}

		for _, name := range pkg.Types {
			out = append(out, g.Types[name])
		}
	}

	return out
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path    string                // Import path
	Name    string                // Package name
	Element *model.PackageElement // Root of every element in the package
	Types   []string              // Qualified names of exported named types
}
