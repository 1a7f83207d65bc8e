package resolver

import (
	"strings"

	"typename-resolver/internal/model"
)

// ApplicationSupertype returns the superclass of e unless it is missing or
// lives in a platform namespace. Generators walking a supertype chain for
// annotated members stop there: platform classes are never annotated with
// application annotations.
func (r *Resolver) ApplicationSupertype(e *model.TypeElement) (model.Type, bool) {
	if e == nil {
		return nil, false
	}

	super, ok := e.Superclass().(*model.Declared)
	if !ok || super.Element == nil {
		return nil, false
	}

	if r.IsPlatformName(super.String()) {
		return nil, false
	}

	return super, true
}

// IsPlatformName reports whether name starts with a reserved platform prefix.
func (r *Resolver) IsPlatformName(name string) bool {
	for _, prefix := range r.platformPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}

	return false
}

// SupertypeChain follows ApplicationSupertype from e and returns every
// application supertype in order, nearest first. The walk stops at the
// first platform or missing supertype, on a cycle, or at the depth limit.
func (r *Resolver) SupertypeChain(e *model.TypeElement) []model.Type {
	chain, _ := r.WalkSupertypes(e)
	return chain
}

// WalkSupertypes is SupertypeChain that also reports whether the walk ended
// at a platform or missing supertype. It returns false when a cycle or the
// depth limit cut the chain short.
func (r *Resolver) WalkSupertypes(e *model.TypeElement) ([]model.Type, bool) {
	var chain []model.Type

	seen := map[*model.TypeElement]bool{e: true}
	cur := e

	for range r.maxDepth {
		super, ok := r.ApplicationSupertype(cur)
		if !ok {
			return chain, true
		}

		next := super.(*model.Declared).Element
		if seen[next] {
			return chain, false
		}

		chain = append(chain, super)
		seen[next] = true
		cur = next
	}

	// The limit was reached; the chain is complete only if nothing follows.
	_, more := r.ApplicationSupertype(cur)

	return chain, !more
}
