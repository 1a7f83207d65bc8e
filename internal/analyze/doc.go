// Package analyze provides package loading and conversion of go/types into
// the resolver's type model.
//
// It uses golang.org/x/tools/go/packages to type-check packages and maps:
//   - named types to model.Declared, keeping instantiated type arguments
//   - sized numeric and bool basics to model.Primitive
//   - arrays and slices to model.Array
//   - type parameters to model.TypeVariable
//   - everything else to model.Unsupported
//
// Pointers are transparent. The first embedded named field of a struct is
// recorded as the element's superclass.
package analyze
