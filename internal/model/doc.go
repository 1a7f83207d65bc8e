// Package model provides the abstract type model handed to the resolver
// by the type-checking phase.
//
// Key types:
//   - Type: closed sum of Declared, Primitive, Array and TypeVariable,
//     plus the shapes the resolver rejects (Wildcard, Intersection, Unsupported)
//   - Element: PackageElement or TypeElement, linked by Enclosing()
//   - PrimitiveKind: the nine primitive kinds, including void
package model
