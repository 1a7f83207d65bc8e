// Package resolver renders type descriptors as canonical, deterministic names
// for generated code.
//
// Two renderings exist for every declared type:
//   - source form, nested segments joined with '.' ("a.b.Outer.Inner"),
//     for references to existing types in generated source
//   - binary form, nested segments joined with '$' ("a.b.Outer$Inner"),
//     for new class names and runtime lookup keys
//
// The package-to-type boundary is always '.', primitives are always boxed,
// arrays end in "[]" and type variables are erased. A Resolver only holds
// read-only configuration and is safe for concurrent use.
package resolver
