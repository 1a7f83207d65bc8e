package resolver

import "github.com/pkg/errors"

var (
	// ErrUnsupportedType is returned for a descriptor outside the four
	// renderable variants (wildcards, intersections, nil, ...).
	ErrUnsupportedType = errors.New("resolver: unsupported type")
	// ErrUnknownPrimitive is returned for a primitive kind outside the known set.
	ErrUnknownPrimitive = errors.New("resolver: unknown primitive kind")
	// ErrInvalidSeparator is returned for a separator other than '.' or '$'.
	ErrInvalidSeparator = errors.New("resolver: invalid separator")
	// ErrNoPackage is returned when an enclosing chain does not reach a package.
	ErrNoPackage = errors.New("resolver: no enclosing package")
	// ErrMalformedName is returned when a type's qualified name does not start
	// with its package name.
	ErrMalformedName = errors.New("resolver: qualified name outside its package")
)
