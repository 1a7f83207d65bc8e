package model

//go:generate go tool stringer -type=PrimitiveKind -linecomment -output=primitivekind_string.go
//go:generate go tool stringer -type=ElementKind -linecomment -output=elementkind_string.go

// PrimitiveKind enumerates the primitive types that can appear in a descriptor.
type PrimitiveKind int

const (
	_ PrimitiveKind = iota // skip zero value, it marks an invalid kind

	PrimitiveByte    // byte
	PrimitiveShort   // short
	PrimitiveInt     // int
	PrimitiveLong    // long
	PrimitiveFloat   // float
	PrimitiveDouble  // double
	PrimitiveBoolean // boolean
	PrimitiveChar    // char
	PrimitiveVoid    // void

	// PrimitiveTotal is the number of valid kinds plus the zero value.
	PrimitiveTotal = int(iota)
)

// IsValid reports whether k is one of the nine known kinds.
func (k PrimitiveKind) IsValid() bool {
	return k > 0 && int(k) < PrimitiveTotal
}

// PrimitiveKinds returns all valid kinds in declaration order.
func PrimitiveKinds() []PrimitiveKind {
	kinds := make([]PrimitiveKind, 0, PrimitiveTotal-1)
	for k := PrimitiveByte; int(k) < PrimitiveTotal; k++ {
		kinds = append(kinds, k)
	}

	return kinds
}

// ElementKind distinguishes the nodes of the enclosing-element tree.
type ElementKind int

const (
	ElementUnknown ElementKind = iota // unknown
	ElementPackage                    // package
	ElementType                       // type
)
