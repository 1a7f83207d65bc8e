package model

import "strings"

// TypeKind names the variant of a Type.
type TypeKind int

const (
	TypeKindUnknown      TypeKind = iota
	TypeKindDeclared              // named type, possibly generic or nested
	TypeKindPrimitive             // byte, short, int, ...
	TypeKindArray                 // array of another type
	TypeKindTypeVariable          // unresolved generic parameter
	TypeKindWildcard              // ? extends T, ? super T
	TypeKindIntersection          // A & B
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindDeclared:
		return "declared"
	case TypeKindPrimitive:
		return "primitive"
	case TypeKindArray:
		return "array"
	case TypeKindTypeVariable:
		return "typevar"
	case TypeKindWildcard:
		return "wildcard"
	case TypeKindIntersection:
		return "intersection"
	default:
		return "unknown"
	}
}

// Type is a type descriptor produced by the type-checking phase.
// The set of implementations is closed to this package.
type Type interface {
	Kind() TypeKind
	String() string
	isType()
}

// Declared is a named type with optional type arguments.
type Declared struct {
	Element *TypeElement
	Args    []Type
}

// NewDeclared creates a Declared type for e.
func NewDeclared(e *TypeElement, args ...Type) *Declared {
	return &Declared{Element: e, Args: args}
}

func (*Declared) Kind() TypeKind { return TypeKindDeclared }
func (*Declared) isType()        {}

// String returns the qualified name followed by the arguments, if any.
func (d *Declared) String() string {
	var sb strings.Builder
	if d.Element != nil {
		sb.WriteString(d.Element.QualifiedName())
	}

	writeArgs(&sb, d.Args)

	return sb.String()
}

// Primitive is one of the nine primitive types.
type Primitive struct {
	PrimitiveKind PrimitiveKind
}

// NewPrimitive creates a Primitive of kind k.
func NewPrimitive(k PrimitiveKind) *Primitive {
	return &Primitive{PrimitiveKind: k}
}

func (*Primitive) Kind() TypeKind   { return TypeKindPrimitive }
func (*Primitive) isType()          {}
func (p *Primitive) String() string { return p.PrimitiveKind.String() }

// Array is an array of Component.
type Array struct {
	Component Type
}

// NewArray creates an Array of component.
func NewArray(component Type) *Array {
	return &Array{Component: component}
}

func (*Array) Kind() TypeKind { return TypeKindArray }
func (*Array) isType()        {}

func (a *Array) String() string {
	return typeString(a.Component) + "[]"
}

// TypeVariable is an unresolved generic parameter such as T.
type TypeVariable struct {
	Name string
}

// NewTypeVariable creates a TypeVariable named name.
func NewTypeVariable(name string) *TypeVariable {
	return &TypeVariable{Name: name}
}

func (*TypeVariable) Kind() TypeKind   { return TypeKindTypeVariable }
func (*TypeVariable) isType()          {}
func (v *TypeVariable) String() string { return v.Name }

// Wildcard is a bounded or unbounded wildcard argument.
type Wildcard struct {
	Extends Type
	Super   Type
}

func (*Wildcard) Kind() TypeKind { return TypeKindWildcard }
func (*Wildcard) isType()        {}

func (w *Wildcard) String() string {
	switch {
	case w.Extends != nil:
		return "? extends " + typeString(w.Extends)
	case w.Super != nil:
		return "? super " + typeString(w.Super)
	default:
		return "?"
	}
}

// Intersection is a type bounded by all of Bounds.
type Intersection struct {
	Bounds []Type
}

func (*Intersection) Kind() TypeKind { return TypeKindIntersection }
func (*Intersection) isType()        {}

func (i *Intersection) String() string {
	parts := make([]string, 0, len(i.Bounds))
	for _, b := range i.Bounds {
		parts = append(parts, typeString(b))
	}

	return strings.Join(parts, " & ")
}

// Unsupported carries a type the checker produced but this model has no
// variant for (maps, channels, functions, ...). Description is informational.
type Unsupported struct {
	Description string
}

func (*Unsupported) Kind() TypeKind   { return TypeKindUnknown }
func (*Unsupported) isType()          {}
func (u *Unsupported) String() string { return u.Description }

func writeArgs(sb *strings.Builder, args []Type) {
	if len(args) == 0 {
		return
	}

	sb.WriteString("<")

	for i, arg := range args {
		if i != 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(typeString(arg))
	}

	sb.WriteString(">")
}

func typeString(t Type) string {
	if t == nil {
		return "<nil>"
	}

	return t.String()
}
