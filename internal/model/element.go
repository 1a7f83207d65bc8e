package model

import "strings"

// Element is a node of the enclosing-element tree: a package or a type.
type Element interface {
	Kind() ElementKind
	SimpleName() string
	QualifiedName() string
	// Enclosing returns the element this one is declared in, or nil for a package.
	Enclosing() Element
}

// PackageElement is the root of every enclosing chain.
type PackageElement struct {
	name string
}

// NewPackage creates a package element. An empty name denotes the unnamed package.
func NewPackage(qualifiedName string) *PackageElement {
	return &PackageElement{name: qualifiedName}
}

func (*PackageElement) Kind() ElementKind       { return ElementPackage }
func (p *PackageElement) QualifiedName() string { return p.name }
func (*PackageElement) Enclosing() Element      { return nil }
func (p *PackageElement) IsUnnamed() bool       { return p.name == "" }
func (p *PackageElement) String() string        { return p.name }

// SimpleName returns the last segment of the package name.
func (p *PackageElement) SimpleName() string {
	return p.name[strings.LastIndexAny(p.name, "./")+1:]
}

// TypeElement is a named type declared in a package or nested in another type.
type TypeElement struct {
	simpleName    string
	qualifiedName string
	enclosing     Element
	superclass    Type
}

// NewTypeElement creates a type named simpleName declared inside enclosing.
// The qualified name is the enclosing qualified name, a dot, and simpleName.
func NewTypeElement(enclosing Element, simpleName string) *TypeElement {
	qualified := simpleName
	if enclosing != nil && enclosing.QualifiedName() != "" {
		qualified = enclosing.QualifiedName() + "." + simpleName
	}

	return &TypeElement{
		simpleName:    simpleName,
		qualifiedName: qualified,
		enclosing:     enclosing,
	}
}

// NewTypeElementQualified creates a type element whose qualified name is
// supplied by the caller instead of derived from enclosing.
func NewTypeElementQualified(enclosing Element, simpleName, qualifiedName string) *TypeElement {
	return &TypeElement{
		simpleName:    simpleName,
		qualifiedName: qualifiedName,
		enclosing:     enclosing,
	}
}

func (*TypeElement) Kind() ElementKind       { return ElementType }
func (e *TypeElement) SimpleName() string    { return e.simpleName }
func (e *TypeElement) QualifiedName() string { return e.qualifiedName }
func (e *TypeElement) String() string        { return e.qualifiedName }

// Enclosing returns the package or type e is declared in.
func (e *TypeElement) Enclosing() Element {
	return e.enclosing
}

// Superclass returns the declared superclass, or nil if there is none.
func (e *TypeElement) Superclass() Type {
	return e.superclass
}

// SetSuperclass records the superclass of e. It is meant for graph
// construction and returns e for chaining; the element must not be changed
// once it has been handed out.
func (e *TypeElement) SetSuperclass(t Type) *TypeElement {
	e.superclass = t
	return e
}

// IsNested reports whether e is declared inside another type.
func (e *TypeElement) IsNested() bool {
	return e.enclosing != nil && e.enclosing.Kind() == ElementType
}

// AsType returns the raw Declared type for e.
func (e *TypeElement) AsType() *Declared {
	return NewDeclared(e)
}
