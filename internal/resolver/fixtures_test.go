package resolver

import (
	"github.com/davecgh/go-spew/spew"

	"typename-resolver/internal/model"
)

// dump shows descriptors by field; the String methods would hide the
// shape that made a case fail.
var dump = spew.ConfigState{Indent: "  ", DisableMethods: true, DisablePointerAddresses: true}

// fakeElement lets tests build enclosing chains the model constructors refuse to.
type fakeElement struct {
	kind      model.ElementKind
	name      string
	enclosing model.Element
}

func (f *fakeElement) Kind() model.ElementKind  { return f.kind }
func (f *fakeElement) SimpleName() string       { return f.name }
func (f *fakeElement) QualifiedName() string    { return f.name }
func (f *fakeElement) Enclosing() model.Element { return f.enclosing }

func declared(pkg, name string, args ...model.Type) (*model.TypeElement, *model.Declared) {
	e := model.NewTypeElement(model.NewPackage(pkg), name)
	return e, model.NewDeclared(e, args...)
}

func nested(pkg string, names ...string) *model.TypeElement {
	var enclosing model.Element = model.NewPackage(pkg)

	var e *model.TypeElement
	for _, name := range names {
		e = model.NewTypeElement(enclosing, name)
		enclosing = e
	}

	return e
}
