package resolver

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typename-resolver/internal/config"
	"typename-resolver/internal/model"
)

func TestCanonicalName_TopLevel(t *testing.T) {
	res := Default()
	_, typ := declared("java.util", "List")

	for _, sep := range []Separator{SourceSeparator, BinarySeparator} {
		got, err := res.CanonicalName(typ, sep)
		require.NoError(t, err)
		assert.Equal(t, "java.util.List", got, "separator %s", sep)
	}
}

func TestCanonicalName_Nested(t *testing.T) {
	res := Default()
	inner := nested("a.b", "Outer", "Inner")
	require.Equal(t, "a.b.Outer.Inner", inner.QualifiedName())

	src, err := res.CanonicalName(inner.AsType(), SourceSeparator)
	require.NoError(t, err)
	assert.Equal(t, "a.b.Outer.Inner", src)

	bin, err := res.CanonicalName(inner.AsType(), BinarySeparator)
	require.NoError(t, err)
	assert.Equal(t, "a.b.Outer$Inner", bin)

	deep := nested("a.b", "Outer", "Middle", "Inner")
	bin, err = res.CanonicalName(deep.AsType(), BinarySeparator)
	require.NoError(t, err)
	assert.Equal(t, "a.b.Outer$Middle$Inner", bin)
}

func TestCanonicalName_Generic(t *testing.T) {
	res := Default()
	_, item := declared("a.c", "Item")
	_, box := declared("a.b", "Box", item)

	got, err := res.CanonicalName(box, SourceSeparator)
	require.NoError(t, err)
	assert.Equal(t, "a.b.Box<a.c.Item>", got)

	_, str := declared("java.lang", "String")
	_, entry := declared("java.util", "Map", str, model.NewArray(model.NewPrimitive(model.PrimitiveLong)))
	_, list := declared("java.util", "List", entry)

	got, err = res.CanonicalName(list, SourceSeparator)
	require.NoError(t, err)
	assert.Equal(t, "java.util.List<java.util.Map<java.lang.String, java.lang.Long[]>>", got)
}

func TestCanonicalName_ArgumentsStayInSourceForm(t *testing.T) {
	res := Default()
	entry := nested("java.util", "Map", "Entry")
	holder := nested("a.b", "Outer", "Holder")
	typ := model.NewDeclared(holder, entry.AsType())

	got, err := res.CanonicalName(typ, BinarySeparator)
	require.NoError(t, err)
	assert.Equal(t, "a.b.Outer$Holder<java.util.Map.Entry>", got)
}

func TestCanonicalName_PrimitivesAreBoxed(t *testing.T) {
	res := Default()

	got, err := res.CanonicalName(model.NewPrimitive(model.PrimitiveInt), SourceSeparator)
	require.NoError(t, err)
	assert.Equal(t, "java.lang.Integer", got)

	got, err = res.CanonicalName(model.NewArray(model.NewPrimitive(model.PrimitiveInt)), SourceSeparator)
	require.NoError(t, err)
	assert.Equal(t, "java.lang.Integer[]", got)

	got, err = res.CanonicalName(model.NewArray(model.NewArray(model.NewPrimitive(model.PrimitiveChar))), BinarySeparator)
	require.NoError(t, err)
	assert.Equal(t, "java.lang.Character[][]", got)
}

func TestCanonicalName_ArrayOfNested(t *testing.T) {
	res := Default()
	inner := nested("a.b", "Outer", "Inner")

	got, err := res.CanonicalName(model.NewArray(inner.AsType()), BinarySeparator)
	require.NoError(t, err)
	assert.Equal(t, "a.b.Outer$Inner[]", got)
}

func TestCanonicalName_TypeVariableIsErased(t *testing.T) {
	res := Default()

	got, err := res.CanonicalName(model.NewTypeVariable("T"), SourceSeparator)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, list := declared("java.util", "List", model.NewTypeVariable("T"))
	got, err = res.CanonicalName(list, SourceSeparator)
	require.NoError(t, err)
	assert.Equal(t, "java.util.List<>", got)

	_, m := declared("java.util", "Map", model.NewTypeVariable("K"), model.NewTypeVariable("V"))
	got, err = res.CanonicalName(m, SourceSeparator)
	require.NoError(t, err)
	assert.Equal(t, "java.util.Map<, >", got)
}

func TestCanonicalName_UnsupportedShapes(t *testing.T) {
	res := Default()
	_, item := declared("a.c", "Item")

	tests := []struct {
		name string
		typ  model.Type
	}{
		{"nil", nil},
		{"wildcard", &model.Wildcard{Extends: item}},
		{"intersection", &model.Intersection{Bounds: []model.Type{item, item}}},
		{"unsupported", &model.Unsupported{Description: "map[string]int"}},
		{"wildcard argument", model.NewDeclared(item.Element, &model.Wildcard{})},
		{"array of wildcard", model.NewArray(&model.Wildcard{Super: item})},
		{"declared without element", &model.Declared{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := res.CanonicalName(tt.typ, SourceSeparator)
			require.ErrorIs(t, err, ErrUnsupportedType, dump.Sdump(tt.typ))
			assert.Empty(t, got)
		})
	}
}

func TestCanonicalName_InvalidSeparator(t *testing.T) {
	_, typ := declared("a.b", "C")

	_, err := Default().CanonicalName(typ, Separator('/'))
	require.ErrorIs(t, err, ErrInvalidSeparator)
}

func TestCanonicalName_UnknownPrimitive(t *testing.T) {
	_, err := Default().CanonicalName(model.NewArray(model.NewPrimitive(model.PrimitiveKind(99))), SourceSeparator)
	require.ErrorIs(t, err, ErrUnknownPrimitive)
	assert.Contains(t, err.Error(), "PrimitiveKind(99)")
}

func TestCanonicalName_MalformedName(t *testing.T) {
	pkg := model.NewPackage("a.b")
	e := model.NewTypeElementQualified(pkg, "C", "x.y.C")

	_, err := Default().CanonicalName(e.AsType(), SourceSeparator)
	require.ErrorIs(t, err, ErrMalformedName)

	bare := model.NewTypeElementQualified(pkg, "", "a.b.")
	_, err = Default().CanonicalName(bare.AsType(), SourceSeparator)
	require.ErrorIs(t, err, ErrMalformedName)
}

func TestCanonicalName_UnnamedPackage(t *testing.T) {
	e := model.NewTypeElement(model.NewTypeElement(model.NewPackage(""), "Outer"), "Inner")

	got, err := Default().CanonicalName(e.AsType(), BinarySeparator)
	require.NoError(t, err)
	assert.Equal(t, "Outer$Inner", got)
}

func TestCanonicalName_Deterministic(t *testing.T) {
	res := Default()
	build := func() model.Type {
		_, item := declared("a.c", "Item")
		return model.NewDeclared(nested("a.b", "Outer", "Box"), item, model.NewArray(model.NewPrimitive(model.PrimitiveDouble)))
	}

	first, err := res.CanonicalName(build(), BinarySeparator)
	require.NoError(t, err)

	for range 10 {
		again, err := res.CanonicalName(build(), BinarySeparator)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}

	assert.Equal(t, "a.b.Outer$Box<a.c.Item, java.lang.Double[]>", first)
}

func TestTypeToString(t *testing.T) {
	entry := nested("java.util", "Map", "Entry")
	_, str := declared("java.lang", "String")
	typ := model.NewDeclared(entry, str, model.NewPrimitive(model.PrimitiveBoolean))

	got, err := Default().TypeToString(typ)
	require.NoError(t, err)
	assert.Equal(t, "java.util.Map.Entry<java.lang.String, java.lang.Boolean>", got)
}

func TestAdapterName(t *testing.T) {
	res := Default()

	got, err := res.AdapterName(nested("a.b", "Outer", "Inner"), "$$Factory")
	require.NoError(t, err)
	assert.Equal(t, "a.b.Outer$Inner$$Factory", got)

	top, _ := declared("com.example", "CoffeeMaker")
	got, err = res.AdapterName(top, "$$InjectAdapter")
	require.NoError(t, err)
	assert.Equal(t, "com.example.CoffeeMaker$$InjectAdapter", got)

	got, err = res.AdapterName(top, "")
	require.NoError(t, err)
	assert.Equal(t, "com.example.CoffeeMaker", got)
}

func TestAdapterName_Distinct(t *testing.T) {
	res := Default()
	elements := []*model.TypeElement{
		nested("a.b", "Outer", "Inner"),
		nested("a.b", "Outer"),
		nested("a", "b"),
		nested("a.b.Outer", "Inner"),
		nested("a.b", "OuterInner"),
	}

	seen := make(map[string]string)
	for _, e := range elements {
		name, err := res.AdapterName(e, "$$ModuleAdapter")
		require.NoError(t, err)

		prev, dup := seen[name]
		assert.False(t, dup, "%s and %s both map to %s", prev, e, name)
		seen[name] = e.QualifiedName()
	}
}

func TestAdapterName_Errors(t *testing.T) {
	_, err := Default().AdapterName(nil, "$$X")
	require.ErrorIs(t, err, ErrUnsupportedType)

	orphan := model.NewTypeElement(nil, "Orphan")
	_, err = Default().AdapterName(orphan, "$$X")
	require.ErrorIs(t, err, ErrNoPackage)
}

func TestMustHelpers(t *testing.T) {
	res := Default()
	inner := nested("a.b", "Outer", "Inner")

	assert.Equal(t, "a.b.Outer$Inner", res.MustCanonicalName(inner.AsType(), BinarySeparator))
	assert.Equal(t, "a.b.Outer$Inner_Factory", res.MustAdapterName(inner, "_Factory"))

	assert.Panics(t, func() { res.MustCanonicalName(&model.Wildcard{}, SourceSeparator) })
	assert.Panics(t, func() { res.MustAdapterName(model.NewTypeElement(nil, "X"), "") })
}

func TestPackageOf(t *testing.T) {
	res := Default()
	inner := nested("a.b", "Outer", "Middle", "Inner")

	pkg, err := res.PackageOf(inner)
	require.NoError(t, err)
	assert.Equal(t, "a.b", pkg.QualifiedName())

	self := model.NewPackage("a.b")
	pkg, err = res.PackageOf(self)
	require.NoError(t, err)
	assert.Same(t, self, pkg)
}

func TestPackageOf_Malformed(t *testing.T) {
	res := New(config.Config{MaxEnclosingDepth: 4})

	_, err := res.PackageOf(nil)
	require.ErrorIs(t, err, ErrNoPackage)

	_, err = res.PackageOf(model.NewTypeElement(nil, "Orphan"))
	require.ErrorIs(t, err, ErrNoPackage)

	// A cycle in the enclosing chain must not hang.
	a := &fakeElement{kind: model.ElementType, name: "A"}
	b := &fakeElement{kind: model.ElementType, name: "B", enclosing: a}
	a.enclosing = b

	_, err = res.PackageOf(a)
	require.ErrorIs(t, err, ErrNoPackage)
	assert.Contains(t, err.Error(), "depth limit 4")

	// Deeper than the limit.
	deep := nested("p", "A", "B", "C", "D", "E")
	_, err = res.PackageOf(deep)
	require.ErrorIs(t, err, ErrNoPackage)

	// Claims to be a package but is not a PackageElement.
	fake := &fakeElement{kind: model.ElementPackage, name: "fake"}
	_, err = res.PackageOf(model.NewTypeElement(fake, "X"))
	require.ErrorIs(t, err, ErrNoPackage)
}

func TestPackageOf_NilPointers(t *testing.T) {
	res := Default()

	tests := []struct {
		name string
		elem model.Element
	}{
		{"nil type element", (*model.TypeElement)(nil)},
		{"nil package element", (*model.PackageElement)(nil)},
		{"enclosed by nil type", model.NewTypeElementQualified((*model.TypeElement)(nil), "X", "X")},
		{"enclosed by nil package", model.NewTypeElementQualified((*model.PackageElement)(nil), "X", "a.X")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				_, err := res.PackageOf(tt.elem)
				require.ErrorIs(t, err, ErrNoPackage)
			})
		})
	}

	orphan := model.NewTypeElementQualified((*model.TypeElement)(nil), "X", "X")
	_, err := res.AdapterName(orphan, "$$InjectAdapter")
	require.ErrorIs(t, err, ErrNoPackage)

	_, err = res.CanonicalName(orphan.AsType(), BinarySeparator)
	require.ErrorIs(t, err, ErrNoPackage)
}

func TestDump_ShowsFields(t *testing.T) {
	item := model.NewTypeElement(model.NewPackage("a.b"), "Item").AsType()

	out := dump.Sdump(&model.Wildcard{Extends: item})
	assert.Contains(t, out, "Extends")
	assert.Contains(t, out, "qualifiedName")
	assert.Contains(t, out, `"a.b.Item"`)
}

func TestParseSeparator(t *testing.T) {
	tests := []struct {
		in   string
		want Separator
	}{
		{"source", SourceSeparator},
		{".", SourceSeparator},
		{"binary", BinarySeparator},
		{"$", BinarySeparator},
	}

	for _, tt := range tests {
		got, err := ParseSeparator(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseSeparator("/")
	require.ErrorIs(t, err, ErrInvalidSeparator)
}

func ExampleResolver_CanonicalName() {
	outer := model.NewTypeElement(model.NewPackage("java.util"), "Map")
	entry := model.NewTypeElement(outer, "Entry")
	str := model.NewTypeElement(model.NewPackage("java.lang"), "String")
	typ := model.NewDeclared(entry, str.AsType(), model.NewPrimitive(model.PrimitiveInt))

	res := Default()
	fmt.Println(res.MustCanonicalName(typ, SourceSeparator))
	fmt.Println(res.MustCanonicalName(typ, BinarySeparator))
	fmt.Println(res.MustAdapterName(entry, "$$InjectAdapter"))
	// Output:
	// java.util.Map.Entry<java.lang.String, java.lang.Integer>
	// java.util.Map$Entry<java.lang.String, java.lang.Integer>
	// java.util.Map$Entry$$InjectAdapter
}
