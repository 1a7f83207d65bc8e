package analyze

import (
	"go/types"

	"typename-resolver/internal/model"
)

// Element returns the model element for a named type's declaration.
// Elements are cached so recursive and mutually referring types share one
// element.
func (a *Analyzer) Element(obj *types.TypeName) *model.TypeElement {
	if elem, ok := a.elements[obj]; ok {
		return elem
	}

	var enclosing model.Element
	if obj.Pkg() != nil {
		enclosing = a.packageElement(obj.Pkg())
	}

	elem := model.NewTypeElement(enclosing, obj.Name())

	// Pre-cache before resolving the superclass, it may refer back to obj.
	a.elements[obj] = elem

	if super := embeddedSuperclass(obj.Type()); super != nil {
		elem.SetSuperclass(a.Convert(super))
	}

	return elem
}

// Convert maps a go/types type onto the model.
func (a *Analyzer) Convert(t types.Type) model.Type {
	switch tt := types.Unalias(t).(type) {
	case *types.Named:
		obj := tt.Origin().Obj()
		if obj.Pkg() == nil {
			// Universe types such as error and comparable.
			return &model.Unsupported{Description: tt.String()}
		}

		var args []model.Type
		if targs := tt.TypeArgs(); targs != nil {
			args = make([]model.Type, 0, targs.Len())
			for i := range targs.Len() {
				args = append(args, a.Convert(targs.At(i)))
			}
		}

		return model.NewDeclared(a.Element(obj), args...)

	case *types.Basic:
		if kind, ok := primitiveKind(tt.Kind()); ok {
			return model.NewPrimitive(kind)
		}

		return &model.Unsupported{Description: tt.String()}

	case *types.Pointer:
		return a.Convert(tt.Elem())

	case *types.Slice:
		return model.NewArray(a.Convert(tt.Elem()))

	case *types.Array:
		return model.NewArray(a.Convert(tt.Elem()))

	case *types.TypeParam:
		return model.NewTypeVariable(tt.Obj().Name())

	default:
		// Maps, interfaces, channels, functions and unnamed structs.
		return &model.Unsupported{Description: t.String()}
	}
}

func primitiveKind(k types.BasicKind) (model.PrimitiveKind, bool) {
	switch k {
	case types.Int8, types.Uint8:
		return model.PrimitiveByte, true
	case types.Int16:
		return model.PrimitiveShort, true
	case types.Uint16:
		return model.PrimitiveChar, true
	case types.Int32:
		return model.PrimitiveInt, true
	case types.Int, types.Int64:
		return model.PrimitiveLong, true
	case types.Float32:
		return model.PrimitiveFloat, true
	case types.Float64:
		return model.PrimitiveDouble, true
	case types.Bool:
		return model.PrimitiveBoolean, true
	default:
		return 0, false
	}
}

// embeddedSuperclass returns the named type embedded as the first field of
// t's struct, if any.
func embeddedSuperclass(t types.Type) types.Type {
	st, ok := t.Underlying().(*types.Struct)
	if !ok || st.NumFields() == 0 {
		return nil
	}

	field := st.Field(0)
	if !field.Embedded() {
		return nil
	}

	ft := types.Unalias(field.Type())
	if ptr, ok := ft.(*types.Pointer); ok {
		ft = types.Unalias(ptr.Elem())
	}

	if _, ok := ft.(*types.Named); !ok {
		return nil
	}

	return ft
}
