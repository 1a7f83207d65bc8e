package resolver

import (
	"strings"

	"github.com/pkg/errors"

	"typename-resolver/internal/model"
)

// BoxedClassName returns the fully qualified wrapper class for k.
func BoxedClassName(k model.PrimitiveKind) (string, error) {
	switch k {
	case model.PrimitiveByte:
		return "java.lang.Byte", nil
	case model.PrimitiveShort:
		return "java.lang.Short", nil
	case model.PrimitiveInt:
		return "java.lang.Integer", nil
	case model.PrimitiveLong:
		return "java.lang.Long", nil
	case model.PrimitiveFloat:
		return "java.lang.Float", nil
	case model.PrimitiveDouble:
		return "java.lang.Double", nil
	case model.PrimitiveBoolean:
		return "java.lang.Boolean", nil
	case model.PrimitiveChar:
		return "java.lang.Character", nil
	case model.PrimitiveVoid:
		return "java.lang.Void", nil
	default:
		return "", errors.Wrapf(ErrUnknownPrimitive, "%s", k)
	}
}

// ParameterizedType returns raw followed by params, e.g.
// ParameterizedType("java.util.List", "java.lang.String") is
// "java.util.List<java.lang.String>".
func ParameterizedType(raw string, params ...string) string {
	var sb strings.Builder

	sb.WriteString(raw)
	sb.WriteString("<")
	sb.WriteString(strings.Join(params, ", "))
	sb.WriteString(">")

	return sb.String()
}
