package resolver

import (
	"strings"

	"github.com/pkg/errors"

	"typename-resolver/internal/config"
	"typename-resolver/internal/model"
)

// Resolver renders descriptors according to a fixed configuration.
type Resolver struct {
	platformPrefixes []string
	maxDepth         int
}

// New creates a Resolver from cfg. Zero values fall back to config.Default.
func New(cfg config.Config) *Resolver {
	def := config.Default()

	prefixes := cfg.PlatformPrefixes
	if prefixes == nil {
		prefixes = def.PlatformPrefixes
	}

	depth := cfg.MaxEnclosingDepth
	if depth <= 0 {
		depth = def.MaxEnclosingDepth
	}

	return &Resolver{
		platformPrefixes: append([]string(nil), prefixes...),
		maxDepth:         depth,
	}
}

// Default returns a Resolver using config.Default.
func Default() *Resolver {
	return New(config.Default())
}

// CanonicalName renders t, joining nested type segments with sep.
// Type arguments are always rendered in source form.
func (r *Resolver) CanonicalName(t model.Type, sep Separator) (string, error) {
	if !sep.IsValid() {
		return "", errors.Wrapf(ErrInvalidSeparator, "%q", sep.String())
	}

	var sb strings.Builder
	if err := r.writeType(&sb, t, sep); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// TypeToString renders t in source form, e.g. "java.util.List<java.lang.String>".
func (r *Resolver) TypeToString(t model.Type) (string, error) {
	return r.CanonicalName(t, SourceSeparator)
}

// AdapterName returns a fully qualified name for a generated type that
// complements e: e in binary form followed by suffix.
func (r *Resolver) AdapterName(e *model.TypeElement, suffix string) (string, error) {
	var sb strings.Builder
	if err := r.writeRaw(&sb, e, BinarySeparator); err != nil {
		return "", err
	}

	sb.WriteString(suffix)

	return sb.String(), nil
}

// MustCanonicalName is like CanonicalName but panics on error.
func (r *Resolver) MustCanonicalName(t model.Type, sep Separator) string {
	name, err := r.CanonicalName(t, sep)
	if err != nil {
		panic(err)
	}

	return name
}

// MustAdapterName is like AdapterName but panics on error.
func (r *Resolver) MustAdapterName(e *model.TypeElement, suffix string) string {
	name, err := r.AdapterName(e, suffix)
	if err != nil {
		panic(err)
	}

	return name
}

// PackageOf walks the enclosing chain of e up to the first package.
func (r *Resolver) PackageOf(e model.Element) (*model.PackageElement, error) {
	cur := e
	for range r.maxDepth {
		if isNilElement(cur) {
			break
		}

		if cur.Kind() == model.ElementPackage {
			pkg, ok := cur.(*model.PackageElement)
			if !ok {
				return nil, errors.Wrapf(ErrNoPackage, "package element %s has type %T", cur.QualifiedName(), cur)
			}

			return pkg, nil
		}

		cur = cur.Enclosing()
	}

	return nil, errors.Wrapf(ErrNoPackage, "%s (depth limit %d)", elementName(e), r.maxDepth)
}

func (r *Resolver) writeType(sb *strings.Builder, t model.Type, sep Separator) error {
	switch tt := t.(type) {
	case *model.Declared:
		if err := r.writeRaw(sb, tt.Element, sep); err != nil {
			return err
		}

		if len(tt.Args) == 0 {
			return nil
		}

		sb.WriteString("<")

		for i, arg := range tt.Args {
			if i != 0 {
				sb.WriteString(", ")
			}

			if err := r.writeType(sb, arg, SourceSeparator); err != nil {
				return err
			}
		}

		sb.WriteString(">")

		return nil

	case *model.Primitive:
		boxed, err := BoxedClassName(tt.PrimitiveKind)
		if err != nil {
			return err
		}

		sb.WriteString(boxed)

		return nil

	case *model.Array:
		if err := r.writeType(sb, tt.Component, sep); err != nil {
			return err
		}

		sb.WriteString("[]")

		return nil

	case *model.TypeVariable:
		return nil

	case nil:
		return errors.Wrap(ErrUnsupportedType, "nil type")

	default:
		return errors.Wrapf(ErrUnsupportedType, "%s type %s", t.Kind(), t)
	}
}

// writeRaw writes the erased name of e: package, '.', nested path joined with sep.
func (r *Resolver) writeRaw(sb *strings.Builder, e *model.TypeElement, sep Separator) error {
	if e == nil {
		return errors.Wrap(ErrUnsupportedType, "declared type without element")
	}

	pkg, err := r.PackageOf(e)
	if err != nil {
		return err
	}

	qualified := e.QualifiedName()
	nested := qualified

	if !pkg.IsUnnamed() {
		prefix := pkg.QualifiedName() + "."
		if !strings.HasPrefix(qualified, prefix) || len(qualified) == len(prefix) {
			return errors.Wrapf(ErrMalformedName, "%q in package %q", qualified, pkg.QualifiedName())
		}

		nested = qualified[len(prefix):]

		sb.WriteString(prefix)
	}

	sb.WriteString(strings.ReplaceAll(nested, ".", sep.String()))

	return nil
}

// isNilElement reports whether e is nil or a nil pointer held in the interface.
func isNilElement(e model.Element) bool {
	switch ee := e.(type) {
	case nil:
		return true
	case *model.TypeElement:
		return ee == nil
	case *model.PackageElement:
		return ee == nil
	default:
		return false
	}
}

func elementName(e model.Element) string {
	if isNilElement(e) {
		return "<nil>"
	}

	return e.QualifiedName()
}
