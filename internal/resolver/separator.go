package resolver

import (
	"github.com/pkg/errors"

	"typename-resolver/internal/config"
)

// Separator joins the nested segments of a declared type.
type Separator byte

const (
	// SourceSeparator is used for references to existing types in code.
	SourceSeparator Separator = '.'
	// BinarySeparator is used for new class names and runtime lookup keys.
	BinarySeparator Separator = '$'
)

// IsValid reports whether s is SourceSeparator or BinarySeparator.
func (s Separator) IsValid() bool {
	return s == SourceSeparator || s == BinarySeparator
}

// String returns the separator character.
func (s Separator) String() string {
	return string(rune(s))
}

// ParseSeparator accepts the configuration names ("source", "binary") and
// the literal characters ("." and "$").
func ParseSeparator(name string) (Separator, error) {
	switch name {
	case config.SeparatorSource, ".":
		return SourceSeparator, nil
	case config.SeparatorBinary, "$":
		return BinarySeparator, nil
	default:
		return 0, errors.Wrapf(ErrInvalidSeparator, "%q", name)
	}
}
