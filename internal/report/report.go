package report

import (
	"errors"

	"typename-resolver/internal/diagnostic"
	"typename-resolver/internal/model"
	"typename-resolver/internal/resolver"
)

// Entry holds every name derived for one type element.
type Entry struct {
	Type       string   `yaml:"type"`
	Canonical  string   `yaml:"canonical"`
	Binary     string   `yaml:"binary"`
	Adapter    string   `yaml:"adapter"`
	Supertypes []string `yaml:"supertypes,omitempty"`
}

// Report is the outcome of naming a batch.
type Report struct {
	Entries []Entry `yaml:"entries"`
}

// Builder derives report entries with a fixed resolver and settings.
type Builder struct {
	res    *resolver.Resolver
	sep    resolver.Separator
	suffix string
}

// NewBuilder creates a Builder. sep selects the form of the canonical name.
func NewBuilder(res *resolver.Resolver, sep resolver.Separator, suffix string) *Builder {
	return &Builder{res: res, sep: sep, suffix: suffix}
}

// Build names every element. Elements that fail are left out of the report
// and described in the returned diagnostics.
func (b *Builder) Build(elements []*model.TypeElement) (*Report, diagnostic.Diagnostics) {
	var (
		rep   Report
		diags diagnostic.Diagnostics
	)

	for _, e := range elements {
		entry, complete, err := b.entry(e)
		if err != nil {
			diags.AddError(Code(err), err.Error(), elementName(e))
			continue
		}

		if !complete {
			diags.AddWarning(diagnostic.CodeTruncatedChain,
				"supertype walk cut short by a cycle or the depth limit", e.QualifiedName())
		}

		if super, ok := e.Superclass().(*model.Declared); ok && b.res.IsPlatformName(super.String()) {
			diags.AddInfo(diagnostic.CodePlatformSuper, "supertype walk stops at "+super.String(), e.QualifiedName())
		}

		rep.Entries = append(rep.Entries, entry)
	}

	return &rep, diags
}

// Entry names a single element.
func (b *Builder) Entry(e *model.TypeElement) (Entry, error) {
	entry, _, err := b.entry(e)
	return entry, err
}

// entry names e and reports whether its supertype chain is complete.
func (b *Builder) entry(e *model.TypeElement) (Entry, bool, error) {
	if e == nil {
		return Entry{}, false, resolver.ErrUnsupportedType
	}

	raw := e.AsType()

	canonical, err := b.res.CanonicalName(raw, b.sep)
	if err != nil {
		return Entry{}, false, err
	}

	binary, err := b.res.CanonicalName(raw, resolver.BinarySeparator)
	if err != nil {
		return Entry{}, false, err
	}

	adapter, err := b.res.AdapterName(e, b.suffix)
	if err != nil {
		return Entry{}, false, err
	}

	entry := Entry{
		Type:      e.QualifiedName(),
		Canonical: canonical,
		Binary:    binary,
		Adapter:   adapter,
	}

	chain, complete := b.res.WalkSupertypes(e)
	for _, super := range chain {
		name, err := b.res.TypeToString(super)
		if err != nil {
			return Entry{}, false, err
		}

		entry.Supertypes = append(entry.Supertypes, name)
	}

	return entry, complete, nil
}

// Code maps a resolver error onto a diagnostic code.
func Code(err error) string {
	switch {
	case errors.Is(err, resolver.ErrUnsupportedType):
		return diagnostic.CodeUnsupportedType
	case errors.Is(err, resolver.ErrUnknownPrimitive):
		return diagnostic.CodeUnknownPrimitive
	case errors.Is(err, resolver.ErrInvalidSeparator):
		return diagnostic.CodeInvalidSeparator
	case errors.Is(err, resolver.ErrNoPackage):
		return diagnostic.CodeNoPackage
	case errors.Is(err, resolver.ErrMalformedName):
		return diagnostic.CodeMalformedName
	default:
		return diagnostic.CodeInternal
	}
}

func elementName(e *model.TypeElement) string {
	if e == nil {
		return ""
	}

	return e.QualifiedName()
}
