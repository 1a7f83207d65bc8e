package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Write renders r to w in the given format.
func Write(w io.Writer, r *Report, format string) error {
	switch format {
	case FormatText:
		return WriteText(w, r)
	case FormatYAML:
		return WriteYAML(w, r)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// WriteText renders r as an aligned table, one type per line.
func WriteText(w io.Writer, r *Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "CANONICAL\tBINARY\tADAPTER\tSUPERTYPES")

	for _, e := range r.Entries {
		supers := "-"
		if len(e.Supertypes) > 0 {
			supers = strings.Join(e.Supertypes, " > ")
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Canonical, e.Binary, e.Adapter, supers)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}

// WriteYAML renders r as YAML.
func WriteYAML(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	return nil
}

// WriteFile writes r to path, creating parent directories as needed.
func WriteFile(r *Report, path, format string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	var sb strings.Builder
	if err := Write(&sb, r, format); err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(sb.String()), filePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	return nil
}
