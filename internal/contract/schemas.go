// Package contract detects drift between the generated document and the
// public module documents.
package contract

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/gaborage/apicontract/internal/spec"
)

// ShortName returns the last dot-separated segment of a fully-qualified
// definition name, the key both dialects share.
func ShortName(fqName string) string {
	if i := strings.LastIndexByte(fqName, '.'); i >= 0 {
		return fqName[i+1:]
	}
	return fqName
}

// SchemaDiff is the drift found for one schema present on both sides.
type SchemaDiff struct {
	Label string
	Name  string
	// MissingInModern are legacy properties the modern schema lacks.
	MissingInModern []string
	// ExtraInModern are modern properties the legacy schema lacks.
	ExtraInModern    []string
	LegacyRequired   []string
	ModernRequired   []string
	RequiredMismatch bool
}

// String renders the diff as one report line.
func (d SchemaDiff) String() string {
	parts := []string{fmt.Sprintf("%s: schema %s", d.Label, d.Name)}
	if len(d.MissingInModern) > 0 {
		parts = append(parts, fmt.Sprintf("missing in OAS: %v", d.MissingInModern))
	}
	if len(d.ExtraInModern) > 0 {
		parts = append(parts, fmt.Sprintf("extra in OAS: %v", d.ExtraInModern))
	}
	if d.RequiredMismatch {
		parts = append(parts, fmt.Sprintf("required mismatch swagger=%v oas=%v", d.LegacyRequired, d.ModernRequired))
	}
	return strings.Join(parts, " | ")
}

// CompareSchemas reports property and required-set drift for every legacy
// definition whose short name also exists in modern. Legacy definitions with
// no modern counterpart are skipped. Results are ordered by fully-qualified
// legacy name; an empty result means the group matches.
func CompareSchemas(legacy, modern map[string]spec.Schema, label string) []SchemaDiff {
	names := make([]string, 0, len(legacy))
	for name := range legacy {
		names = append(names, name)
	}
	sort.Strings(names)

	var diffs []SchemaDiff
	for _, fq := range names {
		short := ShortName(fq)
		counterpart, ok := modern[short]
		if !ok {
			continue
		}

		legacyProps := legacy[fq].PropertyNames()
		modernProps := counterpart.PropertyNames()
		d := SchemaDiff{
			Label:           label,
			Name:            short,
			MissingInModern: difference(legacyProps, modernProps),
			ExtraInModern:   difference(modernProps, legacyProps),
			LegacyRequired:  legacy[fq].Required(),
			ModernRequired:  counterpart.Required(),
		}
		d.RequiredMismatch = !slices.Equal(d.LegacyRequired, d.ModernRequired)

		if len(d.MissingInModern) > 0 || len(d.ExtraInModern) > 0 || d.RequiredMismatch {
			diffs = append(diffs, d)
		}
	}
	return diffs
}

// difference returns the sorted elements of a that are not in b.
func difference(a, b []string) []string {
	in := make(map[string]struct{}, len(b))
	for _, s := range b {
		in[s] = struct{}{}
	}
	var out []string
	for _, s := range a {
		if _, ok := in[s]; !ok {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
