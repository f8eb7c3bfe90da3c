// Package converter rewrites the generated legacy-dialect document into the
// four modern-dialect module documents.
package converter

import (
	"sort"

	"github.com/gaborage/apicontract/internal/modules"
	"github.com/gaborage/apicontract/internal/paths"
	"github.com/gaborage/apicontract/internal/spec"
	"github.com/gaborage/apicontract/logger"
)

// DefaultMediaType is used when neither the operation nor the document
// declares what it produces.
const DefaultMediaType = "application/json"

// ModuleResult is the converted content destined for one module document.
type ModuleResult struct {
	Module  modules.Module
	Paths   map[string]spec.PathItem
	Schemas map[string]spec.Schema
	// Tags are the operation tags seen in Paths, sorted.
	Tags []string
	// Missing lists referenced schema names absent from the legacy
	// definitions, sorted. They are not written.
	Missing []string

	refs map[string]struct{}
	tags map[string]struct{}
}

// Result is the outcome of one conversion run.
type Result struct {
	Modules map[modules.Module]*ModuleResult
	// Unmapped lists raw paths no module claims, sorted. They are not written.
	Unmapped []string
	// BodyConflicts lists operations declaring more than one request body.
	BodyConflicts []BodyConflict
}

// Module returns the result for m. Every known module has one.
func (r *Result) Module(m modules.Module) *ModuleResult {
	return r.Modules[m]
}

// Converter turns legacy documents into per-module modern content.
type Converter struct {
	log logger.Logger
}

// New creates a Converter logging through log.
func New(log logger.Logger) *Converter {
	return &Converter{log: log}
}

// Convert rewrites every path of sw. Raw paths are visited in sorted order so
// diagnostics, and the winner when two raw paths remap to the same modern
// path, are deterministic.
func (c *Converter) Convert(sw *spec.Swagger) *Result {
	res := &Result{Modules: make(map[modules.Module]*ModuleResult, len(modules.All))}
	for _, m := range modules.All {
		res.Modules[m] = &ModuleResult{
			Module:  m,
			Paths:   make(map[string]spec.PathItem),
			Schemas: make(map[string]spec.Schema),
			refs:    make(map[string]struct{}),
			tags:    make(map[string]struct{}),
		}
	}

	rawPaths := make([]string, 0, len(sw.Paths))
	for p := range sw.Paths {
		rawPaths = append(rawPaths, p)
	}
	sort.Strings(rawPaths)

	for _, raw := range rawPaths {
		mapped := paths.Remap(raw)
		m := modules.ForRoute(mapped)
		if m == modules.Unknown {
			c.log.Warn().Str("path", raw).Msg("No module for path, skipping")
			res.Unmapped = append(res.Unmapped, raw)
			continue
		}

		mr := res.Modules[m]
		if _, dup := mr.Paths[mapped]; dup {
			c.log.Warn().Str("path", raw).Str("mapped", mapped).Msg("Mapped path already converted, overwriting")
		}

		item := sw.Paths[raw]
		oc := &opConverter{
			path:            mapped,
			defaultProduces: sw.Produces,
			refs:            mr.refs,
		}
		converted := oc.pathItem(&item)
		res.BodyConflicts = append(res.BodyConflicts, oc.conflicts...)

		for _, mo := range converted.Operations() {
			for _, tag := range mo.Operation.Tags {
				mr.tags[tag] = struct{}{}
			}
		}
		mr.Paths[mapped] = converted

		c.log.Debug().Str("path", raw).Str("mapped", mapped).Str("module", m.String()).Msg("Converted path")
	}

	for _, m := range modules.All {
		c.finish(res.Modules[m], sw.Definitions)
	}
	return res
}

// finish copies referenced definitions and settles the sorted tag list.
func (c *Converter) finish(mr *ModuleResult, defs map[string]spec.Schema) {
	for _, name := range sortedKeys(mr.refs) {
		def, ok := defs[name]
		if !ok {
			mr.Missing = append(mr.Missing, name)
			continue
		}
		// Schema-to-schema references are rewritten but not followed.
		mr.Schemas[name] = spec.Schema(rewriteMap(def, nil))
	}
	if len(mr.Missing) > 0 {
		c.log.Warn().Str("module", mr.Module.String()).Strs("schemas", mr.Missing).Msg("Referenced schemas missing from definitions")
	}

	mr.Tags = sortedKeys(mr.tags)
	c.log.Debug().
		Str("module", mr.Module.String()).
		Int("paths", len(mr.Paths)).
		Int("schemas", len(mr.Schemas)).
		Int("tags", len(mr.Tags)).
		Msg("Module converted")
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
