package converter

import (
	"fmt"

	"github.com/gaborage/apicontract/internal/spec"
)

// Apply merges mr into doc: paths, components.schemas and tags are replaced
// or unioned, every other key of doc is left as authored.
func Apply(doc *spec.Document, mr *ModuleResult) error {
	if err := doc.Set("paths", mr.Paths); err != nil {
		return fmt.Errorf("set paths: %w", err)
	}
	if err := doc.SetIn([]string{"components", "schemas"}, mr.Schemas); err != nil {
		return fmt.Errorf("set components.schemas: %w", err)
	}
	if err := doc.MergeTags(mr.Tags); err != nil {
		return fmt.Errorf("merge tags: %w", err)
	}
	return nil
}
