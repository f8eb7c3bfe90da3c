package spec

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Document is a parsed document kept as a YAML node tree so selected keys can
// be replaced while everything else, key order included, stays as authored.
type Document struct {
	root *yaml.Node
	path string
}

// Path returns the file the document was loaded from, if any.
func (d *Document) Path() string {
	return d.path
}

func (d *Document) mapping() *yaml.Node {
	return d.root.Content[0]
}

// Has reports whether the top-level key exists.
func (d *Document) Has(key string) bool {
	_, v := lookup(d.mapping(), key)
	return v != nil
}

// Set replaces the value of a top-level key, appending the key when absent.
func (d *Document) Set(key string, value any) error {
	return d.SetIn([]string{key}, value)
}

// SetIn replaces the value at a key path such as ["components", "schemas"].
// Missing or non-mapping intermediate values are replaced by mappings.
func (d *Document) SetIn(keyPath []string, value any) error {
	if len(keyPath) == 0 {
		return fmt.Errorf("empty key path")
	}

	node := &yaml.Node{}
	if err := node.Encode(value); err != nil {
		return fmt.Errorf("encode %v: %w", keyPath, err)
	}

	m := d.mapping()
	for _, key := range keyPath[:len(keyPath)-1] {
		_, child := lookup(m, key)
		if child == nil || child.Kind != yaml.MappingNode {
			fresh := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			setValue(m, key, fresh)
			child = fresh
		}
		m = child
	}
	setValue(m, keyPath[len(keyPath)-1], node)
	return nil
}

// MergeTags unions names into the top-level tags list. Existing mapping
// entries are kept as authored and win on a name clash; duplicates and
// non-mapping entries are dropped. New names are appended as bare {name: ...}
// entries in the order given.
func (d *Document) MergeTags(names []string) error {
	merged := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	seen := make(map[string]struct{})

	if _, existing := lookup(d.mapping(), "tags"); existing != nil && existing.Kind == yaml.SequenceNode {
		for _, item := range existing.Content {
			if item.Kind != yaml.MappingNode {
				continue
			}
			name := ""
			if _, n := lookup(item, "name"); n != nil {
				name = n.Value
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			merged.Content = append(merged.Content, item)
		}
	}

	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		tag := &yaml.Node{}
		if err := tag.Encode(map[string]string{"name": name}); err != nil {
			return fmt.Errorf("encode tag %q: %w", name, err)
		}
		merged.Content = append(merged.Content, tag)
	}

	setValue(d.mapping(), "tags", merged)
	return nil
}

// Bytes renders the document with two-space indentation.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d.root); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders the document and replaces path atomically: the content is
// written to a temporary sibling and renamed over the destination.
func (d *Document) WriteFile(path string) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// lookup returns the key and value nodes for key in mapping m, or nils.
func lookup(m *yaml.Node, key string) (*yaml.Node, *yaml.Node) {
	if m == nil || m.Kind != yaml.MappingNode {
		return nil, nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i], m.Content[i+1]
		}
	}
	return nil, nil
}

func setValue(m *yaml.Node, key string, value *yaml.Node) {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			m.Content[i+1] = value
			return
		}
	}
	m.Content = append(m.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		value,
	)
}
