// Package registry holds the process-wide mapping of content type names to
// their declared schemas: node types (top-level persisted content records) and
// block types (embeddable content units).
//
// A Registry is constructed explicitly at startup, populated by an ordered
// sequence of registration calls before the HTTP listener binds, and is
// read-only for the remainder of the process. Registration order is
// significant: the path resolver iterates node types in that order and the
// first match wins.
package registry

import (
	"fmt"

	"github.com/fieldpress/fieldpress/internal/schema"
)

// NodeSettings carries optional, mostly display-oriented settings of a node
// type. Subpath is the exception: it is the fixed URL prefix used by the path
// resolver to disambiguate slug lookups across types. TitleField names the
// field the list endpoint's substring search runs against; it defaults to
// "title".
type NodeSettings struct {
	DisplayName string `json:"displayName,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
	Subpath     string `json:"subpath,omitempty"`
	TitleField  string `json:"titleField,omitempty"`
}

// NodeType is one registered content type: a name, a persistence-model handle,
// settings, and the declared field list.
type NodeType struct {
	Name     string         `json:"name"`
	Model    string         `json:"model"`
	Settings NodeSettings   `json:"settings"`
	Fields   []schema.Field `json:"fields"`
}

// BlockSettings carries editor-facing constraints of a block type.
type BlockSettings struct {
	AllowMultiple bool `json:"allowMultiple"`
	MaxInstances  int  `json:"maxInstances,omitempty"`
	Deprecated    bool `json:"deprecated,omitempty"`
}

// BlockType is one registered embeddable content unit: display metadata plus
// the declared field list for its data map.
type BlockType struct {
	Name        string         `json:"name"`
	DisplayName string         `json:"displayName,omitempty"`
	Description string         `json:"description,omitempty"`
	Icon        string         `json:"icon,omitempty"`
	Category    string         `json:"category,omitempty"`
	Fields      []schema.Field `json:"fields"`
	Settings    BlockSettings  `json:"settings"`
}

// Registry is the explicitly constructed store of type name to schema mappings.
// It holds schema only, never instance data, and requires no synchronization:
// registration happens-before any request is served.
type Registry struct {
	nodes     map[string]NodeType
	nodeOrder []string

	blocks     map[string]BlockType
	blockOrder []string
}

// New returns an empty Registry ready for registration calls.
func New() *Registry {
	return &Registry{
		nodes:  make(map[string]NodeType),
		blocks: make(map[string]BlockType),
	}
}

// RegisterNodeType adds a node type to the registry.
//
// Duplicate names are rejected with ErrDuplicateType: silent last-write-wins
// registration hides bootstrap mistakes. Field lists are checked for unique
// names and recognized field types up front so a bad declaration fails at
// startup, not on the first request.
func (r *Registry) RegisterNodeType(nt NodeType) error {
	if nt.Name == "" {
		return fmt.Errorf("%w: empty node type name", ErrInvalidType)
	}
	if _, exists := r.nodes[nt.Name]; exists {
		return fmt.Errorf("%w: node type %q", ErrDuplicateType, nt.Name)
	}
	if err := checkFields(nt.Fields); err != nil {
		return fmt.Errorf("node type %q: %w", nt.Name, err)
	}

	if nt.Model == "" {
		nt.Model = nt.Name
	}

	r.nodes[nt.Name] = nt
	r.nodeOrder = append(r.nodeOrder, nt.Name)
	return nil
}

// RegisterBlockType adds a block type to the registry. The same duplicate and
// field-list rules as RegisterNodeType apply.
func (r *Registry) RegisterBlockType(bt BlockType) error {
	if bt.Name == "" {
		return fmt.Errorf("%w: empty block type name", ErrInvalidType)
	}
	if _, exists := r.blocks[bt.Name]; exists {
		return fmt.Errorf("%w: block type %q", ErrDuplicateType, bt.Name)
	}
	if err := checkFields(bt.Fields); err != nil {
		return fmt.Errorf("block type %q: %w", bt.Name, err)
	}

	r.blocks[bt.Name] = bt
	r.blockOrder = append(r.blockOrder, bt.Name)
	return nil
}

// NodeType looks up a registered node type by name.
func (r *Registry) NodeType(name string) (NodeType, bool) {
	nt, ok := r.nodes[name]
	return nt, ok
}

// HasNodeType reports whether a node type with the given name is registered.
func (r *Registry) HasNodeType(name string) bool {
	_, ok := r.nodes[name]
	return ok
}

// NodeTypes returns all registered node types in registration order.
func (r *Registry) NodeTypes() []NodeType {
	out := make([]NodeType, 0, len(r.nodeOrder))
	for _, name := range r.nodeOrder {
		out = append(out, r.nodes[name])
	}
	return out
}

// BlockType looks up a registered block type by name.
func (r *Registry) BlockType(name string) (BlockType, bool) {
	bt, ok := r.blocks[name]
	return bt, ok
}

// HasBlockType reports whether a block type with the given name is registered.
func (r *Registry) HasBlockType(name string) bool {
	_, ok := r.blocks[name]
	return ok
}

// BlockTypes returns all registered block types in registration order.
func (r *Registry) BlockTypes() []BlockType {
	out := make([]BlockType, 0, len(r.blockOrder))
	for _, name := range r.blockOrder {
		out = append(out, r.blocks[name])
	}
	return out
}

// BlockFields resolves a block type name to its field list, satisfying
// schema.BlockSchema so the validation engine and transform pipeline can
// recurse into block instances.
func (r *Registry) BlockFields(blockType string) ([]schema.Field, bool) {
	bt, ok := r.blocks[blockType]
	if !ok {
		return nil, false
	}
	return bt.Fields, true
}

// SlugField returns the node type's declared slug field. A type is expected to
// declare at most one; if more are mis-declared the first wins.
func (r *Registry) SlugField(typeName string) (schema.Field, bool) {
	nt, ok := r.nodes[typeName]
	if !ok {
		return schema.Field{}, false
	}
	for _, f := range nt.Fields {
		if f.Type == schema.TypeSlug {
			return f, true
		}
	}
	return schema.Field{}, false
}

// GenerateURL builds the public path of a node instance from its type's
// subpath and the instance's slug value: "/{subpath}/{slug}", or "/{slug}"
// when the type declares no subpath. It returns false when the type has no
// slug field or the instance's slug value is empty.
func (r *Registry) GenerateURL(typeName string, values schema.Values) (string, bool) {
	nt, ok := r.nodes[typeName]
	if !ok {
		return "", false
	}
	slugField, ok := r.SlugField(typeName)
	if !ok {
		return "", false
	}

	slug, _ := values[slugField.Name].(string)
	if slug == "" {
		return "", false
	}

	if nt.Settings.Subpath != "" {
		return "/" + nt.Settings.Subpath + "/" + slug, true
	}
	return "/" + slug, true
}

func checkFields(fields []schema.Field) error {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return fmt.Errorf("%w: field with empty name", ErrInvalidType)
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: duplicate field name %q", ErrInvalidType, f.Name)
		}
		seen[f.Name] = true
		if !f.Type.Valid() {
			return fmt.Errorf("%w: field %q has unknown type %q", ErrInvalidType, f.Name, f.Type)
		}
	}
	return nil
}
