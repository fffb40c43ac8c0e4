package schema

import "context"

// FieldType is the closed set of tags a field definition may carry. The tag
// selects the validation rules applied to the field's value and the widget the
// form renderer dispatches to.
type FieldType string

// Supported field types.
const (
	TypeText     FieldType = "text"
	TypeTextarea FieldType = "textarea"
	TypeNumber   FieldType = "number"
	TypeBoolean  FieldType = "boolean"
	TypeSelect   FieldType = "select"
	TypeDate     FieldType = "date"
	TypeEmail    FieldType = "email"
	TypeURL      FieldType = "url"
	TypeFile     FieldType = "file"
	TypeNode     FieldType = "node"
	TypeArray    FieldType = "array"
	TypeSlug     FieldType = "slug"
	TypeBlocks   FieldType = "blocks"
)

// validFieldTypes is the exhaustive set of recognized field types. Any tag not
// present here is rejected at registration time.
var validFieldTypes = map[FieldType]bool{
	TypeText:     true,
	TypeTextarea: true,
	TypeNumber:   true,
	TypeBoolean:  true,
	TypeSelect:   true,
	TypeDate:     true,
	TypeEmail:    true,
	TypeURL:      true,
	TypeFile:     true,
	TypeNode:     true,
	TypeArray:    true,
	TypeSlug:     true,
	TypeBlocks:   true,
}

// Valid reports whether t is one of the recognized field types.
func (t FieldType) Valid() bool {
	return validFieldTypes[t]
}

// Values is the generic value map carried by node and block instances: field
// name → field value. Values round-trip through JSON, so numbers arrive as
// float64 and nested structures as map[string]any / []any.
type Values map[string]any

// Clone returns a shallow copy of v. A nil receiver yields an empty, non-nil
// map so callers can write to the result unconditionally.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// SaveHook transforms a raw input value into its persistence-ready form.
//
// owner is a read-only snapshot of the owning instance's previously persisted
// values (empty on create), allowing a hook to derive its result from prior
// state. The returned value replaces the field's entry in the storage map; a
// hook that wants the raw value to pass through unchanged simply returns it.
//
// A SaveHook error aborts the whole write: silent partial persistence would
// corrupt the record.
type SaveHook func(ctx context.Context, owner Values, value any) (any, error)

// LoadHook derives the display form of a field from the owning instance's
// stored values. The returned value replaces the raw stored value during
// serialization for display/editing.
//
// LoadHook errors are caught by the transform pipeline and degrade to the raw
// stored value; display must never hard-fail because one field's loader threw.
type LoadHook func(ctx context.Context, owner Values) (any, error)

// CustomRule is a user-supplied validation predicate. A nil return means the
// value is acceptable; a non-nil error is converted into a violation message.
// The rule may block (e.g. perform a lookup) and must honor ctx.
type CustomRule func(ctx context.Context, value any) error

// Validation holds the declarative rules checked by the validation engine.
// Numeric bounds apply to number fields, length bounds to string-like and
// array fields. Pattern is a Go regular expression matched against string
// values.
type Validation struct {
	Required  bool       `json:"required,omitempty"`
	Min       *float64   `json:"min,omitempty"`
	Max       *float64   `json:"max,omitempty"`
	MinLength *int       `json:"minLength,omitempty"`
	MaxLength *int       `json:"maxLength,omitempty"`
	Pattern   string     `json:"pattern,omitempty"`
	Custom    CustomRule `json:"-"`
}

// UI carries display-only hints consumed by the form renderer. Hints never
// affect persistence or validation.
type UI struct {
	Width    string `json:"width,omitempty"`
	Order    int    `json:"order,omitempty"`
	Hidden   bool   `json:"hidden,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
	Group    string `json:"group,omitempty"`
}

// Option is one selectable entry of a select field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field describes one configurable attribute of a node or block type.
//
// Name is the storage and display key and must be unique within the owning
// type's field list. Save and Load hooks are server-only behavior and are
// never serialized to clients.
type Field struct {
	Type        FieldType   `json:"type"`
	Name        string      `json:"name"`
	Label       string      `json:"label,omitempty"`
	Description string      `json:"description,omitempty"`
	Placeholder string      `json:"placeholder,omitempty"`
	Validation  *Validation `json:"validation,omitempty"`
	UI          *UI         `json:"ui,omitempty"`

	// Select fields.
	Options []Option `json:"options,omitempty"`

	// File fields.
	Accept string `json:"accept,omitempty"`

	// File and node-reference fields.
	Multiple bool `json:"multiple,omitempty"`

	// Node-reference fields: restrict which node types may be referenced.
	NodeTypes []string `json:"nodeTypes,omitempty"`

	// Array fields.
	MinItems *int      `json:"minItems,omitempty"`
	MaxItems *int      `json:"maxItems,omitempty"`
	ItemType FieldType `json:"itemType,omitempty"`

	// Blocks fields.
	AllowedBlocks []string `json:"allowedBlocks,omitempty"`
	MinBlocks     *int     `json:"minBlocks,omitempty"`
	MaxBlocks     *int     `json:"maxBlocks,omitempty"`

	Save SaveHook `json:"-"`
	Load LoadHook `json:"-"`
}

// IsRequired reports whether the field carries a required validation rule.
func (f Field) IsRequired() bool {
	return f.Validation != nil && f.Validation.Required
}
