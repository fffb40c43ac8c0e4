package schema

import (
	"context"
	"fmt"
	"regexp"
	"unicode/utf8"
)

// DefaultMaxBlockDepth bounds recursive blocks-within-blocks validation.
// Unbounded nesting would let a hostile payload drive the validator (and the
// renderer) into arbitrarily deep recursion.
const DefaultMaxBlockDepth = 8

// BlockSchema resolves a block type name to its declared field list. The type
// registry satisfies this interface; tests may supply a fixture map.
type BlockSchema interface {
	BlockFields(blockType string) ([]Field, bool)
}

// Validator is the generic validation engine. Given a field list and a
// candidate value map it produces a list of human-readable violations, each
// naming the offending field. An empty result means the map is valid.
//
// Blocks may be nil, in which case blocks-typed fields are checked only for
// shape and count, not against their block type's own field list.
type Validator struct {
	Blocks   BlockSchema
	MaxDepth int
}

// NewValidator constructs a Validator resolving block types against blocks,
// with the default nesting depth guard.
func NewValidator(blocks BlockSchema) *Validator {
	return &Validator{Blocks: blocks, MaxDepth: DefaultMaxBlockDepth}
}

// Validate checks values against fields, in field-list order.
//
// Per field: a required field that is absent, nil, or the empty string yields
// a single "is required" violation and no further checks; an optional absent
// field is skipped entirely; otherwise the value is checked against the rules
// of its field type, and finally against the field's custom rule if one is
// declared. Violations across fields are concatenated; validation never
// short-circuits across fields.
func (v *Validator) Validate(ctx context.Context, fields []Field, values Values) []string {
	return v.validateFields(ctx, fields, values, 0)
}

func (v *Validator) validateFields(ctx context.Context, fields []Field, values Values, depth int) []string {
	var violations []string

	for _, f := range fields {
		value, present := values[f.Name]
		if absent(value) || !present {
			if f.IsRequired() {
				violations = append(violations, fmt.Sprintf("field %q is required", f.Name))
			}
			continue
		}

		violations = append(violations, v.validateValue(ctx, f, value, depth)...)

		if f.Validation != nil && f.Validation.Custom != nil {
			if err := f.Validation.Custom(ctx, value); err != nil {
				violations = append(violations, fmt.Sprintf("field %q: %s", f.Name, err.Error()))
			}
		}
	}

	return violations
}

func (v *Validator) validateValue(ctx context.Context, f Field, value any, depth int) []string {
	switch f.Type {
	case TypeText, TypeTextarea, TypeEmail, TypeURL, TypeSlug, TypeDate, TypeFile:
		return validateString(f, value)
	case TypeSelect:
		return validateSelect(f, value)
	case TypeNumber:
		return validateNumber(f, value)
	case TypeBoolean:
		if _, ok := value.(bool); !ok {
			return []string{fmt.Sprintf("field %q must be a boolean", f.Name)}
		}
		return nil
	case TypeArray:
		return validateArray(f, value)
	case TypeNode:
		return validateNodeRef(f, value)
	case TypeBlocks:
		return v.validateBlocks(ctx, f, value, depth)
	default:
		return nil
	}
}

func validateString(f Field, value any) []string {
	s, ok := value.(string)
	if !ok {
		return []string{fmt.Sprintf("field %q must be a string", f.Name)}
	}

	var violations []string
	if rules := f.Validation; rules != nil {
		length := utf8.RuneCountInString(s)
		if rules.MinLength != nil && length < *rules.MinLength {
			violations = append(violations, fmt.Sprintf("field %q must be at least %d characters", f.Name, *rules.MinLength))
		}
		if rules.MaxLength != nil && length > *rules.MaxLength {
			violations = append(violations, fmt.Sprintf("field %q must be at most %d characters", f.Name, *rules.MaxLength))
		}
		if rules.Pattern != "" {
			re, err := regexp.Compile(rules.Pattern)
			if err != nil {
				violations = append(violations, fmt.Sprintf("field %q has an invalid validation pattern", f.Name))
			} else if !re.MatchString(s) {
				violations = append(violations, fmt.Sprintf("field %q does not match the required pattern", f.Name))
			}
		}
	}
	return violations
}

func validateSelect(f Field, value any) []string {
	s, ok := value.(string)
	if !ok {
		return []string{fmt.Sprintf("field %q must be a string", f.Name)}
	}
	if len(f.Options) == 0 {
		return nil
	}
	for _, opt := range f.Options {
		if opt.Value == s {
			return nil
		}
	}
	return []string{fmt.Sprintf("field %q must be one of the declared options", f.Name)}
}

func validateNumber(f Field, value any) []string {
	n, ok := toFloat(value)
	if !ok {
		return []string{fmt.Sprintf("field %q must be a number", f.Name)}
	}

	var violations []string
	if rules := f.Validation; rules != nil {
		if rules.Min != nil && n < *rules.Min {
			violations = append(violations, fmt.Sprintf("field %q must be at least %v", f.Name, *rules.Min))
		}
		if rules.Max != nil && n > *rules.Max {
			violations = append(violations, fmt.Sprintf("field %q must be at most %v", f.Name, *rules.Max))
		}
	}
	return violations
}

func validateArray(f Field, value any) []string {
	items, ok := value.([]any)
	if !ok {
		return []string{fmt.Sprintf("field %q must be a list", f.Name)}
	}

	var violations []string
	if f.MinItems != nil && len(items) < *f.MinItems {
		violations = append(violations, fmt.Sprintf("field %q must have at least %d items", f.Name, *f.MinItems))
	}
	if f.MaxItems != nil && len(items) > *f.MaxItems {
		violations = append(violations, fmt.Sprintf("field %q must have at most %d items", f.Name, *f.MaxItems))
	}
	return violations
}

// validateNodeRef checks the shape of a node-reference value: a single
// reference object for plain fields, a list of reference objects when the
// field declares multiple selection. Every reference must carry both an id
// and a nodeType.
func validateNodeRef(f Field, value any) []string {
	if f.Multiple {
		items, ok := value.([]any)
		if !ok {
			return []string{fmt.Sprintf("field %q must be a list of node references", f.Name)}
		}
		for _, item := range items {
			if !isNodeRef(item) {
				return []string{fmt.Sprintf("field %q contains an invalid node reference", f.Name)}
			}
		}
		return nil
	}

	if !isNodeRef(value) {
		return []string{fmt.Sprintf("field %q must be a node reference", f.Name)}
	}
	return nil
}

func isNodeRef(value any) bool {
	ref, ok := value.(map[string]any)
	if !ok {
		return false
	}
	if _, hasID := ref["id"]; !hasID {
		return false
	}
	if _, hasType := ref["nodeType"]; !hasType {
		return false
	}
	return true
}

func (v *Validator) validateBlocks(ctx context.Context, f Field, value any, depth int) []string {
	maxDepth := v.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxBlockDepth
	}
	if depth >= maxDepth {
		return []string{fmt.Sprintf("field %q exceeds the maximum block nesting depth of %d", f.Name, maxDepth)}
	}

	blocks, err := DecodeBlocks(value)
	if err != nil {
		return []string{fmt.Sprintf("field %q must be a list of blocks: %s", f.Name, err.Error())}
	}

	var violations []string
	if f.MinBlocks != nil && len(blocks) < *f.MinBlocks {
		violations = append(violations, fmt.Sprintf("field %q must have at least %d blocks", f.Name, *f.MinBlocks))
	}
	if f.MaxBlocks != nil && len(blocks) > *f.MaxBlocks {
		violations = append(violations, fmt.Sprintf("field %q must have at most %d blocks", f.Name, *f.MaxBlocks))
	}

	for i, block := range blocks {
		if len(f.AllowedBlocks) > 0 && !contains(f.AllowedBlocks, block.Type) {
			violations = append(violations, fmt.Sprintf("field %q: block type %q is not allowed", f.Name, block.Type))
			continue
		}

		if v.Blocks == nil {
			continue
		}
		blockFields, ok := v.Blocks.BlockFields(block.Type)
		if !ok {
			violations = append(violations, fmt.Sprintf("field %q: block %d has unknown type %q", f.Name, i, block.Type))
			continue
		}

		for _, nested := range v.validateFields(ctx, blockFields, block.Data, depth+1) {
			violations = append(violations, fmt.Sprintf("field %q, block %d: %s", f.Name, i, nested))
		}
	}

	return violations
}

// absent reports whether a value counts as missing for required-field checks:
// nil and the empty string both do. Zero numbers and false booleans are
// legitimate present values.
func absent(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok && s == "" {
		return true
	}
	return false
}

func toFloat(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
