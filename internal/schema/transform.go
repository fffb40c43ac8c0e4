package schema

import (
	"context"
	"fmt"

	"github.com/fieldpress/fieldpress/internal/logger"
)

// ToStorage converts a raw input value map into its persistence-ready form.
//
// For each declared field whose input value is present, the field's save hook
// (if any) is invoked with a snapshot of the owner's prior persisted values;
// the hook's result replaces the field's entry in the output map. Fields
// without a save hook pass through verbatim. Input keys that do not correspond
// to a declared field are dropped; the registry owns the persisted shape.
//
// Blocks-typed values additionally get generated IDs backfilled onto any block
// instance that arrived without one, so ID stability is established before the
// record is written.
//
// A save hook error aborts the whole transformation; partial persistence would
// corrupt the record.
func ToStorage(ctx context.Context, fields []Field, input, prior Values, blocks BlockSchema) (Values, error) {
	owner := prior.Clone()
	out := make(Values, len(fields))

	for _, f := range fields {
		value, present := input[f.Name]
		if !present {
			continue
		}

		if f.Save != nil {
			transformed, err := f.Save(ctx, owner, value)
			if err != nil {
				return nil, fmt.Errorf("save hook for field %q: %w", f.Name, err)
			}
			value = transformed
		}

		if f.Type == TypeBlocks && value != nil {
			decoded, err := DecodeBlocks(value)
			if err == nil {
				var blockFields func(string) ([]Field, bool)
				if blocks != nil {
					blockFields = blocks.BlockFields
				}
				decoded, err = EnsureBlockIDs(decoded, blockFields)
				if err != nil {
					return nil, fmt.Errorf("field %q: %w", f.Name, err)
				}
				value = decoded
			}
		}

		out[f.Name] = value
	}

	return out, nil
}

// ToDisplay converts a persisted value map into its display-ready form.
//
// The result starts as a copy of the stored values; for each field with a load
// hook the hook's result overwrites the raw stored value. A load hook failure
// is logged and the raw value is kept as fallback: display never hard-fails
// because one field's loader threw.
func ToDisplay(ctx context.Context, fields []Field, stored Values) Values {
	out := stored.Clone()

	for _, f := range fields {
		if f.Load == nil {
			continue
		}

		value, err := f.Load(ctx, stored.Clone())
		if err != nil {
			logger.FromContext(ctx).Err(err).
				Str("field", f.Name).
				Msg("load hook failed, keeping raw stored value")
			continue
		}
		out[f.Name] = value
	}

	return out
}
