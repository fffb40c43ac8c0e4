package schema

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// BlockInstance is one embedded content unit inside a blocks-typed field.
// Blocks are never persisted on their own; they live, in order, inside the
// value of a blocks field on some node, or recursively inside another block's
// own blocks field.
//
// ID is a client-generated unique string that must stay stable across
// add/remove/reorder operations so editors can track individual entries.
type BlockInstance struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data Values `json:"data"`
}

// DecodeBlocks converts the raw value of a blocks field into a slice of
// BlockInstance. Values arriving from JSON decode as []any of map[string]any;
// values already produced by this package pass through as []BlockInstance.
func DecodeBlocks(value any) ([]BlockInstance, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []BlockInstance:
		return v, nil
	case []any:
		blocks := make([]BlockInstance, 0, len(v))
		for i, item := range v {
			block, err := decodeBlock(item)
			if err != nil {
				return nil, fmt.Errorf("block %d: %w", i, err)
			}
			blocks = append(blocks, block)
		}
		return blocks, nil
	default:
		return nil, fmt.Errorf("blocks value must be a list, got %T", value)
	}
}

func decodeBlock(item any) (BlockInstance, error) {
	switch b := item.(type) {
	case BlockInstance:
		return b, nil
	case map[string]any:
		block := BlockInstance{}
		if id, ok := b["id"].(string); ok {
			block.ID = id
		}
		typeName, ok := b["type"].(string)
		if !ok || typeName == "" {
			return BlockInstance{}, fmt.Errorf("missing block type")
		}
		block.Type = typeName

		switch data := b["data"].(type) {
		case nil:
			block.Data = Values{}
		case map[string]any:
			block.Data = Values(data)
		case Values:
			block.Data = data
		default:
			return BlockInstance{}, fmt.Errorf("block data must be an object, got %T", b["data"])
		}
		return block, nil
	default:
		return BlockInstance{}, fmt.Errorf("block entry must be an object, got %T", item)
	}
}

// EnsureBlockIDs backfills a generated nanoid onto every block instance that
// arrived without one, recursing into nested blocks fields. Existing IDs are
// never touched, preserving ID stability for entries the client already knows.
func EnsureBlockIDs(blocks []BlockInstance, blockFields func(blockType string) ([]Field, bool)) ([]BlockInstance, error) {
	for i := range blocks {
		if blocks[i].ID == "" {
			id, err := gonanoid.New()
			if err != nil {
				return nil, fmt.Errorf("generating block id: %w", err)
			}
			blocks[i].ID = id
		}

		if blockFields == nil {
			continue
		}
		fields, ok := blockFields(blocks[i].Type)
		if !ok {
			continue
		}
		for _, f := range fields {
			if f.Type != TypeBlocks {
				continue
			}
			raw, present := blocks[i].Data[f.Name]
			if !present {
				continue
			}
			nested, err := DecodeBlocks(raw)
			if err != nil {
				continue // validation reports malformed nested blocks
			}
			nested, err = EnsureBlockIDs(nested, blockFields)
			if err != nil {
				return nil, err
			}
			blocks[i].Data[f.Name] = nested
		}
	}
	return blocks, nil
}
