package models

import "time"

// Node is a persisted content record of some registered node type.
//
// The type's declared field values live in Data, serialized as a single JSON
// document at the persistence layer. Slug is extracted from Data into its own
// column when the type declares a slug field, making it the secondary,
// human-readable lookup key (unique per node type).
type Node struct {
	// ID is the numeric primary key assigned by the database.
	ID int64 `json:"id"`

	// Type is the registered node type name this record belongs to.
	Type string `json:"nodeType"`

	// Slug is the URL-safe secondary key, empty for types without a slug
	// field.
	Slug string `json:"slug,omitempty"`

	// AuthorID is the user who created the record, nil when the creator is
	// unknown.
	AuthorID *int64 `json:"authorId,omitempty"`

	// Data holds the declared field values keyed by field name.
	Data map[string]any `json:"data"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table associated with the Node
// model.
func (n Node) TableName() string {
	return "nodes"
}
